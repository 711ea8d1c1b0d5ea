package vecname

import "github.com/crimson-sun/vecname/internal/model"

// Category is the kind of object a summary vector describes.
type Category = model.Category

const (
	Invalid            = model.Invalid
	Field              = model.Field
	WellGroup          = model.WellGroup
	Well               = model.Well
	WellCompletion     = model.WellCompletion
	Region             = model.Region
	RegionToRegion     = model.RegionToRegion
	Block              = model.Block
	WellSegment        = model.WellSegment
	Aquifer            = model.Aquifer
	Network            = model.Network
	Misc               = model.Misc
	BlockLgr           = model.BlockLgr
	WellLgr            = model.WellLgr
	WellCompletionLgr  = model.WellCompletionLgr
	Imported           = model.Imported
	EnsembleStatistics = model.EnsembleStatistics
)

// ErrUnknownCategory is returned by ParseCategory for unrecognised names.
var ErrUnknownCategory = model.ErrUnknownCategory

// ParseCategory accepts a canonical name ("region_to_region"), a legacy key
// ("SUMMARY_REGION_2_REGION") or display text ("Region-Region").
func ParseCategory(s string) (Category, error) {
	return model.ParseCategory(s)
}

// CategoryInfo describes one category and its names.
type CategoryInfo struct {
	Category Category `json:"category" yaml:"category"`
	Key      string   `json:"key" yaml:"key"`
	UIText   string   `json:"ui_text" yaml:"ui_text"`
	Vectors  int      `json:"vectors" yaml:"vectors"` // dictionary entries in this category
}

// Categories lists every valid category in declaration order.
func Categories() []CategoryInfo {
	return defaultInstance().Categories()
}

// Categories lists every valid category with its dictionary entry count.
func (v *Vecname) Categories() []CategoryInfo {
	all := model.AllCategories()
	out := make([]CategoryInfo, len(all))
	for i, c := range all {
		out[i] = CategoryInfo{
			Category: c,
			Key:      c.Key(),
			UIText:   c.UIText(),
			Vectors:  len(v.engine.Dictionary().ByCategory(c)),
		}
	}
	return out
}
