package classifier

import (
	"strings"

	"github.com/crimson-sun/vecname/internal/engine/keyword"
	"github.com/crimson-sun/vecname/internal/model"
)

// Rules name the decision step that produced a classification.
const (
	RuleExact             = "exact"
	RuleRejected          = "rejected"
	RuleCompletionAddress = "completion_address"
	RuleExternal          = "external"
	RuleBaseName          = "base_name"
	RuleFirstLetter       = "first_letter"
	RuleRegionToRegion    = "region_to_region"
	RuleRegion            = "region"
	RuleLgrPrefix         = "lgr_prefix"
	RuleUnknown           = "unknown"
)

// Names shorter or longer than this are rejected unless they are listed in
// the dictionary or carry the difference suffix.
const (
	minNameLength = 3
	maxNameLength = 8
)

// Lookup is the exact-match dictionary the classifier consults.
type Lookup interface {
	Lookup(name string) (model.VectorDescriptor, bool)
}

// Result holds the outcome of classifying a single vector name.
type Result struct {
	Category model.Category
	Rule     string
	BaseName string // set once the heuristics have stripped the name
}

// Classifier assigns a category to arbitrary, possibly malformed vector names.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	dict     Lookup
	keywords keyword.Resolver
}

// New creates a Classifier over dict. A nil resolver disables the external
// keyword step.
func New(dict Lookup, resolver keyword.Resolver) *Classifier {
	if resolver == nil {
		resolver = keyword.Noop
	}
	return &Classifier{dict: dict, keywords: resolver}
}

// IdentifyCategory returns the category of vectorName, or model.Invalid.
func (c *Classifier) IdentifyCategory(vectorName string) model.Category {
	return c.Identify(vectorName).Category
}

// Identify classifies vectorName. The first matching rule wins:
// exact lookup, length guard, completion address, external keyword resolver,
// base-name lookup, first letter, region disambiguation, LGR prefix.
func (c *Classifier) Identify(vectorName string) Result {
	if desc, ok := c.dict.Lookup(vectorName); ok {
		return Result{Category: desc.Category, Rule: RuleExact}
	}

	if (len(vectorName) < minNameLength || len(vectorName) > maxNameLength) && !strings.HasSuffix(vectorName, DiffSuffix) {
		return Result{Category: model.Invalid, Rule: RuleRejected}
	}

	if tokens := strings.Split(vectorName, ":"); len(tokens) == 3 && strings.HasPrefix(tokens[0], "W") {
		return Result{Category: model.WellCompletion, Rule: RuleCompletionAddress}
	}

	if cat := c.keywords.CategoryFromKeyword(vectorName); cat != model.Invalid {
		return Result{Category: cat, Rule: RuleExternal}
	}

	base := BaseVectorName(vectorName)
	if desc, ok := c.dict.Lookup(base); ok {
		return Result{Category: desc.Category, Rule: RuleBaseName, BaseName: base}
	}
	if base == "" {
		return Result{Category: model.Invalid, Rule: RuleUnknown}
	}

	if cat := categoryFromFirstLetter(base[0]); cat != model.Invalid {
		return Result{Category: cat, Rule: RuleFirstLetter, BaseName: base}
	}

	if base[0] == 'R' {
		if IsRegionToRegion(base) {
			return Result{Category: model.RegionToRegion, Rule: RuleRegionToRegion, BaseName: base}
		}
		return Result{Category: model.Region, Rule: RuleRegion, BaseName: base}
	}

	if len(base) >= 2 {
		switch base[:2] {
		case "LB":
			return Result{Category: model.BlockLgr, Rule: RuleLgrPrefix, BaseName: base}
		case "LC":
			return Result{Category: model.WellCompletionLgr, Rule: RuleLgrPrefix, BaseName: base}
		case "LW":
			return Result{Category: model.WellLgr, Rule: RuleLgrPrefix, BaseName: base}
		}
	}

	return Result{Category: model.Invalid, Rule: RuleUnknown, BaseName: base}
}

func categoryFromFirstLetter(b byte) model.Category {
	switch b {
	case 'A':
		return model.Aquifer
	case 'B':
		return model.Block
	case 'F':
		return model.Field
	case 'N':
		return model.Network
	case 'S':
		return model.WellSegment
	case 'W':
		return model.Well
	}
	return model.Invalid
}
