package vecname

import (
	"sync"

	"github.com/crimson-sun/vecname/internal/address"
	"github.com/crimson-sun/vecname/internal/engine"
	"github.com/crimson-sun/vecname/internal/engine/dictionary"
	"github.com/crimson-sun/vecname/internal/engine/keyword"
	"github.com/crimson-sun/vecname/internal/model"
)

// Vecname classifies summary vector names against one keyword dictionary.
// Safe for concurrent use.
type Vecname struct {
	engine *engine.Engine
	parser *address.Parser
}

// Classification is the result of describing one vector name.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Classification struct {
	Vector   string   `json:"vector" yaml:"vector"`
	Category Category `json:"category" yaml:"category"`
	LongName string   `json:"long_name,omitempty" yaml:"long_name,omitempty"`
	Rule     string   `json:"rule" yaml:"rule"`                               // decision step that produced Category
	BaseName string   `json:"base_name,omitempty" yaml:"base_name,omitempty"` // stripped name the heuristics used
	Known    bool     `json:"known" yaml:"known"`                             // a long name was found
}

// Entry is one dictionary row.
type Entry struct {
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	LongName string   `json:"long_name,omitempty" yaml:"long_name,omitempty"`
}

// Address is a parsed colon-separated summary address.
type Address = address.Address

// ErrInvalidAddress is returned by ParseAddress for malformed identifiers.
var ErrInvalidAddress = address.ErrInvalidAddress

var defaultInstance = sync.OnceValue(func() *Vecname {
	return newInstance(engine.Default())
})

// New creates an isolated instance. Without options it shares the default
// dictionary and keyword resolver.
func New(opts ...Option) *Vecname {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dict := dictionary.Default()
	if !o.legacyTable {
		dict = dictionary.BuildPrimary()
	}
	var resolver keyword.Resolver
	if o.resolver != nil {
		resolver = o.resolver
	}
	return newInstance(engine.New(dict, resolver))
}

func newInstance(eng *engine.Engine) *Vecname {
	return &Vecname{engine: eng, parser: address.NewParser(eng)}
}

// IdentifyCategory returns the category of vectorName, or Invalid.
func (v *Vecname) IdentifyCategory(vectorName string) Category {
	return v.engine.IdentifyCategory(vectorName)
}

// LongName returns the long name of vectorName. When nothing is found it
// returns vectorName itself if returnNameIfNotFound is set, and "" otherwise.
func (v *Vecname) LongName(vectorName string, returnNameIfNotFound bool) string {
	return v.engine.LongNameFromVectorName(vectorName, returnNameIfNotFound)
}

// Info returns the dictionary descriptor for vectorName. With exactMatch
// unset, decorated and "_DIFF" names resolve through their base name.
// Category is Invalid when nothing matches.
func (v *Vecname) Info(vectorName string, exactMatch bool) Entry {
	desc := v.engine.QuantityInfo(vectorName, exactMatch)
	return Entry{Name: vectorName, Category: desc.Category, LongName: desc.LongName}
}

// Describe classifies vectorName and resolves its long name.
func (v *Vecname) Describe(vectorName string) Classification {
	return classificationFromModel(v.engine.Process(vectorName))
}

// DescribeAll describes each name in order.
func (v *Vecname) DescribeAll(vectorNames []string) []Classification {
	records := v.engine.ProcessBatch(vectorNames)
	out := make([]Classification, len(records))
	for i, c := range records {
		out[i] = classificationFromModel(c)
	}
	return out
}

// ParseAddress parses text of the form [ERR:]VECTOR[:identifiers...].
func (v *Vecname) ParseAddress(text string) (Address, error) {
	return v.parser.Parse(text)
}

// Vectors returns the dictionary entries of category c sorted by name, or
// every entry when c is Invalid.
func (v *Vecname) Vectors(c Category) []Entry {
	dict := v.engine.Dictionary()
	var names []string
	if c == Invalid {
		names = dict.Names()
	} else {
		names = dict.ByCategory(c)
	}
	out := make([]Entry, len(names))
	for i, name := range names {
		desc, _ := dict.Lookup(name)
		out[i] = Entry{Name: name, Category: desc.Category, LongName: desc.LongName}
	}
	return out
}

// IdentifyCategory returns the category of vectorName using the default instance.
func IdentifyCategory(vectorName string) Category {
	return defaultInstance().IdentifyCategory(vectorName)
}

// LongName returns the long name of vectorName using the default instance.
func LongName(vectorName string, returnNameIfNotFound bool) string {
	return defaultInstance().LongName(vectorName, returnNameIfNotFound)
}

// Describe classifies vectorName using the default instance.
func Describe(vectorName string) Classification {
	return defaultInstance().Describe(vectorName)
}

// DescribeAll describes each name using the default instance.
func DescribeAll(vectorNames []string) []Classification {
	return defaultInstance().DescribeAll(vectorNames)
}

// ParseAddress parses an address using the default instance.
func ParseAddress(text string) (Address, error) {
	return defaultInstance().ParseAddress(text)
}

// Vectors lists dictionary entries using the default instance.
func Vectors(c Category) []Entry {
	return defaultInstance().Vectors(c)
}

// classificationFromModel converts the internal record to the public type.
func classificationFromModel(c model.Classification) Classification {
	return Classification{
		Vector:   c.Vector,
		Category: c.Category,
		LongName: c.LongName,
		Rule:     c.Rule,
		BaseName: c.BaseName,
		Known:    c.Known,
	}
}
