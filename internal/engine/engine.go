package engine

import (
	"strings"
	"sync"

	"github.com/crimson-sun/vecname/internal/engine/classifier"
	"github.com/crimson-sun/vecname/internal/engine/dictionary"
	"github.com/crimson-sun/vecname/internal/engine/keyword"
	"github.com/crimson-sun/vecname/internal/model"
)

// differenceLabel is appended to the long name of a "_DIFF" vector.
const differenceLabel = " Difference"

// Engine combines the category classifier and the long-name resolver over a
// single dictionary. It is immutable and safe for concurrent use.
type Engine struct {
	dict       *dictionary.Dictionary
	classifier *classifier.Classifier
}

// New creates an Engine over dict. A nil resolver disables the external
// keyword step of the classifier.
func New(dict *dictionary.Dictionary, resolver keyword.Resolver) *Engine {
	return &Engine{
		dict:       dict,
		classifier: classifier.New(dict, resolver),
	}
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine over the merged dictionary and the
// OPM keyword resolver, built on first use.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New(dictionary.Default(), keyword.OPM)
	})
	return defaultEngine
}

// Dictionary returns the table the engine reads from.
func (e *Engine) Dictionary() *dictionary.Dictionary {
	return e.dict
}

// IdentifyCategory returns the category of vectorName, or model.Invalid.
func (e *Engine) IdentifyCategory(vectorName string) model.Category {
	return e.classifier.IdentifyCategory(vectorName)
}

// QuantityInfo resolves the descriptor for vectorName. With exactMatch set
// only the dictionary is consulted. Otherwise a decorated name falls back to
// its five-character base, and a "_DIFF" name gets " Difference" appended to
// the base long name. User-defined vectors (second character 'U') are never
// resolved through their base.
func (e *Engine) QuantityInfo(vectorName string, exactMatch bool) model.VectorDescriptor {
	if desc, ok := e.dict.Lookup(vectorName); ok {
		return desc
	}
	if exactMatch {
		return model.VectorDescriptor{}
	}
	if len(vectorName) > 1 && vectorName[1] == 'U' {
		return model.VectorDescriptor{}
	}
	if len(vectorName) > 5 {
		postfix := vectorName[len(vectorName)-5:]
		baseName := strings.TrimRight(vectorName[:5], "_")
		if desc, ok := e.dict.Lookup(baseName); ok {
			if postfix == classifier.DiffSuffix {
				desc.LongName += differenceLabel
			}
			return desc
		}
	}
	return model.VectorDescriptor{}
}

// LongNameFromVectorName returns the long name of vectorName. When nothing is
// found it returns vectorName itself if returnNameIfNotFound is set, and ""
// otherwise.
func (e *Engine) LongNameFromVectorName(vectorName string, returnNameIfNotFound bool) string {
	desc := e.QuantityInfo(vectorName, false)
	if !desc.Valid() && returnNameIfNotFound {
		return vectorName
	}
	return desc.LongName
}

// Process classifies vectorName and resolves its long name.
func (e *Engine) Process(vectorName string) model.Classification {
	res := e.classifier.Identify(vectorName)
	desc := e.QuantityInfo(vectorName, false)
	return model.Classification{
		Vector:   vectorName,
		Category: res.Category,
		LongName: desc.LongName,
		Rule:     res.Rule,
		BaseName: res.BaseName,
		Known:    desc.Valid(),
	}
}

// ProcessBatch processes each name in order.
func (e *Engine) ProcessBatch(vectorNames []string) []model.Classification {
	out := make([]model.Classification, 0, len(vectorNames))
	for _, name := range vectorNames {
		out = append(out, e.Process(name))
	}
	return out
}
