package testdata

import (
	_ "embed"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labeled vector name for classification validation.
type CorpusEntry struct {
	Vector           string `json:"vector"`
	ExpectedCategory string `json:"expected_category"`
	ExpectedRule     string `json:"expected_rule"`
	ExpectedLongName string `json:"expected_long_name"`
	Description      string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, errors.Wrap(err, "parse corpus.json")
	}
	return entries, nil
}
