package model

// VectorDescriptor is the dictionary payload for one mnemonic.
type VectorDescriptor struct {
	Category Category `json:"category" yaml:"category"`
	LongName string   `json:"long_name,omitempty" yaml:"long_name,omitempty"` // may be empty for undocumented mnemonics
}

// Valid reports whether the descriptor carries a real category. The zero
// descriptor is the "not found" sentinel.
func (d VectorDescriptor) Valid() bool {
	return d.Category != Invalid
}

// Classification is the engine's output record for one vector name.
type Classification struct {
	Vector   string   `json:"vector" yaml:"vector"`
	Category Category `json:"category" yaml:"category"`
	LongName string   `json:"long_name,omitempty" yaml:"long_name,omitempty"`
	Rule     string   `json:"rule,omitempty" yaml:"rule,omitempty"`           // decision step that produced Category
	BaseName string   `json:"base_name,omitempty" yaml:"base_name,omitempty"` // stripped name used by the heuristics
	Known    bool     `json:"known" yaml:"known"`                             // the long-name resolver found a descriptor
}
