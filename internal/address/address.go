// Package address parses colon-separated summary address text such as
// "WOPR:OP_1", "BPR:10,12,3" or "ERR:ROFT:1-2" into structured addresses.
package address

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/crimson-sun/vecname/internal/engine"
	"github.com/crimson-sun/vecname/internal/engine/classifier"
	"github.com/crimson-sun/vecname/internal/model"
)

// ErrInvalidAddress is returned when the tokens after the vector name do not
// fit the vector's category.
var ErrInvalidAddress = errors.New("invalid summary address")

const errorResultPrefix = "ERR"

// Cell is a one-based grid cell position.
type Cell struct {
	I int `json:"i" yaml:"i"`
	J int `json:"j" yaml:"j"`
	K int `json:"k" yaml:"k"`
}

func (c Cell) String() string {
	return strconv.Itoa(c.I) + "," + strconv.Itoa(c.J) + "," + strconv.Itoa(c.K)
}

// Address is a parsed summary address. Only the fields relevant to Category
// are set.
type Address struct {
	Vector      string         `json:"vector" yaml:"vector"`
	Category    model.Category `json:"category" yaml:"category"`
	ErrorResult bool           `json:"error_result,omitempty" yaml:"error_result,omitempty"`
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"` // well, group or network
	LGR         string         `json:"lgr,omitempty" yaml:"lgr,omitempty"`
	Aquifer     int            `json:"aquifer,omitempty" yaml:"aquifer,omitempty"`
	Region      int            `json:"region,omitempty" yaml:"region,omitempty"`
	Region2     int            `json:"region2,omitempty" yaml:"region2,omitempty"`
	Segment     int            `json:"segment,omitempty" yaml:"segment,omitempty"`
	Cell        *Cell          `json:"cell,omitempty" yaml:"cell,omitempty"`
}

// Categorizer assigns a category to a bare vector name.
type Categorizer interface {
	IdentifyCategory(vectorName string) model.Category
}

// Parser turns address text into Addresses using a Categorizer.
type Parser struct {
	categorizer Categorizer
}

// NewParser creates a Parser. A nil categorizer uses the default engine.
func NewParser(c Categorizer) *Parser {
	if c == nil {
		c = engine.Default()
	}
	return &Parser{categorizer: c}
}

// Parse parses text with the default engine.
func Parse(text string) (Address, error) {
	return NewParser(nil).Parse(text)
}

// Parse parses text of the form [ER|ERR|ERROR:]VECTOR[:TOKEN...].
// A vector the categorizer cannot place yields an Imported address holding
// the text without its error prefix.
func (p *Parser) Parse(text string) (Address, error) {
	tokens := strings.Split(text, ":")

	isError := false
	if len(tokens) > 1 {
		switch strings.ToUpper(strings.TrimSpace(tokens[0])) {
		case "ER", "ERR", "ERROR":
			isError = true
			tokens = tokens[1:]
		}
	}

	addr, err := p.fromTokens(tokens)
	if err != nil {
		return Address{}, errors.Wrapf(err, "parse %q", text)
	}
	if addr.Category == model.Invalid {
		addr = Address{Vector: strings.Join(tokens, ":"), Category: model.Imported}
	}
	addr.ErrorResult = isError
	return addr, nil
}

func (p *Parser) fromTokens(tokens []string) (Address, error) {
	vector := strings.TrimSpace(tokens[0])
	if vector == "" {
		return Address{}, errors.Wrap(ErrInvalidAddress, "empty vector name")
	}
	token := func(i int) string {
		if i < len(tokens) {
			return strings.TrimSpace(tokens[i])
		}
		return ""
	}

	addr := Address{Vector: vector, Category: p.categorizer.IdentifyCategory(vector)}

	switch addr.Category {
	case model.Field, model.Misc:
		// no identifiers

	case model.Aquifer:
		n, err := number(token(1), "aquifer number")
		if err != nil {
			return Address{}, err
		}
		addr.Aquifer = n

	case model.Network:
		addr.Name = token(1)

	case model.Region:
		n, err := number(token(1), "region number")
		if err != nil {
			return Address{}, err
		}
		addr.Region = n

	case model.RegionToRegion:
		r1, r2, err := regionPair(token(1))
		if err != nil {
			return Address{}, err
		}
		addr.Region, addr.Region2 = r1, r2

	case model.WellGroup, model.Well:
		if addr.Name = token(1); addr.Name == "" {
			return Address{}, missing(addr.Category, "name")
		}

	case model.WellCompletion:
		if addr.Name = token(1); addr.Name == "" {
			return Address{}, missing(addr.Category, "well name")
		}
		cell, err := parseCell(token(2))
		if err != nil {
			return Address{}, err
		}
		addr.Cell = &cell

	case model.WellLgr:
		addr.LGR, addr.Name = token(1), token(2)
		if addr.LGR == "" || addr.Name == "" {
			return Address{}, missing(addr.Category, "lgr and well name")
		}

	case model.WellCompletionLgr:
		addr.LGR, addr.Name = token(1), token(2)
		if addr.LGR == "" || addr.Name == "" {
			return Address{}, missing(addr.Category, "lgr and well name")
		}
		cell, err := parseCell(token(3))
		if err != nil {
			return Address{}, err
		}
		addr.Cell = &cell

	case model.WellSegment:
		if addr.Name = token(1); addr.Name == "" {
			return Address{}, missing(addr.Category, "well name")
		}
		n, err := number(token(2), "segment number")
		if err != nil {
			return Address{}, err
		}
		addr.Segment = n

	case model.Block:
		cell, err := parseCell(token(1))
		if err != nil {
			return Address{}, err
		}
		addr.Cell = &cell

	case model.BlockLgr:
		if addr.LGR = token(1); addr.LGR == "" {
			return Address{}, missing(addr.Category, "lgr name")
		}
		cell, err := parseCell(token(2))
		if err != nil {
			return Address{}, err
		}
		addr.Cell = &cell

	default:
		return Address{}, nil
	}

	return addr, nil
}

func missing(c model.Category, what string) error {
	return errors.Wrapf(ErrInvalidAddress, "%s address needs %s", c, what)
}

func number(s, what string) (int, error) {
	if s == "" {
		return 0, errors.Wrapf(ErrInvalidAddress, "missing %s", what)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAddress, "%s %q is not an integer", what, s)
	}
	return n, nil
}

func regionPair(s string) (int, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, errors.Wrapf(ErrInvalidAddress, "region pair %q is not R1-R2", s)
	}
	r1, err := number(strings.TrimSpace(parts[0]), "first region")
	if err != nil {
		return 0, 0, err
	}
	r2, err := number(strings.TrimSpace(parts[1]), "second region")
	if err != nil {
		return 0, 0, err
	}
	return r1, r2, nil
}

func parseCell(s string) (Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Cell{}, errors.Wrapf(ErrInvalidAddress, "cell %q is not I,J,K", s)
	}
	var ijk [3]int
	for i, part := range parts {
		n, err := number(strings.TrimSpace(part), "cell index")
		if err != nil {
			return Cell{}, err
		}
		ijk[i] = n
	}
	return Cell{I: ijk[0], J: ijk[1], K: ijk[2]}, nil
}

// String renders the canonical text form of the address.
func (a Address) String() string {
	var b strings.Builder
	if a.ErrorResult {
		b.WriteString(errorResultPrefix + ":")
	}
	b.WriteString(a.Vector)
	if item := a.itemText(); item != "" {
		b.WriteString(":" + item)
	}
	return b.String()
}

func (a Address) itemText() string {
	cell := ""
	if a.Cell != nil {
		cell = a.Cell.String()
	}

	switch a.Category {
	case model.Aquifer:
		return strconv.Itoa(a.Aquifer)
	case model.Region:
		return strconv.Itoa(a.Region)
	case model.RegionToRegion:
		return strconv.Itoa(a.Region) + "-" + strconv.Itoa(a.Region2)
	case model.WellGroup, model.Well, model.Network:
		return a.Name
	case model.WellCompletion:
		return a.Name + ":" + cell
	case model.WellLgr:
		return a.LGR + ":" + a.Name
	case model.WellCompletionLgr:
		return a.LGR + ":" + a.Name + ":" + cell
	case model.WellSegment:
		return a.Name + ":" + strconv.Itoa(a.Segment)
	case model.Block:
		return cell
	case model.BlockLgr:
		return a.LGR + ":" + cell
	}
	return ""
}

// IsHistoryVector reports whether the address holds observed history data.
func (a Address) IsHistoryVector() bool {
	return IsHistoryVector(a.Vector)
}

// HasAccumulatedData reports whether the address holds a cumulative total.
// Imported and invalid addresses never do.
func (a Address) HasAccumulatedData() bool {
	if a.Category == model.Invalid || a.Category == model.Imported {
		return false
	}
	return HasAccumulatedData(a.Vector)
}

// IsHistoryVector reports whether vectorName names a history vector.
func IsHistoryVector(vectorName string) bool {
	return strings.HasSuffix(vectorName, "H")
}

// HasAccumulatedData reports whether vectorName names a cumulative total
// ("...T" or "...TH"). Water cut (WCT, WCTH) is a ratio, not a total.
func HasAccumulatedData(vectorName string) bool {
	base := classifier.BaseVectorName(vectorName)
	if strings.HasSuffix(base, "WCT") || strings.HasSuffix(base, "WCTH") {
		return false
	}
	return strings.HasSuffix(base, "T") || strings.HasSuffix(base, "TH")
}
