package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crimson-sun/vecname/internal/model"
)

func TestOPMCategory(t *testing.T) {
	tests := []struct {
		name string
		want model.Category
	}{
		{"NEWTON", model.Misc},
		{"ELAPSED", model.Misc},
		{"TCPU", model.Misc},
		{"AAQP", model.Aquifer},
		{"ANQR", model.Aquifer},
		{"AAQ", model.Invalid},
		{"GPR", model.Network},
		{"GPRW", model.Network},
		{"COPRL", model.WellCompletion},
		{"CUOPL", model.Invalid},
		{"COPRLX", model.Invalid},
		{"WOPRL", model.WellCompletion},
		{"WPIL", model.Invalid},
		{"WMCTL", model.Invalid},
		{"WUABL", model.Invalid},
		{"WOPR", model.Invalid},
		{"LBPR", model.Invalid},
		{"ROFT", model.Invalid},
		{"", model.Invalid},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OPM.CategoryFromKeyword(tt.name), tt.name)
	}
}

func TestNoopRecognisesNothing(t *testing.T) {
	for _, name := range []string{"NEWTON", "WOPR", "AAQP", ""} {
		assert.Equal(t, model.Invalid, Noop.CategoryFromKeyword(name))
	}
}

func TestResolverFunc(t *testing.T) {
	var seen []string
	r := ResolverFunc(func(name string) model.Category {
		seen = append(seen, name)
		return model.Imported
	})

	assert.Equal(t, model.Imported, r.CategoryFromKeyword("XYZ"))
	assert.Equal(t, []string{"XYZ"}, seen)
}

func TestIsUserDefined(t *testing.T) {
	assert.True(t, isUserDefined("WUOPR"))
	assert.True(t, isUserDefined("FU"))
	assert.False(t, isUserDefined("SUMTHIN"))
	assert.False(t, isUserDefined("XUABC"))
	assert.False(t, isUserDefined("W"))
}
