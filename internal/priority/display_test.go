package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay_TotalAndDistinct(t *testing.T) {
	labels := make(map[string]Level)
	for _, l := range Levels {
		d := Display(l)
		assert.NotEmpty(t, d.Label)
		assert.NotEmpty(t, d.LabelFr)
		assert.NotEmpty(t, d.Color)
		assert.NotEmpty(t, d.BgColor)
		assert.NotEmpty(t, d.Description)
		assert.NotEmpty(t, d.DescriptionFr)

		prev, dup := labels[d.Label]
		assert.False(t, dup, "label %q used by %d and %d", d.Label, prev, l)
		labels[d.Label] = l
	}
	assert.Len(t, labels, 5)
}

func TestDisplay_Labels(t *testing.T) {
	assert.Equal(t, "Critical", Display(Critical).Label)
	assert.Equal(t, "Critique", Display(Critical).LabelFr)
	assert.Equal(t, "Élevé", Display(High).LabelFr)
	assert.Equal(t, "Minimal", Display(Minimal).Label)
}

func TestDisplay_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, Display(Critical), Display(Level(-1)))
	assert.Equal(t, Display(Minimal), Display(Level(9)))
}

func TestLevel_Strings(t *testing.T) {
	assert.Equal(t, "CRITICAL", Critical.String())
	assert.Equal(t, "MINIMAL", Minimal.String())
	assert.Equal(t, "P3", Low.Code())
	assert.Equal(t, "LEVEL(7)", Level(7).String())
	assert.True(t, Medium.Valid())
	assert.False(t, Level(5).Valid())
}
