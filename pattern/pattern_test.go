package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoDuplicateMasks(t *testing.T) {
	seen := make(map[uint16]string)

	assert := assert.New(t)
	for _, e := range All() {
		prev, ok := seen[e.Mask]
		assert.Equal(false, ok, "mask %012b held by %q and %q", e.Mask, prev, e.Name)
		seen[e.Mask] = e.Name
	}
}

func TestLookupIsExact(t *testing.T) {
	assert := assert.New(t)

	major, ok := Lookup(mask(0, 4, 7))
	assert.Equal(true, ok)
	assert.Equal("", major.Name)

	seventh, ok := Lookup(mask(0, 4, 7, 10))
	assert.Equal(true, ok)
	assert.Equal("7", seventh.Name)

	// neither subsets nor supersets of a shape match
	_, ok = Lookup(mask(0, 1))
	assert.Equal(false, ok)
	_, ok = Lookup(mask(0, 1, 4, 7))
	assert.Equal(false, ok)
}

func TestSpecificShapesOutrankSimplerOnes(t *testing.T) {
	eleventh, _ := Lookup(mask(0, 2, 4, 5, 7, 10))
	ninth, _ := Lookup(mask(0, 2, 4, 7, 10))
	seventh, _ := Lookup(mask(0, 4, 7, 10))
	triad, _ := Lookup(mask(0, 4, 7))
	power, _ := Lookup(mask(0, 7))
	dyad, _ := Lookup(mask(0, 4))

	assert := assert.New(t)
	assert.Greater(eleventh.Priority, ninth.Priority)
	assert.Greater(ninth.Priority, seventh.Priority)
	assert.Greater(seventh.Priority, triad.Priority)
	assert.Greater(triad.Priority, power.Priority)
	assert.Greater(power.Priority, dyad.Priority)
}

func TestAmbiguousShape(t *testing.T) {
	assert := assert.New(t)

	e, ok := Lookup(mask(0, 2, 5))
	assert.Equal(true, ok)
	assert.Equal(true, e.Ambiguous())

	triad, _ := Lookup(mask(0, 4, 7))
	assert.Equal(false, triad.Ambiguous())
}
