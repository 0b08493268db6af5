package notename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharpAndFlatNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", Get(0, false))
	assert.Equal("C", Get(0, true))
	assert.Equal("C#", Get(1, false))
	assert.Equal("Db", Get(1, true))
	assert.Equal("F#", Get(6, false))
	assert.Equal("Gb", Get(6, true))
	assert.Equal("A#", Get(10, false))
	assert.Equal("Bb", Get(10, true))
	assert.Equal("B", Get(11, false))
	assert.Equal("B", Get(11, true))
}
