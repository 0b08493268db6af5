package midi

import (
	"testing"

	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildNoteSetsSettlesPerTimestamp(t *testing.T) {
	events := []model.ReducedEvent{
		{Offset: 0, IsNoteOff: false, Note: 60},
		{Offset: 0, IsNoteOff: false, Note: 64},
		{Offset: 0, IsNoteOff: false, Note: 67},
		{Offset: 500000, IsNoteOff: true, Note: 64},
		{Offset: 1000000, IsNoteOff: true, Note: 60},
		{Offset: 1000000, IsNoteOff: true, Note: 67},
		{Offset: 2000000, IsNoteOff: false, Note: 59},
	}

	expected := []model.NoteSet{
		{OffsetMs: 0, Notes: model.Notes{60, 64, 67}},
		{OffsetMs: 500, Notes: model.Notes{60, 67}},
		{OffsetMs: 2000, Notes: model.Notes{59}},
	}

	assert := assert.New(t)
	assert.Equal(expected, buildNoteSets(events))
}

func TestBuildNoteSetsOrdersOffsBeforeOnsAtSameOffset(t *testing.T) {
	// retrigger of the same note at one timestamp must not lose it
	events := []model.ReducedEvent{
		{Offset: 100000, IsNoteOff: false, Note: 60},
		{Offset: 0, IsNoteOff: false, Note: 60},
		{Offset: 100000, IsNoteOff: true, Note: 60},
	}

	expected := []model.NoteSet{
		{OffsetMs: 0, Notes: model.Notes{60}},
		{OffsetMs: 100, Notes: model.Notes{60}},
	}

	assert := assert.New(t)
	assert.Equal(expected, buildNoteSets(events))
}

func TestBuildNoteSetsEmpty(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(buildNoteSets(nil))
}
