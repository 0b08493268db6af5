package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/chordex/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// smf can panic on malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("Error reading midi file... %s", err.Error())
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("Error parsing midi file... %s", err.Error())
	}

	return res, nil
}

// GetNoteSets reduces a midi file's NoteOn/NoteOff events into the
// sequence of note sets held over time, ordered by offset. One set is
// emitted per timestamp once all events at that timestamp have settled.
func GetNoteSets(s *smf.SMF) []model.NoteSet {
	return buildNoteSets(reduceTracks(s))
}

func reduceTracks(s *smf.SMF) []model.ReducedEvent {
	var events []model.ReducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: false,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}
	return events
}

func buildNoteSets(events []model.ReducedEvent) []model.NoteSet {
	// smaller offsets first, note offs before note ons at the same offset
	sort.Slice(events, func(i, j int) bool {
		if events[i].Offset != events[j].Offset {
			return events[i].Offset < events[j].Offset
		}
		return events[i].IsNoteOff
	})

	var res []model.NoteSet
	pressed := make(map[uint8]bool)
	for i, evt := range events {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}

		// wait for the last event at this offset
		if i+1 < len(events) && events[i+1].Offset == evt.Offset {
			continue
		}
		if len(pressed) == 0 {
			continue
		}

		notes := make(model.Notes, 0, len(pressed))
		for note := range pressed {
			notes = append(notes, note)
		}
		sort.Slice(notes, func(i, j int) bool {
			return notes[i] < notes[j]
		})

		// millis is accurate enough here and half the bytes
		res = append(res, model.NoteSet{
			OffsetMs: uint32(evt.Offset / 1000),
			Notes:    notes,
		})
	}
	return res
}
