package model

type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}

// NoteSet is the set of notes held at some point in a midi file.
type NoteSet struct {
	OffsetMs uint32
	Notes    Notes
}

type MidiMetadata struct {
	Year    uint
	Artist  string
	Release string
	Title   string
}
