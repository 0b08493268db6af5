package model

type Notes = []uint8

// ChordResult is one classification decision. RootPitchClass is -1 when no
// pattern matched for any candidate root.
type ChordResult struct {
	FullName       string `json:"full_name"`
	ChordName      string `json:"chord_name"`
	BassNote       string `json:"bass_note"`
	IsSlash        bool   `json:"is_slash_chord"`
	RootPitchClass int    `json:"root_pitch_class"`
	BassPitchClass int    `json:"bass_pitch_class"`
}

type DetailedAnalysis struct {
	Chord             ChordResult `json:"chord"`
	InversionType     string      `json:"inversion_type"`
	NoteNames         []string    `json:"note_names"`
	IntervalsFromRoot []int       `json:"intervals_from_root"`
}
