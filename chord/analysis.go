package chord

import (
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/notename"
)

// GetInversionType classifies which chord tone sits in the bass: "root",
// "1st" (third), "2nd" (fifth), "3rd" (seventh) or "other" for a bass that
// is no chord tone of the detected root. "other" is a normal outcome, not
// an error.
func GetInversionType(r model.ChordResult) string {
	if r.RootPitchClass < 0 || r.BassPitchClass < 0 {
		return "other"
	}
	switch (r.BassPitchClass - r.RootPitchClass + 12) % 12 {
	case 0:
		return "root"
	case 3, 4:
		return "1st"
	case 6, 7:
		return "2nd"
	case 10, 11:
		return "3rd"
	default:
		return "other"
	}
}

// GetDetailedAnalysis pairs the decision with its inversion, the sounding
// note names and their offsets from the detected root (ascending by pitch
// class; omitted entirely when no root was detected).
func GetDetailedAnalysis(notes []int, useFlats bool, useSlash bool) model.DetailedAnalysis {
	var da model.DetailedAnalysis
	da.Chord = Analyze(notes, useFlats, useSlash)
	da.InversionType = GetInversionType(da.Chord)

	var present [12]bool
	for _, n := range notes {
		if n >= 0 && n <= 127 {
			present[n%12] = true
		}
	}
	for pc := 0; pc < 12; pc++ {
		if !present[pc] {
			continue
		}
		da.NoteNames = append(da.NoteNames, notename.Get(pc, useFlats))
		if da.Chord.RootPitchClass >= 0 {
			interval := (pc - da.Chord.RootPitchClass + 12) % 12
			da.IntervalsFromRoot = append(da.IntervalsFromRoot, interval)
		}
	}
	return da
}
