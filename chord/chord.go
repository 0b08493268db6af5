package chord

import (
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/notename"
	"github.com/jsphweid/chordex/pattern"
	"github.com/jsphweid/chordex/util"
)

type OnNotes = map[uint8]bool

const (
	// a shape found on the sounding bass outranks the same shape found
	// on any other root
	rootPositionBonus = 30

	// below this the primary pass is considered inconclusive and the
	// slash pass gets a chance to override it
	slashConfidenceFloor = 50

	// resolving the ambiguous shape outranks competing weak matches
	ambiguousBoost = 10
)

// Analyze classifies a set of midi note numbers into a single chord
// decision. Notes outside 0-127 are ignored. The lowest surviving note
// picks the bass; octave doublings and duplicates collapse before
// matching. Every input yields a well-formed result: no notes gives the
// -1/-1 sentinel, a single pitch class names itself, and a set matching
// nothing falls back to naming the bass note.
func Analyze(notes []int, useFlats bool, useSlash bool) model.ChordResult {
	res := model.ChordResult{RootPitchClass: -1, BassPitchClass: -1}

	var present [12]bool
	numClasses := 0
	bassMidi := -1
	for _, n := range notes {
		if n < 0 || n > 127 {
			continue
		}
		if bassMidi == -1 || n < bassMidi {
			bassMidi = n
		}
		if !present[n%12] {
			present[n%12] = true
			numClasses++
		}
	}

	if numClasses == 0 {
		return res
	}

	bass := bassMidi % 12
	res.BassPitchClass = bass
	res.BassNote = notename.Get(bass, useFlats)

	if numClasses == 1 {
		// a unison is not a chord
		res.RootPitchClass = bass
		res.ChordName = res.BassNote
		res.FullName = res.BassNote
		return res
	}

	bestPriority := -1
	for root := 0; root < 12; root++ {
		// only sounding pitch classes are root candidates
		if !present[root] {
			continue
		}
		entry, ok := pattern.Lookup(intervalMask(present, root))
		if !ok {
			continue
		}
		priority := entry.Priority
		if root == bass {
			priority += rootPositionBonus
		}
		if priority > bestPriority {
			isSlash := root != bass && useSlash
			res.RootPitchClass = root
			res.ChordName = notename.Get(root, useFlats) + entry.Name
			res.IsSlash = isSlash
			res.FullName = res.ChordName
			if isSlash {
				res.FullName += "/" + res.BassNote
			}
			bestPriority = priority
		}
	}

	if useSlash && bestPriority < slashConfidenceFloor {
		if slash, ok := analyzeForSlashChord(present, bass, useFlats); ok {
			res = slash
		}
	}

	if res.RootPitchClass == -1 {
		// nothing matched on any root, name the lowest note alone
		res.ChordName = res.BassNote
		res.FullName = res.BassNote
	}

	return res
}

// GetChordName returns just the display name, e.g. "Am7" or "C/E".
func GetChordName(notes []int, useFlats bool, useSlash bool) string {
	return Analyze(notes, useFlats, useSlash).FullName
}

// NoteNums converts a held-note map into plain note numbers.
func NoteNums(on OnNotes) []int {
	var res []int
	for _, note := range util.GetKeys(on) {
		res = append(res, int(note))
	}
	return res
}

// IntNotes widens wire-format notes for the engine.
func IntNotes(notes model.Notes) []int {
	res := make([]int, 0, len(notes))
	for _, n := range notes {
		res = append(res, int(n))
	}
	return res
}

func intervalMask(present [12]bool, root int) uint16 {
	var mask uint16
	for pc := 0; pc < 12; pc++ {
		if present[pc] {
			mask |= 1 << uint((pc-root+12)%12)
		}
	}
	return mask
}

// analyzeForSlashChord retries every sounding root other than the bass,
// judging each candidate on the full note set. It only runs when the
// primary pass came up weak, and its result wins outright when it finds
// anything.
func analyzeForSlashChord(present [12]bool, bass int, useFlats bool) (model.ChordResult, bool) {
	var best model.ChordResult
	bestPriority := -1
	found := false
	bassName := notename.Get(bass, useFlats)

	for root := 0; root < 12; root++ {
		if root == bass || !present[root] {
			continue
		}
		entry, ok := pattern.Lookup(intervalMask(present, root))
		if !ok {
			continue
		}

		if entry.Ambiguous() {
			// root/M2/P4 alone pins down no quality; accept it only when
			// the notes spell a minor third off the next step up, and
			// read them as that minor chord missing its fifth
			second := (root + 2) % 12
			if present[(second+3)%12] && entry.Priority+ambiguousBoost > bestPriority {
				name := notename.Get(second, useFlats) + "m(omit5)"
				best = model.ChordResult{
					FullName:       name + "/" + bassName,
					ChordName:      name,
					BassNote:       bassName,
					IsSlash:        true,
					RootPitchClass: second,
					BassPitchClass: bass,
				}
				bestPriority = entry.Priority + ambiguousBoost
				found = true
			}
			continue
		}

		if entry.Priority > bestPriority {
			name := notename.Get(root, useFlats) + entry.Name
			best = model.ChordResult{
				FullName:       name + "/" + bassName,
				ChordName:      name,
				BassNote:       bassName,
				IsSlash:        true,
				RootPitchClass: root,
				BassPitchClass: bass,
			}
			bestPriority = entry.Priority
			found = true
		}
	}

	return best, found
}
