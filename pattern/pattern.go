package pattern

// Entry is one recognized chord shape. Mask is a 12-bit field where bit N
// means a note N semitones above the root is sounding. When the same note
// set fits more than one shape, the higher Priority wins.
type Entry struct {
	Mask     uint16
	Name     string
	Priority int
}

// root + major second + perfect fourth. This shape pins down no chord
// quality on its own and is only resolved by the slash-chord pass.
const ambiguousMask uint16 = 1<<0 | 1<<2 | 1<<5

// Ambiguous reports whether the entry is the underdetermined
// root/M2/P4 shape.
func (e Entry) Ambiguous() bool {
	return e.Mask == ambiguousMask
}

func mask(semitones ...uint) uint16 {
	var m uint16
	for _, s := range semitones {
		m |= 1 << s
	}
	return m
}

// More specific shapes carry higher priority so that e.g. a full 9th beats
// the triad embedded in it. Only the relative ordering matters.
var table = []Entry{
	// 11th chords
	{mask(0, 2, 4, 5, 7, 10), "11", 100},
	{mask(0, 2, 4, 5, 7, 11), "maj11", 100},
	{mask(0, 2, 3, 5, 7, 10), "m11", 100},

	// 11th chords without a fifth
	{mask(0, 2, 4, 5, 10), "11(omit5)", 95},
	{mask(0, 2, 4, 5, 11), "maj11(omit5)", 95},
	{mask(0, 2, 3, 5, 10), "m11(omit5)", 95},

	// 9th chords
	{mask(0, 2, 4, 7, 10), "9", 90},
	{mask(0, 2, 4, 7, 11), "maj9", 90},
	{mask(0, 2, 3, 7, 10), "m9", 90},
	{mask(0, 2, 3, 7, 11), "mM9", 90},

	// 9th chords without a fifth
	{mask(0, 2, 4, 10), "9(omit5)", 85},
	{mask(0, 2, 4, 11), "maj9(omit5)", 85},
	{mask(0, 2, 3, 10), "m9(omit5)", 85},

	// 7th chords
	{mask(0, 4, 7, 10), "7", 80},
	{mask(0, 4, 7, 11), "maj7", 80},
	{mask(0, 3, 7, 10), "m7", 80},
	{mask(0, 3, 7, 11), "mM7", 80},
	{mask(0, 4, 6, 10), "7b5", 75},
	{mask(0, 3, 6, 10), "m7b5", 75},
	{mask(0, 3, 6, 9), "o7", 75},
	{mask(0, 5, 7, 10), "7sus4", 70},
	{mask(0, 2, 7, 10), "7sus2", 70},

	// 7th chords without a fifth
	{mask(0, 4, 10), "7(omit5)", 72},
	{mask(0, 4, 11), "maj7(omit5)", 72},
	{mask(0, 3, 10), "m7(omit5)", 72},
	{mask(0, 3, 11), "mM7(omit5)", 72},

	// 6th chords
	{mask(0, 4, 7, 9), "6", 78},
	{mask(0, 3, 7, 9), "m6", 78},
	{mask(0, 4, 9), "6(omit5)", 45},
	{mask(0, 3, 9), "m6(omit5)", 45},

	// added 11ths
	{mask(0, 4, 5, 7), "add11", 65},
	{mask(0, 3, 5, 7), "madd11", 65},
	{mask(0, 4, 5), "add11(omit5)", 68},
	{mask(0, 3, 5), "madd11(omit5)", 68},

	// added 9ths
	{mask(0, 2, 4, 7), "add9", 60},
	{mask(0, 2, 3, 7), "madd9", 60},
	{mask(0, 2, 4), "add9(omit5)", 58},
	{mask(0, 2, 3), "madd9(omit5)", 58},

	// triads
	{mask(0, 4, 7), "", 60},
	{mask(0, 3, 7), "m", 60},
	{mask(0, 4, 8), "+", 45},
	{mask(0, 3, 6), "o", 45},

	// suspended
	{mask(0, 2, 7), "sus2", 40},
	{mask(0, 5, 7), "sus4", 40},
	{mask(0, 2, 5), "sus2sus4", 30},

	// power chords and bare dyads
	{mask(0, 7), "5", 30},
	{mask(0, 5), "sus4(omit5)", 25},
	{mask(0, 2), "sus2(omit5)", 25},
	{mask(0, 4), "", 20},
	{mask(0, 3), "m", 20},
}

var byMask map[uint16]Entry

func init() {
	byMask = make(map[uint16]Entry, len(table))
	for _, e := range table {
		// the table is a partial function mask -> entry; if two entries
		// ever collide, the earlier one wins
		if _, ok := byMask[e.Mask]; ok {
			continue
		}
		byMask[e.Mask] = e
	}
}

// Lookup finds the entry exactly matching mask, if any. Subsets and
// supersets of a shape never match.
func Lookup(mask uint16) (Entry, bool) {
	e, ok := byMask[mask]
	return e, ok
}

// All returns the table in declaration order.
func All() []Entry {
	return table
}
