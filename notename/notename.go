package notename

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Get returns the display name for a pitch class 0-11.
func Get(pc int, useFlats bool) string {
	if useFlats {
		return flatNames[pc]
	}
	return sharpNames[pc]
}
