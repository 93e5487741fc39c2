package model

// Die value bounds; DieUnset marks a die that has not been entered yet
const (
	HandSize = 5
	DieUnset = 0
	DieMin   = 1
	DieMax   = 6
)

// Hand is the five manually-entered die values for the current turn.
// A zero value means that die has not been entered.
type Hand [HandSize]int

// ValidDieIndex returns true if i addresses one of the five dice
func ValidDieIndex(i int) bool {
	return i >= 0 && i < HandSize
}

// ValidDieValue returns true if v is a legal die face
func ValidDieValue(v int) bool {
	return v >= DieMin && v <= DieMax
}

// IsComplete returns true if all five dice have been entered
func (h Hand) IsComplete() bool {
	for _, d := range h {
		if d == DieUnset {
			return false
		}
	}
	return true
}

// Sum returns the total of all entered dice
func (h Hand) Sum() int {
	total := 0
	for _, d := range h {
		total += d
	}
	return total
}

// Counts returns how many dice show each face; index by face value 1..6
func (h Hand) Counts() [DieMax + 1]int {
	var counts [DieMax + 1]int
	for _, d := range h {
		if d != DieUnset {
			counts[d]++
		}
	}
	return counts
}
