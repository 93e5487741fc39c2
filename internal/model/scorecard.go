package model

// Scorecard is one player's record of category assignments.
// Presence of a category in Scores means it has been assigned; an assigned
// category is never reassigned or cleared for the rest of the game.
type Scorecard struct {
	Scores map[Category]int `json:"scores"`

	// ExtraYahtzees counts five-of-a-kind hands scored after the Yahtzee
	// category already held 50; each is worth a fixed bonus at totaling time
	ExtraYahtzees int `json:"extra_yahtzees"`
}

// NewScorecard creates an empty scorecard with all categories unassigned
func NewScorecard() Scorecard {
	return Scorecard{Scores: make(map[Category]int)}
}

// IsAssigned returns true if the category already holds a score
func (c *Scorecard) IsAssigned(cat Category) bool {
	_, ok := c.Scores[cat]
	return ok
}

// IsComplete returns true if every category has been assigned
func (c *Scorecard) IsComplete() bool {
	return len(c.Scores) == CategoryCount
}

// UpperTotal sums the assigned upper-section scores (Ones..Sixes)
func (c *Scorecard) UpperTotal() int {
	total := 0
	for cat, score := range c.Scores {
		if cat.IsUpper() {
			total += score
		}
	}
	return total
}

// AssignedTotal sums all assigned category scores, without bonuses
func (c *Scorecard) AssignedTotal() int {
	total := 0
	for _, score := range c.Scores {
		total += score
	}
	return total
}

// Clone returns an independent copy of the scorecard
func (c *Scorecard) Clone() Scorecard {
	scores := make(map[Category]int, len(c.Scores))
	for cat, score := range c.Scores {
		scores[cat] = score
	}
	return Scorecard{Scores: scores, ExtraYahtzees: c.ExtraYahtzees}
}
