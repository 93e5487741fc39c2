package model

// Category is one of the 13 fixed scoring slots on a scorecard
type Category string

const (
	CategoryOnes          Category = "ones"
	CategoryTwos          Category = "twos"
	CategoryThrees        Category = "threes"
	CategoryFours         Category = "fours"
	CategoryFives         Category = "fives"
	CategorySixes         Category = "sixes"
	CategoryThreeOfAKind  Category = "three_of_a_kind"
	CategoryFourOfAKind   Category = "four_of_a_kind"
	CategoryFullHouse     Category = "full_house"
	CategorySmallStraight Category = "small_straight"
	CategoryLargeStraight Category = "large_straight"
	CategoryYahtzee       Category = "yahtzee"
	CategoryChance        Category = "chance"
)

// categories in scorecard order; also defines the number of rounds in a game
var allCategories = []Category{
	CategoryOnes,
	CategoryTwos,
	CategoryThrees,
	CategoryFours,
	CategoryFives,
	CategorySixes,
	CategoryThreeOfAKind,
	CategoryFourOfAKind,
	CategoryFullHouse,
	CategorySmallStraight,
	CategoryLargeStraight,
	CategoryYahtzee,
	CategoryChance,
}

// Categories returns all categories in scorecard order
func Categories() []Category {
	result := make([]Category, len(allCategories))
	copy(result, allCategories)
	return result
}

// CategoryCount is the number of scoring categories (= rounds in a full game)
const CategoryCount = 13

// ParseCategory converts a string to a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	for _, known := range allCategories {
		if c == known {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// IsUpper returns true for the upper-section categories (Ones..Sixes)
func (c Category) IsUpper() bool {
	return c.Face() != 0
}

// Face returns the die face an upper-section category counts, or 0
func (c Category) Face() int {
	switch c {
	case CategoryOnes:
		return 1
	case CategoryTwos:
		return 2
	case CategoryThrees:
		return 3
	case CategoryFours:
		return 4
	case CategoryFives:
		return 5
	case CategorySixes:
		return 6
	}
	return 0
}
