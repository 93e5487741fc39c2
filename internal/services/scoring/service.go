package scoring

import (
	"sort"

	"github.com/ewhitmore/scorepad-go/internal/model"
)

// Fixed scores for the combination categories
const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50

	// UpperBonusScore is awarded when the upper section reaches UpperBonusThreshold
	UpperBonusScore     = 35
	UpperBonusThreshold = 63

	// ExtraYahtzeeBonus is awarded per five-of-a-kind scored after the
	// Yahtzee category already holds 50
	ExtraYahtzeeBonus = 100
)

// Service computes category scores for a hand and end-of-game totals.
// All methods are pure; the service carries no state.
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Score computes the score the given category would award for the hand.
// The hand must be fully entered; otherwise ErrIncompleteHand is returned.
func (s *Service) Score(hand model.Hand, category model.Category) (int, error) {
	if !hand.IsComplete() {
		return 0, model.ErrIncompleteHand
	}

	if face := category.Face(); face != 0 {
		return hand.Counts()[face] * face, nil
	}

	switch category {
	case model.CategoryThreeOfAKind:
		return ofAKind(hand, 3), nil
	case model.CategoryFourOfAKind:
		return ofAKind(hand, 4), nil
	case model.CategoryFullHouse:
		return fullHouse(hand), nil
	case model.CategorySmallStraight:
		return smallStraight(hand), nil
	case model.CategoryLargeStraight:
		return largeStraight(hand), nil
	case model.CategoryYahtzee:
		return yahtzee(hand), nil
	case model.CategoryChance:
		return hand.Sum(), nil
	}

	return 0, model.ErrInvalidCategory
}

// IsYahtzee returns true if all five dice show the same face
func (s *Service) IsYahtzee(hand model.Hand) bool {
	return hand.IsComplete() && yahtzee(hand) == YahtzeeScore
}

// UpperBonus returns 35 if the assigned upper-section scores total 63 or
// more, else 0
func (s *Service) UpperBonus(card *model.Scorecard) int {
	if card.UpperTotal() >= UpperBonusThreshold {
		return UpperBonusScore
	}
	return 0
}

// YahtzeeBonus returns the accrued multiple-Yahtzee bonus for the card
func (s *Service) YahtzeeBonus(card *model.Scorecard) int {
	return card.ExtraYahtzees * ExtraYahtzeeBonus
}

// GrandTotal is the sum of all assigned category scores plus bonuses
func (s *Service) GrandTotal(card *model.Scorecard) int {
	return card.AssignedTotal() + s.UpperBonus(card) + s.YahtzeeBonus(card)
}

// FinalScores computes every player's result, sorted by grand total
// descending; equal totals keep ascending player-index order
func (s *Service) FinalScores(session *model.Session) []model.FinalScore {
	scores := make([]model.FinalScore, 0, len(session.Cards))
	for i := range session.Cards {
		card := &session.Cards[i]
		scores = append(scores, model.FinalScore{
			PlayerIndex:  i,
			GrandTotal:   s.GrandTotal(card),
			UpperBonus:   s.UpperBonus(card),
			YahtzeeBonus: s.YahtzeeBonus(card),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].GrandTotal > scores[j].GrandTotal
	})

	return scores
}

// Winners returns the player indexes sharing the top grand total, ascending.
// Ties are not broken; every tied player is a winner.
func (s *Service) Winners(scores []model.FinalScore) []int {
	if len(scores) == 0 {
		return nil
	}

	top := scores[0].GrandTotal
	var winners []int
	for _, fs := range scores {
		if fs.GrandTotal == top {
			winners = append(winners, fs.PlayerIndex)
		}
	}

	sort.Ints(winners)
	return winners
}

// ofAKind scores sum-of-all-dice when at least n dice share a face, else 0
func ofAKind(hand model.Hand, n int) int {
	counts := hand.Counts()
	for face := model.DieMin; face <= model.DieMax; face++ {
		if counts[face] >= n {
			return hand.Sum()
		}
	}
	return 0
}

// fullHouse scores 25 for exactly three of one face and two of another.
// Five of a kind does not qualify.
func fullHouse(hand model.Hand) int {
	counts := hand.Counts()
	hasThree, hasTwo := false, false
	for face := model.DieMin; face <= model.DieMax; face++ {
		switch counts[face] {
		case 3:
			hasThree = true
		case 2:
			hasTwo = true
		}
	}
	if hasThree && hasTwo {
		return FullHouseScore
	}
	return 0
}

var smallStraightWindows = [][]int{
	{1, 2, 3, 4},
	{2, 3, 4, 5},
	{3, 4, 5, 6},
}

func smallStraight(hand model.Hand) int {
	counts := hand.Counts()
	for _, window := range smallStraightWindows {
		match := true
		for _, face := range window {
			if counts[face] == 0 {
				match = false
				break
			}
		}
		if match {
			return SmallStraightScore
		}
	}
	return 0
}

func largeStraight(hand model.Hand) int {
	counts := hand.Counts()
	// Exactly one of each face in a run of five: 1-5 or 2-6
	for _, start := range []int{1, 2} {
		match := true
		for face := start; face < start+5; face++ {
			if counts[face] != 1 {
				match = false
				break
			}
		}
		if match {
			return LargeStraightScore
		}
	}
	return 0
}

func yahtzee(hand model.Hand) int {
	counts := hand.Counts()
	for face := model.DieMin; face <= model.DieMax; face++ {
		if counts[face] == model.HandSize {
			return YahtzeeScore
		}
	}
	return 0
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(hand model.Hand, category model.Category) (int, error)
	IsYahtzee(hand model.Hand) bool
	UpperBonus(card *model.Scorecard) int
	YahtzeeBonus(card *model.Scorecard) int
	GrandTotal(card *model.Scorecard) int
	FinalScores(session *model.Session) []model.FinalScore
	Winners(scores []model.FinalScore) []int
}

var _ ServiceInterface = (*Service)(nil)
