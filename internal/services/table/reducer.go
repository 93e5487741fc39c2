package table

import (
	"strings"

	"github.com/ewhitmore/scorepad-go/internal/model"
	"github.com/ewhitmore/scorepad-go/internal/services/scoring"
)

// scorer is stateless; the reducer shares one instance
var scorer = scoring.New()

// Apply is the pure state-transition function for a table session. It never
// mutates its input: on success it returns a new snapshot, on a rejected
// command it returns the original session unchanged alongside the error.
func Apply(s *model.Session, cmd Command) (*model.Session, error) {
	switch c := cmd.(type) {
	case AddPlayer:
		return applyAddPlayer(s, c)
	case RemovePlayer:
		return applyRemovePlayer(s, c)
	case StartGame:
		return applyStartGame(s)
	case SetDie:
		return applySetDie(s, c)
	case ClearDice:
		return applyClearDice(s)
	case SelectCategory:
		return applySelectCategory(s, c)
	case EndGame:
		return applyEndGame(s)
	case ResetGame:
		return applyResetGame(s)
	}
	return s, model.ErrWrongPhase
}

func applyAddPlayer(s *model.Session, cmd AddPlayer) (*model.Session, error) {
	if s.Status != model.SessionStatusSetup {
		return s, model.ErrWrongPhase
	}

	name := strings.TrimSpace(cmd.PlayerName)
	if name == "" {
		return s, model.ErrEmptyName
	}
	for _, p := range s.Players {
		if strings.EqualFold(p.Name, name) {
			return s, model.ErrDuplicateName
		}
	}
	if len(s.Players) >= s.Config.MaxPlayers {
		return s, model.ErrRosterFull
	}

	next := s.Clone()
	next.Players = append(next.Players, model.Player{Index: len(next.Players), Name: name})
	next.Cards = append(next.Cards, model.NewScorecard())
	return next, nil
}

func applyRemovePlayer(s *model.Session, cmd RemovePlayer) (*model.Session, error) {
	if s.Status != model.SessionStatusSetup {
		return s, model.ErrWrongPhase
	}
	if cmd.Index < 0 || cmd.Index >= len(s.Players) {
		return s, model.ErrPlayerNotFound
	}

	next := s.Clone()
	next.Players = append(next.Players[:cmd.Index], next.Players[cmd.Index+1:]...)
	next.Cards = append(next.Cards[:cmd.Index], next.Cards[cmd.Index+1:]...)

	// Re-index remaining players contiguously
	for i := range next.Players {
		next.Players[i].Index = i
	}
	return next, nil
}

func applyStartGame(s *model.Session) (*model.Session, error) {
	if s.Status != model.SessionStatusSetup {
		return s, model.ErrWrongPhase
	}
	if len(s.Players) < model.MinPlayers {
		return s, model.ErrRosterTooSmall
	}

	next := s.Clone()
	next.Status = model.SessionStatusPlaying
	next.CurrentPlayer = 0
	next.Round = 1
	next.Hand = model.Hand{}
	return next, nil
}

func applySetDie(s *model.Session, cmd SetDie) (*model.Session, error) {
	if s.Status != model.SessionStatusPlaying {
		return s, model.ErrWrongPhase
	}
	if !model.ValidDieIndex(cmd.Die) {
		return s, model.ErrInvalidDieIndex
	}
	if !model.ValidDieValue(cmd.Value) {
		return s, model.ErrInvalidDie
	}

	next := s.Clone()
	next.Hand[cmd.Die] = cmd.Value
	return next, nil
}

func applyClearDice(s *model.Session) (*model.Session, error) {
	if s.Status != model.SessionStatusPlaying {
		return s, model.ErrWrongPhase
	}

	next := s.Clone()
	next.Hand = model.Hand{}
	return next, nil
}

func applySelectCategory(s *model.Session, cmd SelectCategory) (*model.Session, error) {
	if s.Status != model.SessionStatusPlaying {
		return s, model.ErrWrongPhase
	}
	if _, err := model.ParseCategory(string(cmd.Category)); err != nil {
		return s, err
	}
	if !s.Hand.IsComplete() {
		return s, model.ErrIncompleteHand
	}
	if s.CurrentCard().IsAssigned(cmd.Category) {
		return s, model.ErrCategoryTaken
	}

	score, err := scorer.Score(s.Hand, cmd.Category)
	if err != nil {
		return s, err
	}

	next := s.Clone()
	card := next.CurrentCard()

	// An additional five-of-a-kind after Yahtzee was scored with 50 accrues
	// the fixed bonus, whatever category it is assigned to
	if scorer.IsYahtzee(next.Hand) && card.Scores[model.CategoryYahtzee] == scoring.YahtzeeScore {
		card.ExtraYahtzees++
	}

	card.Scores[cmd.Category] = score
	next.Hand = model.Hand{}

	if next.AllCardsComplete() {
		finish(next)
		return next, nil
	}

	// Advance round-robin; a wrap past the last player starts the next round
	next.CurrentPlayer++
	if next.CurrentPlayer >= len(next.Players) {
		next.CurrentPlayer = 0
		next.Round++
	}
	return next, nil
}

func applyEndGame(s *model.Session) (*model.Session, error) {
	if s.Status != model.SessionStatusPlaying {
		return s, model.ErrWrongPhase
	}

	next := s.Clone()
	finish(next)
	return next, nil
}

func applyResetGame(s *model.Session) (*model.Session, error) {
	if s.Status != model.SessionStatusFinished {
		return s, model.ErrWrongPhase
	}

	next := s.Clone()
	next.Status = model.SessionStatusSetup
	next.CurrentPlayer = 0
	next.Round = 0
	next.Hand = model.Hand{}
	next.FinalScores = nil
	next.Winners = nil

	if next.Config.KeepRoster {
		// Retain names for a rematch, with fresh scorecards
		for i := range next.Cards {
			next.Cards[i] = model.NewScorecard()
		}
	} else {
		next.Players = nil
		next.Cards = nil
	}
	return next, nil
}

// finish moves the session to finished and freezes the final standings.
// Unassigned categories simply contribute nothing.
func finish(s *model.Session) {
	s.Status = model.SessionStatusFinished
	s.Hand = model.Hand{}
	s.FinalScores = scorer.FinalScores(s)
	s.Winners = scorer.Winners(s.FinalScores)
}
