package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/ewhitmore/scorepad-go/internal/dependencies/clock"
	"github.com/ewhitmore/scorepad-go/internal/model"
)

// Broadcaster publishes table events to connected SSE clients as JSON
type Broadcaster struct {
	hubManager *HubManager
	clock      clock.Clock
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, clk clock.Clock, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		clock:      clk,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// publish marshals and broadcasts an event to the table's hub, if any
// clients are watching
func (b *Broadcaster) publish(table model.TableCode, eventType model.EventType, payload any) {
	hub := b.hubManager.GetHub(table)
	if hub == nil {
		return
	}

	event := model.Event{
		Type:      eventType,
		Timestamp: b.clock.Now(),
		Table:     table,
		Payload:   payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("sse failed to marshal event",
			slog.String("table", string(table)),
			slog.String("event", string(eventType)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(eventType), string(data))
}

// PlayerAdded broadcasts that a player joined the roster
func (b *Broadcaster) PlayerAdded(table model.TableCode, player model.Player) {
	b.publish(table, model.EventPlayerAdded, model.PlayerAddedPayload{Player: player})
}

// PlayerRemoved broadcasts that a player left the roster
func (b *Broadcaster) PlayerRemoved(table model.TableCode, index int, name string) {
	b.publish(table, model.EventPlayerRemoved, model.PlayerRemovedPayload{PlayerIndex: index, Name: name})
}

// GameStarted broadcasts that play has begun
func (b *Broadcaster) GameStarted(table model.TableCode, players []model.Player) {
	b.publish(table, model.EventGameStarted, model.GameStartedPayload{Players: players})
}

// DieSet broadcasts a die value entry
func (b *Broadcaster) DieSet(table model.TableCode, die, value int) {
	b.publish(table, model.EventDieSet, model.DieSetPayload{Die: die, Value: value})
}

// DiceCleared broadcasts that the working hand was cleared
func (b *Broadcaster) DiceCleared(table model.TableCode) {
	b.publish(table, model.EventDiceCleared, nil)
}

// CategoryScored broadcasts a scored category
func (b *Broadcaster) CategoryScored(table model.TableCode, playerIndex int, category model.Category, score int) {
	b.publish(table, model.EventCategoryScored, model.CategoryScoredPayload{
		PlayerIndex: playerIndex,
		Category:    category,
		Score:       score,
	})
}

// TurnAdvanced broadcasts that the turn moved to the next player
func (b *Broadcaster) TurnAdvanced(table model.TableCode, nextPlayer, round int) {
	b.publish(table, model.EventTurnAdvanced, model.TurnAdvancedPayload{NextPlayer: nextPlayer, Round: round})
}

// GameFinished broadcasts the final standings
func (b *Broadcaster) GameFinished(table model.TableCode, finalScores []model.FinalScore, winners []int) {
	b.publish(table, model.EventGameFinished, model.GameFinishedPayload{FinalScores: finalScores, Winners: winners})
}

// TableReset broadcasts that the table was reset for a rematch
func (b *Broadcaster) TableReset(table model.TableCode) {
	b.publish(table, model.EventTableReset, nil)
}
