package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ewhitmore/scorepad-go/internal/api/request"
	"github.com/ewhitmore/scorepad-go/internal/api/response"
	"github.com/ewhitmore/scorepad-go/internal/api/sse"
	"github.com/ewhitmore/scorepad-go/internal/model"
	"github.com/ewhitmore/scorepad-go/internal/services/table"
)

// GameHandler handles in-game command endpoints
type GameHandler struct {
	tables      *table.Controller
	hubManager  *sse.HubManager
	broadcaster *sse.Broadcaster
}

// NewGameHandler creates a new game handler
func NewGameHandler(tables *table.Controller, hubManager *sse.HubManager, broadcaster *sse.Broadcaster) *GameHandler {
	return &GameHandler{
		tables:      tables,
		hubManager:  hubManager,
		broadcaster: broadcaster,
	}
}

// Start handles POST /api/v1/tables/{code}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	code := model.TableCode(mux.Vars(r)["code"])

	session, err := h.tables.StartGame(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.GameStarted(code, session.Players)

	response.JSON(w, http.StatusOK, response.TableFromModel(session))
}

// SetDie handles PUT /api/v1/tables/{code}/dice/{die}
func (h *GameHandler) SetDie(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := model.TableCode(vars["code"])

	die, err := strconv.Atoi(vars["die"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("die index must be an integer"))
		return
	}

	var req request.SetDieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.tables.SetDie(r.Context(), code, die, req.Value)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.DieSet(code, die, req.Value)

	response.JSON(w, http.StatusOK, response.TableFromModel(session))
}

// ClearDice handles DELETE /api/v1/tables/{code}/dice
func (h *GameHandler) ClearDice(w http.ResponseWriter, r *http.Request) {
	code := model.TableCode(mux.Vars(r)["code"])

	session, err := h.tables.ClearDice(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.DiceCleared(code)

	response.JSON(w, http.StatusOK, response.TableFromModel(session))
}

// Score handles POST /api/v1/tables/{code}/score
func (h *GameHandler) Score(w http.ResponseWriter, r *http.Request) {
	code := model.TableCode(mux.Vars(r)["code"])

	var req request.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	category, err := model.ParseCategory(req.Category)
	if err != nil {
		WriteError(w, err)
		return
	}

	// The turn advances on success, so capture whose hand this is first
	before, err := h.tables.GetTable(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}
	scorer := before.CurrentPlayer

	session, err := h.tables.SelectCategory(r.Context(), code, category)
	if err != nil {
		WriteError(w, err)
		return
	}

	if scorer >= 0 && scorer < len(session.Cards) {
		h.broadcaster.CategoryScored(code, scorer, category, session.Cards[scorer].Scores[category])
	}
	if session.Status == model.SessionStatusFinished {
		h.broadcaster.GameFinished(code, session.FinalScores, session.Winners)
	} else {
		h.broadcaster.TurnAdvanced(code, session.CurrentPlayer, session.Round)
	}

	response.JSON(w, http.StatusOK, response.TableFromModel(session))
}

// End handles POST /api/v1/tables/{code}/end
func (h *GameHandler) End(w http.ResponseWriter, r *http.Request) {
	code := model.TableCode(mux.Vars(r)["code"])

	session, err := h.tables.EndGame(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.GameFinished(code, session.FinalScores, session.Winners)

	response.JSON(w, http.StatusOK, response.TableFromModel(session))
}

// Reset handles POST /api/v1/tables/{code}/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	code := model.TableCode(mux.Vars(r)["code"])

	session, err := h.tables.ResetGame(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.TableReset(code)

	response.JSON(w, http.StatusOK, response.TableFromModel(session))
}

// Events handles GET /api/v1/tables/{code}/events
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	code := model.TableCode(mux.Vars(r)["code"])

	// Reject streams for tables that don't exist
	if _, err := h.tables.GetTable(r.Context(), code); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(code)
	sse.ServeSSE(w, r, hub)
}
