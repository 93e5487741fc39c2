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
	"github.com/ewhitmore/scorepad-go/internal/services/access"
	"github.com/ewhitmore/scorepad-go/internal/services/table"
)

// TableHandler handles table lifecycle and roster endpoints
type TableHandler struct {
	tables      *table.Controller
	access      *access.Service
	broadcaster *sse.Broadcaster
}

// NewTableHandler creates a new table handler
func NewTableHandler(tables *table.Controller, accessService *access.Service, broadcaster *sse.Broadcaster) *TableHandler {
	return &TableHandler{
		tables:      tables,
		access:      accessService,
		broadcaster: broadcaster,
	}
}

// Create handles POST /api/v1/tables
func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Allow empty body for default config
		req = request.CreateTableRequest{}
	}

	cfg := model.DefaultTableConfig()
	if req.MaxPlayers > 0 {
		cfg.MaxPlayers = req.MaxPlayers
	}
	if req.KeepRoster != nil {
		cfg.KeepRoster = *req.KeepRoster
	}

	passcodeHash, err := h.access.HashPasscode(req.Passcode)
	if err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.tables.CreateTable(r.Context(), cfg, passcodeHash)
	if err != nil {
		WriteError(w, err)
		return
	}

	// The creator gets a key without re-entering the passcode
	grant := h.access.Issue(session.Code)

	response.JSON(w, http.StatusCreated, response.CreateTableResponse{
		Table:    response.TableFromModel(session),
		TableKey: response.TableKeyFromGrant(grant),
	})
}

// Get handles GET /api/v1/tables/{code}
func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.TableCode(mux.Vars(r)["code"])

	session, err := h.tables.GetTable(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TableFromModel(session))
}

// Claim handles POST /api/v1/tables/{code}/claim
func (h *TableHandler) Claim(w http.ResponseWriter, r *http.Request) {
	code := model.TableCode(mux.Vars(r)["code"])

	var req request.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Open tables accept an empty body
		req = request.ClaimRequest{}
	}

	session, err := h.tables.GetTable(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	grant, err := h.access.Claim(session, req.Passcode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ClaimResponse{
		TableKey: response.TableKeyFromGrant(grant),
	})
}

// AddPlayer handles POST /api/v1/tables/{code}/players
func (h *TableHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	code := model.TableCode(mux.Vars(r)["code"])

	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.tables.AddPlayer(r.Context(), code, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.PlayerAdded(code, session.Players[len(session.Players)-1])

	response.JSON(w, http.StatusCreated, response.TableFromModel(session))
}

// RemovePlayer handles DELETE /api/v1/tables/{code}/players/{index}
func (h *TableHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := model.TableCode(vars["code"])

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("player index must be an integer"))
		return
	}

	// Capture the name before the roster re-indexes
	before, err := h.tables.GetTable(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}
	var name string
	if index >= 0 && index < len(before.Players) {
		name = before.Players[index].Name
	}

	session, err := h.tables.RemovePlayer(r.Context(), code, index)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.PlayerRemoved(code, index, name)

	response.JSON(w, http.StatusOK, response.TableFromModel(session))
}
