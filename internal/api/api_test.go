package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewhitmore/scorepad-go/internal/api"
	"github.com/ewhitmore/scorepad-go/internal/api/response"
	"github.com/ewhitmore/scorepad-go/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		Clock:           app.Clock,
		AccessService:   app.AccessService,
		TableController: app.TableController,
		HubManager:      app.HubManager,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createTable creates a table and returns its code and key
func (ts *testServer) createTable(t *testing.T, body any) (string, string) {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/tables", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.CreateTableResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Table.Code)
	require.NotEmpty(t, resp.TableKey.Token)

	return resp.Table.Code, resp.TableKey.Token
}

// startedGame creates a table with Alice and Bob and starts play
func (ts *testServer) startedGame(t *testing.T) (string, string) {
	t.Helper()

	code, token := ts.createTable(t, nil)
	for _, name := range []string{"Alice", "Bob"} {
		rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/players", map[string]string{"name": name}, token)
		require.Equal(t, http.StatusCreated, rr.Code)
	}
	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/start", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	return code, token
}

// enterHand sets all five dice via the API
func (ts *testServer) enterHand(t *testing.T, code, token string, hand [5]int) {
	t.Helper()

	for i, v := range hand {
		rr := ts.request(http.MethodPut, fmt.Sprintf("/api/v1/tables/%s/dice/%d", code, i), map[string]int{"value": v}, token)
		require.Equal(t, http.StatusOK, rr.Code)
	}
}

func decodeTable(t *testing.T, rr *httptest.ResponseRecorder) response.Table {
	t.Helper()

	var table response.Table
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &table))
	return table
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateTable(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/tables", nil, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.CreateTableResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Len(t, resp.Table.Code, 6)
	assert.Equal(t, "setup", resp.Table.Status)
	assert.Equal(t, 4, resp.Table.Config.MaxPlayers)
	assert.False(t, resp.Table.HasPasscode)
	assert.NotEmpty(t, resp.TableKey.Token)
}

func TestCreateTableWithConfig(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"max_players": 6, "keep_roster": false}
	rr := ts.request(http.MethodPost, "/api/v1/tables", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.CreateTableResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Table.Config.MaxPlayers)
	assert.False(t, resp.Table.Config.KeepRoster)
}

func TestGetTableIsPublic(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.createTable(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/tables/"+code, nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	table := decodeTable(t, rr)
	assert.Equal(t, code, table.Code)
}

func TestGetTableNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/tables/NOPE99", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "TABLE_NOT_FOUND")
}

func TestPasscodeHashNeverExposed(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.createTable(t, map[string]string{"passcode": "secret"})

	rr := ts.request(http.MethodGet, "/api/v1/tables/"+code, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	assert.NotContains(t, rr.Body.String(), "passcode_hash")
	table := decodeTable(t, rr)
	assert.True(t, table.HasPasscode)
}

func TestCommandsRequireTableKey(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.createTable(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/players", map[string]string{"name": "Alice"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/players", map[string]string{"name": "Alice"}, "bogus")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestTableKeyBoundToTable(t *testing.T) {
	ts := newTestServer(t)
	codeA, _ := ts.createTable(t, nil)
	_, tokenB := ts.createTable(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/tables/"+codeA+"/players", map[string]string{"name": "Alice"}, tokenB)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "WRONG_TABLE")
}

func TestClaimOpenTable(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.createTable(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/claim", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.ClaimResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.TableKey.Token)

	// The claimed key authorizes commands
	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/players", map[string]string{"name": "Alice"}, resp.TableKey.Token)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestClaimWithPasscode(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.createTable(t, map[string]string{"passcode": "secret"})

	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/claim", map[string]string{"passcode": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_PASSCODE")

	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/claim", map[string]string{"passcode": "secret"}, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAddAndRemovePlayer(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.createTable(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/players", map[string]string{"name": "Alice"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/players", map[string]string{"name": "Bob"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodDelete, "/api/v1/tables/"+code+"/players/0", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	table := decodeTable(t, rr)
	require.Len(t, table.Players, 1)
	assert.Equal(t, "Bob", table.Players[0].Name)
	assert.Equal(t, 0, table.Players[0].Index)
}

func TestAddPlayerValidation(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.createTable(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/players", map[string]string{"name": "  "}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "EMPTY_NAME")

	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/players", map[string]string{"name": "Alice"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/players", map[string]string{"name": "alice"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "DUPLICATE_NAME")
}

func TestStartRequiresTwoPlayers(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.createTable(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/players", map[string]string{"name": "Alice"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/start", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "ROSTER_TOO_SMALL")
}

func TestScoreFullTurn(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.startedGame(t)

	ts.enterHand(t, code, token, [5]int{5, 5, 5, 2, 2})

	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/score", map[string]string{"category": "full_house"}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	table := decodeTable(t, rr)
	assert.Equal(t, 25, table.Cards[0].Scores["full_house"])
	assert.Equal(t, 1, table.CurrentPlayer)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, table.Hand)
}

func TestScoreValidation(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.startedGame(t)

	// Incomplete hand
	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/score", map[string]string{"category": "chance"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "INCOMPLETE_HAND")

	// Unknown category
	ts.enterHand(t, code, token, [5]int{1, 2, 3, 4, 5})
	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/score", map[string]string{"category": "bogus"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_CATEGORY")
}

func TestScoreCategoryTaken(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.startedGame(t)

	// Both players score chance, back to Alice
	ts.enterHand(t, code, token, [5]int{1, 2, 3, 4, 5})
	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/score", map[string]string{"category": "chance"}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	ts.enterHand(t, code, token, [5]int{1, 2, 3, 4, 5})
	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/score", map[string]string{"category": "chance"}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	ts.enterHand(t, code, token, [5]int{2, 2, 3, 4, 5})
	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/score", map[string]string{"category": "chance"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "CATEGORY_TAKEN")
}

func TestInvalidDieEntry(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.startedGame(t)

	rr := ts.request(http.MethodPut, "/api/v1/tables/"+code+"/dice/0", map[string]int{"value": 7}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_DIE")

	rr = ts.request(http.MethodPut, "/api/v1/tables/"+code+"/dice/9", map[string]int{"value": 3}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_DIE_INDEX")
}

func TestClearDice(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.startedGame(t)

	ts.enterHand(t, code, token, [5]int{1, 2, 3, 4, 5})

	rr := ts.request(http.MethodDelete, "/api/v1/tables/"+code+"/dice", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	table := decodeTable(t, rr)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, table.Hand)
}

func TestEndAndResetGame(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.startedGame(t)

	ts.enterHand(t, code, token, [5]int{6, 6, 6, 6, 6})
	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/score", map[string]string{"category": "chance"}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/end", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	table := decodeTable(t, rr)
	assert.Equal(t, "finished", table.Status)
	require.Len(t, table.FinalScores, 2)
	assert.Equal(t, 0, table.FinalScores[0].PlayerIndex)
	assert.Equal(t, 30, table.FinalScores[0].GrandTotal)
	assert.Equal(t, []int{0}, table.Winners)

	rr = ts.request(http.MethodPost, "/api/v1/tables/"+code+"/reset", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	table = decodeTable(t, rr)
	assert.Equal(t, "setup", table.Status)
	assert.Len(t, table.Players, 2)
	assert.Empty(t, table.Cards[0].Scores)
	assert.Empty(t, table.FinalScores)
}

func TestResetRejectedWhilePlaying(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.startedGame(t)

	rr := ts.request(http.MethodPost, "/api/v1/tables/"+code+"/reset", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "WRONG_PHASE")
}

func TestEventStreamConnects(t *testing.T) {
	ts := newTestServer(t)
	code, token := ts.createTable(t, nil)

	// A pre-cancelled context makes the stream handler return right after
	// the initial connected event
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tables/"+code+"/events?table_key="+token, nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "event: connected")
}

func TestEventStreamRequiresKey(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.createTable(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/tables/"+code+"/events", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
