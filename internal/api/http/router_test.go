package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/immxrtalbeast/playlog/internal/repository"
	"github.com/immxrtalbeast/playlog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T, redact bool, ping PingFunc) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repository.NewInMemoryStore()
	resp := NewResponder(log, redact)

	router, err := SetupRouter(log, []string{"http://localhost:3000"}, ping, Controllers{
		Games:        NewGameController(service.NewGameService(store.Games(), log), resp),
		Players:      NewPlayerController(service.NewPlayerService(store.Players(), log), resp),
		Plays:        NewPlayController(service.NewPlayService(store.Plays(), log), resp),
		Participants: NewParticipantController(service.NewParticipantService(store.Participants(), log), resp),
	})
	require.NoError(t, err)

	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	s.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

// create posts body and returns data.<entity>.
func (s *testServer) create(path, entity, body string) map[string]any {
	s.t.Helper()
	rec, resp := s.do(http.MethodPost, path, body)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return entityOf(s.t, resp, entity)
}

func entityOf(t *testing.T, resp map[string]any, entity string) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data: %v", resp)
	row, ok := data[entity].(map[string]any)
	require.True(t, ok, "data has no %s: %v", entity, data)
	return row
}

func TestCreateGameThenDuplicate(t *testing.T) {
	srv := newTestServer(t, false, nil)
	body := `{"name":"Catan","creator_name":"Klaus"}`

	rec, resp := srv.do(http.MethodPost, "/api/games", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", resp["status"])
	game := entityOf(t, resp, "game")
	assert.Equal(t, "Catan", game["name"])
	assert.Equal(t, "Klaus", game["creator_name"])
	_, err := uuid.Parse(game["id"].(string))
	assert.NoError(t, err)
	assert.NotEmpty(t, game["created_at"])

	rec, resp = srv.do(http.MethodPost, "/api/games", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, map[string]any{"status": "error", "message": "Game already exists"}, resp)
}

func TestCreateThenGetReturnsSameRow(t *testing.T) {
	srv := newTestServer(t, false, nil)
	created := srv.create("/api/players", "player", `{"name":"Ada"}`)
	assert.Equal(t, false, created["is_owner"])

	rec, resp := srv.do(http.MethodGet, "/api/players/"+created["id"].(string), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, entityOf(t, resp, "player"))
}

func TestListEmptyTables(t *testing.T) {
	srv := newTestServer(t, false, nil)

	for path, plural := range map[string]string{
		"/api/games":            "games",
		"/api/players":          "players",
		"/api/plays":            "plays",
		"/api/playparticipants": "play_participants",
		"/api/plays/" + uuid.NewString() + "/participants": "play_participants",
	} {
		rec, resp := srv.do(http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "ok", resp["status"], path)
		assert.Equal(t, float64(0), resp["count"], path)
		assert.Equal(t, []any{}, resp[plural], path)
	}
}

func TestListGamesOrderedByName(t *testing.T) {
	srv := newTestServer(t, false, nil)
	srv.create("/api/games", "game", `{"name":"Root","creator_name":"Cole"}`)
	srv.create("/api/games", "game", `{"name":"Azul","creator_name":"Michael"}`)

	_, resp := srv.do(http.MethodGet, "/api/games", "")
	assert.Equal(t, float64(2), resp["count"])
	games := resp["games"].([]any)
	assert.Equal(t, "Azul", games[0].(map[string]any)["name"])
	assert.Equal(t, "Root", games[1].(map[string]any)["name"])
}

func TestMissingKeysAreNotFound(t *testing.T) {
	srv := newTestServer(t, false, nil)
	id := uuid.NewString()

	cases := []struct {
		method, path, body, message string
	}{
		{http.MethodGet, "/api/games/" + id, "", "Game with ID: " + id + " not found"},
		{http.MethodPatch, "/api/games/" + id, `{"name":"x"}`, "Game with ID: " + id + " not found"},
		{http.MethodDelete, "/api/games/" + id, "", "Game with ID: " + id + " not found"},
		{http.MethodGet, "/api/players/" + id, "", "Player with ID: " + id + " not found"},
		{http.MethodPatch, "/api/players/" + id, `{"name":"x"}`, "Player with ID: " + id + " not found"},
		{http.MethodDelete, "/api/players/" + id, "", "Player with ID: " + id + " not found"},
		{http.MethodGet, "/api/plays/" + id, "", "Play with ID: " + id + " not found"},
		{http.MethodPatch, "/api/plays/" + id, `{"game_id":"` + uuid.NewString() + `"}`, "Play with ID: " + id + " not found"},
		{http.MethodGet, "/api/plays/" + id + "/participants/" + id, "", "Play participant with ID: (" + id + "," + id + ") not found"},
		{http.MethodPatch, "/api/plays/" + id + "/participants/" + id, `{"player_id":"` + uuid.NewString() + `"}`, "Play participant with ID: (" + id + "," + id + ") not found"},
		{http.MethodPatch, "/api/plays/" + id + "/participants/" + id, `{}`, "Play participant with ID: (" + id + "," + id + ") not found"},
		{http.MethodDelete, "/api/plays/" + id + "/participants/" + id, "", "Play participant with ID: (" + id + "," + id + ") not found"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path+" "+tc.body, func(t *testing.T) {
			rec, resp := srv.do(tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "fail", resp["status"])
			assert.Equal(t, tc.message, resp["message"])
		})
	}
}

func TestBadRequests(t *testing.T) {
	srv := newTestServer(t, false, nil)

	cases := []struct {
		name, method, path, body string
	}{
		{"bad id", http.MethodGet, "/api/games/not-a-uuid", ""},
		{"malformed json", http.MethodPost, "/api/games", `{"name":`},
		{"missing creator", http.MethodPost, "/api/games", `{"name":"Catan"}`},
		{"blank name", http.MethodPost, "/api/players", `{"name":"   "}`},
		{"blank patch", http.MethodPatch, "/api/games/" + uuid.NewString(), `{"name":""}`},
		{"play without game", http.MethodPost, "/api/plays", `{}`},
		{"play update on missing key without game", http.MethodPatch, "/api/plays/" + uuid.NewString(), `{}`},
		{"bad participant id", http.MethodPost, "/api/playparticipants", `{"play_id":"nope","player_id":"nope"}`},
		{"bad player id in path", http.MethodDelete, "/api/plays/" + uuid.NewString() + "/participants/nope", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := srv.do(tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, "fail", resp["status"])
			assert.NotEmpty(t, resp["message"])
		})
	}
}

func TestSecondOwnerConflict(t *testing.T) {
	srv := newTestServer(t, false, nil)
	srv.create("/api/players", "player", `{"name":"Ada","is_owner":true}`)

	rec, resp := srv.do(http.MethodPost, "/api/players", `{"name":"Grace","is_owner":true}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Only one owner is allowed", resp["message"])

	rec, resp = srv.do(http.MethodPost, "/api/players", `{"name":"Ada"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Player name already exists", resp["message"])

	for _, name := range []string{"Bo", "Cy", "Di", "Ed", "Fa"} {
		srv.create("/api/players", "player", `{"name":"`+name+`"}`)
	}
	// Both rules broken: the name wins, every time.
	for i := 0; i < 20; i++ {
		rec, resp = srv.do(http.MethodPost, "/api/players", `{"name":"Cy","is_owner":true}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Player name already exists", resp["message"])
	}
}

func TestUpdateGamePartialAndEmpty(t *testing.T) {
	srv := newTestServer(t, false, nil)
	game := srv.create("/api/games", "game", `{"name":"Catan","creator_name":"Klaus"}`)
	path := "/api/games/" + game["id"].(string)

	rec, resp := srv.do(http.MethodPatch, path, `{"creator_name":"Klaus Teuber","name":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := entityOf(t, resp, "game")
	assert.Equal(t, "Catan", updated["name"])
	assert.Equal(t, "Klaus Teuber", updated["creator_name"])
	assert.Equal(t, game["created_at"], updated["created_at"])

	for _, body := range []string{"", "{}"} {
		rec, resp = srv.do(http.MethodPatch, path, body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, updated, entityOf(t, resp, "game"))
	}
}

func TestDeleteGameReturnsRow(t *testing.T) {
	srv := newTestServer(t, false, nil)
	game := srv.create("/api/games", "game", `{"name":"Catan","creator_name":"Klaus"}`)

	rec, resp := srv.do(http.MethodDelete, "/api/games/"+game["id"].(string), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Game deleted successfully", resp["message"])
	assert.Equal(t, game, entityOf(t, resp, "game"))

	rec, _ = srv.do(http.MethodGet, "/api/games/"+game["id"].(string), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlayForeignKeysAreStoreErrors(t *testing.T) {
	srv := newTestServer(t, false, nil)

	rec, resp := srv.do(http.MethodPost, "/api/plays", `{"game_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", resp["status"])
	assert.Contains(t, resp["message"], repository.ConstraintPlayGame)

	game := srv.create("/api/games", "game", `{"name":"Catan","creator_name":"Klaus"}`)
	srv.create("/api/plays", "play", `{"game_id":"`+game["id"].(string)+`"}`)

	rec, resp = srv.do(http.MethodDelete, "/api/games/"+game["id"].(string), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, resp["message"], "foreign key violation")
}

func TestStoreErrorsCanBeRedacted(t *testing.T) {
	srv := newTestServer(t, true, nil)

	rec, resp := srv.do(http.MethodPost, "/api/plays", `{"game_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", resp["message"])
}

func TestPlayParticipantsLifecycle(t *testing.T) {
	srv := newTestServer(t, false, nil)
	catan := srv.create("/api/games", "game", `{"name":"Catan","creator_name":"Klaus"}`)
	azul := srv.create("/api/games", "game", `{"name":"Azul","creator_name":"Michael"}`)
	play := srv.create("/api/plays", "play", `{"game_id":"`+catan["id"].(string)+`"}`)
	other := srv.create("/api/plays", "play", `{"game_id":"`+catan["id"].(string)+`"}`)
	ada := srv.create("/api/players", "player", `{"name":"Ada"}`)
	grace := srv.create("/api/players", "player", `{"name":"Grace"}`)

	playID, otherID := play["id"].(string), other["id"].(string)
	adaID, graceID := ada["id"].(string), grace["id"].(string)
	participant := func(playID, playerID string) string {
		return `{"play_id":"` + playID + `","player_id":"` + playerID + `"}`
	}

	added := srv.create("/api/playparticipants", "play_participant", participant(playID, adaID))
	assert.Equal(t, playID, added["play_id"])
	srv.create("/api/playparticipants", "play_participant", participant(playID, graceID))
	srv.create("/api/playparticipants", "play_participant", participant(otherID, adaID))

	rec, resp := srv.do(http.MethodPost, "/api/playparticipants", participant(playID, adaID))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Play participant already exists", resp["message"])

	_, resp = srv.do(http.MethodGet, "/api/plays/"+playID+"/participants", "")
	assert.Equal(t, float64(2), resp["count"])
	_, resp = srv.do(http.MethodGet, "/api/playparticipants", "")
	assert.Equal(t, float64(3), resp["count"])

	rec, resp = srv.do(http.MethodGet, "/api/plays/"+playID+"/participants/"+graceID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, graceID, entityOf(t, resp, "play_participant")["player_id"])

	// Re-pointing onto an existing pair conflicts.
	rec, _ = srv.do(http.MethodPatch, "/api/plays/"+otherID+"/participants/"+adaID, `{"play_id":"`+playID+`"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, resp = srv.do(http.MethodPatch, "/api/plays/"+otherID+"/participants/"+adaID, `{"player_id":"`+graceID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	moved := entityOf(t, resp, "play_participant")
	assert.Equal(t, otherID, moved["play_id"])
	assert.Equal(t, graceID, moved["player_id"])

	// A full play update moves it to another game.
	rec, resp = srv.do(http.MethodPatch, "/api/plays/"+playID, `{"game_id":"`+azul["id"].(string)+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, azul["id"], entityOf(t, resp, "play")["game_id"])

	// Deleting the play cascades to its participants.
	rec, resp = srv.do(http.MethodDelete, "/api/plays/"+playID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Play deleted successfully", resp["message"])

	_, resp = srv.do(http.MethodGet, "/api/plays/"+playID+"/participants", "")
	assert.Equal(t, float64(0), resp["count"])
	rec, _ = srv.do(http.MethodGet, "/api/plays/"+playID+"/participants/"+adaID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp = srv.do(http.MethodDelete, "/api/plays/"+otherID+"/participants/"+graceID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Play participant deleted successfully", resp["message"])

	_, resp = srv.do(http.MethodGet, "/api/playparticipants", "")
	assert.Equal(t, float64(0), resp["count"])
}

func TestHealthz(t *testing.T) {
	rec, resp := newTestServer(t, false, func(context.Context) error { return nil }).do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp["status"])

	rec, resp = newTestServer(t, false, func(context.Context) error { return errors.New("dial tcp: refused") }).do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "error", resp["status"])
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, false, nil)

	rec, _ := srv.do(http.MethodGet, "/healthz", "")
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}
