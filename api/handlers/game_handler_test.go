package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gamedb "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/infrastructure/repositories"
)

// stubService records the identity it was called with and returns
// canned results.
type stubService struct {
	lastIdent gamedomain.Identity
	game      *gamedomain.Game
	entries   []gamedomain.ActionLogEntry
	export    []byte
	err       error
}

func (s *stubService) CreateGame(_ context.Context, ident gamedomain.Identity, _ string) (*gamedomain.Game, error) {
	s.lastIdent = ident
	return s.game, s.err
}

func (s *stubService) Signup(_ context.Context, ident gamedomain.Identity, _ gamedomain.GameID) (*gamedomain.Game, error) {
	s.lastIdent = ident
	return s.game, s.err
}

func (s *stubService) StartGame(_ context.Context, ident gamedomain.Identity, _ gamedomain.GameID) (*gamedomain.Game, error) {
	s.lastIdent = ident
	return s.game, s.err
}

func (s *stubService) GetGame(context.Context, gamedomain.GameID) (*gamedomain.Game, error) {
	return s.game, s.err
}

func (s *stubService) ListActionLog(context.Context, gamedomain.GameID) ([]gamedomain.ActionLogEntry, error) {
	return s.entries, s.err
}

func (s *stubService) SubmitAction(_ context.Context, ident gamedomain.Identity, _ gamedomain.GameID, _ *gamedomain.ParticipantID) (*gamedomain.Game, error) {
	s.lastIdent = ident
	return s.game, s.err
}

func (s *stubService) SkipTurn(_ context.Context, ident gamedomain.Identity, _ gamedomain.GameID) (*gamedomain.Game, error) {
	s.lastIdent = ident
	return s.game, s.err
}

func (s *stubService) SpinRoulette(_ context.Context, ident gamedomain.Identity, _ gamedomain.GameID) (*gamedomain.Game, error) {
	s.lastIdent = ident
	return s.game, s.err
}

func (s *stubService) ReorderTurns(_ context.Context, ident gamedomain.Identity, _ gamedomain.GameID, _ []gamedomain.ParticipantID) (*gamedomain.Game, error) {
	s.lastIdent = ident
	return s.game, s.err
}

func (s *stubService) SettleGame(_ context.Context, ident gamedomain.Identity, _ gamedomain.GameID) (*gamedomain.Game, error) {
	s.lastIdent = ident
	return s.game, s.err
}

func (s *stubService) CancelGame(_ context.Context, ident gamedomain.Identity, _ gamedomain.GameID) (*gamedomain.Game, error) {
	s.lastIdent = ident
	return s.game, s.err
}

func (s *stubService) ExportActionLog(_ context.Context, ident gamedomain.Identity, _ gamedomain.GameID) ([]byte, error) {
	s.lastIdent = ident
	return s.export, s.err
}

func newTestRouter(stub *stubService) http.Handler {
	return NewGameHandler(stub).Routes()
}

func TestCreateGameHandler(t *testing.T) {
	game := &gamedomain.Game{ID: uuid.New(), Variant: "roulette", Status: gamedomain.StatusOpen}
	stub := &stubService{game: game}
	router := newTestRouter(stub)

	body := bytes.NewBufferString(`{"variant":"roulette"}`)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(actorIDHeader, "admin-1")
	req.Header.Set(actorAdminHeader, "true")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, gamedomain.ParticipantID("admin-1"), stub.lastIdent.ActorID)
	assert.True(t, stub.lastIdent.IsAdmin)

	var got gamedomain.Game
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, game.ID, got.ID)
}

func TestIdentityHeadersDefaultToNonAdmin(t *testing.T) {
	stub := &stubService{game: &gamedomain.Game{ID: uuid.New()}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/"+uuid.NewString()+"/signup", nil)
	req.Header.Set(actorIDHeader, "p1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, stub.lastIdent.IsAdmin)
}

func TestInvalidGameID(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", gamedb.ErrGameNotFound, http.StatusNotFound},
		{"not admin", gamedomain.ErrNotAdmin, http.StatusForbidden},
		{"not your turn", gamedomain.ErrNotYourTurn, http.StatusForbidden},
		{"wrong phase", gamedomain.ErrWrongPhase, http.StatusConflict},
		{"already terminal", gamedomain.ErrAlreadyTerminal, http.StatusConflict},
		{"state conflict", gamedomain.ErrStateConflict, http.StatusConflict},
		{"invalid reorder", gamedomain.ErrInvalidReorder, http.StatusUnprocessableEntity},
		{"not in remaining", gamedomain.ErrNotInRemaining, http.StatusUnprocessableEntity},
		{"target not allowed", gamedomain.ErrTargetNotAllowed, http.StatusUnprocessableEntity},
		{"empty pool", gamedomain.ErrEmptyPool, http.StatusUnprocessableEntity},
		{"unknown variant", gamedomain.ErrUnknownVariant, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubService{err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/"+uuid.NewString()+"/settle", nil)
			req.Header.Set(actorIDHeader, "admin-1")
			req.Header.Set(actorAdminHeader, "true")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestReorderHandler(t *testing.T) {
	game := &gamedomain.Game{ID: uuid.New(), Status: gamedomain.StatusInProgress}
	stub := &stubService{game: game}
	router := newTestRouter(stub)

	body := bytes.NewBufferString(`{"order":["p2","p1","p3"]}`)
	req := httptest.NewRequest(http.MethodPut, "/"+game.ID.String()+"/order", body)
	req.Header.Set(actorIDHeader, "admin-1")
	req.Header.Set(actorAdminHeader, "true")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExportHandler(t *testing.T) {
	stub := &stubService{export: []byte("xlsx-bytes")}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/"+uuid.NewString()+"/log/export", nil)
	req.Header.Set(actorIDHeader, "admin-1")
	req.Header.Set(actorAdminHeader, "true")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
}
