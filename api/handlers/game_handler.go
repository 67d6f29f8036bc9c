package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	gameservice "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/application"
	gamedomain "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/domain"
	gamedb "github.com/Black-And-White-Club/gauntlet-bot/app/modules/game/infrastructure/repositories"
)

// Actor identity headers, stamped by the gateway after it has
// authenticated the caller. This service trusts them as-is.
const (
	actorIDHeader    = "X-Actor-ID"
	actorAdminHeader = "X-Actor-Admin"
)

// GameHandler exposes the game lifecycle over HTTP.
type GameHandler struct {
	service gameservice.Service
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(service gameservice.Service) *GameHandler {
	return &GameHandler{service: service}
}

// Routes sets up the routes for the game controller.
func (h *GameHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateGame)
	r.Get("/{gameID}", h.GetGame)
	r.Post("/{gameID}/signup", h.Signup)
	r.Post("/{gameID}/start", h.StartGame)
	r.Post("/{gameID}/act", h.SubmitAction)
	r.Post("/{gameID}/skip", h.SkipTurn)
	r.Post("/{gameID}/roulette", h.SpinRoulette)
	r.Put("/{gameID}/order", h.ReorderTurns)
	r.Post("/{gameID}/settle", h.SettleGame)
	r.Post("/{gameID}/cancel", h.CancelGame)
	r.Get("/{gameID}/log", h.ListActionLog)
	r.Get("/{gameID}/log/export", h.ExportActionLog)
	return r
}

// CreateGameDto represents the input data for creating a game.
type CreateGameDto struct {
	Variant string `json:"variant"`
}

// CreateGame creates a new game in the Open phase.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var input CreateGameDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	game, err := h.service.CreateGame(r.Context(), identityFrom(r), input.Variant)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

// GetGame returns a game's current state.
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFrom(w, r)
	if !ok {
		return
	}
	game, err := h.service.GetGame(r.Context(), gameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// Signup adds the caller to an open game's pool.
func (h *GameHandler) Signup(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, r, h.service.Signup)
}

// StartGame starts an open game.
func (h *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, r, h.service.StartGame)
}

// SubmitActionDto represents the input data for a turn action.
type SubmitActionDto struct {
	Target *gamedomain.ParticipantID `json:"target,omitempty"`
}

// SubmitAction is the current holder taking their turn.
func (h *GameHandler) SubmitAction(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFrom(w, r)
	if !ok {
		return
	}

	var input SubmitActionDto
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
			return
		}
	}

	game, err := h.service.SubmitAction(r.Context(), identityFrom(r), gameID, input.Target)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// SkipTurn advances past the current holder.
func (h *GameHandler) SkipTurn(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, r, h.service.SkipTurn)
}

// SpinRoulette eliminates a random remaining participant.
func (h *GameHandler) SpinRoulette(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, r, h.service.SpinRoulette)
}

// ReorderDto represents the input data for replacing the turn order.
type ReorderDto struct {
	Order []gamedomain.ParticipantID `json:"order"`
}

// ReorderTurns replaces the rotation with an explicit order.
func (h *GameHandler) ReorderTurns(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFrom(w, r)
	if !ok {
		return
	}

	var input ReorderDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	game, err := h.service.ReorderTurns(r.Context(), identityFrom(r), gameID, input.Order)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// SettleGame settles an in-progress game.
func (h *GameHandler) SettleGame(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, r, h.service.SettleGame)
}

// CancelGame cancels a non-terminal game.
func (h *GameHandler) CancelGame(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, r, h.service.CancelGame)
}

// ListActionLog returns the game's action log.
func (h *GameHandler) ListActionLog(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFrom(w, r)
	if !ok {
		return
	}
	entries, err := h.service.ListActionLog(r.Context(), gameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ExportActionLog streams the action log as an xlsx workbook.
func (h *GameHandler) ExportActionLog(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameIDFrom(w, r)
	if !ok {
		return
	}
	data, err := h.service.ExportActionLog(r.Context(), identityFrom(r), gameID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "game-"+gameID.String()+".xlsx"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// simpleTransition handles the operations that take only the caller's
// identity and the game ID.
func (h *GameHandler) simpleTransition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, ident gamedomain.Identity, gameID gamedomain.GameID) (*gamedomain.Game, error),
) {
	gameID, ok := gameIDFrom(w, r)
	if !ok {
		return
	}
	game, err := op(r.Context(), identityFrom(r), gameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func identityFrom(r *http.Request) gamedomain.Identity {
	return gamedomain.Identity{
		ActorID: gamedomain.ParticipantID(r.Header.Get(actorIDHeader)),
		IsAdmin: r.Header.Get(actorAdminHeader) == "true",
	}
}

func gameIDFrom(w http.ResponseWriter, r *http.Request) (gamedomain.GameID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		http.Error(w, "Invalid game ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

// writeError maps domain errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gamedb.ErrGameNotFound):
		http.Error(w, "Game not found", http.StatusNotFound)
	case errors.Is(err, gamedomain.ErrNotAdmin):
		http.Error(w, "Admin privileges required", http.StatusForbidden)
	case errors.Is(err, gamedomain.ErrNotYourTurn):
		http.Error(w, "Not your turn", http.StatusForbidden)
	case errors.Is(err, gamedomain.ErrWrongPhase),
		errors.Is(err, gamedomain.ErrAlreadyTerminal),
		errors.Is(err, gamedomain.ErrStateConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, gamedomain.ErrInvalidReorder),
		errors.Is(err, gamedomain.ErrNotInRemaining),
		errors.Is(err, gamedomain.ErrTargetNotAllowed),
		errors.Is(err, gamedomain.ErrEmptyPool),
		errors.Is(err, gamedomain.ErrUnknownVariant):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, fmt.Sprintf("Internal error: %v", err), http.StatusInternalServerError)
	}
}
