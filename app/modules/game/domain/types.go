package gamedomain

import (
	"time"

	"github.com/google/uuid"
)

// GameID identifies a single game instance.
type GameID = uuid.UUID

// ParticipantID identifies a participant. IDs are resolved and verified
// upstream; the orchestrator treats them as opaque strings.
type ParticipantID string

// SystemActor is the sentinel actor recorded on log entries produced by
// the orchestrator itself (deadline catch-up, auto-settlement).
const SystemActor ParticipantID = ""

// Status is the lifecycle phase of a game instance.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusSettled    Status = "SETTLED"
	StatusCancelled  Status = "CANCELLED"
)

// Terminal reports whether no further transitions are accepted.
func (s Status) Terminal() bool {
	return s == StatusSettled || s == StatusCancelled
}

// ActionType classifies an action log entry.
type ActionType string

const (
	ActionStart    ActionType = "START"
	ActionAct      ActionType = "ACT"
	ActionSkip     ActionType = "SKIP"
	ActionRoulette ActionType = "ROULETTE"
	ActionReorder  ActionType = "REORDER"
	ActionSettle   ActionType = "SETTLE"
	ActionCancel   ActionType = "CANCEL"
)

// TimeoutAction is what a variant does when a turn deadline expires.
type TimeoutAction string

const (
	TimeoutNoAction      TimeoutAction = "NO_ACTION"
	TimeoutAutoSkip      TimeoutAction = "AUTO_SKIP"
	TimeoutAutoEliminate TimeoutAction = "AUTO_ELIMINATE"
)

// VariantPolicy is the per-variant rule set. It is resolved once at
// registration time and passed into the service explicitly; nothing
// reads it from ambient state.
type VariantPolicy struct {
	Name                string
	TimeoutAction       TimeoutAction
	SettlementThreshold int
	TurnWindow          time.Duration
	// ExplicitElimination allows the turn holder to name a target to
	// eliminate as their action (pile-taking and voting variants).
	ExplicitElimination bool
}

// Identity is the already-verified caller identity handed down by the
// upstream auth layer. The orchestrator never resolves identity itself.
type Identity struct {
	ActorID ParticipantID
	IsAdmin bool
}

// Game is one running game instance. All state lives in the store; a
// Game value is reloaded fresh for every request.
type Game struct {
	ID      GameID
	Variant string
	Status  Status

	// TurnOrder is a permutation of Remaining as of the last time it was
	// (re)computed. It may lag Remaining between eliminations; stale
	// entries are filtered on read, never re-inserted.
	TurnOrder  []ParticipantID
	Remaining  []ParticipantID
	Eliminated []ParticipantID

	// CurrentHolder is empty unless Status is InProgress, in which case
	// it is always an element of Remaining.
	CurrentHolder ParticipantID
	TurnDeadline  *time.Time

	SettlementThreshold int

	// LastSequence is the highest action-log sequence committed for this
	// game. New sequences are reserved by the same conditional write
	// that commits a transition, so winners are strictly ordered.
	LastSequence int64

	// Version is the compare-and-swap counter; every committed
	// transition bumps it by one.
	Version int64

	CreatedBy ParticipantID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActionLogEntry is one immutable record of a state-changing action.
// ActorID is SystemActor for orchestrator-triggered entries.
type ActionLogEntry struct {
	GameID    GameID
	Sequence  int64
	ActorID   ParticipantID
	Action    ActionType
	TargetID  ParticipantID
	Timestamp time.Time
}

// InRemaining reports whether id is still alive in g.
func (g *Game) InRemaining(id ParticipantID) bool {
	for _, p := range g.Remaining {
		if p == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of g so callers can mutate a working copy
// while keeping the observed state for the conditional write.
func (g *Game) Clone() *Game {
	cp := *g
	cp.TurnOrder = append([]ParticipantID(nil), g.TurnOrder...)
	cp.Remaining = append([]ParticipantID(nil), g.Remaining...)
	cp.Eliminated = append([]ParticipantID(nil), g.Eliminated...)
	if g.TurnDeadline != nil {
		d := *g.TurnDeadline
		cp.TurnDeadline = &d
	}
	return &cp
}
