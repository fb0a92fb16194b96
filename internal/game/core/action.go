package core

import "fmt"

// ActionType represents the type of action
type ActionType int

const (
	ActionMove ActionType = iota
	ActionBuy
)

func (t ActionType) String() string {
	switch t {
	case ActionMove:
		return "move"
	case ActionBuy:
		return "buy"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action represents a team's request to change the board. Validate only
// checks what can be known from the board alone; placement rules are
// enforced by the engine when the action is applied.
type Action interface {
	GetTeam() int
	GetType() ActionType
	Validate(b *Board, team int) error
}

// MoveAction moves the piece standing on From onto To
type MoveAction struct {
	Team     int
	From, To Coordinate
}

func (m *MoveAction) GetTeam() int        { return m.Team }
func (m *MoveAction) GetType() ActionType { return ActionMove }

func (m *MoveAction) Validate(b *Board, team int) error {
	from := b.TileAt(m.From)
	if from == nil || !b.InBounds(m.To) {
		return ErrInvalidCoordinate
	}
	if m.From == m.To {
		return RejectMove(from.Piece, m.To, "piece is already there")
	}
	if from.Team != team {
		return RejectMove(from.Piece, m.To, fmt.Sprintf("source tile belongs to team %d", from.Team))
	}
	if !from.Piece.Movable() {
		return ErrNotMovable
	}
	return nil
}

// BuyAction purchases Piece with Region's treasury and places it on Target
type BuyAction struct {
	Team   int
	Region RegionID
	Piece  Piece
	Target Coordinate
}

func (a *BuyAction) GetTeam() int        { return a.Team }
func (a *BuyAction) GetType() ActionType { return ActionBuy }

func (a *BuyAction) Validate(b *Board, team int) error {
	if !b.InBounds(a.Target) {
		return ErrInvalidCoordinate
	}
	if a.Team != team {
		return RejectMove(a.Piece, a.Target, fmt.Sprintf("action issued for team %d", a.Team))
	}
	if !a.Piece.Purchasable() {
		return ErrNotPurchasable
	}
	return nil
}

// ActionError wraps an error with the action that caused it
type ActionError struct {
	Action Action
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s action by team %d: %v", e.Action.GetType(), e.Action.GetTeam(), e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// WrapActionError attaches action context to err. A nil err stays nil.
func WrapActionError(action Action, err error) error {
	if err == nil {
		return nil
	}
	return &ActionError{Action: action, Err: err}
}
