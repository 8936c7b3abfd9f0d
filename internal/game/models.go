package game

// Rand is the randomness a battle consumes. *math/rand.Rand satisfies
// it; tests substitute scripted values.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// BattleStatus is the battle lifecycle state.
type BattleStatus string

const (
	BattleInProgress BattleStatus = "in_progress"
	BattleFinished   BattleStatus = "finished"
)

// NoWinner is the Battle.Winner value while the battle runs and after
// a draw.
const NoWinner = -1

// Battle is the full state of one match between two sides. The engine
// mutates it turn by turn; it carries no randomness or I/O of its own.
type Battle struct {
	Sides  [2]*Side
	Turn   int
	Status BattleStatus
	Winner int
	Log    []string
}

// NewBattle starts a battle between two sides. The turn counter is
// zero until the first turn executes.
func NewBattle(a, b *Side) *Battle {
	return &Battle{
		Sides:  [2]*Side{a, b},
		Status: BattleInProgress,
		Winner: NoWinner,
	}
}

// Opponent returns the side facing s. Unknown sides get nil.
func (b *Battle) Opponent(s *Side) *Side {
	switch s {
	case b.Sides[0]:
		return b.Sides[1]
	case b.Sides[1]:
		return b.Sides[0]
	}
	return nil
}

// SideIndex returns 0 or 1 for a participating side, -1 otherwise.
func (b *Battle) SideIndex(s *Side) int {
	switch s {
	case b.Sides[0]:
		return 0
	case b.Sides[1]:
		return 1
	}
	return NoWinner
}

// WinnerSide returns the winning side once the battle is finished, or
// nil while it runs and after a draw.
func (b *Battle) WinnerSide() *Side {
	if b.Status != BattleFinished || b.Winner == NoWinner {
		return nil
	}
	return b.Sides[b.Winner]
}

// IsDraw reports a finished battle with no winner.
func (b *Battle) IsDraw() bool {
	return b.Status == BattleFinished && b.Winner == NoWinner
}

// ActionKind discriminates the Action union.
type ActionKind string

const (
	ActionPass   ActionKind = "pass"
	ActionMove   ActionKind = "move"
	ActionSwitch ActionKind = "switch"
	ActionItem   ActionKind = "item"
)

// Action is one side's declaration for a turn. Only the fields of the
// declared kind are meaningful; construct values through the helpers
// below so the unused fields stay zero.
type Action struct {
	Kind        ActionKind
	Move        string
	SwitchIndex int
	Item        string
	TargetIndex int
}

func PassAction() Action {
	return Action{Kind: ActionPass}
}

func MoveAction(move string) Action {
	return Action{Kind: ActionMove, Move: move}
}

func SwitchAction(index int) Action {
	return Action{Kind: ActionSwitch, SwitchIndex: index}
}

func ItemAction(item string, targetIndex int) Action {
	return Action{Kind: ActionItem, Item: item, TargetIndex: targetIndex}
}
