package overlay

import "fmt"

type CommandKind int

const (
	CmdNone CommandKind = iota
	NavigatePrev
	NavigateNext
	IncreaseReveal
	DecreaseReveal
	IncreaseTransparency
	DecreaseTransparency
	ToggleScroll
	PreciseReveal
	ModifierDown
	ModifierUp
)

// Command is one input intent. Y is only read by PreciseReveal.
type Command struct {
	Kind CommandKind
	Y    int
}

func Cmd(kind CommandKind) Command { return Command{Kind: kind} }

func PreciseRevealAt(y int) Command { return Command{Kind: PreciseReveal, Y: y} }

func (k CommandKind) String() string {
	switch k {
	case NavigatePrev:
		return "NavigatePrev"
	case NavigateNext:
		return "NavigateNext"
	case IncreaseReveal:
		return "IncreaseReveal"
	case DecreaseReveal:
		return "DecreaseReveal"
	case IncreaseTransparency:
		return "IncreaseTransparency"
	case DecreaseTransparency:
		return "DecreaseTransparency"
	case ToggleScroll:
		return "ToggleScroll"
	case PreciseReveal:
		return "PreciseReveal"
	case ModifierDown:
		return "ModifierDown"
	case ModifierUp:
		return "ModifierUp"
	default:
		return "None"
	}
}

func (c Command) String() string {
	if c.Kind == PreciseReveal {
		return fmt.Sprintf("PreciseReveal(%d)", c.Y)
	}
	return c.Kind.String()
}
