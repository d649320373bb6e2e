package deck

// ParsingState tracks which deck section subsequent card lines belong to.
type ParsingState int

const (
	StateIdle ParsingState = iota
	StateMainboard
	StateSideboard
	StateCommander
	StateCompanion
)

func (s ParsingState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateMainboard:
		return "MAINBOARD"
	case StateSideboard:
		return "SIDEBOARD"
	case StateCommander:
		return "COMMANDER"
	case StateCompanion:
		return "COMPANION"
	default:
		return "UNKNOWN"
	}
}

// ShiftArena transitions the Arena-text state machine. Section headers may
// appear at most once, so re-entering the section already active is a
// structural error; all other transitions are driven by explicit headers and
// allowed.
func ShiftArena(current, next ParsingState) (ParsingState, error) {
	if current == next {
		return current, &TransitionError{From: current, To: next}
	}
	return next, nil
}

// rowTransitions is the transition table for adapters presenting grouped
// HTML rows: commander and companion blocks precede the categorized main
// body, and the sideboard always follows it.
var rowTransitions = map[ParsingState][]ParsingState{
	StateCommander: {StateIdle, StateCompanion},
	StateCompanion: {StateIdle, StateCommander},
	StateMainboard: {StateIdle, StateCommander, StateCompanion},
	StateSideboard: {StateMainboard},
}

// ShiftRows transitions the grouped-row state machine, enforcing section
// ordering via the rowTransitions table.
func ShiftRows(current, next ParsingState) (ParsingState, error) {
	for _, from := range rowTransitions[next] {
		if current == from {
			return next, nil
		}
	}
	return current, &TransitionError{From: current, To: next}
}
