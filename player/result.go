package player

// TickOutcome describes which path the controller took for a tick.
type TickOutcome uint8

const (
	// TickOutcomeNormal is a tick in which input and posture checks ran as usual.
	TickOutcomeNormal TickOutcome = iota
	// TickOutcomeSuspended is a tick in which a dive held posture input and every cancel check.
	TickOutcomeSuspended
	// TickOutcomeForcedCancel is a tick in which an override condition was present, so posture input
	// was not read.
	TickOutcomeForcedCancel
	// TickOutcomeRecovered is a tick that failed and fell back to the idle posture.
	TickOutcomeRecovered
)

func (o TickOutcome) String() string {
	switch o {
	case TickOutcomeNormal:
		return "normal"
	case TickOutcomeSuspended:
		return "suspended"
	case TickOutcomeForcedCancel:
		return "forced_cancel"
	case TickOutcomeRecovered:
		return "recovered"
	}
	return "unknown"
}

// TickResult captures the outcome of a single tick.
type TickResult struct {
	// Previous is the posture at the start of the tick.
	Previous Posture
	// Posture is the posture at the end of the tick.
	Posture Posture
	Outcome TickOutcome
	// Err is the failure the controller recovered from if Outcome is TickOutcomeRecovered.
	Err error
}

// Changed returns true if the posture changed during the tick.
func (r TickResult) Changed() bool {
	return r.Previous != r.Posture
}
