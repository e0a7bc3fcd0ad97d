package relay

import "fmt"

// Stage is the chain agnostic progress of a cross domain message
type Stage string

const (
	StageUnknown                      Stage = "unknown"
	StageWaitingForSourceConfirmation Stage = "waiting_for_source_confirmation"
	StageWaitingForPublication        Stage = "waiting_for_publication"
	StageInChallengeOrDelayWindow     Stage = "in_challenge_or_delay_window"
	StageReadyToAct                   Stage = "ready_to_act"
	StageActionSubmitted              Stage = "action_submitted"
	StageFinalized                    Stage = "finalized"
	StageFailed                       Stage = "failed"
)

var stageOrder = map[Stage]int{
	StageUnknown:                      0,
	StageWaitingForSourceConfirmation: 1,
	StageWaitingForPublication:        2,
	StageInChallengeOrDelayWindow:     3,
	StageReadyToAct:                   4,
	StageActionSubmitted:              5,
	StageFinalized:                    6,
	StageFailed:                       6,
}

func (s Stage) String() string {
	return string(s)
}

// IsValid returns true if s is one of the known stages
func (s Stage) IsValid() bool {
	_, ok := stageOrder[s]
	return ok
}

// IsTerminal returns true for the stages a message never leaves
func (s Stage) IsTerminal() bool {
	return s == StageFinalized || s == StageFailed
}

// Before returns true if s comes strictly before other in the progress order.
// Failed is not ordered against Finalized.
func (s Stage) Before(other Stage) bool {
	return stageOrder[s] < stageOrder[other]
}

// CheckRelayable returns nil if a message in stage s can be acted on.
// Otherwise the error carries the class the poller should apply.
func CheckRelayable(s Stage) error {
	switch s {
	case StageReadyToAct:
		return nil
	case StageFinalized:
		return fmt.Errorf("%w: message has already been relayed", ErrAlreadyComplete)
	case StageFailed:
		return fmt.Errorf("%w: invalid message state", ErrFatal)
	default:
		return fmt.Errorf("%w: message has not yet been checkpointed (stage %s)", ErrTransient, s)
	}
}
