package domain

// SubmissionState represents a step of the reservation submission workflow
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateInvalid    SubmissionState = "invalid"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// submissionTransitions allowed moves between states.
// invalid/succeeded/failed all return to idle; only succeeded clears the form.
var submissionTransitions = map[SubmissionState][]SubmissionState{
	StateIdle:       {StateValidating},
	StateValidating: {StateInvalid, StateSubmitting},
	StateInvalid:    {StateIdle},
	StateSubmitting: {StateSucceeded, StateFailed},
	StateSucceeded:  {StateIdle},
	StateFailed:     {StateIdle},
}

// CanTransitionTo returns true if moving from s to next is allowed
func (s SubmissionState) CanTransitionTo(next SubmissionState) bool {
	for _, allowed := range submissionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true for states that end a single submission attempt
func (s SubmissionState) IsTerminal() bool {
	return s == StateInvalid || s == StateSucceeded || s == StateFailed
}
