package venture

import (
	"github.com/google/uuid"
)

// Step is the visible stage of the tool.
type Step int

const (
	// StepForm shows the input form.
	StepForm Step = 1
	// StepResult shows the generated deck.
	StepResult Step = 3
)

// Session is the state of one visitor's use of the tool. It is owned by a
// single request flow and never shared.
type Session struct {
	ID      string
	Step    Step
	Input   VentureInput
	Loading bool
	Deck    *GeneratedDeck
	Error   string
}

// NewSession returns an empty session on the form step.
func NewSession() *Session {
	return &Session{
		ID:   uuid.NewString(),
		Step: StepForm,
	}
}

// Set mutates one input field.
func (s *Session) Set(field, value string) error {
	return s.Input.Set(field, value)
}

// Ready reports whether the session input passes the required-field gate.
func (s *Session) Ready() bool {
	return s.Input.Ready()
}

// Begin marks a generation as in flight.
func (s *Session) Begin() {
	s.Loading = true
	s.Error = ""
}

// Complete stores the deck and moves to the result step.
func (s *Session) Complete(deck *GeneratedDeck) {
	s.Loading = false
	s.Deck = deck
	s.Step = StepResult
}

// Fail records a user-facing error. The step does not change.
func (s *Session) Fail(message string) {
	s.Loading = false
	s.Error = message
}

// Reset discards input, deck and error and returns to the form.
func (s *Session) Reset() {
	s.Step = StepForm
	s.Input = VentureInput{}
	s.Loading = false
	s.Deck = nil
	s.Error = ""
}
