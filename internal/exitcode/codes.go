// Package exitcode defines named exit codes for the irtus CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

// Exit code constants.
const (
	Success          = 0   // Server stopped cleanly or deck generated
	Error            = 1   // Invalid args, file not found, misconfiguration
	InputInvalid     = 2   // Company name or problem missing
	GenerationFailed = 3   // Retry budget exhausted without a deck
	Interrupted      = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case InputInvalid:
		return "InputInvalid"
	case GenerationFailed:
		return "GenerationFailed"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}

// ExitError carries an exit code through cobra's error return.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return Name(e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// New wraps err with an exit code.
func New(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}
