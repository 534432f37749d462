package core

// ValidationError marks input rejected before any mutation was applied.
// Handlers map it to a client-error status; errors of any other kind are
// internal failures and must reach the client only as a generic message.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
