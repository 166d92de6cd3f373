package result

// Error identifies a single reason for failure. It is an immutable value
// object: two Errors are equal exactly when code and description match.
type Error struct {
	code        string
	description string
}

func NewError(code, description string) Error {
	return Error{
		code:        code,
		description: description,
	}
}

// Code returns the machine-readable identifier of the failure reason.
func (e Error) Code() string {
	return e.code
}

// Description returns the human-readable text of the failure reason.
func (e Error) Description() string {
	return e.description
}

// IsZero reports whether e is the zero Error. Zero entries are treated as
// placeholders and filtered out by Failed and friends.
func (e Error) IsZero() bool {
	return e.code == "" && e.description == ""
}

// Error renders "code: description" for diagnostics. The format is
// advisory, not a wire contract.
func (e Error) Error() string {
	if e.code == "" {
		return e.description
	}
	return e.code + ": " + e.description
}
