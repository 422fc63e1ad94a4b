package util

// ErrorKind classifies why a sign-in failed. Every kind ends up as the
// same redirect; the kind only shows up in logs and tests.
type ErrorKind string

const (
	ErrMissingInput   ErrorKind = "missing_input"
	ErrConfig         ErrorKind = "config"
	ErrTokenExchange  ErrorKind = "token_exchange"
	ErrProfile        ErrorKind = "profile"
	ErrSession        ErrorKind = "session"
	ErrUnexpected     ErrorKind = "unexpected"
	DefaultErrMessage string    = "An unexpected error occurred."
)

type AppError struct {
	Kind ErrorKind
	Msg  string
	Err  []any
}

func NewAppError(kind ErrorKind, errMsg string, err ...any) *AppError {
	return &AppError{
		Kind: kind,
		Msg:  errMsg,
		Err:  err,
	}
}

func (e *AppError) Error() string {
	return e.Msg
}
