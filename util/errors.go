package util

const (
	ERROR_BAD_ROOT_PATH      = 201
	ERROR_BAD_OUTPUT_PATH    = 202
	ERROR_SCAN_FAILED        = 203
	ERROR_UNREADABLE_FILE    = 204
	ERROR_OUTPUT_NOT_WRITTEN = 205
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}
