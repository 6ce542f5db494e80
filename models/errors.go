package models

// ErrorNotFound is returned when a requested record does not exist.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

// ErrorBadRequest is returned for input that cannot be interpreted.
type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string { return e.Message }

// ErrorInternalServer wraps failures that are not the caller's fault.
type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e ErrorInternalServer) Unwrap() error { return e.Err }
