package usecase

// ValidationError means the caller sent a payload the gateway cannot accept.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StoreError means the store failed or wrote nothing. Message is safe to
// show the client; Err keeps the cause for logs.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NotFoundError means the requested resource does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func storeFailure(err error) *StoreError {
	return &StoreError{Message: "Server error: " + err.Error(), Err: err}
}
