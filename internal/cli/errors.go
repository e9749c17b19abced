package cli

import (
	"github.com/alexanderramin/chessboard/internal/service"
)

// userError is what a command returns for a failed use case: Error is the
// short message shown to the user, the cause stays reachable for errors.Is.
type userError struct {
	msg   string
	cause error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.cause }

// failed logs the full error and returns its user-facing form.
func (app *App) failed(op string, err error) error {
	if err == nil {
		return nil
	}
	app.logger().Error("command failed",
		"op", op,
		"error_class", string(service.Classify(err)),
		"error", err.Error(),
	)
	return &userError{msg: service.UserMessage(err), cause: err}
}
