package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/chessboard/internal/editor"
	"github.com/alexanderramin/chessboard/internal/repository"
)

var (
	// ErrComplexRequired is returned when a chessboard is created without a complex.
	ErrComplexRequired = errors.New("complex is required")

	// ErrComplexAlreadyLinked is returned when the selected complex already
	// has a chessboard.
	ErrComplexAlreadyLinked = errors.New("complex already has a chessboard")

	// ErrSaveInFlight is returned by Session.Save while another save is running.
	ErrSaveInFlight = errors.New("a save is already in progress")
)

// ValidationError carries every problem found in a chessboard that was
// refused before any write.
type ValidationError struct {
	Problems []editor.Problem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Error())
	}
	return fmt.Sprintf("chessboard validation failed (%d problems): %s", len(e.Problems), strings.Join(msgs, "; "))
}

// ErrorClass buckets failures by how the user can react to them.
type ErrorClass string

const (
	ClassValidation         ErrorClass = "validation"
	ClassPrecondition       ErrorClass = "precondition"
	ClassPermissionDenied   ErrorClass = "permission-denied"
	ClassNotFound           ErrorClass = "not-found"
	ClassFailedPrecondition ErrorClass = "failed-precondition"
	ClassResourceExhausted  ErrorClass = "resource-exhausted"
	ClassInternal           ErrorClass = "internal"
)

// Classify maps an error returned by this package to its class.
func Classify(err error) ErrorClass {
	var verr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return ClassValidation
	case errors.Is(err, ErrComplexRequired),
		errors.Is(err, ErrComplexAlreadyLinked),
		errors.Is(err, ErrSaveInFlight):
		return ClassPrecondition
	case errors.Is(err, repository.ErrNotFound):
		return ClassNotFound
	case repository.IsPermissionDenied(err):
		return ClassPermissionDenied
	case repository.IsBusy(err), repository.IsExhausted(err),
		errors.Is(err, context.DeadlineExceeded):
		return ClassResourceExhausted
	case errors.Is(err, repository.ErrConflict), repository.IsConstraint(err):
		return ClassFailedPrecondition
	default:
		return ClassInternal
	}
}

// UserMessage returns a short message fit for a status line. The full error
// belongs in the log.
func UserMessage(err error) string {
	switch Classify(err) {
	case "":
		return ""
	case ClassValidation:
		var verr *ValidationError
		errors.As(err, &verr)
		if len(verr.Problems) == 1 {
			return "Fix 1 problem before saving: " + verr.Problems[0].Error()
		}
		return fmt.Sprintf("Fix %d problems before saving.", len(verr.Problems))
	case ClassPrecondition:
		switch {
		case errors.Is(err, ErrComplexRequired):
			return "Select a complex before saving."
		case errors.Is(err, ErrComplexAlreadyLinked):
			return "This complex already has a chessboard."
		default:
			return "A save is already in progress."
		}
	case ClassNotFound:
		return "The chessboard or complex no longer exists."
	case ClassPermissionDenied:
		return "You do not have permission to change this chessboard."
	case ClassResourceExhausted:
		return "The store is busy. Try again in a moment."
	case ClassFailedPrecondition:
		return "The data changed while saving. Reload and try again."
	default:
		return "Something went wrong. Your changes are kept; try saving again."
	}
}
