package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/chessboard/internal/editor"
	"github.com/alexanderramin/chessboard/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{"nil", nil, ""},
		{"validation", &ValidationError{Problems: []editor.Problem{{Message: "x"}}}, ClassValidation},
		{"complex required", ErrComplexRequired, ClassPrecondition},
		{"already linked wrapped", fmt.Errorf("%w: %q", ErrComplexAlreadyLinked, "Ocean"), ClassPrecondition},
		{"in flight", ErrSaveInFlight, ClassPrecondition},
		{"not found", fmt.Errorf("chessboard: %w", repository.ErrNotFound), ClassNotFound},
		{"conflict", fmt.Errorf("inserting chessboard: %w", repository.ErrConflict), ClassFailedPrecondition},
		{"deadline", fmt.Errorf("saving: %w", context.DeadlineExceeded), ClassResourceExhausted},
		{"other", errors.New("disk on fire"), ClassInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	one := &ValidationError{Problems: []editor.Problem{{Where: `section "A"`, Message: "name is required"}}}
	two := &ValidationError{Problems: []editor.Problem{{Message: "a"}, {Message: "b"}}}

	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, `Fix 1 problem before saving: section "A": name is required`, UserMessage(one))
	assert.Equal(t, "Fix 2 problems before saving.", UserMessage(two))
	assert.Equal(t, "Select a complex before saving.", UserMessage(ErrComplexRequired))
	assert.Equal(t, "This complex already has a chessboard.", UserMessage(fmt.Errorf("x: %w", ErrComplexAlreadyLinked)))
	assert.Equal(t, "A save is already in progress.", UserMessage(ErrSaveInFlight))
	assert.Equal(t, "The chessboard or complex no longer exists.", UserMessage(repository.ErrNotFound))
	assert.NotContains(t, UserMessage(errors.New("sql: database is closed")), "sql")
}

func TestValidationError_ListsEveryProblem(t *testing.T) {
	err := &ValidationError{Problems: []editor.Problem{
		{Message: "complex is required"},
		{Where: `section "A"`, Message: "duplicate floor number 3"},
	}}
	assert.Equal(t,
		`chessboard validation failed (2 problems): complex is required; section "A": duplicate floor number 3`,
		err.Error())
}
