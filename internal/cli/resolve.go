package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/chessboard/internal/repository"
	"github.com/alexanderramin/chessboard/internal/service"
	"github.com/alexanderramin/chessboard/internal/sharetoken"
)

// resolveChessboardID accepts a full id, a public share token, a unique id
// prefix or a unique name (case-insensitive).
func resolveChessboardID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("chessboard ID is required")
	}

	boards, err := app.Chessboards.List(ctx)
	if err != nil {
		return "", err
	}

	for _, b := range boards {
		if b.ID == input {
			return b.ID, nil
		}
	}
	if sharetoken.Valid(input) {
		for _, b := range boards {
			if b.PublicURL == input {
				return b.ID, nil
			}
		}
	}

	var matches []string
	for _, b := range boards {
		if strings.HasPrefix(b.ID, input) || strings.EqualFold(b.Name, input) {
			matches = append(matches, b.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("chessboard %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("chessboard %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveComplex finds a complex the actor may select by id, id prefix or
// name.
func resolveComplex(ctx context.Context, app *App, input string) (service.ComplexOption, error) {
	input = strings.TrimSpace(input)
	options, err := app.Chessboards.ListSelectableComplexes(ctx, app.Actor)
	if err != nil {
		return service.ComplexOption{}, err
	}

	for _, o := range options {
		if o.ID == input {
			return o, nil
		}
	}
	var matches []service.ComplexOption
	for _, o := range options {
		if strings.HasPrefix(o.ID, input) || strings.EqualFold(o.Name, input) {
			matches = append(matches, o)
		}
	}
	switch len(matches) {
	case 0:
		return service.ComplexOption{}, fmt.Errorf("complex %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return service.ComplexOption{}, fmt.Errorf("complex %q is ambiguous (%d matches)", input, len(matches))
	}
}

func resolveDeveloperID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	developers, err := app.Developers.List(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, d := range developers {
		if d.ID == input {
			return d.ID, nil
		}
		if strings.HasPrefix(d.ID, input) || strings.EqualFold(d.Name, input) {
			matches = append(matches, d.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("developer %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("developer %q is ambiguous (%d matches)", input, len(matches))
	}
}
