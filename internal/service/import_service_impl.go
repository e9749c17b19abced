package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/importer"
)

type importService struct {
	chessboards ChessboardService
	defaultRate float64
}

// NewImportService creates chessboards from import files through the regular
// create flow, so imports get the same checks, back-link and audit trail.
func NewImportService(chessboards ChessboardService, defaultRate float64) ImportService {
	return &importService{chessboards: chessboards, defaultRate: defaultRate}
}

func (s *importService) ImportChessboard(ctx context.Context, actor domain.Actor, filePath string) (*domain.Chessboard, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportChessboardFromSchema(ctx, actor, schema)
}

func (s *importService) ImportChessboardFromSchema(ctx context.Context, actor domain.Actor, schema *importer.ImportSchema) (*domain.Chessboard, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	return s.chessboards.Create(ctx, actor, importer.Convert(schema, s.defaultRate))
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
