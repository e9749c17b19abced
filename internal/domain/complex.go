package domain

import "time"

// Complex is the real-estate development a chessboard belongs to. Only the
// back-link fields are written by this module.
type Complex struct {
	ID          string
	Name        string
	DeveloperID *string
	BackLink    BackLink
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BackLink is the trio of fields on a complex pointing at its chessboard and
// the chessboard's public share token.
type BackLink struct {
	ChessboardID        *string
	ChessboardPublicID  *string
	ChessboardPublicURL *string
}

// Complete reports whether all three back-link fields are populated.
func (l BackLink) Complete() bool {
	return nonEmpty(l.ChessboardID) && nonEmpty(l.ChessboardPublicID) && nonEmpty(l.ChessboardPublicURL)
}

// PointsAt reports whether the back-link references the given chessboard.
func (l BackLink) PointsAt(chessboardID string) bool {
	return l.ChessboardID != nil && *l.ChessboardID == chessboardID
}

type Developer struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func nonEmpty(p *string) bool {
	return p != nil && *p != ""
}
