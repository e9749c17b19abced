package formatter

import (
	"strconv"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/service"
)

const maxNameWidth = 32

// FormatChessboardList renders stored chessboards as a table inside a box.
func FormatChessboardList(boards []*domain.Chessboard) string {
	headers := []string{"ID", "NAME", "UNITS", "FREE", "RATE", "TOKEN", "UPDATED"}
	rows := make([][]string, 0, len(boards))
	for _, b := range boards {
		name := Bold(Truncate(b.Name, maxNameWidth))
		if !b.Linked() {
			name += Dim(" (unlinked)")
		}
		rows = append(rows, []string{
			TruncID(b.ID),
			name,
			strconv.Itoa(b.UnitCount()),
			StyleFree.Render(strconv.Itoa(StatusCounts(b)[domain.UnitFree])),
			FormatIDR(&b.ExchangeRate),
			StyleLink.Render(b.PublicURL),
			Dim(HumanTimestamp(b.UpdatedAt)),
		})
	}
	return RenderBox("Chessboards", RenderTable(headers, rows))
}

// FormatComplexList renders the complexes an actor may pick from.
func FormatComplexList(options []service.ComplexOption) string {
	headers := []string{"ID", "NAME", "DEVELOPER", "CHESSBOARD"}
	rows := make([][]string, 0, len(options))
	for _, o := range options {
		board := Dim("--")
		if o.HasChessboard {
			board = StyleFree.Render("✔ linked")
		}
		rows = append(rows, []string{TruncID(o.ID), Bold(Truncate(o.Name, maxNameWidth)), orDash(o.DeveloperName), board})
	}
	return RenderBox("Complexes", RenderTable(headers, rows))
}

func FormatDeveloperList(developers []*domain.Developer) string {
	headers := []string{"ID", "NAME", "ADDED"}
	rows := make([][]string, 0, len(developers))
	for _, d := range developers {
		rows = append(rows, []string{TruncID(d.ID), Bold(d.Name), Dim(HumanTimestamp(d.CreatedAt))})
	}
	return RenderBox("Developers", RenderTable(headers, rows))
}

// FormatHistory renders audit entries oldest first.
func FormatHistory(records []*domain.HistoryRecord) string {
	headers := []string{"WHEN", "ACTION", "BY"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		by := r.ActorLabel
		if by == "" {
			by = r.ActorID
		}
		rows = append(rows, []string{Dim(r.Timestamp.Format("2006-01-02 15:04:05")), ActionPill(r.Action), orDash(by)})
	}
	return RenderBox("History", RenderTable(headers, rows))
}

func FormatNotifications(notes []*domain.Notification) string {
	headers := []string{"ID", "WHEN", "ACTION", "CHESSBOARD", "BY"}
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{
			TruncID(n.ID),
			Dim(HumanTimestamp(n.CreatedAt)),
			ActionPill(n.Action),
			Bold(n.ChessboardName),
			orDash(n.CreatedBy),
		})
	}
	return RenderBox("Notifications", RenderTable(headers, rows))
}
