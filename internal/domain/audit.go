package domain

import "time"

// Actor is the user performing an editor action, as resolved by the caller.
type Actor struct {
	ID          string
	Label       string
	Role        Role
	DeveloperID string
}

// AccessRecord lists who may own, edit and view a chessboard.
type AccessRecord struct {
	ChessboardID string
	Owners       []string
	Editors      []string
	Viewers      []string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HistoryRecord is one append-only audit entry.
type HistoryRecord struct {
	ID           string
	ChessboardID string
	Action       HistoryAction
	ActorID      string
	ActorLabel   string
	Timestamp    time.Time
}

type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

// Notification is an event appended to the shared notifications sink.
type Notification struct {
	ID             string
	Type           string
	Action         HistoryAction
	ChessboardID   string
	ChessboardName string
	CreatedBy      string
	Status         NotificationStatus
	ForRoles       []Role
	CreatedAt      time.Time
}

// NotificationTypeChessboard tags notifications emitted by the inventory editor.
const NotificationTypeChessboard = "chessboard"
