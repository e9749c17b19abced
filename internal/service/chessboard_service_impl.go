package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/chessboard/internal/db"
	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/editor"
	"github.com/alexanderramin/chessboard/internal/repository"
	"github.com/alexanderramin/chessboard/internal/sharetoken"
	"github.com/google/uuid"
)

// tokenAttempts bounds retries when a freshly drawn share token collides.
const tokenAttempts = 3

type chessboardService struct {
	boards     repository.ChessboardRepo
	complexes  repository.ComplexRepo
	developers repository.DeveloperRepo
	history    repository.HistoryRepo
	uow        db.UnitOfWork
	baseURL    string
	newToken   func() (string, error)
	now        func() time.Time
	observer   UseCaseObserver
}

// NewChessboardService wires the chessboard use cases. publicBaseURL prefixes
// share tokens in the complex back-link.
func NewChessboardService(
	boards repository.ChessboardRepo,
	complexes repository.ComplexRepo,
	developers repository.DeveloperRepo,
	history repository.HistoryRepo,
	uow db.UnitOfWork,
	publicBaseURL string,
	observers ...UseCaseObserver,
) ChessboardService {
	return &chessboardService{
		boards:     boards,
		complexes:  complexes,
		developers: developers,
		history:    history,
		uow:        uow,
		baseURL:    publicBaseURL,
		newToken:   sharetoken.New,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Second) },
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *chessboardService) Save(ctx context.Context, actor domain.Actor, b *domain.Chessboard) (*domain.Chessboard, error) {
	if problems := editor.Validate(b); len(problems) > 0 {
		err := error(&ValidationError{Problems: problems})
		observe(ctx, s.observer, "chessboard.save", time.Now(), &err, map[string]any{"chessboard_id": b.ID})
		return nil, err
	}
	if b.ID == "" {
		return s.Create(ctx, actor, b)
	}
	return s.Update(ctx, actor, b)
}

func (s *chessboardService) Create(ctx context.Context, actor domain.Actor, b *domain.Chessboard) (created *domain.Chessboard, err error) {
	start := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "chessboard.create", start, &err, fields) }()

	if !b.Linked() {
		return nil, ErrComplexRequired
	}
	complexID := *b.ComplexID
	fields["complex_id"] = complexID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBoards := repository.NewSQLiteChessboardRepo(tx)
		txComplexes := repository.NewSQLiteComplexRepo(tx)

		cx, err := txComplexes.GetByID(ctx, complexID)
		if err != nil {
			return fmt.Errorf("loading complex %s: %w", complexID, err)
		}
		existing, err := txBoards.GetByComplexID(ctx, complexID)
		if err == nil {
			return fmt.Errorf("%w: %q is linked to chessboard %s", ErrComplexAlreadyLinked, cx.Name, existing.ID)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		now := s.now()
		doc := b.Clone()
		doc.ID = uuid.New().String()
		doc.Name = cx.Name
		doc.CreatedBy, doc.UpdatedBy = actor.ID, actor.ID
		doc.CreatedAt, doc.UpdatedAt = now, now
		if problems := editor.Validate(doc); len(problems) > 0 {
			return &ValidationError{Problems: problems}
		}

		if err := s.insertWithToken(ctx, txBoards, doc); err != nil {
			return err
		}
		if err := txComplexes.SetBackLink(ctx, cx.ID, s.backLink(doc)); err != nil {
			return fmt.Errorf("linking complex: %w", err)
		}
		access := &domain.AccessRecord{
			ChessboardID: doc.ID,
			Owners:       []string{actor.ID},
			Editors:      []string{},
			Viewers:      []string{},
			CreatedBy:    actor.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repository.NewSQLiteAccessRepo(tx).Create(ctx, access); err != nil {
			return err
		}
		if err := s.record(ctx, tx, actor, doc, domain.ActionCreate); err != nil {
			return err
		}
		created = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["chessboard_id"] = created.ID
	return created, nil
}

func (s *chessboardService) Update(ctx context.Context, actor domain.Actor, b *domain.Chessboard) (updated *domain.Chessboard, err error) {
	start := time.Now()
	fields := map[string]any{"chessboard_id": b.ID}
	defer func() { observe(ctx, s.observer, "chessboard.update", start, &err, fields) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBoards := repository.NewSQLiteChessboardRepo(tx)
		txComplexes := repository.NewSQLiteComplexRepo(tx)

		current, err := txBoards.GetByID(ctx, b.ID)
		if err != nil {
			return err
		}

		doc := b.Clone()
		doc.PublicURL = current.PublicURL
		doc.CreatedBy, doc.CreatedAt = current.CreatedBy, current.CreatedAt
		doc.UpdatedBy, doc.UpdatedAt = actor.ID, s.now()

		var cx *domain.Complex
		if doc.Linked() {
			fields["complex_id"] = *doc.ComplexID
			cx, err = txComplexes.GetByID(ctx, *doc.ComplexID)
			if err != nil {
				return fmt.Errorf("loading complex %s: %w", *doc.ComplexID, err)
			}
			doc.Name = cx.Name
		}
		if problems := editor.Validate(doc); len(problems) > 0 {
			return &ValidationError{Problems: problems}
		}

		if err := txBoards.Update(ctx, doc); err != nil {
			if errors.Is(err, repository.ErrComplexTaken) {
				return fmt.Errorf("%w: %q", ErrComplexAlreadyLinked, doc.Name)
			}
			return err
		}

		if current.Linked() && (!doc.Linked() || *current.ComplexID != *doc.ComplexID) {
			if err := unlinkComplex(ctx, txComplexes, *current.ComplexID, doc.ID); err != nil {
				return err
			}
		}
		// Repairs a back-link lost by an earlier partial write.
		if cx != nil && (!cx.BackLink.Complete() || !cx.BackLink.PointsAt(doc.ID)) {
			fields["back_link_repaired"] = true
			if err := txComplexes.SetBackLink(ctx, cx.ID, s.backLink(doc)); err != nil {
				return fmt.Errorf("repairing complex back-link: %w", err)
			}
		}

		if err := s.record(ctx, tx, actor, doc, domain.ActionUpdate); err != nil {
			return err
		}
		updated = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *chessboardService) Delete(ctx context.Context, actor domain.Actor, id string) (err error) {
	start := time.Now()
	fields := map[string]any{"chessboard_id": id}
	defer func() { observe(ctx, s.observer, "chessboard.delete", start, &err, fields) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBoards := repository.NewSQLiteChessboardRepo(tx)

		current, err := txBoards.GetByID(ctx, id)
		if err != nil {
			return err
		}
		// The back-link goes first so no complex ever points at a missing chessboard.
		if current.Linked() {
			fields["complex_id"] = *current.ComplexID
			if err := unlinkComplex(ctx, repository.NewSQLiteComplexRepo(tx), *current.ComplexID, id); err != nil {
				return err
			}
		}
		if err := txBoards.Delete(ctx, id); err != nil {
			return err
		}
		return s.record(ctx, tx, actor, current, domain.ActionDelete)
	})
}

func (s *chessboardService) Duplicate(ctx context.Context, actor domain.Actor, id string) (dup *domain.Chessboard, err error) {
	start := time.Now()
	fields := map[string]any{"source_id": id}
	defer func() { observe(ctx, s.observer, "chessboard.duplicate", start, &err, fields) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBoards := repository.NewSQLiteChessboardRepo(tx)

		src, err := txBoards.GetByID(ctx, id)
		if err != nil {
			return err
		}

		now := s.now()
		doc := src.Clone()
		doc.ID = uuid.New().String()
		doc.ComplexID = nil
		doc.Name = src.Name + " (copy)"
		doc.CreatedBy, doc.UpdatedBy = actor.ID, actor.ID
		doc.CreatedAt, doc.UpdatedAt = now, now
		if err := s.insertWithToken(ctx, txBoards, doc); err != nil {
			return err
		}
		access := &domain.AccessRecord{
			ChessboardID: doc.ID,
			Owners:       []string{actor.ID},
			CreatedBy:    actor.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repository.NewSQLiteAccessRepo(tx).Create(ctx, access); err != nil {
			return err
		}
		if err := s.record(ctx, tx, actor, doc, domain.ActionCreate); err != nil {
			return err
		}
		dup = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["chessboard_id"] = dup.ID
	return dup, nil
}

func (s *chessboardService) Get(ctx context.Context, id string) (*domain.Chessboard, error) {
	return s.boards.GetByID(ctx, id)
}

// GetByPublicURL is the read path behind the public share link.
func (s *chessboardService) GetByPublicURL(ctx context.Context, token string) (*domain.Chessboard, error) {
	if !sharetoken.Valid(token) {
		return nil, fmt.Errorf("share token %q: %w", token, repository.ErrNotFound)
	}
	return s.boards.GetByPublicURL(ctx, token)
}

func (s *chessboardService) List(ctx context.Context) ([]*domain.Chessboard, error) {
	return s.boards.List(ctx)
}

func (s *chessboardService) History(ctx context.Context, id string) ([]*domain.HistoryRecord, error) {
	return s.history.ListByChessboard(ctx, id)
}

// ListSelectableComplexes returns the complexes actor may attach a chessboard
// to. Developer accounts only see their own developer's complexes.
func (s *chessboardService) ListSelectableComplexes(ctx context.Context, actor domain.Actor) ([]ComplexOption, error) {
	filter := ""
	if actor.Role == domain.RoleDeveloper {
		if actor.DeveloperID == "" {
			return nil, nil
		}
		filter = actor.DeveloperID
	}
	complexes, err := s.complexes.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	devs, err := s.developers.List(ctx)
	if err != nil {
		return nil, err
	}
	devNames := make(map[string]string, len(devs))
	for _, d := range devs {
		devNames[d.ID] = d.Name
	}
	boards, err := s.boards.List(ctx)
	if err != nil {
		return nil, err
	}
	linked := make(map[string]bool, len(boards))
	for _, b := range boards {
		if b.Linked() {
			linked[*b.ComplexID] = true
		}
	}

	opts := make([]ComplexOption, 0, len(complexes))
	for _, c := range complexes {
		opt := ComplexOption{ID: c.ID, Name: c.Name, HasChessboard: linked[c.ID]}
		if c.DeveloperID != nil {
			opt.DeveloperName = devNames[*c.DeveloperID]
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

func (s *chessboardService) PublicLink(token string) string {
	return s.baseURL + "/" + token
}

// insertWithToken draws a share token and inserts doc, redrawing on a token
// collision.
func (s *chessboardService) insertWithToken(ctx context.Context, boards repository.ChessboardRepo, doc *domain.Chessboard) error {
	var err error
	for attempt := 0; attempt < tokenAttempts; attempt++ {
		doc.PublicURL, err = s.newToken()
		if err != nil {
			return err
		}
		err = boards.Create(ctx, doc)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrComplexTaken):
			return fmt.Errorf("%w: %q", ErrComplexAlreadyLinked, doc.Name)
		case !errors.Is(err, repository.ErrConflict):
			return err
		}
	}
	return fmt.Errorf("no free share token after %d attempts: %w", tokenAttempts, err)
}

func (s *chessboardService) backLink(doc *domain.Chessboard) domain.BackLink {
	id, token, url := doc.ID, doc.PublicURL, s.PublicLink(doc.PublicURL)
	return domain.BackLink{
		ChessboardID:        &id,
		ChessboardPublicID:  &token,
		ChessboardPublicURL: &url,
	}
}

// record appends the history entry and the notification for one write.
func (s *chessboardService) record(ctx context.Context, tx db.DBTX, actor domain.Actor, doc *domain.Chessboard, action domain.HistoryAction) error {
	now := s.now()
	err := repository.NewSQLiteHistoryRepo(tx).Append(ctx, &domain.HistoryRecord{
		ID:           uuid.New().String(),
		ChessboardID: doc.ID,
		Action:       action,
		ActorID:      actor.ID,
		ActorLabel:   actor.Label,
		Timestamp:    now,
	})
	if err != nil {
		return err
	}
	return repository.NewSQLiteNotificationRepo(tx).Create(ctx, &domain.Notification{
		ID:             uuid.New().String(),
		Type:           domain.NotificationTypeChessboard,
		Action:         action,
		ChessboardID:   doc.ID,
		ChessboardName: doc.Name,
		CreatedBy:      actor.ID,
		Status:         domain.NotificationUnread,
		ForRoles:       domain.InventoryRoles,
		CreatedAt:      now,
	})
}

// unlinkComplex clears the back-link of complexID unless it already points
// at a different chessboard. A complex that no longer exists is skipped.
func unlinkComplex(ctx context.Context, complexes repository.ComplexRepo, complexID, chessboardID string) error {
	cx, err := complexes.GetByID(ctx, complexID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if cx.BackLink.ChessboardID != nil && !cx.BackLink.PointsAt(chessboardID) {
		return nil
	}
	if err := complexes.ClearBackLink(ctx, complexID); err != nil {
		return fmt.Errorf("unlinking complex: %w", err)
	}
	return nil
}
