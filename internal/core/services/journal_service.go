package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/accounting"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// journalService provides journal entry creation and the approval state machine.
type journalService struct {
	BaseService
	journalRepo    portsrepo.JournalRepositoryFacade
	accountRepo    portsrepo.AccountReader
	thirdPartyRepo portsrepo.ThirdPartyReader
	cache          portssvc.ReportCache
}

// JournalServiceOption configures the journal service
type JournalServiceOption func(*journalService)

// WithJournalAuthorizer sets the authorizer for the journal service.
func WithJournalAuthorizer(authorizer portssvc.AuthorizerSvc) JournalServiceOption {
	return func(s *journalService) {
		s.Authorizer = authorizer
	}
}

// WithThirdPartyReader enables existence checks of line third parties.
func WithThirdPartyReader(repo portsrepo.ThirdPartyReader) JournalServiceOption {
	return func(s *journalService) {
		s.thirdPartyRepo = repo
	}
}

// WithJournalCache sets the report cache invalidated on every state change.
func WithJournalCache(cache portssvc.ReportCache) JournalServiceOption {
	return func(s *journalService) {
		s.cache = cache
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournalEntry validates the lines, runs the balance guard when approval
// is requested, inserts the entry as BORRADOR and then approves it.
func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermCreate); err != nil {
		return nil, err
	}
	if req.IsApproved {
		if err := s.AuthorizeUser(ctx, userID, domain.PermApprove); err != nil {
			return nil, err
		}
	}

	date, err := req.EntryDate()
	if err != nil {
		return nil, apperrors.NewValidationError("invalid entry date %q", req.Date)
	}
	if req.Description == "" {
		return nil, apperrors.NewValidationError("description is required")
	}

	lines := req.ToDomainLines()
	if err := accounting.ValidateLines(lines); err != nil {
		return nil, err
	}
	// The guard runs strictly before anything is written
	if req.IsApproved {
		if err := accounting.GuardApproval(lines); err != nil {
			s.LogInfo(ctx, "Rejected unbalanced entry",
				slog.String("error", err.Error()))
			return nil, err
		}
	}

	if err := s.checkReferences(ctx, lines); err != nil {
		return nil, err
	}

	now := s.Now()
	entryID := uuid.NewString()
	for i := range lines {
		lines[i].ID = uuid.NewString()
		lines[i].EntryID = entryID
	}
	entry := domain.JournalEntry{
		ID:          entryID,
		Date:        date,
		Description: req.Description,
		State:       domain.EntryBorrador,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	stored, err := s.journalRepo.InsertEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to insert journal entry",
			slog.String("entry_id", entryID))
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", stored.ID),
		slog.Int64("sequence_number", stored.SequenceNumber))

	if !req.IsApproved {
		return stored, nil
	}

	newVersion, err := s.journalRepo.UpdateEntryState(ctx, stored.ID, stored.Version, domain.EntryAprobado, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Entry stored as draft but approval failed",
			slog.String("entry_id", stored.ID))
		return nil, &apperrors.ApprovalPendingError{EntryID: stored.ID, Version: stored.Version, Err: err}
	}

	stored.State = domain.EntryAprobado
	stored.Version = newVersion
	stored.LastUpdatedAt = now
	stored.LastUpdatedBy = userID
	s.invalidateReports(ctx, stored.ID)
	return stored, nil
}

// checkReferences verifies every account exists and is active, and every
// referenced third party exists.
func (s *journalService) checkReferences(ctx context.Context, lines []domain.JournalLine) error {
	codes := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountCode]; ok {
			continue
		}
		seen[l.AccountCode] = struct{}{}
		codes = append(codes, l.AccountCode)
	}
	sort.Strings(codes)

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for entry")
		return err
	}
	for _, code := range codes {
		acc, ok := accounts[code]
		if !ok {
			return apperrors.NewNotFoundError("account", code)
		}
		if !acc.IsActive {
			return apperrors.NewValidationError("account %s is inactive", code)
		}
	}

	if s.thirdPartyRepo == nil {
		return nil
	}
	checked := make(map[string]struct{})
	for _, l := range lines {
		if l.ThirdPartyID == nil {
			continue
		}
		id := *l.ThirdPartyID
		if _, ok := checked[id]; ok {
			continue
		}
		checked[id] = struct{}{}
		if _, err := s.thirdPartyRepo.FindThirdPartyByID(ctx, id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("third party", id)
			}
			return err
		}
	}
	return nil
}

// ApproveEntry is also the retry path after an ApprovalPendingError.
func (s *journalService) ApproveEntry(ctx context.Context, entryID string, version int, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermApprove); err != nil {
		return nil, err
	}
	return s.transition(ctx, entryID, version, domain.EntryAprobado, userID)
}

func (s *journalService) VoidEntry(ctx context.Context, entryID string, version int, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermApprove); err != nil {
		return nil, err
	}
	return s.transition(ctx, entryID, version, domain.EntryAnulado, userID)
}

func (s *journalService) transition(ctx context.Context, entryID string, version int, to domain.EntryState, userID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("journal entry", entryID)
		}
		s.LogError(ctx, err, "Failed to load journal entry",
			slog.String("entry_id", entryID))
		return nil, err
	}

	if err := accounting.CanTransition(entry.State, to); err != nil {
		return nil, err
	}
	if entry.Version != version {
		return nil, &apperrors.ConflictError{Resource: "journal entry", ID: entryID, Expected: version, Actual: entry.Version}
	}
	if to == domain.EntryAprobado {
		if err := accounting.GuardApproval(entry.Lines); err != nil {
			return nil, err
		}
	}

	now := s.Now()
	newVersion, err := s.journalRepo.UpdateEntryState(ctx, entryID, version, to, userID, now)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update entry state",
				slog.String("entry_id", entryID),
				slog.String("state", string(to)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry state changed",
		slog.String("entry_id", entryID),
		slog.String("from", string(entry.State)),
		slog.String("to", string(to)))

	entry.State = to
	entry.Version = newVersion
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID
	s.invalidateReports(ctx, entryID)
	return entry, nil
}

// invalidateReports is best effort; a failure never aborts the state change.
func (s *journalService) invalidateReports(ctx context.Context, entryID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Bump(ctx); err != nil {
		s.LogWarn(ctx, err, "Failed to invalidate report cache",
			slog.String("entry_id", entryID))
	}
}

func (s *journalService) GetJournalEntryByID(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermRead); err != nil {
		return nil, err
	}
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("journal entry", entryID)
		}
		s.LogError(ctx, err, "Failed to load journal entry",
			slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams, userID string) (*dto.ListJournalEntriesResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermRead); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries",
			slog.Int("limit", limit))
		return nil, err
	}

	resp := &dto.ListJournalEntriesResponse{
		Entries:   make([]dto.JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	return resp, nil
}
