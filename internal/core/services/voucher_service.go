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

type voucherService struct {
	BaseService
	voucherRepo    portsrepo.VoucherRepositoryFacade
	accountRepo    portsrepo.AccountReader
	thirdPartyRepo portsrepo.ThirdPartyReader
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, accountRepo portsrepo.AccountReader, thirdPartyRepo portsrepo.ThirdPartyReader, options ...ServiceOption) portssvc.VoucherSvcFacade {
	svc := &voucherService{
		voucherRepo:    voucherRepo,
		accountRepo:    accountRepo,
		thirdPartyRepo: thirdPartyRepo,
	}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateVoucher computes line and voucher totals server-side and persists the voucher.
func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermCreate); err != nil {
		return nil, err
	}
	if !domain.IsValidVoucherType(req.Type) {
		return nil, apperrors.NewValidationError("invalid voucher type %q", req.Type)
	}
	date, err := req.VoucherDate()
	if err != nil {
		return nil, apperrors.NewValidationError("invalid voucher date %q", req.Date)
	}

	lines := req.ToDomainLines()
	if err := accounting.ValidateVoucherLines(lines); err != nil {
		return nil, err
	}

	if req.ThirdPartyID != nil {
		if _, err := s.thirdPartyRepo.FindThirdPartyByID(ctx, *req.ThirdPartyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("third party", *req.ThirdPartyID)
			}
			return nil, err
		}
	}
	if err := s.checkAccounts(ctx, lines); err != nil {
		return nil, err
	}

	totals, computed := accounting.ComputeVoucherTotals(lines)
	voucherID := uuid.NewString()
	for i := range computed {
		computed[i].ID = uuid.NewString()
		computed[i].VoucherID = voucherID
	}

	now := s.Now()
	voucher := domain.Voucher{
		ID:            voucherID,
		Type:          req.Type,
		Date:          date,
		ThirdPartyID:  req.ThirdPartyID,
		Description:   req.Description,
		Lines:         computed,
		VoucherTotals: totals,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		s.LogError(ctx, err, "Failed to save voucher",
			slog.String("voucher_id", voucherID))
		return nil, err
	}

	s.LogInfo(ctx, "Voucher created",
		slog.String("voucher_id", voucherID),
		slog.String("voucher_type", string(voucher.Type)),
		slog.String("total", voucher.Total.StringFixed(2)))
	return &voucher, nil
}

func (s *voucherService) checkAccounts(ctx context.Context, lines []domain.VoucherLine) error {
	seen := make(map[string]struct{})
	codes := []string{}
	for _, l := range lines {
		if l.AccountCode == nil {
			continue
		}
		if _, ok := seen[*l.AccountCode]; ok {
			continue
		}
		seen[*l.AccountCode] = struct{}{}
		codes = append(codes, *l.AccountCode)
	}
	if len(codes) == 0 {
		return nil
	}
	sort.Strings(codes)

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		return err
	}
	for _, code := range codes {
		if _, ok := accounts[code]; !ok {
			return apperrors.NewNotFoundError("account", code)
		}
	}
	return nil
}

func (s *voucherService) GetVoucherByID(ctx context.Context, id string, userID string) (*domain.Voucher, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermRead); err != nil {
		return nil, err
	}
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("voucher", id)
		}
		s.LogError(ctx, err, "Failed to find voucher",
			slog.String("voucher_id", id))
		return nil, err
	}
	return voucher, nil
}

func (s *voucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams, userID string) ([]domain.Voucher, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.PermRead); err != nil {
		return nil, err
	}
	if params.Type != nil && !domain.IsValidVoucherType(*params.Type) {
		return nil, apperrors.NewValidationError("invalid voucher type %q", *params.Type)
	}
	vouchers, err := s.voucherRepo.ListVouchers(ctx, params.Type)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers")
		return nil, err
	}
	if vouchers == nil {
		return []domain.Voucher{}, nil
	}
	return vouchers, nil
}
