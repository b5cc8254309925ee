package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	voucherColumns     = `id, voucher_type, voucher_date, third_party_id, description, subtotal, iva, retention, total, created_at, created_by, last_updated_at, last_updated_by`
	voucherLineColumns = `id, voucher_id, line_no, description, account_code, quantity, unit_price, iva_rate, retention_rate, subtotal, iva, retention`
)

type PgxVoucherRepository struct {
	BaseRepository
}

func newPgxVoucherRepository(pool *pgxpool.Pool) *PgxVoucherRepository {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)
	_ portsrepo.TaxRateReader           = (*PgxVoucherRepository)(nil)
)

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.ID, &m.VoucherType, &m.VoucherDate, &m.ThirdPartyID, &m.Description,
		&m.Subtotal, &m.IVA, &m.Retention, &m.Total,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func scanVoucherLine(row pgx.Row) (models.VoucherLine, error) {
	var m models.VoucherLine
	err := row.Scan(
		&m.ID, &m.VoucherID, &m.LineNo, &m.Description, &m.AccountCode,
		&m.Quantity, &m.UnitPrice, &m.IVARate, &m.RetentionRate,
		&m.Subtotal, &m.IVA, &m.Retention,
	)
	return m, err
}

// SaveVoucher inserts the voucher and its lines in a single transaction.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelVoucher(voucher)
	query := `INSERT INTO vouchers (` + voucherColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err = tx.Exec(ctx, query,
		m.ID, m.VoucherType, m.VoucherDate, m.ThirdPartyID, m.Description,
		m.Subtotal, m.IVA, m.Retention, m.Total,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert voucher "+m.ID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `INSERT INTO voucher_lines (` + voucherLineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	for _, l := range mapping.ToModelVoucherLines(voucher.Lines) {
		batch.Queue(lineQuery,
			l.ID, l.VoucherID, l.LineNo, l.Description, l.AccountCode,
			l.Quantity, l.UnitPrice, l.IVARate, l.RetentionRate,
			l.Subtotal, l.IVA, l.Retention,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for voucher "+m.ID, err)
	}

	return r.Commit(ctx, tx)
}

// FindVoucherByID retrieves a voucher with its lines.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, id string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher "+id, err)
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+voucherLineColumns+` FROM voucher_lines WHERE voucher_id = $1 ORDER BY line_no;`, id)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines of voucher "+id, err)
	}
	defer rows.Close()

	voucher := mapping.ToDomainVoucher(m)
	for rows.Next() {
		l, err := scanVoucherLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher line row", err)
		}
		voucher.Lines = append(voucher.Lines, mapping.ToDomainVoucherLine(l))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating voucher line rows", err)
	}
	return &voucher, nil
}

// ListVouchers returns voucher headers newest first. Lines are not loaded.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, voucherType *domain.VoucherType) ([]domain.Voucher, error) {
	var typeFilter *string
	if voucherType != nil {
		t := string(*voucherType)
		typeFilter = &t
	}
	query := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE ($1::text IS NULL OR voucher_type = $1)
		ORDER BY voucher_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, typeFilter)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vouchers", err)
	}
	defer rows.Close()

	vouchers := []domain.Voucher{}
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher row", err)
		}
		vouchers = append(vouchers, mapping.ToDomainVoucher(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating voucher rows", err)
	}
	return vouchers, nil
}

// ListActiveTaxRates returns the configured rates grouped by tax type.
func (r *PgxVoucherRepository) ListActiveTaxRates(ctx context.Context) ([]domain.TaxRate, error) {
	query := `SELECT id, name, tax_type, rate, is_active FROM tax_rates WHERE is_active ORDER BY tax_type, rate;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax rates", err)
	}
	defer rows.Close()

	rates := []domain.TaxRate{}
	for rows.Next() {
		var m models.TaxRate
		if err := rows.Scan(&m.ID, &m.Name, &m.TaxType, &m.Rate, &m.IsActive); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax rate row", err)
		}
		rates = append(rates, mapping.ToDomainTaxRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax rate rows", err)
	}
	return rates, nil
}
