package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const thirdPartyColumns = `id, document_type, document_number, check_digit, full_name, email, phone, address, city,
	is_client, is_provider, is_employee, created_at, created_by, last_updated_at, last_updated_by`

type PgxThirdPartyRepository struct {
	BaseRepository
}

func newPgxThirdPartyRepository(pool *pgxpool.Pool) portsrepo.ThirdPartyRepositoryFacade {
	return &PgxThirdPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ThirdPartyRepositoryFacade = (*PgxThirdPartyRepository)(nil)

func scanThirdParty(row pgx.Row) (models.ThirdParty, error) {
	var m models.ThirdParty
	err := row.Scan(
		&m.ID,
		&m.DocumentType,
		&m.DocumentNumber,
		&m.CheckDigit,
		&m.FullName,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.City,
		&m.IsClient,
		&m.IsProvider,
		&m.IsEmployee,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveThirdParty inserts a new third party. (document_type, document_number) is unique.
func (r *PgxThirdPartyRepository) SaveThirdParty(ctx context.Context, party domain.ThirdParty) error {
	m := mapping.ToModelThirdParty(party)
	query := `
		INSERT INTO third_parties (` + thirdPartyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.DocumentType,
		m.DocumentNumber,
		m.CheckDigit,
		m.FullName,
		m.Email,
		m.Phone,
		m.Address,
		m.City,
		m.IsClient,
		m.IsProvider,
		m.IsEmployee,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: third party %s %s already exists", apperrors.ErrDuplicate, m.DocumentType, m.DocumentNumber)
		}
		return apperrors.NewAppError(500, "failed to save third party "+m.ID, err)
	}
	return nil
}

// FindThirdPartyByID retrieves a third party by ID.
func (r *PgxThirdPartyRepository) FindThirdPartyByID(ctx context.Context, id string) (*domain.ThirdParty, error) {
	query := `SELECT ` + thirdPartyColumns + ` FROM third_parties WHERE id = $1;`
	m, err := scanThirdParty(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("third party", id)
		}
		return nil, apperrors.NewAppError(500, "failed to find third party "+id, err)
	}
	party := mapping.ToDomainThirdParty(m)
	return &party, nil
}

// ListThirdParties returns every third party ordered by name.
func (r *PgxThirdPartyRepository) ListThirdParties(ctx context.Context) ([]domain.ThirdParty, error) {
	query := `SELECT ` + thirdPartyColumns + ` FROM third_parties ORDER BY full_name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list third parties", err)
	}
	defer rows.Close()

	parties := []domain.ThirdParty{}
	for rows.Next() {
		m, err := scanThirdParty(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan third party row", err)
		}
		parties = append(parties, mapping.ToDomainThirdParty(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating third party rows", err)
	}
	return parties, nil
}
