package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/SscSPs/contabilidad_app/internal/models"
	"github.com/SscSPs/contabilidad_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `user_id, full_name, role, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanProfile(row pgx.Row) (models.UserProfile, error) {
	var m models.UserProfile
	err := row.Scan(&m.UserID, &m.FullName, &m.Role, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *PgxUserRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	m := mapping.ToModelUserProfile(profile)
	query := `INSERT INTO user_profiles (` + profileColumns + `) VALUES ($1, $2, $3, $4, $5);`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.FullName, m.Role, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to save profile for user "+m.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) FindProfileByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1;`
	m, err := scanProfile(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user", userID)
		}
		return nil, apperrors.NewAppError(500, "failed to find profile for user "+userID, err)
	}
	p := mapping.ToDomainUserProfile(m)
	return &p, nil
}

func (r *PgxUserRepository) ListProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+profileColumns+` FROM user_profiles ORDER BY created_at DESC;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query user profiles", err)
	}
	defer rows.Close()

	profiles := []domain.UserProfile{}
	for rows.Next() {
		m, err := scanProfile(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user profile row", err)
		}
		profiles = append(profiles, mapping.ToDomainUserProfile(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user profile rows", err)
	}
	return profiles, nil
}

// UpdateRole changes a user's role. A missing profile is reported as not found.
func (r *PgxUserRepository) UpdateRole(ctx context.Context, userID string, role domain.Role, updatedAt time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE user_profiles SET role = $2, updated_at = $3 WHERE user_id = $1;`, userID, string(role), updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update role of user "+userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user", userID)
	}
	return nil
}
