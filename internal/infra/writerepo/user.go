package writerepo

import (
	"context"

	"takeout-api/internal/domain/user"
	"takeout-api/internal/infra"
	"takeout-api/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const insertUser = `
INSERT INTO users (id, email, password_hash, display_name, phone, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, insertUser,
		u.ID(), u.Email().String(), u.PasswordHash(), u.DisplayName(),
		u.Phone(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return u.ID(), nil
}

const updateLastLogin = `
UPDATE users
SET last_login = now(), updated_at = now()
WHERE id = $1
`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, updateLastLogin, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
