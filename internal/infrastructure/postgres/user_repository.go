package postgres

import (
	"context"
	"fmt"

	"github.com/solnascente/frontdesk-api/internal/domain"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/internal/domain/repository"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, email, password_hash, name, role, status, created_at, updated_at`

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil sin error si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.scanOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail busca un usuario por email; nil sin error si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.scanOne(`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

// CountByRole cuenta los usuarios activos con el rol dado.
func (r *UserRepo) CountByRole(role string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE role = $1 AND status = 'active'`
	if err := r.db.QueryRow(context.Background(), query, role).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return count, nil
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
