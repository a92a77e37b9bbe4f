package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

type PostgesUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgesUserRepository {
	return &PostgesUserRepository{
		db: db,
	}
}

func (p *PostgesUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(ctx,
		query,
		user.Username,
		user.Password.Hash,
		string(user.Role)).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgesUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, password_hash, role
		FROM users
		WHERE username = $1`

	var user domain.User
	var role string

	err := p.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password.Hash,
		&role,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}

	user.Role = domain.Role(role)

	return &user, nil
}

func (p *PostgesUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool

	err := p.db.QueryRow(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
