package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, login, password_hash, full_name, student_code, card_number, email, is_staff, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.FullName, &user.StudentCode,
		&user.CardNumber, &user.Email, &user.IsStaff, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE login = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, login))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash, full_name, student_code, card_number, email, is_staff)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + userColumns + `
    `
	created, err := scanUser(r.db.QueryRow(ctx, query,
		user.Login, user.PasswordHash, user.FullName, user.StudentCode,
		user.CardNumber, user.Email, user.IsStaff,
	))
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}
