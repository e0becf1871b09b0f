package repository

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TokenRepository interface {
	Create(ctx context.Context, token *entity.Token) error
	FindByToken(ctx context.Context, token string) (*entity.Token, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Token, error)
}

type tokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTokenRepository(db database.PgxIface, log *zap.Logger) TokenRepository {
	return &tokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "token")),
	}
}

func (r *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	query := `
		INSERT INTO tokens (id, user_id, token, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create token",
			zap.Error(err),
			zap.String("user_id", token.UserID.String()),
		)
		return fmt.Errorf("create token for user %s: %w", token.UserID.String(), err)
	}

	return nil
}

func (r *tokenRepository) FindByToken(ctx context.Context, token string) (*entity.Token, error) {
	query := `
		SELECT id, user_id, token, created_at
		FROM tokens
		WHERE token = $1
	`

	var t entity.Token
	err := r.db.QueryRow(ctx, query, token).Scan(
		&t.ID,
		&t.UserID,
		&t.Token,
		&t.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find token", zap.Error(err))
		return nil, fmt.Errorf("find token: %w", err)
	}

	return &t, nil
}

func (r *tokenRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Token, error) {
	query := `
		SELECT id, user_id, token, created_at
		FROM tokens
		WHERE user_id = $1
	`

	var t entity.Token
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&t.ID,
		&t.UserID,
		&t.Token,
		&t.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find token by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find token by user ID %s: %w", userID.String(), err)
	}

	return &t, nil
}
