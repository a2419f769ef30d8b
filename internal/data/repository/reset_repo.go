package repository

import (
	"context"
	"fmt"

	"coffee-booking/internal/data/entity"
	"coffee-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, reset *entity.PasswordReset) error
	FindValidToken(ctx context.Context, token string) (*entity.PasswordReset, error)
	MarkUsed(ctx context.Context, token string) error
}

type passwordResetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPasswordResetRepository(db database.PgxIface, log *zap.Logger) PasswordResetRepository {
	return &passwordResetRepository{
		db:  db,
		log: log.With(zap.String("repository", "password_reset")),
	}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	query := `
		INSERT INTO password_resets (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		reset.ID,
		reset.UserID,
		reset.Token,
		reset.ExpiresAt,
		reset.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create password reset",
			zap.Error(err),
			zap.String("user_id", reset.UserID.String()),
		)
		return fmt.Errorf("create password reset: %w", err)
	}

	return nil
}

func (r *passwordResetRepository) FindValidToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	query := `
		SELECT id, user_id, token, expires_at, used_at, created_at
		FROM password_resets
		WHERE token = $1
		  AND used_at IS NULL
		  AND expires_at > NOW()
	`

	var reset entity.PasswordReset
	err := r.db.QueryRow(ctx, query, token).Scan(
		&reset.ID,
		&reset.UserID,
		&reset.Token,
		&reset.ExpiresAt,
		&reset.UsedAt,
		&reset.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find password reset token", zap.Error(err))
		return nil, fmt.Errorf("find password reset token: %w", err)
	}

	return &reset, nil
}

func (r *passwordResetRepository) MarkUsed(ctx context.Context, token string) error {
	query := `UPDATE password_resets SET used_at = NOW() WHERE token = $1 AND used_at IS NULL`

	result, err := r.db.Exec(ctx, query, token)
	if err != nil {
		r.log.Error("Failed to mark password reset used", zap.Error(err))
		return fmt.Errorf("mark password reset used: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("password reset token not found")
	}

	return nil
}
