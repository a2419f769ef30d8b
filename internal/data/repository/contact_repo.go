package repository

import (
	"context"
	"fmt"

	"coffee-booking/internal/data/entity"
	"coffee-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.ContactSubmission) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactSubmission, error)
	FindAll(ctx context.Context, status *entity.ContactStatus, limit, offset int) ([]*entity.ContactSubmission, error)
	Count(ctx context.Context, status *entity.ContactStatus) (int64, error)
	UpdateStatus(ctx context.Context, contactID uuid.UUID, status entity.ContactStatus) error
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

const contactColumns = `id, name, email, message, status, created_at, updated_at`

func scanContact(row pgx.Row) (*entity.ContactSubmission, error) {
	var contact entity.ContactSubmission
	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Message,
		&contact.Status,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Message,
		contact.Status,
		contact.CreatedAt,
		contact.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create contact submission",
			zap.Error(err),
			zap.String("email", contact.Email),
		)
		return fmt.Errorf("create contact submission: %w", err)
	}

	return nil
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactSubmission, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact_submissions WHERE id = $1`, contactColumns)

	contact, err := scanContact(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contact submission by ID",
			zap.Error(err),
			zap.String("contact_id", id.String()),
		)
		return nil, fmt.Errorf("find contact submission by ID %s: %w", id.String(), err)
	}

	return contact, nil
}

func (r *contactRepository) FindAll(ctx context.Context, status *entity.ContactStatus, limit, offset int) ([]*entity.ContactSubmission, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM contact_submissions
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, contactColumns)

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to list contact submissions", zap.Error(err))
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var contacts []*entity.ContactSubmission
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			r.log.Error("Failed to scan contact submission row", zap.Error(err))
			return nil, fmt.Errorf("scan contact submission row: %w", err)
		}
		contacts = append(contacts, contact)
	}

	return contacts, nil
}

func (r *contactRepository) Count(ctx context.Context, status *entity.ContactStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions WHERE ($1::text IS NULL OR status = $1)`,
		status,
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count contact submissions", zap.Error(err))
		return 0, fmt.Errorf("count contact submissions: %w", err)
	}

	return count, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, contactID uuid.UUID, status entity.ContactStatus) error {
	query := `UPDATE contact_submissions SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, contactID, status)
	if err != nil {
		r.log.Error("Failed to update contact submission status",
			zap.Error(err),
			zap.String("contact_id", contactID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update contact submission %s status to %s: %w", contactID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact submission %s not found", contactID.String())
	}

	return nil
}
