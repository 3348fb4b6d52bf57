package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
)

// PostgresIjazaRepository implements the IjazaRepository interface.
// Bilingual fields are stored as JSONB objects ({"en": ..., "ar": ...}).
type PostgresIjazaRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewIjazaRepository creates a new ijaza repository
func NewIjazaRepository(config *RepositoryConfig) repositories.IjazaRepository {
	return &PostgresIjazaRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// List retrieves all ijazat, most recent year first
func (r *PostgresIjazaRepository) List(ctx context.Context) ([]models.Ijaza, error) {
	query := `
		SELECT id, title, issuer, description, year, category, pdf_url, created_at
		FROM ijazat
		ORDER BY year DESC, created_at DESC
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ijazat: %w", err)
	}
	defer rows.Close()

	ijazat := []models.Ijaza{}
	for rows.Next() {
		var ijaza models.Ijaza
		err := rows.Scan(
			&ijaza.ID,
			&ijaza.Title,
			&ijaza.Issuer,
			&ijaza.Description,
			&ijaza.Year,
			&ijaza.Category,
			&ijaza.PDFURL,
			&ijaza.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ijaza: %w", err)
		}
		ijazat = append(ijazat, ijaza)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ijazat: %w", err)
	}

	return ijazat, nil
}

// Create inserts an ijaza
func (r *PostgresIjazaRepository) Create(ctx context.Context, ijaza *models.Ijaza) error {
	query := `
		INSERT INTO ijazat (title, issuer, description, year, category, pdf_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		ijaza.Title,
		ijaza.Issuer,
		ijaza.Description,
		ijaza.Year,
		ijaza.Category,
		ijaza.PDFURL,
		ijaza.CreatedAt,
	).Scan(&ijaza.ID, &ijaza.CreatedAt)

	if err != nil {
		if IsPgCheckViolation(err) {
			return domain.NewValidationError(constraintField(pgConstraint(err)), "violates a data constraint")
		}
		return fmt.Errorf("create ijaza: %w", err)
	}

	return nil
}

// Delete removes an ijaza
func (r *PostgresIjazaRepository) Delete(ctx context.Context, id string) error {
	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, `DELETE FROM ijazat WHERE id = $1`, id)
	if err != nil {
		if IsPgInvalidTextError(err) {
			return &domain.NotFoundError{ResourceType: "ijaza", ID: id}
		}
		return fmt.Errorf("delete ijaza: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{ResourceType: "ijaza", ID: id}
	}

	return nil
}
