package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
)

const collectionColumns = `
	id, name, description, cover_image_url, language, category,
	collection_content_type, created_at, updated_at`

// PostgresCollectionRepository implements the CollectionRepository interface
type PostgresCollectionRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(config *RepositoryConfig) repositories.CollectionRepository {
	return &PostgresCollectionRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// List retrieves all collections ordered by name
func (r *PostgresCollectionRepository) List(ctx context.Context) ([]models.Collection, error) {
	query := "SELECT " + collectionColumns + `
		FROM collections
		ORDER BY name ASC, id ASC`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	collections := []models.Collection{}
	for rows.Next() {
		collection, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		collections = append(collections, *collection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collections: %w", err)
	}

	return collections, nil
}

// GetByID retrieves a collection by ID
func (r *PostgresCollectionRepository) GetByID(ctx context.Context, id string) (*models.Collection, error) {
	query := "SELECT " + collectionColumns + `
		FROM collections
		WHERE id = $1`

	executor := GetExecutor(ctx, r.pool)
	collection, err := scanCollection(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidTextError(err) {
			return nil, &domain.NotFoundError{ResourceType: "collection", ID: id}
		}
		return nil, fmt.Errorf("get collection: %w", err)
	}

	return collection, nil
}

// FindIDByKey looks up a collection by its uniqueness triple. A NULL category
// matches only NULL, mirroring the NULLS NOT DISTINCT constraint.
func (r *PostgresCollectionRepository) FindIDByKey(ctx context.Context, key repositories.CollectionKey, excludeID string) (string, error) {
	query := `
		SELECT id FROM collections
		WHERE name = $1
			AND collection_content_type = $2
			AND category IS NOT DISTINCT FROM $3
			AND ($4 = '' OR id::text <> $4)
		LIMIT 1
	`

	var id string
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, key.Name, key.ContentType, key.Category, excludeID).Scan(&id)
	if err != nil {
		if IsPgNoRowsError(err) {
			return "", nil
		}
		return "", fmt.Errorf("find collection by key: %w", err)
	}

	return id, nil
}

// Create creates a new collection
func (r *PostgresCollectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	query := `
		INSERT INTO collections (
			name, description, cover_image_url, language, category,
			collection_content_type, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		collection.Name,
		collection.Description,
		collection.CoverImageURL,
		collection.Language,
		collection.Category,
		collection.ContentType,
		collection.CreatedAt,
		collection.UpdatedAt,
	).Scan(&collection.ID, &collection.CreatedAt, &collection.UpdatedAt)

	if err != nil {
		return r.translateWriteError(ctx, err, collection, "create collection")
	}

	return nil
}

// Update overwrites the mutable columns of a collection
func (r *PostgresCollectionRepository) Update(ctx context.Context, collection *models.Collection) error {
	query := `
		UPDATE collections
		SET name = $1, description = $2, cover_image_url = $3, language = $4,
			category = $5, collection_content_type = $6, updated_at = $7
		WHERE id = $8
		RETURNING created_at, updated_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		collection.Name,
		collection.Description,
		collection.CoverImageURL,
		collection.Language,
		collection.Category,
		collection.ContentType,
		collection.UpdatedAt,
		collection.ID,
	).Scan(&collection.CreatedAt, &collection.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return &domain.NotFoundError{ResourceType: "collection", ID: collection.ID}
		}
		return r.translateWriteError(ctx, err, collection, "update collection")
	}

	return nil
}

// Delete removes a collection. Linked resources are detached by the
// ON DELETE SET NULL foreign key.
func (r *PostgresCollectionRepository) Delete(ctx context.Context, id string) error {
	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		if IsPgInvalidTextError(err) {
			return &domain.NotFoundError{ResourceType: "collection", ID: id}
		}
		return fmt.Errorf("delete collection: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{ResourceType: "collection", ID: id}
	}

	return nil
}

func (r *PostgresCollectionRepository) translateWriteError(ctx context.Context, err error, collection *models.Collection, op string) error {
	switch {
	case IsPgDuplicateError(err):
		key := repositories.CollectionKey{
			Name:        collection.Name,
			ContentType: collection.ContentType,
			Category:    collection.Category,
		}
		existingID, findErr := r.FindIDByKey(ctx, key, collection.ID)
		if findErr != nil {
			r.logger.Warn("could not look up conflicting collection", "error", findErr)
		}
		return domain.NewCollectionConflict(existingID)
	case IsPgCheckViolation(err):
		return domain.NewValidationError(constraintField(pgConstraint(err)), "violates a data constraint")
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanCollection(row pgx.Row) (*models.Collection, error) {
	var collection models.Collection
	err := row.Scan(
		&collection.ID,
		&collection.Name,
		&collection.Description,
		&collection.CoverImageURL,
		&collection.Language,
		&collection.Category,
		&collection.ContentType,
		&collection.CreatedAt,
		&collection.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &collection, nil
}
