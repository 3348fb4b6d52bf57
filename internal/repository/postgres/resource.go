package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
)

const resourceColumns = `
	r.id, r.title, r.description, r.type, r.language, r.category, r.tags, r.url,
	r.cover_image_url, r.collection_id, r.created_at, r.updated_at,
	c.id, c.name, c.collection_content_type`

// PostgresResourceRepository implements the ResourceRepository interface
type PostgresResourceRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(config *RepositoryConfig) repositories.ResourceRepository {
	return &PostgresResourceRepository{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// List retrieves resources joined with their collection, newest first
func (r *PostgresResourceRepository) List(ctx context.Context, q repositories.ResourceQuery) ([]models.Resource, error) {
	var (
		sb   strings.Builder
		args []interface{}
	)
	sb.WriteString("SELECT " + resourceColumns + `
		FROM resources r
		LEFT JOIN collections c ON c.id = r.collection_id`)
	if q.CollectionID != nil {
		args = append(args, *q.CollectionID)
		sb.WriteString(fmt.Sprintf("\n\t\tWHERE r.collection_id = $%d", len(args)))
	}
	sb.WriteString("\n\t\tORDER BY r.created_at DESC, r.id DESC")
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sb.WriteString(fmt.Sprintf("\n\t\tLIMIT $%d", len(args)))
	}

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, sb.String(), args...)
	if err != nil {
		if IsPgInvalidTextError(err) {
			return []models.Resource{}, nil
		}
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		resources = append(resources, *resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources: %w", err)
	}

	return resources, nil
}

// GetByID retrieves a resource by ID
func (r *PostgresResourceRepository) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	query := "SELECT " + resourceColumns + `
		FROM resources r
		LEFT JOIN collections c ON c.id = r.collection_id
		WHERE r.id = $1`

	executor := GetExecutor(ctx, r.pool)
	resource, err := scanResource(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidTextError(err) {
			return nil, &domain.NotFoundError{ResourceType: "resource", ID: id}
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}

	return resource, nil
}

// FindIDByURL returns the id of another resource using url
func (r *PostgresResourceRepository) FindIDByURL(ctx context.Context, url, excludeID string) (string, error) {
	query := `
		SELECT id FROM resources
		WHERE url = $1 AND ($2 = '' OR id::text <> $2)
		LIMIT 1
	`

	var id string
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, url, excludeID).Scan(&id)
	if err != nil {
		if IsPgNoRowsError(err) {
			return "", nil
		}
		return "", fmt.Errorf("find resource by url: %w", err)
	}

	return id, nil
}

// Create creates a new resource
func (r *PostgresResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (
			title, description, type, language, category, tags, url,
			cover_image_url, collection_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, '{}'::text[]), $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		resource.Title,
		resource.Description,
		resource.Type,
		resource.Language,
		resource.Category,
		resource.Tags,
		resource.URL,
		resource.CoverImageURL,
		resource.CollectionID,
		resource.CreatedAt,
		resource.UpdatedAt,
	).Scan(&resource.ID, &resource.CreatedAt, &resource.UpdatedAt)

	if err != nil {
		return r.translateWriteError(ctx, err, resource, "create resource")
	}

	return nil
}

// Update overwrites the mutable columns of a resource
func (r *PostgresResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	query := `
		UPDATE resources
		SET title = $1, description = $2, type = $3, language = $4, category = $5,
			tags = COALESCE($6, '{}'::text[]), url = $7, cover_image_url = $8, collection_id = $9, updated_at = $10
		WHERE id = $11
		RETURNING updated_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		resource.Title,
		resource.Description,
		resource.Type,
		resource.Language,
		resource.Category,
		resource.Tags,
		resource.URL,
		resource.CoverImageURL,
		resource.CollectionID,
		resource.UpdatedAt,
		resource.ID,
	).Scan(&resource.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return &domain.NotFoundError{ResourceType: "resource", ID: resource.ID}
		}
		return r.translateWriteError(ctx, err, resource, "update resource")
	}

	return nil
}

// Delete hard-deletes a resource
func (r *PostgresResourceRepository) Delete(ctx context.Context, id string) error {
	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		if IsPgInvalidTextError(err) {
			return &domain.NotFoundError{ResourceType: "resource", ID: id}
		}
		return fmt.Errorf("delete resource: %w", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{ResourceType: "resource", ID: id}
	}

	return nil
}

// UnlinkCollection sets collection_id to NULL on every member of a collection
func (r *PostgresResourceRepository) UnlinkCollection(ctx context.Context, collectionID string) (int64, error) {
	query := `
		UPDATE resources
		SET collection_id = NULL, updated_at = NOW()
		WHERE collection_id = $1
	`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, collectionID)
	if err != nil {
		if IsPgInvalidTextError(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("unlink collection resources: %w", err)
	}

	return result.RowsAffected(), nil
}

// translateWriteError maps constraint violations onto the domain taxonomy
func (r *PostgresResourceRepository) translateWriteError(ctx context.Context, err error, resource *models.Resource, op string) error {
	switch {
	case IsPgDuplicateError(err):
		existingID, findErr := r.FindIDByURL(ctx, resource.URL, resource.ID)
		if findErr != nil {
			r.logger.Warn("could not look up conflicting resource", "error", findErr)
		}
		return domain.NewResourceURLConflict(existingID)
	case IsPgForeignKeyError(err):
		return domain.NewValidationError("collection_id", "collection does not exist")
	case IsPgInvalidTextError(err):
		return domain.NewValidationError("collection_id", "must be a valid UUID")
	case IsPgCheckViolation(err):
		return domain.NewValidationError(constraintField(pgConstraint(err)), "violates a data constraint")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// scanResource reads one row selected with resourceColumns
func scanResource(row pgx.Row) (*models.Resource, error) {
	var (
		resource       models.Resource
		refID, refName *string
		refContentType *models.ContentType
	)
	err := row.Scan(
		&resource.ID,
		&resource.Title,
		&resource.Description,
		&resource.Type,
		&resource.Language,
		&resource.Category,
		&resource.Tags,
		&resource.URL,
		&resource.CoverImageURL,
		&resource.CollectionID,
		&resource.CreatedAt,
		&resource.UpdatedAt,
		&refID,
		&refName,
		&refContentType,
	)
	if err != nil {
		return nil, err
	}

	if refID != nil {
		resource.Collection = &models.CollectionRef{ID: *refID}
		if refName != nil {
			resource.Collection.Name = *refName
		}
		if refContentType != nil {
			resource.Collection.ContentType = *refContentType
		}
	}
	return &resource, nil
}

// constraintField maps a CHECK constraint name (<table>_<column>_check) to its column.
func constraintField(constraint string) string {
	name := strings.TrimSuffix(constraint, "_check")
	for _, table := range []string{"resources_", "collections_", "questions_", "ijazat_"} {
		if strings.HasPrefix(name, table) {
			return strings.TrimPrefix(name, table)
		}
	}
	if name == "" {
		return "body"
	}
	return name
}
