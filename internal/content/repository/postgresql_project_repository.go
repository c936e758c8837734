// Package repository provides PostgreSQL and MySQL persistence for site content.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
	"github.com/trivalleytech/site-api/internal/database"
	apperrors "github.com/trivalleytech/site-api/internal/errors"
)

// PostgreSQLProjectRepository implements Project persistence for PostgreSQL.
// List columns (technologies, features) are stored as JSON text.
type PostgreSQLProjectRepository struct {
	db *sql.DB
}

// NewPostgreSQLProjectRepository creates a new PostgreSQL Project repository.
func NewPostgreSQLProjectRepository(db *sql.DB) *PostgreSQLProjectRepository {
	return &PostgreSQLProjectRepository{db: db}
}

// Create inserts a new Project into the PostgreSQL database.
func (p *PostgreSQLProjectRepository) Create(ctx context.Context, project *contentDomain.Project) error {
	querier := database.GetTx(ctx, p.db)

	technologiesJSON, featuresJSON, err := marshalProjectLists(project)
	if err != nil {
		return err
	}

	query := `INSERT INTO projects (id, title, short_description, description, overview, category,
			  status, technologies, features, github_link, website_link, documentation_link,
			  project_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = querier.ExecContext(
		ctx,
		query,
		project.ID,
		project.Title,
		project.ShortDescription,
		project.Description,
		project.Overview,
		project.Category,
		project.Status,
		technologiesJSON,
		featuresJSON,
		project.GithubLink,
		project.WebsiteLink,
		project.DocumentationLink,
		project.ProjectDate,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create project")
	}
	return nil
}

// GetByID retrieves a Project by ID from the PostgreSQL database.
func (p *PostgreSQLProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*contentDomain.Project, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, short_description, description, overview, category, status,
			  technologies, features, github_link, website_link, documentation_link,
			  project_date, created_at, updated_at
			  FROM projects WHERE id = $1`

	project, err := scanProject(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contentDomain.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get project")
	}
	return project, nil
}

// Update modifies an existing Project in the PostgreSQL database.
func (p *PostgreSQLProjectRepository) Update(ctx context.Context, project *contentDomain.Project) error {
	querier := database.GetTx(ctx, p.db)

	technologiesJSON, featuresJSON, err := marshalProjectLists(project)
	if err != nil {
		return err
	}

	query := `UPDATE projects
			  SET title = $1,
			  	  short_description = $2,
			  	  description = $3,
			  	  overview = $4,
			  	  category = $5,
			  	  status = $6,
			  	  technologies = $7,
			  	  features = $8,
			  	  github_link = $9,
			  	  website_link = $10,
			  	  documentation_link = $11,
			  	  project_date = $12,
			  	  updated_at = $13
			  WHERE id = $14`

	result, err := querier.ExecContext(
		ctx,
		query,
		project.Title,
		project.ShortDescription,
		project.Description,
		project.Overview,
		project.Category,
		project.Status,
		technologiesJSON,
		featuresJSON,
		project.GithubLink,
		project.WebsiteLink,
		project.DocumentationLink,
		project.ProjectDate,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update project")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return contentDomain.ErrProjectNotFound
	}
	return nil
}

// Delete removes a Project by ID from the PostgreSQL database.
func (p *PostgreSQLProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM projects WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete project")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return contentDomain.ErrProjectNotFound
	}
	return nil
}

// List retrieves Projects ordered by creation time (newest first) with pagination.
func (p *PostgreSQLProjectRepository) List(ctx context.Context, offset, limit int) ([]*contentDomain.Project, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, short_description, description, overview, category, status,
			  technologies, features, github_link, website_link, documentation_link,
			  project_date, created_at, updated_at
			  FROM projects
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list projects")
	}
	defer func() { _ = rows.Close() }()

	var projects []*contentDomain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan project")
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate projects")
	}
	return projects, nil
}

// DeleteAll removes every Project and returns the number of deleted rows.
func (p *PostgreSQLProjectRepository) DeleteAll(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM projects`)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete all projects")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get rows affected")
	}
	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func marshalProjectLists(project *contentDomain.Project) ([]byte, []byte, error) {
	technologiesJSON, err := json.Marshal(project.Technologies)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal technologies")
	}
	featuresJSON, err := json.Marshal(project.Features)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal features")
	}
	return technologiesJSON, featuresJSON, nil
}

func scanProject(row rowScanner) (*contentDomain.Project, error) {
	var project contentDomain.Project
	var technologiesJSON, featuresJSON []byte

	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.ShortDescription,
		&project.Description,
		&project.Overview,
		&project.Category,
		&project.Status,
		&technologiesJSON,
		&featuresJSON,
		&project.GithubLink,
		&project.WebsiteLink,
		&project.DocumentationLink,
		&project.ProjectDate,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(technologiesJSON) > 0 {
		if err := json.Unmarshal(technologiesJSON, &project.Technologies); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal technologies")
		}
	}
	if len(featuresJSON) > 0 {
		if err := json.Unmarshal(featuresJSON, &project.Features); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal features")
		}
	}
	return &project, nil
}
