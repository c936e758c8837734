package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
	"github.com/trivalleytech/site-api/internal/database"
	apperrors "github.com/trivalleytech/site-api/internal/errors"
)

// MySQLProjectRepository implements Project persistence for MySQL.
// UUIDs are stored as CHAR(36) strings and list columns as JSON text.
type MySQLProjectRepository struct {
	db *sql.DB
}

// NewMySQLProjectRepository creates a new MySQL Project repository.
func NewMySQLProjectRepository(db *sql.DB) *MySQLProjectRepository {
	return &MySQLProjectRepository{db: db}
}

// Create inserts a new Project into the MySQL database.
func (m *MySQLProjectRepository) Create(ctx context.Context, project *contentDomain.Project) error {
	querier := database.GetTx(ctx, m.db)

	technologiesJSON, featuresJSON, err := marshalProjectLists(project)
	if err != nil {
		return err
	}

	query := `INSERT INTO projects (id, title, short_description, description, overview, category,
			  status, technologies, features, github_link, website_link, documentation_link,
			  project_date, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		project.ID.String(),
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

// GetByID retrieves a Project by ID from the MySQL database.
func (m *MySQLProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*contentDomain.Project, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, short_description, description, overview, category, status,
			  technologies, features, github_link, website_link, documentation_link,
			  project_date, created_at, updated_at
			  FROM projects WHERE id = ?`

	project, err := scanProject(querier.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contentDomain.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get project")
	}
	return project, nil
}

// Update modifies an existing Project in the MySQL database.
func (m *MySQLProjectRepository) Update(ctx context.Context, project *contentDomain.Project) error {
	querier := database.GetTx(ctx, m.db)

	technologiesJSON, featuresJSON, err := marshalProjectLists(project)
	if err != nil {
		return err
	}

	query := `UPDATE projects
			  SET title = ?,
			  	  short_description = ?,
			  	  description = ?,
			  	  overview = ?,
			  	  category = ?,
			  	  status = ?,
			  	  technologies = ?,
			  	  features = ?,
			  	  github_link = ?,
			  	  website_link = ?,
			  	  documentation_link = ?,
			  	  project_date = ?,
			  	  updated_at = ?
			  WHERE id = ?`

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
		project.ID.String(),
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

// Delete removes a Project by ID from the MySQL database.
func (m *MySQLProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM projects WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id.String())
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
func (m *MySQLProjectRepository) List(ctx context.Context, offset, limit int) ([]*contentDomain.Project, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, short_description, description, overview, category, status,
			  technologies, features, github_link, website_link, documentation_link,
			  project_date, created_at, updated_at
			  FROM projects
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
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
func (m *MySQLProjectRepository) DeleteAll(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, m.db)

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
