package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
	"github.com/trivalleytech/site-api/internal/database"
	apperrors "github.com/trivalleytech/site-api/internal/errors"
)

// projectDateLayout is the wire format for ProjectInput.ProjectDate.
const projectDateLayout = "2006-01-02"

// projectUseCase implements the ProjectUseCase interface.
type projectUseCase struct {
	txManager   database.TxManager
	projectRepo ProjectRepository
}

// NewProjectUseCase creates a new project use case.
func NewProjectUseCase(txManager database.TxManager, projectRepo ProjectRepository) ProjectUseCase {
	return &projectUseCase{
		txManager:   txManager,
		projectRepo: projectRepo,
	}
}

// Create adds a new project to the showcase.
func (u *projectUseCase) Create(ctx context.Context, input *ProjectInput) (*contentDomain.Project, error) {
	now := time.Now().UTC()

	projectDate, err := parseProjectDate(input.ProjectDate, now)
	if err != nil {
		return nil, err
	}

	project := &contentDomain.Project{
		ID:                uuid.Must(uuid.NewV7()),
		Title:             input.Title,
		ShortDescription:  input.ShortDescription,
		Description:       input.Description,
		Overview:          input.Overview,
		Category:          input.Category,
		Status:            input.Status,
		Technologies:      input.Technologies,
		Features:          input.Features,
		GithubLink:        input.GithubLink,
		WebsiteLink:       input.WebsiteLink,
		DocumentationLink: input.DocumentationLink,
		ProjectDate:       projectDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Get retrieves a project by ID.
func (u *projectUseCase) Get(ctx context.Context, id uuid.UUID) (*contentDomain.Project, error) {
	return u.projectRepo.GetByID(ctx, id)
}

// Update replaces the writable fields of an existing project. The read and
// write run in one transaction so concurrent updates cannot interleave.
func (u *projectUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *ProjectInput,
) (*contentDomain.Project, error) {
	var updated *contentDomain.Project

	err := u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		project, err := u.projectRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		projectDate, err := parseProjectDate(input.ProjectDate, project.ProjectDate)
		if err != nil {
			return err
		}

		project.Title = input.Title
		project.ShortDescription = input.ShortDescription
		project.Description = input.Description
		project.Overview = input.Overview
		project.Category = input.Category
		project.Status = input.Status
		project.Technologies = input.Technologies
		project.Features = input.Features
		project.GithubLink = input.GithubLink
		project.WebsiteLink = input.WebsiteLink
		project.DocumentationLink = input.DocumentationLink
		project.ProjectDate = projectDate
		project.UpdatedAt = now

		if err := u.projectRepo.Update(txCtx, project); err != nil {
			return err
		}

		updated = project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a project.
func (u *projectUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.projectRepo.Delete(ctx, id)
}

// List returns projects newest first.
func (u *projectUseCase) List(ctx context.Context, offset, limit int) ([]*contentDomain.Project, error) {
	return u.projectRepo.List(ctx, offset, limit)
}

// Clear deletes every project and returns the number removed.
func (u *projectUseCase) Clear(ctx context.Context) (int64, error) {
	var count int64
	err := u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		count, err = u.projectRepo.DeleteAll(txCtx)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// parseProjectDate parses a YYYY-MM-DD value, falling back when empty.
func parseProjectDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	parsed, err := time.Parse(projectDateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidInput, "project_date must be YYYY-MM-DD")
	}
	return parsed.UTC(), nil
}
