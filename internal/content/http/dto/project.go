// Package dto provides data transfer objects for the content HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	contentDomain "github.com/trivalleytech/site-api/internal/content/domain"
	"github.com/trivalleytech/site-api/internal/content/usecase"
	appValidation "github.com/trivalleytech/site-api/internal/validation"
)

// ProjectRequest represents the API request for creating or updating a project.
type ProjectRequest struct {
	Title             string   `json:"title"`
	ShortDescription  string   `json:"short_description"`
	Description       string   `json:"description"`
	Overview          string   `json:"overview"`
	Category          string   `json:"category"`
	Status            string   `json:"status"`
	Technologies      []string `json:"technologies"`
	Features          []string `json:"features"`
	GithubLink        string   `json:"github_link"`
	WebsiteLink       string   `json:"website_link"`
	DocumentationLink string   `json:"documentation_link"`
	ProjectDate       string   `json:"project_date"`
}

// Validate validates the ProjectRequest using the jellydator/validation library.
func (r *ProjectRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&r.ShortDescription,
			validation.Length(0, 500).Error("short_description must be at most 500 characters"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100).Error("category must be between 1 and 100 characters"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(
				contentDomain.ProjectStatusActive,
				contentDomain.ProjectStatusCompleted,
				contentDomain.ProjectStatusArchived,
			).Error("status must be one of: active, completed, archived"),
		),
		validation.Field(&r.GithubLink, appValidation.IsHTTPURL),
		validation.Field(&r.WebsiteLink, appValidation.IsHTTPURL),
		validation.Field(&r.DocumentationLink, appValidation.IsHTTPURL),
		validation.Field(&r.ProjectDate,
			validation.Date("2006-01-02").Error("project_date must be YYYY-MM-DD"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToProjectInput converts a ProjectRequest DTO to a use case input.
func ToProjectInput(req ProjectRequest) *usecase.ProjectInput {
	return &usecase.ProjectInput{
		Title:             req.Title,
		ShortDescription:  req.ShortDescription,
		Description:       req.Description,
		Overview:          req.Overview,
		Category:          req.Category,
		Status:            req.Status,
		Technologies:      req.Technologies,
		Features:          req.Features,
		GithubLink:        req.GithubLink,
		WebsiteLink:       req.WebsiteLink,
		DocumentationLink: req.DocumentationLink,
		ProjectDate:       req.ProjectDate,
	}
}

// ProjectResponse represents the API response for a project.
type ProjectResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	ShortDescription  string    `json:"short_description"`
	Description       string    `json:"description"`
	Overview          string    `json:"overview"`
	Category          string    `json:"category"`
	Status            string    `json:"status"`
	Technologies      []string  `json:"technologies"`
	Features          []string  `json:"features"`
	GithubLink        string    `json:"github_link,omitempty"`
	WebsiteLink       string    `json:"website_link,omitempty"`
	DocumentationLink string    `json:"documentation_link,omitempty"`
	ProjectDate       string    `json:"project_date"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToProjectResponse converts a domain Project to a ProjectResponse DTO.
func ToProjectResponse(project *contentDomain.Project) ProjectResponse {
	return ProjectResponse{
		ID:                project.ID.String(),
		Title:             project.Title,
		ShortDescription:  project.ShortDescription,
		Description:       project.Description,
		Overview:          project.Overview,
		Category:          project.Category,
		Status:            project.Status,
		Technologies:      project.Technologies,
		Features:          project.Features,
		GithubLink:        project.GithubLink,
		WebsiteLink:       project.WebsiteLink,
		DocumentationLink: project.DocumentationLink,
		ProjectDate:       project.ProjectDate.Format("2006-01-02"),
		CreatedAt:         project.CreatedAt,
		UpdatedAt:         project.UpdatedAt,
	}
}

// ListProjectsResponse represents a paginated list of projects in API responses.
type ListProjectsResponse struct {
	Data []ProjectResponse `json:"data"`
}

// MapProjectsToListResponse converts a slice of domain projects to a list response.
func MapProjectsToListResponse(projects []*contentDomain.Project) ListProjectsResponse {
	data := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		data = append(data, ToProjectResponse(project))
	}
	return ListProjectsResponse{Data: data}
}
