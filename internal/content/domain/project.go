// Package domain defines the core domain models for public site content.
// Content covers the project showcase (the Dev Vault) and published articles,
// both publicly readable and writable only through admin-gated operations.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/trivalleytech/site-api/internal/errors"
)

// Project statuses shown on the public showcase.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusArchived  = "archived"
)

// Project represents one entry in the project showcase.
type Project struct {
	// ID is the unique identifier for the project.
	ID uuid.UUID
	// Title is the display name of the project.
	Title string
	// ShortDescription is the one-line summary shown on listing cards.
	ShortDescription string
	// Description is the full description shown on the detail page.
	Description string
	// Overview is optional long-form context about the project.
	Overview string
	// Category groups projects on the showcase (e.g., "web", "robotics").
	Category string
	// Status is one of the ProjectStatus constants.
	Status string
	// Technologies lists the tools and languages used.
	Technologies []string
	// Features lists notable capabilities of the project.
	Features []string
	// GithubLink points at the source repository, if public.
	GithubLink string
	// WebsiteLink points at a live deployment, if any.
	WebsiteLink string
	// DocumentationLink points at external docs, if any.
	DocumentationLink string
	// ProjectDate is the date the project is presented under.
	ProjectDate time.Time
	// CreatedAt is the UTC timestamp when the project was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last modification.
	UpdatedAt time.Time
}

// ErrProjectNotFound indicates the requested project does not exist.
var ErrProjectNotFound = errors.Wrap(errors.ErrNotFound, "project not found")
