package repository

import (
	"crewgram/models"
)

// TemplateRepositoryInterface defines the contract for template library operations
type TemplateRepositoryInterface interface {
	GetByName(name string) (*models.Template, error)
	List() ([]string, error)
}

// RosterRepositoryInterface defines the contract for roster file operations
type RosterRepositoryInterface interface {
	Load(path string) (*models.RosterFile, error)
}
