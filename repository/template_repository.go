package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"crewgram/models"
)

// TemplateRepository serves the template library from a directory. Each
// template is a markup file <name>.html with an optional manifest
// <name>.yaml next to it.
type TemplateRepository struct {
	dir string
}

// NewTemplateRepository creates a TemplateRepository over the given directory.
func NewTemplateRepository(dir string) *TemplateRepository {
	return &TemplateRepository{dir: dir}
}

// Ensure TemplateRepository implements TemplateRepositoryInterface
var _ TemplateRepositoryInterface = (*TemplateRepository)(nil)

// GetByName loads a template and its manifest by name. A missing markup
// file is models.ErrTemplateNotFound; a missing manifest yields zero-value
// metadata (boat image disabled, renderer default dimensions).
func (r *TemplateRepository) GetByName(name string) (*models.Template, error) {
	markupPath := filepath.Join(r.dir, name+".html")
	markup, err := os.ReadFile(markupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", models.ErrTemplateNotFound, name)
		}
		return nil, fmt.Errorf("failed to read template %q: %w", name, err)
	}

	meta := models.TemplateMeta{}
	manifestPath := filepath.Join(r.dir, name+".yaml")
	if manifest, err := os.ReadFile(manifestPath); err == nil {
		if err := yaml.Unmarshal(manifest, &meta); err != nil {
			return nil, fmt.Errorf("failed to parse manifest for template %q: %w", name, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read manifest for template %q: %w", name, err)
	}

	log.Printf("✓ Template loaded: %s (%d bytes)", name, len(markup))
	return &models.Template{Name: name, Markup: string(markup), Meta: meta}, nil
}

// List returns the names of all templates in the library, sorted.
func (r *TemplateRepository) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read template directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".html"))
	}
	sort.Strings(names)
	return names, nil
}
