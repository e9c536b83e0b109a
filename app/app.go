package app

import (
	"os"
	"path/filepath"

	"crewgram/compile"
	"crewgram/repository"
	"crewgram/service"
)

// App holds the wired application components.
type App struct {
	Templates repository.TemplateRepositoryInterface
	Rosters   repository.RosterRepositoryInterface
	Batch     *service.BatchService
	Compiler  *compile.Compiler
}

// Initialize wires the application from environment configuration.
// TEMPLATE_DIR, BOAT_ASSET_DIR and LOGO_ASSET_DIR override the default
// on-disk layout; CHROME_PATH is picked up by the render service.
func Initialize() *App {
	templateDir := getEnv("TEMPLATE_DIR", "templates")
	boatDir := getEnv("BOAT_ASSET_DIR", filepath.Join("static", "boats"))
	logoDir := getEnv("LOGO_ASSET_DIR", filepath.Join("static", "logos"))

	compiler := compile.NewCompiler(compile.NewAssetResolver(boatDir, logoDir))
	renderService := service.NewRenderService()

	return &App{
		Templates: repository.NewTemplateRepository(templateDir),
		Rosters:   repository.NewRosterRepository(),
		Batch:     service.NewBatchService(compiler, renderService),
		Compiler:  compiler,
	}
}

// getEnv returns the environment variable value or fallback when unset.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
