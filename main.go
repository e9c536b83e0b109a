package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"crewgram/app"
	"crewgram/models"
	"crewgram/service"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		}
	}

	rosterPath := flag.String("roster", "", "path to the roster JSON file (club + crews)")
	templateName := flag.String("template", "", "template name from the template library")
	format := flag.String("format", "png", "output format: html or png")
	outDir := flag.String("out", "out", "output directory")
	thumbs := flag.Bool("thumbs", false, "also write preview thumbnails (png format only)")
	listTemplates := flag.Bool("list", false, "list available templates and exit")
	flag.Parse()

	application := app.Initialize()

	if *listTemplates {
		names, err := application.Templates.List()
		if err != nil {
			log.Fatalf("Failed to list templates: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *rosterPath == "" || *templateName == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *format != "html" && *format != "png" {
		log.Fatalf("Invalid format %q. Valid formats: html, png", *format)
	}

	if err := run(application, *rosterPath, *templateName, *format, *outDir, *thumbs); err != nil {
		log.Fatal(err)
	}
}

func run(application *app.App, rosterPath, templateName, format, outDir string, thumbs bool) error {
	rosterFile, err := application.Rosters.Load(rosterPath)
	if err != nil {
		return fmt.Errorf("failed to load rosters: %w", err)
	}

	tmpl, err := application.Templates.GetByName(templateName)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	results := application.Batch.CompileAll(context.Background(), rosterFile, tmpl, format == "png")

	failed := 0
	for i, result := range results {
		if result.Err != nil {
			log.Printf("❌ %s: %s failed: %v", result.RosterName, result.Stage, result.Err)
			failed++
			continue
		}

		name := outputName(result.RosterName, i)
		if format == "html" {
			path := filepath.Join(outDir, name+".html")
			if err := os.WriteFile(path, []byte(result.HTML), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			log.Printf("✓ Wrote %s", path)
			continue
		}

		png := fitRenderOutput(result.PNG, tmpl.Meta)
		path := filepath.Join(outDir, name+".png")
		if err := os.WriteFile(path, png, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Printf("✓ Wrote %s", path)

		if thumbs {
			thumb, err := service.Thumbnail(png)
			if err != nil {
				log.Printf("⚠️  Failed to build thumbnail for %s: %v", result.RosterName, err)
				continue
			}
			thumbPath := filepath.Join(outDir, name+"_thumb.png")
			if err := os.WriteFile(thumbPath, thumb, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", thumbPath, err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d crews failed", failed, len(results))
	}
	return nil
}

// fitRenderOutput scales a captured screenshot down to the template's
// configured dimensions. Captures taken beyond the viewport can exceed
// the target size. Falls back to the raw capture if decoding fails.
func fitRenderOutput(png []byte, meta models.TemplateMeta) []byte {
	fitted, err := service.FitImage(png, meta.Dimensions.WidthOr(1080), meta.Dimensions.HeightOr(1350))
	if err != nil {
		log.Printf("⚠️  Failed to fit render output to template dimensions: %v", err)
		return png
	}
	return fitted
}

// outputName builds a filesystem-safe output name from a roster name,
// falling back to the batch index for unnamed crews.
func outputName(rosterName string, index int) string {
	name := strings.TrimSpace(rosterName)
	if name == "" {
		return fmt.Sprintf("crew_%d", index+1)
	}
	name = strings.ToLower(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
