package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"crewgram/compile"
	"crewgram/models"
)

// Batch stage names, reported per item so callers can tell a data problem
// (compile) from a transient rasterization fault (render).
const (
	StageCompile = "compile"
	StageRender  = "render"
)

// BatchResult is the per-crew outcome of a batch run.
type BatchResult struct {
	RosterName string
	HTML       string
	PNG        []byte
	Stage      string // stage that failed; empty on success
	Err        error
}

// BatchService compiles many rosters against one template. Each crew is
// compiled independently and in parallel; one crew's failure never stops
// the batch.
type BatchService struct {
	compiler *compile.Compiler
	renderer RenderServiceInterface
	workers  int
}

// NewBatchService creates a BatchService. renderer may be nil for
// compile-only (HTML) batches.
func NewBatchService(compiler *compile.Compiler, renderer RenderServiceInterface) *BatchService {
	return &BatchService{compiler: compiler, renderer: renderer, workers: 4}
}

// CompileAll compiles every roster in file against tmpl, rasterizing each
// result when renderPNG is set and a renderer is configured. Results come
// back in roster order with per-item success or failure.
func (s *BatchService) CompileAll(ctx context.Context, file *models.RosterFile, tmpl *models.Template, renderPNG bool) []BatchResult {
	results := make([]BatchResult, len(file.Rosters))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)

	for i, roster := range file.Rosters {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, roster models.Roster) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.compileOne(ctx, roster, file.Club, tmpl, renderPNG)
		}(i, roster)
	}
	wg.Wait()

	succeeded := 0
	for _, result := range results {
		if result.Err == nil {
			succeeded++
		}
	}
	log.Printf("✓ Batch complete: template=%s crews=%d succeeded=%d", tmpl.Name, len(results), succeeded)

	return results
}

// compileOne runs the compile (and optional render) pipeline for a single
// crew.
func (s *BatchService) compileOne(ctx context.Context, roster models.Roster, club models.Club, tmpl *models.Template, renderPNG bool) BatchResult {
	result := BatchResult{RosterName: roster.Name}

	markup, err := s.compiler.Compile(roster, club, *tmpl)
	if err != nil {
		log.Printf("❌ Batch: compile failed for crew %q: %v", roster.Name, err)
		result.Stage = StageCompile
		result.Err = err
		return result
	}
	result.HTML = markup

	if !renderPNG {
		return result
	}
	if s.renderer == nil {
		result.Stage = StageRender
		result.Err = fmt.Errorf("no renderer configured")
		return result
	}

	width := tmpl.Meta.Dimensions.WidthOr(1080)
	height := tmpl.Meta.Dimensions.HeightOr(1350)
	png, err := s.renderer.RenderPNG(ctx, markup, width, height)
	if err != nil {
		log.Printf("❌ Batch: render failed for crew %q: %v", roster.Name, err)
		result.Stage = StageRender
		result.Err = err
		return result
	}
	result.PNG = png

	return result
}
