package service_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewgram/compile"
	"crewgram/models"
	"crewgram/service"
)

// mockRenderer is a hand-written test double for the render service.
type mockRenderer struct {
	renderPNG func(ctx context.Context, markup string, width, height int) ([]byte, error)
}

func (m *mockRenderer) RenderPNG(ctx context.Context, markup string, width, height int) ([]byte, error) {
	return m.renderPNG(ctx, markup, width, height)
}

var _ service.RenderServiceInterface = (*mockRenderer)(nil)

func newBatchCompiler(t *testing.T) *compile.Compiler {
	t.Helper()
	boatDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(boatDir, "quad.svg"), []byte(`<svg></svg>`), 0644))
	return compile.NewCompiler(compile.NewAssetResolver(boatDir, t.TempDir()))
}

func batchFixture(crews int) *models.RosterFile {
	file := &models.RosterFile{
		Club: models.Club{Name: "Thames RC", PrimaryColor: "#112233", SecondaryColor: "#445566"},
	}
	for i := 0; i < crews; i++ {
		file.Rosters = append(file.Rosters, models.Roster{
			Name:          fmt.Sprintf("Crew %d", i+1),
			BoatClassCode: "4x",
			CrewNames:     []string{"A", "B", "C", "D"},
		})
	}
	return file
}

func batchTemplate() *models.Template {
	return &models.Template{
		Name:   "classic",
		Markup: `<html><head><style></style></head><body>{{#crewMembers}}<li>{{name}}</li>{{/crewMembers}}</body></html>`,
		Meta:   models.TemplateMeta{Dimensions: models.Dimensions{Width: 1080, Height: 1350}},
	}
}

func TestBatchService_CompileAll_HTMLOnly(t *testing.T) {
	batch := service.NewBatchService(newBatchCompiler(t), nil)

	results := batch.CompileAll(context.Background(), batchFixture(5), batchTemplate(), false)

	require.Len(t, results, 5)
	for i, result := range results {
		assert.NoError(t, result.Err)
		assert.Equal(t, fmt.Sprintf("Crew %d", i+1), result.RosterName)
		assert.Contains(t, result.HTML, "<li>")
		assert.Nil(t, result.PNG)
	}
}

func TestBatchService_ContinuesPastFailures(t *testing.T) {
	file := batchFixture(3)
	file.Rosters[1].BoatClassCode = "9x" // compile failure for one crew only
	batch := service.NewBatchService(newBatchCompiler(t), nil)

	results := batch.CompileAll(context.Background(), file, batchTemplate(), false)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[2].Err)

	assert.Error(t, results[1].Err)
	assert.Equal(t, service.StageCompile, results[1].Stage)
	assert.ErrorIs(t, results[1].Err, models.ErrUnknownBoatClass)
}

func TestBatchService_RenderStageReported(t *testing.T) {
	renderer := &mockRenderer{
		renderPNG: func(_ context.Context, _ string, width, height int) ([]byte, error) {
			if width != 1080 || height != 1350 {
				return nil, fmt.Errorf("unexpected dimensions %dx%d", width, height)
			}
			return []byte("png"), nil
		},
	}
	batch := service.NewBatchService(newBatchCompiler(t), renderer)

	results := batch.CompileAll(context.Background(), batchFixture(2), batchTemplate(), true)

	require.Len(t, results, 2)
	for _, result := range results {
		require.NoError(t, result.Err)
		assert.Equal(t, []byte("png"), result.PNG)
	}
}

func TestBatchService_RenderFailureIsDistinct(t *testing.T) {
	renderer := &mockRenderer{
		renderPNG: func(context.Context, string, int, int) ([]byte, error) {
			return nil, fmt.Errorf("browser crashed")
		},
	}
	batch := service.NewBatchService(newBatchCompiler(t), renderer)

	results := batch.CompileAll(context.Background(), batchFixture(1), batchTemplate(), true)

	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.Equal(t, service.StageRender, results[0].Stage)
	// The compiled markup is still reported alongside the render failure.
	assert.Contains(t, results[0].HTML, "<li>")
}

func TestBatchService_NoRendererConfigured(t *testing.T) {
	batch := service.NewBatchService(newBatchCompiler(t), nil)

	results := batch.CompileAll(context.Background(), batchFixture(1), batchTemplate(), true)

	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.Equal(t, service.StageRender, results[0].Stage)
}
