package service

import "context"

// RenderServiceInterface is the rasterization contract the compiler's
// output is handed to: self-contained markup plus target pixel dimensions
// in, raster image bytes out. Rasterization failures are transient faults,
// distinct from compilation failures (data/configuration problems).
type RenderServiceInterface interface {
	RenderPNG(ctx context.Context, markup string, width, height int) ([]byte, error)
}
