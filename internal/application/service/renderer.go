package service

import "context"

// Renderer turns a rendered HTML page into a captured PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}
