package sse

import (
	"bytes"
	"context"

	"github.com/mcoot/blackjack-go/internal/render"
	"github.com/mcoot/blackjack-go/internal/web/templates/components"
)

// Renderer converts game views to HTML fragments for SSE
type Renderer struct{}

// NewRenderer creates a new Renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderTable renders the table component as HTML
func (r *Renderer) RenderTable(ctx context.Context, view *render.View) (string, error) {
	var buf bytes.Buffer
	err := components.Table(view).Render(ctx, &buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
