// Package render turns menu pages into HTML card markup.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"

	"mspro-labs/menuboard/internal/config"
	"mspro-labs/menuboard/internal/menu"
	"mspro-labs/menuboard/internal/models"
	"mspro-labs/menuboard/internal/web"
)

// ErrUnknownEntry is returned for an Entry variant the renderer has no template for.
var ErrUnknownEntry = errors.New("unknown menu entry")

// HostPage is the data of the host document holding the menu container.
type HostPage struct {
	Title          string
	Stylesheet     string
	ContainerID    string
	Screen         int
	RefreshSeconds int
}

// Renderer executes the embedded card templates.
type Renderer struct {
	tmpl  *template.Template
	opts  menu.Options
	order config.OrderCard
}

// New parses the embedded templates once.
func New(cfg *config.MenuConfig) (*Renderer, error) {
	tmpl, err := template.ParseFS(web.GetTemplatesFS(), web.HostTemplate, web.CardTemplate, web.OrderTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{
		tmpl:  tmpl,
		opts:  cfg.MenuOptions(),
		order: cfg.OrderCard,
	}, nil
}

// Entry writes the markup of a single entry.
func (r *Renderer) Entry(w io.Writer, e models.Entry) error {
	switch v := e.(type) {
	case models.Item:
		return r.tmpl.ExecuteTemplate(w, web.CardTemplate, menu.BuildCard(v, r.opts))
	case models.OrderPlaceholder:
		return r.tmpl.ExecuteTemplate(w, web.OrderTemplate, r.order)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownEntry, e)
	}
}

// Page concatenates the markup of every entry in page order.
func (r *Renderer) Page(p menu.Page) (string, error) {
	var buf bytes.Buffer
	for i, e := range p.Entries {
		if err := r.Entry(&buf, e); err != nil {
			return "", fmt.Errorf("failed to render entry %d of screen %d: %w", i, p.Screen, err)
		}
	}
	return buf.String(), nil
}

// Host writes an empty host document containing the menu container.
func (r *Renderer) Host(w io.Writer, h HostPage) error {
	return r.tmpl.ExecuteTemplate(w, web.HostTemplate, h)
}

// HostFor fills a HostPage from the config for the given screen.
func HostFor(cfg *config.MenuConfig, screen int) HostPage {
	return HostPage{
		Title:          cfg.Title,
		Stylesheet:     cfg.Stylesheet,
		ContainerID:    cfg.ContainerID,
		Screen:         screen,
		RefreshSeconds: cfg.RefreshSeconds,
	}
}
