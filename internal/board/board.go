// Package board composes fetching, parsing, paging and rendering into the
// screen render entry point.
package board

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"mspro-labs/menuboard/internal/config"
	"mspro-labs/menuboard/internal/display"
	"mspro-labs/menuboard/internal/fetcher"
	"mspro-labs/menuboard/internal/menu"
	"mspro-labs/menuboard/internal/metrics"
	"mspro-labs/menuboard/internal/models"
	"mspro-labs/menuboard/internal/render"
	"mspro-labs/menuboard/internal/sheet"
)

// Board renders menu screens from the configured source.
type Board struct {
	cfg      *config.MenuConfig
	columns  models.Columns
	fetcher  fetcher.Fetcher
	renderer *render.Renderer
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// New wires a Board. m may be nil.
func New(cfg *config.MenuConfig, f fetcher.Fetcher, r *render.Renderer, m *metrics.Metrics, logger *zap.Logger) (*Board, error) {
	cols, err := cfg.ColumnMap()
	if err != nil {
		return nil, fmt.Errorf("failed to build column map: %w", err)
	}
	return &Board{
		cfg:      cfg,
		columns:  cols,
		fetcher:  f,
		renderer: r,
		metrics:  m,
		logger:   logger.Named("board"),
	}, nil
}

// Config returns the board settings.
func (b *Board) Config() *config.MenuConfig {
	return b.cfg
}

// Items fetches the source and returns every item sorted by id.
func (b *Board) Items(ctx context.Context) ([]models.Item, error) {
	if b.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.FetchTimeout)
		defer cancel()
	}

	start := time.Now()
	text, err := b.fetcher.Fetch(ctx, b.cfg.SourceURL)
	b.metrics.ObserveFetch(start)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	rows := sheet.Parse(text)
	items := models.ItemsFromRows(rows, b.columns)
	menu.SortByID(items)

	b.metrics.SetItems(len(items))
	b.logger.Debug("Parsed source", zap.Int("items", len(items)), zap.Duration("elapsed", time.Since(start)))
	return items, nil
}

// Page fetches the source and returns the requested screen.
func (b *Board) Page(ctx context.Context, screen int) (menu.Page, error) {
	if screen < 1 {
		return menu.Page{}, menu.ErrInvalidScreen
	}
	items, err := b.Items(ctx)
	if err != nil {
		return menu.Page{}, err
	}
	return menu.Paginate(items, screen, b.cfg.ItemsPerScreen)
}

// Fragment renders the requested screen to card markup.
func (b *Board) Fragment(ctx context.Context, screen int) (string, error) {
	page, err := b.Page(ctx, screen)
	if err != nil {
		return "", err
	}
	return b.renderer.Page(page)
}

// RenderScreen draws the screen into the target's menu container.
// Without a container nothing is fetched and nil is returned. On any error the
// target is left as it was.
func (b *Board) RenderScreen(ctx context.Context, screen int, target *display.Document) error {
	if target == nil || !target.HasContainer(b.cfg.ContainerID) {
		b.logger.Debug("No menu container, skipping render", zap.String("container", b.cfg.ContainerID))
		b.metrics.ObserveRender(metrics.OutcomeNoTarget)
		return nil
	}

	fragment, err := b.Fragment(ctx, screen)
	if err != nil {
		b.metrics.ObserveRender(outcomeOf(err))
		return fmt.Errorf("failed to render screen %d: %w", screen, err)
	}

	target.Mount(b.cfg.ContainerID, fragment)
	b.metrics.ObserveRender(metrics.OutcomeOK)
	b.logger.Info("Screen rendered", zap.Int("screen", screen))
	return nil
}

// HostDocument builds an empty host page for screen.
func (b *Board) HostDocument(screen int) (*display.Document, error) {
	var buf bytes.Buffer
	if err := b.renderer.Host(&buf, render.HostFor(b.cfg, screen)); err != nil {
		return nil, fmt.Errorf("failed to render host page: %w", err)
	}
	return display.Parse(&buf)
}

// NewFromConfig picks the fetcher from cfg and builds the renderer.
func NewFromConfig(cfg *config.MenuConfig, m *metrics.Metrics, logger *zap.Logger) (*Board, error) {
	var f fetcher.Fetcher
	if cfg.BrowserFetch {
		f = fetcher.NewBrowser(logger)
	} else {
		f = fetcher.NewHTTP(nil, logger)
	}
	r, err := render.New(cfg)
	if err != nil {
		return nil, err
	}
	return New(cfg, f, r, m, logger)
}
