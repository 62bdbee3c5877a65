// Package snapshot captures rendered screens as PNG images through headless Chrome.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"mspro-labs/menuboard/internal/board"
	"mspro-labs/menuboard/internal/fetcher"
	"mspro-labs/menuboard/internal/menu"
)

// Viewport is the emulated display size.
type Viewport struct {
	Width  int
	Height int
}

// FileName is the PNG name of a screen.
func FileName(screen int) string {
	return fmt.Sprintf("screen-%02d.png", screen)
}

// Capture loads html into a fresh tab and returns a PNG of the viewport.
func Capture(ctx context.Context, browser *rod.Browser, html string, vp Viewport) ([]byte, error) {
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("failed to set viewport: %w", err)
	}
	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed waiting for page load: %w", err)
	}
	return page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
}

// Runner renders screens with a Board and writes their screenshots to Dir.
type Runner struct {
	Board    *board.Board
	Dir      string
	Viewport Viewport
	Logger   *zap.Logger
}

// Run captures one screen, or every screen when screen is 0. It returns the written paths.
func (r *Runner) Run(ctx context.Context, screen int) ([]string, error) {
	screens, err := r.screens(ctx, screen)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	browser, err := fetcher.LaunchBrowser()
	if err != nil {
		return nil, err
	}
	defer browser.Close()

	var written []string
	for _, n := range screens {
		html, err := r.pageHTML(ctx, n)
		if err != nil {
			return written, err
		}
		png, err := Capture(ctx, browser, html, r.Viewport)
		if err != nil {
			return written, fmt.Errorf("failed to capture screen %d: %w", n, err)
		}
		path := filepath.Join(r.Dir, FileName(n))
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		r.Logger.Info("Captured screen", zap.Int("screen", n), zap.String("path", path))
		written = append(written, path)
	}
	return written, nil
}

// screens resolves which screen numbers to capture.
func (r *Runner) screens(ctx context.Context, screen int) ([]int, error) {
	if screen < 0 {
		return nil, menu.ErrInvalidScreen
	}
	if screen > 0 {
		return []int{screen}, nil
	}
	items, err := r.Board.Items(ctx)
	if err != nil {
		return nil, err
	}
	total := menu.TotalScreens(len(items), r.Board.Config().ItemsPerScreen)
	all := make([]int, total)
	for i := range all {
		all[i] = i + 1
	}
	return all, nil
}

func (r *Runner) pageHTML(ctx context.Context, screen int) (string, error) {
	doc, err := r.Board.HostDocument(screen)
	if err != nil {
		return "", err
	}
	if err := r.Board.RenderScreen(ctx, screen, doc); err != nil {
		return "", err
	}
	return doc.HTML()
}
