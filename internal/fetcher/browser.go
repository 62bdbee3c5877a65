package fetcher

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
	"go.uber.org/zap"
)

// LaunchBrowser starts a headless Chrome and connects to it.
func LaunchBrowser() (*rod.Browser, error) {
	l := launcher.New().Headless(true).NoSandbox(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	return browser, nil
}

// BrowserFetcher reads the document through a stealth headless page, for
// sources that refuse plain HTTP clients. Chrome shows text/csv as the body text.
type BrowserFetcher struct {
	logger *zap.Logger
}

// NewBrowser builds a BrowserFetcher.
func NewBrowser(logger *zap.Logger) *BrowserFetcher {
	return &BrowserFetcher{logger: logger.Named("fetcher")}
}

// Fetch launches a browser for this one request and closes it afterwards.
func (f *BrowserFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	target, err := BustCache(rawURL)
	if err != nil {
		return "", err
	}

	f.logger.Debug("Launching headless browser...")
	browser, err := LaunchBrowser()
	if err != nil {
		return "", err
	}
	defer browser.Close()

	page, err := stealth.Page(browser)
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	page = page.Context(ctx)

	f.logger.Debug("Navigating", zap.String("url", target))
	if err := page.Navigate(target); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed waiting for page load: %w", err)
	}

	body, err := page.Element("body")
	if err != nil {
		return "", fmt.Errorf("failed to find document body: %w", err)
	}
	text, err := body.Text()
	if err != nil {
		return "", fmt.Errorf("failed to read document text: %w", err)
	}
	return text, nil
}
