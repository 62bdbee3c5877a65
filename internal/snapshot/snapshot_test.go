package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mspro-labs/menuboard/internal/board"
	"mspro-labs/menuboard/internal/config"
	"mspro-labs/menuboard/internal/menu"
	"mspro-labs/menuboard/internal/render"
)

type staticFetcher string

func (s staticFetcher) Fetch(context.Context, string) (string, error) {
	return string(s), nil
}

const rows = `id,название,instock
1,A,yes
2,B,yes
3,C,no
`

func newRunner(t *testing.T) *Runner {
	t.Helper()
	cfg := config.Default()
	cfg.ItemsPerScreen = 2
	r, err := render.New(cfg)
	require.NoError(t, err)
	b, err := board.New(cfg, staticFetcher(rows), r, nil, zap.NewNop())
	require.NoError(t, err)
	return &Runner{Board: b, Dir: t.TempDir(), Viewport: Viewport{1920, 1080}, Logger: zap.NewNop()}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "screen-01.png", FileName(1))
	assert.Equal(t, "screen-12.png", FileName(12))
}

func TestScreens(t *testing.T) {
	r := newRunner(t)
	ctx := context.Background()

	all, err := r.screens(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, all)

	one, err := r.screens(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, one)

	_, err = r.screens(ctx, -1)
	assert.ErrorIs(t, err, menu.ErrInvalidScreen)
}

func TestPageHTML(t *testing.T) {
	r := newRunner(t)

	html, err := r.pageHTML(context.Background(), 2)
	require.NoError(t, err)
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "order-card")
	assert.Contains(t, html, "В пути")
}
