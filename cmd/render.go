package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mspro-labs/menuboard/internal/board"
	"mspro-labs/menuboard/internal/display"
)

var (
	renderScreen   int
	renderHost     string
	renderOut      string
	renderFragment bool
)

// renderCmd renders one screen once and writes the HTML
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one screen of the menu",
	Long: `Fetches the sheet, builds the cards for one screen and writes the result.

By default a complete host page is written. With --host the cards are mounted
into the container of an existing HTML file; a file without the container is
written back unchanged. With --fragment only the cards are written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	renderCmd.Flags().IntVarP(&renderScreen, "screen", "s", 1, "Screen number (1-based)")
	renderCmd.Flags().StringVar(&renderHost, "host", "", "Existing HTML page to mount the cards into")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderFragment, "fragment", false, "Write only the card markup")
	rootCmd.AddCommand(renderCmd)
}

func runRender(ctx context.Context, stdout io.Writer) error {
	_, b, err := newBoard(nil)
	if err != nil {
		return err
	}

	html, err := renderHTML(ctx, b)
	if err != nil {
		return err
	}

	if renderOut == "" {
		_, err = io.WriteString(stdout, html)
		return err
	}
	if err := os.WriteFile(renderOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOut, err)
	}
	logger.Info("Rendered screen", zap.Int("screen", renderScreen), zap.String("out", renderOut))
	return nil
}

func renderHTML(ctx context.Context, b *board.Board) (string, error) {
	if renderFragment {
		return b.Fragment(ctx, renderScreen)
	}

	var doc *display.Document
	if renderHost != "" {
		f, err := os.Open(renderHost)
		if err != nil {
			return "", fmt.Errorf("failed to open host page: %w", err)
		}
		defer f.Close()
		if doc, err = display.Parse(f); err != nil {
			return "", err
		}
		if !doc.HasContainer(b.Config().ContainerID) {
			logger.Warn("Host page has no menu container, leaving it unchanged",
				zap.String("host", renderHost),
				zap.String("container_id", b.Config().ContainerID))
		}
	} else {
		var err error
		if doc, err = b.HostDocument(renderScreen); err != nil {
			return "", err
		}
	}

	if err := b.RenderScreen(ctx, renderScreen, doc); err != nil {
		return "", err
	}
	return doc.HTML()
}
