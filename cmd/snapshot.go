package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mspro-labs/menuboard/internal/snapshot"
)

var (
	snapshotDir    string
	snapshotScreen int
	snapshotWidth  int
	snapshotHeight int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save PNG screenshots of the rendered screens",
	Long: `Renders screens and captures them in headless Chrome at the display size.
Without --screen every screen of the current sheet is captured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, b, err := newBoard(nil)
		if err != nil {
			return err
		}
		runner := &snapshot.Runner{
			Board:    b,
			Dir:      snapshotDir,
			Viewport: snapshot.Viewport{Width: snapshotWidth, Height: snapshotHeight},
			Logger:   logger.Named("snapshot"),
		}
		paths, err := runner.Run(cmd.Context(), snapshotScreen)
		if err != nil {
			return err
		}
		logger.Info("Snapshots written", zap.Int("count", len(paths)), zap.String("dir", snapshotDir))
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotDir, "dir", "d", "snapshots", "Output directory")
	snapshotCmd.Flags().IntVarP(&snapshotScreen, "screen", "s", 0, "Screen number (0 = all)")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 1920, "Viewport width")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 1080, "Viewport height")
	rootCmd.AddCommand(snapshotCmd)
}
