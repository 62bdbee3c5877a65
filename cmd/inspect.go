package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mspro-labs/menuboard/internal/board"
	"mspro-labs/menuboard/internal/menu"
	"mspro-labs/menuboard/internal/models"
)

var inspectScreen int

var inspectCmd = &cobra.Command{
	Use:   "inspect [filter...]",
	Short: "List the parsed items as the board sees them",
	Long: `Prints every item after parsing, sorting and the card transforms.
Filters match name, country or beer type, case-insensitively.
Examples:
  menuboard inspect
  menuboard inspect stout
  menuboard inspect --screen 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd.Context(), cmd.OutOrStdout(), args)
	},
}

func init() {
	inspectCmd.Flags().IntVarP(&inspectScreen, "screen", "s", 0, "Only list the items of this screen")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(ctx context.Context, out io.Writer, filters []string) error {
	_, b, err := newBoard(nil)
	if err != nil {
		return err
	}

	items, err := inspectItems(ctx, b)
	if err != nil {
		return err
	}
	items = filterItems(items, filters)

	opts := b.Config().MenuOptions()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOUNTRY\tSTATE\tSPECS\tPRICE\tBADGE")
	for _, item := range items {
		card := menu.BuildCard(item, opts)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			card.ID, card.Name, card.Country, card.State, card.Specs, card.Price, item.BeerType)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d item(s)\n", len(items))
	return nil
}

func inspectItems(ctx context.Context, b *board.Board) ([]models.Item, error) {
	if inspectScreen == 0 {
		return b.Items(ctx)
	}
	page, err := b.Page(ctx, inspectScreen)
	if err != nil {
		return nil, err
	}
	var items []models.Item
	for _, e := range page.Entries {
		if item, ok := e.(models.Item); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func filterItems(items []models.Item, filters []string) []models.Item {
	if len(filters) == 0 {
		return items
	}
	var matched []models.Item
	for _, item := range items {
		haystack := strings.ToLower(item.Name + " " + item.Country + " " + item.BeerType)
		for _, f := range filters {
			if strings.Contains(haystack, strings.ToLower(f)) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
