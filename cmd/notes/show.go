package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"thinkboard/internal/notes"
	"thinkboard/internal/pages"
	"thinkboard/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deps(nil)
		detail := pages.NewDetail(args[0], d)
		if err := detail.Activate(cmd.Context()); err != nil {
			return err
		}
		st := detail.State()
		printNote(os.Stdout, *st.Note)
		return nil
	},
}

func printNote(w io.Writer, n notes.Note) {
	fmt.Fprintf(w, "# %s\n", n.Title)
	if label := render.DateLabel(n.CreatedAt); label != "" {
		fmt.Fprintf(w, "created %s", label)
		if updated := render.DateLabel(n.UpdatedAt); updated != "" {
			fmt.Fprintf(w, ", updated %s", updated)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, n.Content)
	stats := notes.CountStats(n.Content)
	fmt.Fprintf(w, "\n%d words, %d characters\n", stats.Words, stats.Characters)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
