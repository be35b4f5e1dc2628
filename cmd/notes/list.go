package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"thinkboard/internal/notes"
	"thinkboard/internal/pages"
	"thinkboard/internal/render"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deps(nil)
		list := pages.NewList(d)
		err := list.Activate(cmd.Context())
		st := list.State()
		if st.View == pages.ViewRateLimited {
			return errors.New("rate limit reached: too many requests in a short period, try again in a few seconds")
		}
		if err != nil {
			return err
		}
		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(st.Notes)
		}
		if st.View == pages.ViewEmpty {
			fmt.Fprintln(os.Stderr, "No notes yet. Create one with: notes create --title ... --content ...")
			return nil
		}
		return writeTable(os.Stdout, st.Notes)
	},
}

func writeTable(w io.Writer, list []notes.Note) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCREATED\tEXCERPT")
	for _, n := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, n.Title, render.DateLabel(n.CreatedAt), render.Excerpt(n.Content, 60))
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}
