package main

import (
	"github.com/spf13/cobra"

	"thinkboard/internal/pages"
)

var (
	createTitle   string
	createContent string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deps(nil)
		c := pages.NewCreate(d)
		c.SetTitle(createTitle)
		c.SetContent(createContent)
		return c.Submit(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Note title")
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "Note content")
}
