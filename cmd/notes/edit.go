package main

import (
	"errors"

	"github.com/spf13/cobra"

	"thinkboard/internal/pages"
)

var (
	editTitle   string
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a note's title or content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("title") && !flags.Changed("content") {
			return errors.New("nothing to change: pass --title and/or --content")
		}
		d := deps(nil)
		detail := pages.NewDetail(args[0], d)
		if err := detail.Activate(cmd.Context()); err != nil {
			return err
		}
		if flags.Changed("title") {
			detail.SetTitle(editTitle)
		}
		if flags.Changed("content") {
			detail.SetContent(editContent)
		}
		return detail.Save(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
}
