package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"thinkboard/internal/pages"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deps(newPromptConfirmer(deleteYes))
		detail := pages.NewDetail(args[0], d)
		err := detail.Delete(cmd.Context())
		if errors.Is(err, pages.ErrDeclined) {
			fmt.Fprintln(os.Stderr, "no changes made")
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking")
}
