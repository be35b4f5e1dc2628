package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"thinkboard/internal/api"
	"thinkboard/internal/config"
	"thinkboard/internal/pages"
)

var (
	verbose bool
	apiURL  string

	client *api.Client
)

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Terminal client for the ThinkBoard notes API",
	Long: `notes lists, creates, shows, edits and deletes notes through the same
page logic the ThinkBoard web front end uses.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if apiURL != "" {
			cfg.APIURL = apiURL
		}
		client, err = api.New(cfg.APIURL, api.Options{
			Timeout:       cfg.APITimeout,
			RatePerSecond: cfg.APIRate,
			Burst:         cfg.APIBurst,
		})
		return err
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Notes API base URL (overrides THINKBOARD_API_URL)")
}

func deps(confirm pages.Confirmer) pages.Deps {
	return pages.Deps{
		API:       client,
		Notifier:  terminalNotifier{w: os.Stderr},
		Navigator: loggingNavigator{},
		Confirmer: confirm,
	}
}
