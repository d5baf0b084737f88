package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"frontend/loading"
	"frontend/logger"
	"frontend/term"
)

var (
	// Version info (set via ldflags)
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	flagPath    string
	flagText    string
	flagLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "termloader",
	Short: "Show the loader in the terminal",
	Long: `termloader renders the front-end's pages in the terminal.

The home page ("/") shows the looping loader, "/about" the about page.
Press h or a to switch pages and q to quit.`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Log lines would tear the screen apart.
		logger.SetOutput(io.Discard)
		if flagLogFile != "" {
			f, err := tea.LogToFile(flagLogFile, "termloader")
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			logger.SetOutput(f)
		}

		var cfg loading.Config
		if cmd.Flags().Changed("text") {
			cfg = loading.WithText(flagText)
		}

		p := tea.NewProgram(term.New(flagPath, cfg), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagPath, "path", "p", "/", "Route to open")
	rootCmd.Flags().StringVarP(&flagText, "text", "t", "", "Loader text (defaults to \""+loading.DefaultText+"\")")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}
