package main

import (
	"fmt"
	"os"

	"github.com/refdeck/refdeck/internal/cli"
	"github.com/refdeck/refdeck/internal/config"
	"github.com/refdeck/refdeck/internal/tui"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refdeck",
	Short: "refdeck - terminal study reference browser",
	Long: `refdeck is a terminal browser for study reference topics: networking,
OOP concepts, databases, design patterns, and interview prep.

Run without arguments to start the interactive TUI. Your reading
position is remembered between sessions, and topic views are tracked
so the stats view can show what you have covered.

Drop your own YAML or JSON topic files into ~/.refdeck/topics/ to
extend the catalog.

Examples:
  refdeck                         # Start interactive TUI
  refdeck list                    # List categories
  refdeck list --topics           # List every topic
  refdeck list networking         # List one category's topics
  refdeck show dhcp               # Print a topic as text
  refdeck show dhcp -o json       # Print a topic as JSON
  refdeck --help                  # Show help`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List categories, or the topics of one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		cat, err := cli.LoadCatalog()
		if err != nil {
			return err
		}
		if len(args) > 0 {
			return cli.ListTopics(cat, args[0], os.Stdout)
		}
		if flagTopics {
			return cli.ListTopics(cat, "", os.Stdout)
		}
		cli.ListCategories(cat, os.Stdout)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <topic-id>",
	Short: "Print one topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		cat, err := cli.LoadCatalog()
		if err != nil {
			return err
		}
		opts := cli.ShowOptions{Format: flagOutput, NoColor: flagNoColor}
		return cli.ShowTopic(cat, args[0], opts, os.Stdout)
	},
}

// Flags
var (
	flagTopics  bool
	flagOutput  string
	flagNoColor bool
)

func init() {
	listCmd.Flags().BoolVarP(&flagTopics, "topics", "t", false, "List every topic instead of categories")

	showCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text/json/yaml)")
	showCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable syntax highlighting in text output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
