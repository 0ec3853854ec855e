package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"booksy-collection/internal/app"
	"booksy-collection/internal/catalog"
	"booksy-collection/internal/config"
	"booksy-collection/internal/logger"
	"booksy-collection/internal/shutdown"

	"github.com/spf13/cobra"
)

var dataFile string
var backgroundFile string
var verbose bool

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := parser()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func parser() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "booksy",
		Short:        "Catalogue the books you recommend",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.PersistentFlags().StringVar(&dataFile, "data", "", "catalog file (.json or .yaml), overrides BOOKSY_DATA_FILE")
	cmd.PersistentFlags().StringVar(&backgroundFile, "background", "", "splash background image, overrides BOOKSY_BACKGROUND")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "be more verbose by logging in debug mode")

	cmd.AddCommand(listCommand())
	return cmd
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if backgroundFile != "" {
		cfg.Background = backgroundFile
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, JSON: cfg.JSONLogs})

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "initialization"})
		return err
	}

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register("fyne", application.Quit)
	shutdownManager.Register("lifecycle", application.Lifecycle().Shutdown)
	stop := shutdownManager.Listen()
	defer stop()

	if err := application.Run(); err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "run"})
		return err
	}

	log.Info("Main", "application terminated", nil)
	return nil
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [main-category [sub-category]]",
		Short: "Print the catalog without opening a window",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			c, err := catalog.NewStore(cfg.DataFile, logger.NoOpLogger{}).Load()
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), c, args)
		},
	}
}

// printCatalog writes the catalog in taxonomy order, optionally narrowed to
// one main category or one (main, sub) pair.
func printCatalog(w io.Writer, c catalog.Catalog, filter []string) error {
	mains := catalog.MainCategories()
	if len(filter) > 0 {
		if catalog.Subcategories(filter[0]) == nil {
			return fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, filter[0])
		}
		mains = filter[:1]
	}

	for _, main := range mains {
		subs := catalog.Subcategories(main)
		if len(filter) > 1 {
			if !catalog.InTaxonomy(main, filter[1]) {
				return fmt.Errorf("%w: %q → %q", catalog.ErrUnknownCategory, main, filter[1])
			}
			subs = filter[1:2]
		}

		fmt.Fprintln(w, main)
		for _, sub := range subs {
			books := c.Books(main, sub)
			fmt.Fprintf(w, "  %s (%d)\n", sub, len(books))
			for i, b := range books {
				fmt.Fprintf(w, "    %d. %s", i+1, b.Title)
				if b.Author != "" {
					fmt.Fprintf(w, " by %s", b.Author)
				}
				fmt.Fprintln(w)
			}
		}
	}
	return nil
}
