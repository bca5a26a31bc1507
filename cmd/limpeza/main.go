package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhqdev/limpeza-david/internal/config"
	"github.com/dhqdev/limpeza-david/internal/engine"
	"github.com/dhqdev/limpeza-david/internal/logging"
	"github.com/dhqdev/limpeza-david/internal/platform"
	"github.com/dhqdev/limpeza-david/internal/reporter"
	"github.com/dhqdev/limpeza-david/internal/scanner"
	"github.com/dhqdev/limpeza-david/pkg/sizeutil"
)

var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	verbose    bool
	dryRun     bool
	force      bool
	outputFmt  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "limpeza",
	Short: "System cleaner for temporary files, caches and logs",
	Long: `Limpeza scans well-known locations for disposable files (temp
directories, browser caches, logs, prefetch data, backup files) and
deletes approved subsets to reclaim disk space. Protected system and
user-content paths are never touched.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available cleanup categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, eng, err := setup()
		if err != nil {
			return err
		}

		for _, cat := range eng.Categories() {
			fmt.Printf("  %s %-16s %-24s %s\n", cat.Icon, cat.ID, cat.Name, cat.Description)
		}
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [category...]",
	Short: "Scan for cleanable files without deleting anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, eng, err := setup()
		if err != nil {
			return err
		}

		results, err := scanCategories(eng, cfg, args)
		if err != nil {
			return err
		}

		rptr := reporter.New(os.Stdout, reporter.OutputFormat(outputFmt))
		return rptr.Report(results)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean [category...]",
	Short: "Scan, confirm and delete cleanable files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, paths, eng, err := setup()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("dry-run") {
			cfg.DryRun = dryRun
			// Rebuild so the cleaner picks up the override.
			eng = engine.New(paths, cfg, newLogger(cfg, paths))
		}

		results, err := scanCategories(eng, cfg, args)
		if err != nil {
			return err
		}

		var filePaths []string
		for _, cr := range results {
			filePaths = append(filePaths, cr.Result.Paths()...)
		}

		if len(filePaths) == 0 {
			fmt.Println("Nothing to clean.")
			return nil
		}

		rptr := reporter.New(os.Stdout, reporter.FormatSummary)
		if err := rptr.Report(results); err != nil {
			return err
		}

		if !platform.IsElevated() {
			fmt.Println("\nNote: not running elevated; system-wide locations may be skipped.")
		}

		if cfg.DryRun {
			fmt.Println("\n[DRY RUN] No files will be deleted.")
		} else if !force {
			fmt.Printf("\nDelete %d files? (y/N): ", len(filePaths))
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Clean cancelled")
				return nil
			}
		}

		outcome, err := eng.CleanFiles(filePaths)
		if err != nil {
			return fmt.Errorf("clean failed: %w", err)
		}

		fmt.Printf("\nRemoved %d files, freed %s",
			outcome.Removed, sizeutil.FormatBytes(outcome.BytesFreed))
		if outcome.Errors > 0 {
			fmt.Printf(" (%d errors, see log)", outcome.Errors)
		}
		fmt.Println()
		return nil
	},
}

var emptyTrashCmd = &cobra.Command{
	Use:   "empty-trash",
	Short: "Empty the OS recycle bin / trash",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, eng, err := setup()
		if err != nil {
			return err
		}

		if eng.EmptyTrash() {
			fmt.Println("Trash emptied.")
		} else {
			fmt.Println("Trash could not be fully emptied, see log.")
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the configuration file location and contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := platform.Resolve()
		if err != nil {
			return err
		}

		path := effectiveConfigPath(paths)
		fmt.Printf("Config file: %s\n", path)

		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			fmt.Println("Config file does not exist; defaults are in effect.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		fmt.Printf("\n%s", data)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "echo log output to stderr")

	scanCmd.Flags().StringVar(&outputFmt, "output", "summary", "output format (summary, table, json, yaml)")

	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be deleted without deleting")
	cleanCmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(emptyTrashCmd)
	rootCmd.AddCommand(configCmd)
}

func setup() (*config.Config, *platform.Paths, engine.Engine, error) {
	paths, err := platform.Resolve()
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(effectiveConfigPath(paths))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, paths, engine.New(paths, cfg, newLogger(cfg, paths)), nil
}

func newLogger(cfg *config.Config, paths *platform.Paths) *log.Logger {
	return logging.New(logging.Options{
		Dir:        paths.LogDir,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Verbose:    verbose || cfg.Verbose,
	})
}

func effectiveConfigPath(paths *platform.Paths) string {
	if configPath != "" {
		return configPath
	}
	return filepath.Join(paths.ConfigDir, "config.yaml")
}

// scanCategories scans the named categories, or every enabled category
// when none are named. Unknown names are reported instead of silently
// producing empty results.
func scanCategories(eng engine.Engine, cfg *config.Config, names []string) ([]reporter.CategoryResult, error) {
	known := make(map[string]scanner.Category)
	for _, cat := range eng.Categories() {
		known[cat.ID] = cat
	}

	var selected []scanner.Category
	if len(names) == 0 {
		for _, cat := range eng.Categories() {
			if cfg.CategoryEnabled(cat.ID) {
				selected = append(selected, cat)
			}
		}
	} else {
		for _, name := range names {
			cat, ok := known[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("unknown category: %s (try 'limpeza categories')", name)
			}
			selected = append(selected, cat)
		}
	}

	var results []reporter.CategoryResult
	for _, cat := range selected {
		result, err := eng.ScanCategory(cat.ID)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		results = append(results, reporter.CategoryResult{Category: cat, Result: result})
	}
	return results, nil
}
