// Package main provides the CLI entry point for pixelsheet.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pixelsheet-go/pkg/pixelsheet"
)

var (
	threadsCount int
	sheetName    string
	cellSize     int
	verify       bool
	noFailFast   bool
	verbose      bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pixelsheet [image] [output]",
		Short: "Paint an image into an Excel spreadsheet",
		Long: `pixelsheet converts a raster image (png, jpeg, gif, bmp, tiff, webp)
into an xlsx workbook where every cell is filled with the color of one pixel.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().IntVar(&threadsCount, "threads-count", 1, "Number of concurrent coloring workers")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "Sheet1", "Name of the painted sheet")
	rootCmd.Flags().IntVar(&cellSize, "cell-size", 0, "Cell size in pixels (default: base column width 2)")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "Reload the saved workbook and compare it to the image")
	rootCmd.Flags().BoolVar(&noFailFast, "no-fail-fast", false, "Let the other workers finish after a worker fails")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-column progress")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	imagePath, outputPath := args[0], args[1]

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Validate input file exists
	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		return fmt.Errorf("cannot open the image %s: %w", imagePath, pixelsheet.ErrInputNotFound)
	}

	if threadsCount <= 0 {
		return fmt.Errorf("invalid threads count: %d (must be positive)", threadsCount)
	}
	if cellSize < 0 {
		return fmt.Errorf("invalid cell size: %d", cellSize)
	}

	opts := pixelsheet.Options{
		ThreadsCount:    threadsCount,
		SheetName:       sheetName,
		CellSize:        cellSize,
		Verify:          verify,
		ContinueOnError: noFailFast,
		Logger:          logger,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := pixelsheet.Convert(ctx, imagePath, outputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	logger.Info("done",
		"output", outputPath,
		"width", result.Width,
		"height", result.Height,
		"workers", result.Workers,
		"colors", result.Colors,
		"duration", result.Duration)
	return nil
}
