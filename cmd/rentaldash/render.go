package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgoulah/rentaldash/internal/loader"
	"github.com/jgoulah/rentaldash/internal/log"
	"github.com/jgoulah/rentaldash/internal/render"
	"github.com/jgoulah/rentaldash/internal/report"
)

var (
	renderHTML   string
	renderPNG    string
	renderSince  string
	renderUntil  string
	renderSource string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dashboard to HTML and/or PNG",
	Long: `Builds the dashboard for a date window and writes it as a static HTML page,
a PNG screenshot taken with headless Chrome, or both.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderHTML, "html", "", "Write the dashboard HTML to this file")
	renderCmd.Flags().StringVar(&renderPNG, "png", "", "Write a PNG screenshot of the dashboard to this file")
	renderCmd.Flags().StringVar(&renderSince, "since", "", "Start date (YYYY-MM-DD or relative like 7d)")
	renderCmd.Flags().StringVar(&renderUntil, "until", "", "End date (YYYY-MM-DD or relative like 7d)")
	renderCmd.Flags().StringVar(&renderSource, "source", "", "Data source: csv or db (default from config)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderHTML == "" && renderPNG == "" {
		return fmt.Errorf("nothing to do: pass --html and/or --png")
	}

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	src, closeSrc, err := openSource(cfg, renderSource)
	if err != nil {
		return err
	}
	defer closeSrc()

	// A load failure still produces a page carrying the warning
	var data render.DashboardData
	res, buildErr := report.Parse(src, renderSince, renderUntil, time.Now())
	var loadErr *loader.LoadError
	switch {
	case buildErr == nil:
		data = render.DashboardData{
			Window:    res.Window,
			Span:      res.Span,
			TimeOfDay: res.TimeOfDay,
			Factors:   res.Factors,
			Weather:   res.Weather,
		}
	case errors.As(buildErr, &loadErr):
		log.Errorw("error loading rental data", "error", buildErr)
		data.LoadError = buildErr.Error()
	default:
		return buildErr
	}

	var page bytes.Buffer
	if err := render.Dashboard(&page, data); err != nil {
		return err
	}

	if renderHTML != "" {
		if err := os.WriteFile(renderHTML, page.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing HTML: %w", err)
		}
		fmt.Printf("✓ Wrote %s\n", renderHTML)
	}

	if renderPNG != "" {
		width, height := cfg.GetRenderSize()
		fmt.Println("Launching headless browser...")
		png, err := render.Screenshot(context.Background(), page.Bytes(), render.ScreenshotOptions{
			Width:   width,
			Height:  height,
			Timeout: cfg.GetRenderTimeout(),
		})
		if err != nil {
			return err
		}
		if err := os.WriteFile(renderPNG, png, 0644); err != nil {
			return fmt.Errorf("writing PNG: %w", err)
		}
		fmt.Printf("✓ Wrote %s (%d bytes)\n", renderPNG, len(png))
	}

	return buildErr
}
