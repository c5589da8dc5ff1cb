package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilekit/tilekit/internal/log"
	"github.com/tilekit/tilekit/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <tileset.yaml>",
	Short: "Re-render a tileset document whenever it changes",
	Long: `Watch renders a tileset document, then re-renders it every time the file
changes on disk. Editor save styles that replace the file (write to a
temporary file, then rename) are handled. Press Ctrl-C to stop.

Rendering options mirror the render command; see 'tilekit render --help'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		opts := renderOptions{
			TileName: renderTileName,
			Framed:   renderFramed,
			Frame:    cfg.Frame,
		}
		if cmd.Flags().Changed("width-spacing") {
			opts.Frame.WidthSpacing = renderWidthSpacing
		}
		if cmd.Flags().Changed("height-spacing") {
			opts.Frame.HeightSpacing = renderHeightSpacing
		}

		w, err := watcher.New(watcher.Config{
			Path:        path,
			DebounceDur: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
		})
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		changes, err := w.Start()
		if err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		defer func() { _ = w.Stop() }()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigs)

		render := func() {
			out, err := renderTileset(path, opts)
			if err != nil {
				log.ErrorErr(log.CatWatch, "render failed", err, "path", path)
				fmt.Fprintf(cmd.ErrOrStderr(), "render error: %v\n", err)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}

		render()
		for {
			select {
			case <-changes:
				log.Debug(log.CatWatch, "tileset changed, re-rendering", "path", path)
				render()
			case <-sigs:
				return nil
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&renderTileName, "tile", "t", "",
		"name of the tile to render (default: the document's render: key)")
	watchCmd.Flags().BoolVarP(&renderFramed, "frame", "f", false,
		"draw a border around the rendered tile")
	watchCmd.Flags().IntVar(&renderWidthSpacing, "width-spacing", 0,
		"blank columns between the border and the tile (implies --frame)")
	watchCmd.Flags().IntVar(&renderHeightSpacing, "height-spacing", 0,
		"blank rows between the border and the tile (implies --frame)")
	rootCmd.AddCommand(watchCmd)
}
