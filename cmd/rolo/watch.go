package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rolodex/rolo/internal/book"
	"github.com/rolodex/rolo/internal/ui"
	"github.com/rolodex/rolo/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the contact store for external changes (foreground)",
	Long: `Watch the contact store file and print a line whenever it changes.

Useful when another process or a text editor touches the store file
while a session is open: positional contact numbers shift as soon as
the file changes underneath you.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup()
		defer func() { _ = logger.Sync() }()

		fw, err := watch.NewFileWatcher()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
			os.Exit(1)
		}

		if err := fw.Start(cfg.StorePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error watching store: %v\n", err)
			os.Exit(1)
		}
		defer fw.Stop()

		fmt.Printf("%s Watching %s\n", ui.RenderAccent("👀"), cfg.StorePath)
		fmt.Printf("Press Ctrl+C to stop\n\n")

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				fmt.Println("Stopped.")
				return
			case ev, ok := <-fw.Events():
				if !ok {
					return
				}
				count := book.Open(cfg.StorePath).Len()
				logger.Infow("store changed", "op", ev.Op.String(), "contacts", count)
				fmt.Printf("%s store %s: %d contacts\n", ui.RenderWarn("!"), ev.Op, count)
			case err, ok := <-fw.Errors():
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
