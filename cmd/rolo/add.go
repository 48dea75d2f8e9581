package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rolodex/rolo/internal/book"
	"github.com/rolodex/rolo/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add NAME PHONE [EMAIL [NOTE]]",
	Short: "Add a contact",
	Long: `Add one contact without entering the menu.

Name and phone are required; email and note default to N/A.`,
	Args: cobra.RangeArgs(2, 4),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup()
		defer func() { _ = logger.Sync() }()

		name, phone := args[0], args[1]
		var email, note string
		if len(args) > 2 {
			email = args[2]
		}
		if len(args) > 3 {
			note = args[3]
		}

		if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
			fmt.Fprintln(os.Stderr, "Name and phone are required.")
			os.Exit(1)
		}

		store := book.Open(cfg.StorePath)
		if err := store.Add(name, phone, email, note); err != nil {
			logger.Errorw("add failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error saving contact: %v\n", err)
			os.Exit(1)
		}

		logger.Infow("contact added", "name", name)
		fmt.Println(ui.RenderPass("Contact added."))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
