package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rolodex/rolo/internal/book"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all contacts",
	Long:  `Print every contact as a numbered line, like the menu's V action.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup()
		defer func() { _ = logger.Sync() }()

		contacts := book.Open(cfg.StorePath).ListAll()
		if len(contacts) == 0 {
			fmt.Println("No contacts yet.")
			return
		}
		for i, c := range contacts {
			fmt.Printf("%d. %s | %s | %s | %s\n", i+1, c.Name, c.Phone, c.Email, c.Note)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
