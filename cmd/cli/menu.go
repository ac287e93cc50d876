package main

import (
	"github.com/spf13/cobra"

	"github.com/bigredeye/studreg/internal/shell"
)

func makeMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}
}

func runMenu(cmd *cobra.Command) error {
	return shell.New(reg, store.Path(), cmd.InOrStdin(), cmd.OutOrStdout(), log).Run()
}
