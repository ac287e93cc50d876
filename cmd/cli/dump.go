package main

import (
	"github.com/spf13/cobra"

	"github.com/bigredeye/studreg/internal/dump"
)

func makeDumpCommand() *cobra.Command {
	var format string
	var sortByRoll bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump all students as yaml or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := reg.List()
			if err != nil {
				return err
			}
			return dump.Write(cmd.OutOrStdout(), dump.Records(students, sortByRoll), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", dump.FormatYAML, "Output format: yaml or json")
	cmd.Flags().BoolVar(&sortByRoll, "sort", false, "Sort by roll instead of file order")

	return cmd
}
