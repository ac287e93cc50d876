package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bigredeye/studreg/internal/registry"
	"github.com/bigredeye/studreg/internal/shell"
)

func makeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := shell.RenderAll(cmd.OutOrStdout(), reg.Each)
			return err
		},
	}
}

func makeFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find ROLL",
		Short: "Search student by roll",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			student, err := reg.FindByRoll(args[0])
			if err != nil {
				return err
			}
			shell.RenderFound(cmd.OutOrStdout(), student)
			return nil
		},
	}
}

func makeSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search students by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := registry.SearchByName(reg, registry.NewNameMatcher(), args[0])
			if err != nil {
				return errors.Wrap(err, "Failed to search students")
			}

			out := cmd.OutOrStdout()
			if len(students) == 0 {
				fmt.Fprintln(out, "No students matched.")
				return nil
			}
			for _, student := range students {
				fmt.Fprintf(out, "%s\t%s\n", student.Roll, student.Name)
			}
			return nil
		},
	}
}
