package main

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
)

func makeStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Registry file summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := store.Stats()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:\t%s (%s)\n", store.Path(), units.HumanSize(float64(stats.SizeBytes)))
			fmt.Fprintf(out, "Students:\t%d\n", stats.Students)
			fmt.Fprintf(out, "Malformed lines:\t%d\n", stats.Malformed)
			fmt.Fprintf(out, "Courses:\t%s\n", strings.Join(stats.Courses, ", "))
			return nil
		},
	}
}
