package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/studreg/pkg/targz"
)

func makeBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup ARCHIVE",
		Short: "Write the registry file into a tar.gz archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return backup(args[0], store.Path())
		},
	}
}

// backup leaves no partial archive behind on failure.
func backup(archive, source string) (err error) {
	file, err := os.OpenFile(archive, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "Failed to create archive")
	}
	defer func() {
		file.Close()
		if err != nil {
			os.Remove(archive)
		}
	}()

	if err := targz.Archive(file, source); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "Failed to close archive")
	}

	log.Info("Registry archived", zap.String("archive", archive))
	return nil
}

func makeRestoreCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "restore ARCHIVE",
		Short: "Extract a registry backup into a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "Failed to open archive")
			}
			defer file.Close()

			if err := targz.ExtractToDir(file, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored into %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "to", "restored", "Target directory, existing files are never overwritten")

	return cmd
}
