package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/reloader/internal/cli"
	"github.com/syssam/reloader/internal/format"
	"github.com/syssam/reloader/reloading"
	"github.com/syssam/reloader/store"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		inFormat string
		initDB   bool
	)
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a dataset",
		Long: `Import a dataset of records. The format follows the file extension
(.json, .msgpack, otherwise YAML) unless --format is given. Referenced records
are inserted before the records referring to them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if inFormat == "" {
				inFormat = format.FromPath(path)
			}
			f, err := os.Open(path)
			if err != nil {
				return cli.InputError("reading dataset", err)
			}
			defer func() { _ = f.Close() }()
			var d store.Dataset
			if err := format.Decode(f, inFormat, &d); err != nil {
				return cli.InputError("reading dataset", err)
			}

			s, done, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer done()
			if initDB {
				if err := s.Init(cmd.Context()); err != nil {
					return cli.GeneralError("initializing logbook", err)
				}
			}
			if err := store.Import(cmd.Context(), s, &d); err != nil {
				return cli.GeneralError("importing dataset", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", summary(d.Counts()))
			return nil
		},
	}
	cmd.Flags().StringVar(&inFormat, "format", "", "dataset format: "+strings.Join(format.Formats, ", "))
	cmd.Flags().BoolVar(&initDB, "init", false, "create the logbook tables first")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		outFormat string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every record as a dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer done()
			d, err := store.Export(cmd.Context(), s)
			if err != nil {
				return cli.GeneralError("exporting dataset", err)
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return cli.GeneralError("writing dataset", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			if err := format.Encode(w, outFormat, d); err != nil {
				return cli.GeneralError("writing dataset", err)
			}
			a.logger.Info("exported dataset", "records", summary(d.Counts()))
			return nil
		},
	}
	cmd.Flags().StringVar(&outFormat, "format", format.YAML, "dataset format: "+strings.Join(format.Formats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// summary renders per-kind counts in table dependency order.
func summary(counts map[string]int) string {
	parts := make([]string, 0, len(reloading.Tables))
	for _, t := range reloading.Tables {
		parts = append(parts, format.Count(counts[t], t))
	}
	return strings.Join(parts, ", ")
}
