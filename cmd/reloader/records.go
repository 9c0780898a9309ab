package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/reloader"
	"github.com/syssam/reloader/dialect/sql"
	"github.com/syssam/reloader/internal/cli"
	"github.com/syssam/reloader/internal/format"
	"github.com/syssam/reloader/reloading"
	"github.com/syssam/reloader/store"
)

var kindsHelp = strings.Join(reloading.Tables, ", ")

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the logbook tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, done, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer done()
			if err := s.Init(cmd.Context()); err != nil {
				return cli.GeneralError("initializing logbook", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s logbook at %s\n", a.cfg.Database.Driver, a.cfg.Database.Source)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var (
		where  []string
		output string
	)
	cmd := &cobra.Command{
		Use:       "list <kind>",
		Short:     "List the records of one kind",
		Long:      "List the records of one kind: " + kindsHelp + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: reloading.Tables,
		Example: `  reloader list casing
  reloader list load --where powder_id=2 --where "powder_weight>=16.5"
  reloader list powder -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			cols, err := store.Columns(kind)
			if err != nil {
				return cli.InputError("listing records", err)
			}
			conds := make([]sql.Condition, 0, len(where))
			for _, w := range where {
				c, err := cli.ParseCondition(w)
				if err != nil {
					return cli.InputError("parsing --where", err)
				}
				if !slices.Contains(cols, c.Field) {
					return cli.InputError("parsing --where", fmt.Errorf("unknown column %q for %s", c.Field, kind))
				}
				conds = append(conds, c)
			}

			s, done, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer done()
			recs, err := store.ListKind(cmd.Context(), s, kind, conds...)
			if err != nil {
				return cli.GeneralError("listing records", err)
			}

			out := cmd.OutOrStdout()
			if output != "table" {
				return format.Encode(out, output, recs)
			}
			rows := make([][]any, len(recs))
			for i, r := range recs {
				rows[i] = r.Values()
			}
			if err := format.Table(out, cols, rows); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n", format.Count(len(recs), kind))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&where, "where", nil, `filter "field<op>value", repeatable (joined with AND)`)
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json, yaml or msgpack")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <kind> <id>",
		Short:   "Delete one record",
		Long:    "Delete one record of a kind (" + kindsHelp + ") by its key.",
		Args:    cobra.ExactArgs(2),
		Example: "  reloader delete casing 3",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if _, err := store.Columns(kind); err != nil {
				return cli.InputError("deleting record", err)
			}
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return cli.InputError("deleting record", fmt.Errorf("invalid id %q", args[1]))
			}

			s, done, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer done()
			if err := store.DeleteByKind(cmd.Context(), s, kind, id); err != nil {
				if reloader.IsNotFound(err) {
					return cli.InputError("deleting record", err)
				}
				return cli.GeneralError("deleting record", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %d\n", kind, id)
			return nil
		},
	}
}
