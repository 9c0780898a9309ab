package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/reloader/dialect"
	"github.com/syssam/reloader/dialect/sql"
	"github.com/syssam/reloader/internal/cli"
	"github.com/syssam/reloader/store"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		columns []string
		where   []string
		join    string
	)
	cmd := &cobra.Command{
		Use:   "render <table>",
		Short: "Print the SELECT statement for a filter",
		Long: `Print the SELECT statement for a filter, both with literal values and in
the placeholder form executed against the configured driver. Nothing is
executed.`,
		Args: cobra.ExactArgs(1),
		Example: `  reloader render casing --column name --where "name='.357 Magnum'" --where casing_id=1 --join or
  reloader render load --driver postgres --where powder_id=2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := args[0]
			b := sql.Select().AddTable(table)
			if len(columns) == 0 {
				if cols, err := store.Columns(table); err == nil {
					columns = cols
				} else {
					columns = []string{"*"}
				}
			}
			for _, c := range columns {
				b.AddColumn(c)
			}
			op, err := cli.ParseLogical(join)
			if err != nil {
				return cli.InputError("parsing --join", err)
			}
			for i, w := range where {
				c, err := cli.ParseCondition(w)
				if err != nil {
					return cli.InputError("parsing --where", err)
				}
				if i > 0 {
					b.AddLogicalOperator(op)
				}
				b.AddCondition(c)
			}

			literal, err := b.Render()
			if err != nil {
				return cli.InputError("rendering statement", err)
			}
			bound, qargs, err := b.Query(dialect.Of(a.cfg.Database.Driver))
			if err != nil {
				return cli.InputError("rendering statement", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "literal: %s\n", literal)
			fmt.Fprintf(out, "bound:   %s\n", bound)
			fmt.Fprintf(out, "args:    %v\n", qargs)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&columns, "column", nil, "column to select, repeatable (default: every column of the table)")
	cmd.Flags().StringArrayVar(&where, "where", nil, `filter "field<op>value", repeatable`)
	cmd.Flags().StringVar(&join, "join", "and", "logical operator between filters: and, or or not")
	return cmd
}
