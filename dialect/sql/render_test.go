package sql

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/reloader"
	"github.com/syssam/reloader/dialect"
)

func TestJoinList(t *testing.T) {
	for _, items := range [][]string{
		{"*"},
		{"name", "primer_size"},
		{"a", "b", "c", "d"},
		{"casing_id", "name", "type", "max_psi"},
	} {
		s, err := joinList(items)
		require.NoError(t, err)
		assert.Equal(t, items, strings.Split(s, ","))
	}

	s, err := joinList([]string{"casing"})
	require.NoError(t, err)
	assert.Equal(t, "casing", s)

	_, err = joinList(nil)
	assert.ErrorIs(t, err, reloader.ErrNoListItems)
}

func TestBuilderRender(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
		want string
	}{
		{
			name: "select_star",
			b:    Select().AddColumn("*").AddTable("projectile"),
			want: "SELECT * FROM projectile",
		},
		{
			name: "select_where_or",
			b: Select().
				AddColumn("name").
				AddColumn("primer_size").
				AddTable("casing").
				AddCondition(EQ("name", Text(".357 Magnum"))).
				AddLogicalOperator(OpOr).
				AddCondition(EQ("casing_id", Integer(1))),
			want: "SELECT name,primer_size FROM casing WHERE name='.357 Magnum' OR casing_id=1",
		},
		{
			name: "select_many_tables",
			b:    Select().AddColumn("*").AddTable("load").AddTable("powder"),
			want: "SELECT * FROM load,powder",
		},
		{
			name: "select_chain",
			b: Select().
				AddColumn("load_id").
				AddTable("load").
				AddCondition(GTE("powder_weight", Real(4.5))).
				AddLogicalOperator(OpAnd).
				AddCondition(LT("powder_weight", Real(6))).
				AddLogicalOperator(OpNot).
				AddCondition(EQ("primer_make", Text("CCI"))),
			want: "SELECT load_id FROM load WHERE powder_weight>=4.5 AND powder_weight<6 AND NOT primer_make='CCI'",
		},
		{
			name: "insert_one_row",
			b: Insert().
				AddTable("casing").
				AddField("casing_id").AddField("name").AddField("type").AddField("max_psi").
				BeginValueRow().
				AddValue(Integer(6)).
				AddValue(Text(".30-06")).
				AddValue(Text("Rimless, Straight bottleneck")).
				AddValue(Real(25000.0)).
				EndValueRow(),
			want: "INSERT INTO casing (casing_id,name,type,max_psi) VALUES (6,'.30-06','Rimless, Straight bottleneck',25000)",
		},
		{
			name: "insert_many_rows",
			b: Insert().
				AddTable("powder").
				AddField("powder_id").AddField("manufacturer").
				BeginValueRow().AddValues(Integer(1), Text("Hodgdon")).EndValueRow().
				BeginValueRow().AddValues(Integer(2), Text("Alliant")).EndValueRow(),
			want: "INSERT INTO powder (powder_id,manufacturer) VALUES (1,'Hodgdon'),(2,'Alliant')",
		},
		{
			name: "insert_without_fields",
			b:    Insert().AddTable("powder").AddValues(Integer(1), Text("IMR"), Text("4064")),
			want: "INSERT INTO powder VALUES (1,'IMR','4064')",
		},
		{
			name: "update",
			b: Update().
				AddTable("casing").
				AddCondition(NEQ("casing_id", Integer(3))).
				AddField("name").
				AddField("type").
				AddValue(Text(".30-06")).
				AddValue(Text("Rimless, straight bottleneck")),
			want: "UPDATE casing SET name='.30-06',type='Rimless, straight bottleneck' WHERE casing_id<>3",
		},
		{
			name: "update_without_where",
			b:    Update().AddTable("powder").AddField("powder_type").AddValue(Text("ball")),
			want: "UPDATE powder SET powder_type='ball'",
		},
		{
			name: "delete",
			b:    Delete().AddTable("casing").AddCondition(EQ("casing_id", Integer(2))),
			want: "DELETE FROM casing WHERE casing_id=2",
		},
		{
			name: "delete_all",
			b:    Delete().AddTable("casing"),
			want: "DELETE FROM casing",
		},
		{
			name: "escaped_text",
			b:    Select().AddColumn("*").AddTable("casing").AddCondition(EQ("name", Text("x' OR '1'='1"))),
			want: "SELECT * FROM casing WHERE name='x'' OR ''1''=''1'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.b.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Rendering is a read: a second call yields the same text.
			again, err := tt.b.Render()
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestBuilderQuery(t *testing.T) {
	b := Select().
		AddColumn("name").
		AddColumn("primer_size").
		AddTable("casing").
		AddCondition(EQ("name", Text(".357 Magnum"))).
		AddLogicalOperator(OpOr).
		AddCondition(EQ("casing_id", Integer(1)))

	t.Run("sqlite", func(t *testing.T) {
		query, args, err := b.Query(dialect.SQLite)
		require.NoError(t, err)
		assert.Equal(t, "SELECT name,primer_size FROM casing WHERE name=? OR casing_id=?", query)
		assert.Equal(t, []any{".357 Magnum", int64(1)}, args)
	})

	t.Run("postgres", func(t *testing.T) {
		query, args, err := b.Query(dialect.Postgres)
		require.NoError(t, err)
		assert.Equal(t, "SELECT name,primer_size FROM casing WHERE name=$1 OR casing_id=$2", query)
		assert.Equal(t, []any{".357 Magnum", int64(1)}, args)
	})

	t.Run("update_numbers_set_before_where", func(t *testing.T) {
		query, args, err := Update().
			AddTable("casing").
			AddCondition(NEQ("casing_id", Integer(3))).
			AddField("name").
			AddField("max_psi").
			AddValues(Text(".30-06"), Real(60000)).
			Query(dialect.Postgres)
		require.NoError(t, err)
		assert.Equal(t, "UPDATE casing SET name=$1,max_psi=$2 WHERE casing_id<>$3", query)
		assert.Equal(t, []any{".30-06", 60000.0, int64(3)}, args)
	})

	t.Run("insert_rows", func(t *testing.T) {
		query, args, err := Insert().
			AddTable("powder").
			AddField("powder_id").AddField("manufacturer").
			BeginValueRow().AddValues(Integer(1), Text("Hodgdon")).EndValueRow().
			BeginValueRow().AddValues(Integer(2), Text("Alliant")).EndValueRow().
			Query(dialect.MySQL)
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO powder (powder_id,manufacturer) VALUES (?,?),(?,?)", query)
		assert.Equal(t, []any{int64(1), "Hodgdon", int64(2), "Alliant"}, args)
	})

	t.Run("injection_is_bound", func(t *testing.T) {
		query, args, err := Delete().
			AddTable("casing").
			AddCondition(EQ("name", Text("x'; DROP TABLE casing; --"))).
			Query(dialect.SQLite)
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM casing WHERE name=?", query)
		assert.Equal(t, []any{"x'; DROP TABLE casing; --"}, args)
	})
}

func TestBuilderValidation(t *testing.T) {
	tests := []struct {
		name   string
		b      *Builder
		clause string
		err    error
	}{
		{"select_no_columns", Select().AddTable("casing"), "columns", reloader.ErrNoListItems},
		{"select_no_tables", Select().AddColumn("*"), "tables", reloader.ErrNoListItems},
		{"insert_no_table", Insert().AddField("a").AddValue(Integer(1)), "table", reloader.ErrTableCount},
		{"insert_two_tables", Insert().AddTable("a").AddTable("b").AddValue(Integer(1)), "table", reloader.ErrTableCount},
		{"insert_no_rows", Insert().AddTable("a").AddField("x"), "values", reloader.ErrNoListItems},
		{"insert_empty_row", Insert().AddTable("a").BeginValueRow().EndValueRow(), "values", reloader.ErrNoListItems},
		{
			"insert_short_row",
			Insert().AddTable("a").AddField("x").AddField("y").AddValue(Integer(1)),
			"values", reloader.ErrValueCount,
		},
		{
			"insert_ragged_rows",
			Insert().AddTable("a").
				BeginValueRow().AddValues(Integer(1), Integer(2)).EndValueRow().
				BeginValueRow().AddValues(Integer(3)).EndValueRow(),
			"values", reloader.ErrValueCount,
		},
		{"insert_invalid_value", Insert().AddTable("a").AddValue(Value{}), "values", reloader.ErrInvalidValue},
		{"update_no_table", Update().AddField("a").AddValue(Integer(1)), "table", reloader.ErrTableCount},
		{"update_no_fields", Update().AddTable("a").AddValue(Integer(1)), "fields", reloader.ErrNoListItems},
		{"update_no_rows", Update().AddTable("a").AddField("x"), "values", reloader.ErrRowCount},
		{
			"update_two_rows",
			Update().AddTable("a").AddField("x").
				BeginValueRow().AddValue(Integer(1)).EndValueRow().
				BeginValueRow().AddValue(Integer(2)).EndValueRow(),
			"values", reloader.ErrRowCount,
		},
		{
			"update_count_mismatch",
			Update().AddTable("a").AddField("x").AddField("y").AddValue(Integer(1)),
			"values", reloader.ErrValueCount,
		},
		{"delete_no_table", Delete(), "table", reloader.ErrTableCount},
		{"delete_two_tables", Delete().AddTable("a").AddTable("b"), "table", reloader.ErrTableCount},
		{
			"logical_in_comparison_slot",
			Delete().AddTable("a").AddCondition(Cond("x", OpAnd, Integer(1))),
			"where", reloader.ErrOperatorFamily,
		},
		{
			"comparison_in_logical_slot",
			Delete().AddTable("a").
				AddCondition(EQ("x", Integer(1))).
				AddLogicalOperator(OpEQ).
				AddCondition(EQ("y", Integer(2))),
			"where", reloader.ErrOperatorFamily,
		},
		{
			"missing_logical_operator",
			Select().AddColumn("*").AddTable("a").
				AddCondition(EQ("x", Integer(1))).
				AddCondition(EQ("y", Integer(2))),
			"where", reloader.ErrOperatorCount,
		},
		{
			"dangling_logical_operator",
			Select().AddColumn("*").AddTable("a").
				AddCondition(EQ("x", Integer(1))).
				AddLogicalOperator(OpAnd),
			"where", reloader.ErrOperatorCount,
		},
		{
			"logical_operator_without_conditions",
			Select().AddColumn("*").AddTable("a").AddLogicalOperator(OpOr),
			"where", reloader.ErrOperatorCount,
		},
		{
			"condition_invalid_value",
			Select().AddColumn("*").AddTable("a").AddCondition(EQ("x", Value{})),
			"where", reloader.ErrInvalidValue,
		},
		{"unknown_command", NewBuilder(0).AddTable("a"), "command", reloader.ErrUnknownCommand},
		{"insert_nan", Insert().AddTable("t").AddValues(Real(math.NaN()), Real(math.Inf(1))), "values", reloader.ErrInvalidValue},
		{
			"condition_infinite",
			Select().AddColumn("*").AddTable("a").AddCondition(GT("x", Real(math.Inf(-1)))),
			"where", reloader.ErrInvalidValue,
		},
		{
			"table_statement_separator",
			Select().AddColumn("*").AddTable("casing; DROP TABLE casing"),
			"tables", reloader.ErrInvalidIdentifier,
		},
		{"column_expression", Select().AddColumn("name, 1").AddTable("casing"), "columns", reloader.ErrInvalidIdentifier},
		{"column_empty", Select().AddColumn("").AddTable("casing"), "columns", reloader.ErrInvalidIdentifier},
		{"star_as_table", Select().AddColumn("*").AddTable("*"), "tables", reloader.ErrInvalidIdentifier},
		{"insert_table", Insert().AddTable("casing(x)").AddValue(Integer(1)), "table", reloader.ErrInvalidIdentifier},
		{"insert_field", Insert().AddTable("casing").AddField("*").AddValue(Integer(1)), "fields", reloader.ErrInvalidIdentifier},
		{"update_field", Update().AddTable("casing").AddField("name=name").AddValue(Integer(1)), "fields", reloader.ErrInvalidIdentifier},
		{"delete_table", Delete().AddTable("casing --"), "table", reloader.ErrInvalidIdentifier},
		{
			"condition_field_injection",
			Select().AddColumn("*").AddTable("casing").AddCondition(EQ("1 OR casing_id", Integer(99))),
			"where", reloader.ErrInvalidIdentifier,
		},
		{
			"condition_field_too_long",
			Delete().AddTable("casing").AddCondition(EQ(strings.Repeat("c", 129), Integer(1))),
			"where", reloader.ErrInvalidIdentifier,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.Render()
			require.Error(t, err)
			assert.True(t, reloader.IsValidationError(err))
			assert.ErrorIs(t, err, tt.err)
			var ve *reloader.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.clause, ve.Clause)

			_, _, err = tt.b.Query(dialect.SQLite)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRenderFunctions(t *testing.T) {
	t.Run("renderSelect", func(t *testing.T) {
		r := &renderer{}
		require.NoError(t, renderSelect(r, &Builder{columns: []string{"a"}, tables: []string{"t"}}))
		assert.Equal(t, "SELECT a FROM t", r.String())
	})

	t.Run("renderInsert", func(t *testing.T) {
		r := &renderer{bind: true, dialect: dialect.Postgres}
		require.NoError(t, renderInsert(r, &Builder{
			tables: []string{"t"},
			rows:   [][]Value{{Integer(1)}, {Integer(2)}},
		}))
		assert.Equal(t, "INSERT INTO t VALUES ($1),($2)", r.String())
		assert.Equal(t, []any{int64(1), int64(2)}, r.args)
	})

	t.Run("renderUpdate", func(t *testing.T) {
		r := &renderer{}
		require.NoError(t, renderUpdate(r, &Builder{
			tables: []string{"t"},
			fields: []string{"a"},
			rows:   [][]Value{{Text("b")}},
		}))
		assert.Equal(t, "UPDATE t SET a='b'", r.String())
	})

	t.Run("renderDelete", func(t *testing.T) {
		r := &renderer{}
		require.NoError(t, renderDelete(r, &Builder{
			tables:  []string{"t"},
			conds:   []Condition{LTE("a", Real(1.25)), GT("b", Integer(0))},
			logical: []Op{OpOr},
		}))
		assert.Equal(t, "DELETE FROM t WHERE a<=1.25 OR b>0", r.String())
	})
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "SELECT", CommandSelect.String())
	assert.Equal(t, "INSERT", CommandInsert.String())
	assert.Equal(t, "UPDATE", CommandUpdate.String())
	assert.Equal(t, "DELETE", CommandDelete.String())
	assert.Equal(t, "Command(9)", Command(9).String())
	assert.Equal(t, CommandUpdate, Update().Command())
}

func TestIsValidIdentifier(t *testing.T) {
	for _, s := range []string{"casing", "max_psi", "_tmp", "main.casing", "Load2", strings.Repeat("a", 128)} {
		assert.True(t, isValidIdentifier(s), s)
	}
	for _, s := range []string{"", "*", "2casing", "casing id", "casing;", "a-b", `"casing"`, strings.Repeat("a", 129)} {
		assert.False(t, isValidIdentifier(s), s)
	}
}

func TestQualifiedIdentifiers(t *testing.T) {
	got, err := Select().AddColumn("c.name").AddTable("main.casing").
		AddCondition(EQ("c.casing_id", Integer(1))).Render()
	require.NoError(t, err)
	assert.Equal(t, "SELECT c.name FROM main.casing WHERE c.casing_id=1", got)
}
