// Package sql provides the statement builder, the Database facade and the
// database/sql driver used to reach the storage engine.
//
// # Builder
//
// A Builder accumulates the clauses of one SELECT, INSERT, UPDATE or DELETE
// statement and renders it on demand:
//
//	b := sql.Select().
//	    AddColumn("name").
//	    AddColumn("primer_size").
//	    AddTable("casing").
//	    AddCondition(sql.EQ("name", sql.Text(".357 Magnum"))).
//	    AddLogicalOperator(sql.OpOr).
//	    AddCondition(sql.EQ("casing_id", sql.Integer(1)))
//
//	b.Render()
//	// SELECT name,primer_size FROM casing WHERE name='.357 Magnum' OR casing_id=1
//
//	b.Query(dialect.Postgres)
//	// SELECT name,primer_size FROM casing WHERE name=$1 OR casing_id=$2
//	// [".357 Magnum" 1]
//
// Render writes values as literals and exists for logs and diagnostics.
// Query produces the placeholder form and its arguments, which is the only
// form sent to the storage engine.
//
// # Values and Operators
//
// Values are tagged: Text, Integer or Real. Operators come in two families.
// Comparison operators (OpEQ, OpNEQ, OpGT, OpGTE, OpLT, OpLTE) belong inside a
// Condition; logical operators (OpAnd, OpOr, OpNot) join consecutive
// conditions. Mixing the families fails at render time with a
// *reloader.ValidationError.
//
// # Database
//
// Database owns one storage connection and at most one statement under
// construction. It exposes the same clause methods as Builder behind a
// begin/render/reset protocol:
//
//	db, err := sql.Open(ctx, "sqlite", "reloading.db", sql.WithDebug())
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	defer db.Reset()
//	res, err := db.BeginDelete().
//	    AddTable("casing").
//	    AddCondition(sql.EQ("casing_id", sql.Integer(2))).
//	    Exec(ctx)
//
// Beginning a second statement before Reset, or adding clauses with no
// statement begun, records a *reloader.StateError.
//
// # Drivers
//
// Driver wraps *sql.DB. StatsDriver and DebugDriver decorate any
// dialect.Driver with execution statistics and statement logging.
package sql
