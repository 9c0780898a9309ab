package sql

import (
	"testing"

	"github.com/syssam/reloader/dialect"
)

func BenchmarkSelect_Render(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Select().
			AddColumn("name").
			AddColumn("primer_size").
			AddTable("casing").
			AddCondition(EQ("name", Text(".357 Magnum"))).
			AddLogicalOperator(OpOr).
			AddCondition(EQ("casing_id", Integer(1))).
			Render()
	}
}

func BenchmarkSelect_Query(b *testing.B) {
	for _, d := range []string{dialect.SQLite, dialect.MySQL, dialect.Postgres} {
		b.Run(d, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _, _ = Select().
					AddColumn("*").
					AddTable("load").
					AddCondition(GTE("powder_weight", Real(4.5))).
					AddLogicalOperator(OpAnd).
					AddCondition(EQ("primer_make", Text("CCI"))).
					Query(d)
			}
		})
	}
}

func BenchmarkInsert_Rows(b *testing.B) {
	for _, d := range []string{dialect.SQLite, dialect.Postgres} {
		b.Run(d, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ib := Insert().
					AddTable("powder").
					AddField("powder_id").
					AddField("manufacturer").
					AddField("powder_type")
				for j := 0; j < 10; j++ {
					ib.BeginValueRow().
						AddValues(Integer(int64(j)), Text("Hodgdon"), Text("H4350")).
						EndValueRow()
				}
				_, _, _ = ib.Query(d)
			}
		})
	}
}

func BenchmarkUpdate_Render(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Update().
			AddTable("casing").
			AddField("name").
			AddField("max_psi").
			AddValues(Text(".30-06"), Real(60000)).
			AddCondition(NEQ("casing_id", Integer(3))).
			Render()
	}
}
