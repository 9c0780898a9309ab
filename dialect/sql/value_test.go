package sql

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"text", Text(".357 Magnum"), "'.357 Magnum'"},
		{"text_with_comma", Text("Rimless, Straight bottleneck"), "'Rimless, Straight bottleneck'"},
		{"text_empty", Text(""), "''"},
		{"text_quote", Text("O'Brien"), "'O''Brien'"},
		{"text_backslash", Text(`a\b`), `'a\\b'`},
		{"integer", Integer(6), "6"},
		{"integer_negative", Integer(-42), "-42"},
		{"integer_max", Integer(math.MaxInt64), "9223372036854775807"},
		{"real_whole", Real(25000.0), "25000"},
		{"real_fraction", Real(0.357), "0.357"},
		{"real_negative", Real(-1.5), "-1.5"},
		{"invalid", Value{}, "<invalid>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestValueArg(t *testing.T) {
	assert.Equal(t, "O'Brien", Text("O'Brien").Arg())
	assert.Equal(t, int64(3), Integer(3).Arg())
	assert.Equal(t, 4.5, Real(4.5).Arg())
	assert.Nil(t, Value{}.Arg())
}

func TestValueKind(t *testing.T) {
	assert.Equal(t, KindText, Text("x").Kind())
	assert.Equal(t, KindInteger, Integer(1).Kind())
	assert.Equal(t, KindReal, Real(1).Kind())
	assert.Equal(t, KindInvalid, Value{}.Kind())
	assert.False(t, Value{}.Valid())
	assert.True(t, Real(0).Valid())
	assert.False(t, Real(math.NaN()).Valid())
	assert.False(t, Real(math.Inf(1)).Valid())
	assert.False(t, Real(math.Inf(-1)).Valid())
	assert.Equal(t, "real", KindReal.String())
	assert.Equal(t, "invalid", ValueKind(99).String())
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		in   any
		want Value
	}{
		{"9mm", Text("9mm")},
		{7, Integer(7)},
		{int32(7), Integer(7)},
		{int64(7), Integer(7)},
		{uint16(7), Integer(7)},
		{float32(1.5), Real(1.5)},
		{2.25, Real(2.25)},
		{Integer(3), Integer(3)},
	}
	for _, tt := range tests {
		got, err := ValueOf(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%T", tt.in)
	}

	_, err := ValueOf(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported value type bool")
}

func TestOp(t *testing.T) {
	comparison := []Op{OpEQ, OpNEQ, OpGT, OpGTE, OpLT, OpLTE}
	symbols := []string{"=", "<>", ">", ">=", "<", "<="}
	for i, op := range comparison {
		assert.True(t, op.IsComparison(), op.String())
		assert.False(t, op.IsLogical(), op.String())
		assert.Equal(t, symbols[i], op.String())
	}
	for _, op := range []Op{OpAnd, OpOr, OpNot} {
		assert.True(t, op.IsLogical(), op.String())
		assert.False(t, op.IsComparison(), op.String())
	}
	assert.Equal(t, "AND", OpAnd.String())
	assert.Equal(t, "OR", OpOr.String())
	assert.Equal(t, "AND NOT", OpNot.String())
	assert.Equal(t, "<invalid>", Op(0).String())
	assert.Equal(t, "<invalid>", Op(200).String())
	assert.False(t, Op(0).IsComparison())
	assert.False(t, Op(0).IsLogical())
}

func TestConditionHelpers(t *testing.T) {
	assert.Equal(t, Condition{"a", OpEQ, Integer(1)}, EQ("a", Integer(1)))
	assert.Equal(t, Condition{"a", OpNEQ, Integer(1)}, NEQ("a", Integer(1)))
	assert.Equal(t, Condition{"a", OpGT, Integer(1)}, GT("a", Integer(1)))
	assert.Equal(t, Condition{"a", OpGTE, Integer(1)}, GTE("a", Integer(1)))
	assert.Equal(t, Condition{"a", OpLT, Integer(1)}, LT("a", Integer(1)))
	assert.Equal(t, Condition{"a", OpLTE, Integer(1)}, LTE("a", Integer(1)))
}
