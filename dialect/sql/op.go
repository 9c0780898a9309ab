package sql

// Op is a comparison or logical operator.
//
// Comparison operators sit between a field and a value inside a Condition.
// Logical operators join two consecutive conditions. The two families are
// not interchangeable and rendering fails if one is used in the other's slot.
type Op uint8

// Comparison operators.
const (
	OpEQ  Op = iota + 1 // =
	OpNEQ               // <>
	OpGT                // >
	OpGTE               // >=
	OpLT                // <
	OpLTE               // <=
)

// Logical operators.
const (
	OpAnd Op = iota + 16 // AND
	OpOr                 // OR
	OpNot                // AND NOT
)

var opText = [...]string{
	OpEQ:  "=",
	OpNEQ: "<>",
	OpGT:  ">",
	OpGTE: ">=",
	OpLT:  "<",
	OpLTE: "<=",
	OpAnd: "AND",
	OpOr:  "OR",
	OpNot: "AND NOT",
}

// String returns the SQL symbol of the operator.
func (o Op) String() string {
	if int(o) < len(opText) && opText[o] != "" {
		return opText[o]
	}
	return "<invalid>"
}

// IsComparison reports whether o is one of the comparison operators.
func (o Op) IsComparison() bool { return o >= OpEQ && o <= OpLTE }

// IsLogical reports whether o is one of the logical operators.
func (o Op) IsLogical() bool { return o >= OpAnd && o <= OpNot }

// Condition is a single comparison of a field against a value.
type Condition struct {
	Field string
	Op    Op
	Value Value
}

// Cond returns a Condition.
func Cond(field string, op Op, v Value) Condition {
	return Condition{Field: field, Op: op, Value: v}
}

// EQ returns a "field = value" condition.
func EQ(field string, v Value) Condition { return Cond(field, OpEQ, v) }

// NEQ returns a "field <> value" condition.
func NEQ(field string, v Value) Condition { return Cond(field, OpNEQ, v) }

// GT returns a "field > value" condition.
func GT(field string, v Value) Condition { return Cond(field, OpGT, v) }

// GTE returns a "field >= value" condition.
func GTE(field string, v Value) Condition { return Cond(field, OpGTE, v) }

// LT returns a "field < value" condition.
func LT(field string, v Value) Condition { return Cond(field, OpLT, v) }

// LTE returns a "field <= value" condition.
func LTE(field string, v Value) Condition { return Cond(field, OpLTE, v) }
