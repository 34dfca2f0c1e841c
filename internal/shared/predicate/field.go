package predicate

import (
	"fmt"
	"strings"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
	"gorm.io/gorm/clause"
)

// Operator is the comparison applied by an atomic predicate
type Operator string

const (
	OpEq       Operator = "eq"
	OpNe       Operator = "ne"
	OpGoe      Operator = "goe"
	OpLoe      Operator = "loe"
	OpGt       Operator = "gt"
	OpLt       Operator = "lt"
	OpContains Operator = "contains"
)

// Field is a typed path to a table column.
// The type parameter ties filter values to the column's Go type.
type Field[T any] struct {
	column clause.Column
}

// NewField creates a field path for table.column
func NewField[T any](table, column string) Field[T] {
	return Field[T]{column: clause.Column{Table: table, Name: column}}
}

func (f Field[T]) Column() clause.Column {
	return f.column
}

func (f Field[T]) Eq(v option.Option[T]) option.Option[Predicate] {
	return For(f, OpEq, v)
}

func (f Field[T]) Ne(v option.Option[T]) option.Option[Predicate] {
	return For(f, OpNe, v)
}

func (f Field[T]) Goe(v option.Option[T]) option.Option[Predicate] {
	return For(f, OpGoe, v)
}

func (f Field[T]) Loe(v option.Option[T]) option.Option[Predicate] {
	return For(f, OpLoe, v)
}

func (f Field[T]) Gt(v option.Option[T]) option.Option[Predicate] {
	return For(f, OpGt, v)
}

func (f Field[T]) Lt(v option.Option[T]) option.Option[Predicate] {
	return For(f, OpLt, v)
}

func (f Field[T]) Contains(v option.Option[T]) option.Option[Predicate] {
	return For(f, OpContains, v)
}

// For builds an atomic predicate on field, or Nothing when the filter value is
// absent. Text values that are empty or whitespace-only count as absent.
//
// For panics on an unknown operator.
func For[T any](field Field[T], op Operator, value option.Option[T]) option.Option[Predicate] {
	v, ok := value.Get()
	if !ok {
		return option.Nothing[Predicate]()
	}
	if s, isText := any(v).(string); isText && !hasText(s) {
		return option.Nothing[Predicate]()
	}

	return option.Some(Predicate{exprs: []clause.Expression{build(field.column, op, v)}})
}

func build(column clause.Column, op Operator, value any) clause.Expression {
	switch op {
	case OpEq:
		return clause.Eq{Column: column, Value: value}
	case OpNe:
		return clause.Neq{Column: column, Value: value}
	case OpGoe:
		return clause.Gte{Column: column, Value: value}
	case OpLoe:
		return clause.Lte{Column: column, Value: value}
	case OpGt:
		return clause.Gt{Column: column, Value: value}
	case OpLt:
		return clause.Lt{Column: column, Value: value}
	case OpContains:
		pattern := "%" + escapeLike(fmt.Sprint(value)) + "%"
		return clause.Expr{SQL: `? LIKE ? ESCAPE '\'`, Vars: []any{column, pattern}}
	default:
		panic(fmt.Sprintf("predicate: unsupported operator %q", op))
	}
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
