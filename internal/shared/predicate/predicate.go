package predicate

import (
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Predicate is a conjunction of zero or more atomic conditions.
// The zero value matches every row.
type Predicate struct {
	exprs []clause.Expression
}

// MatchAll returns the predicate with no conditions
func MatchAll() Predicate {
	return Predicate{}
}

func (p Predicate) IsMatchAll() bool {
	return len(p.exprs) == 0
}

// Len returns the number of atomic conditions
func (p Predicate) Len() int {
	return len(p.exprs)
}

// Exprs returns a copy of the atomic conditions.
func (p Predicate) Exprs() []clause.Expression {
	out := make([]clause.Expression, len(p.exprs))
	copy(out, p.exprs)
	return out
}

// And returns p AND other. MatchAll is the identity on either side.
func (p Predicate) And(other Predicate) Predicate {
	exprs := make([]clause.Expression, 0, len(p.exprs)+len(other.exprs))
	exprs = append(exprs, p.exprs...)
	exprs = append(exprs, other.exprs...)
	return Predicate{exprs: exprs}
}

// Scope applies the predicate as a WHERE clause.
//
// Usage:
//
//	db.Model(&model.Member{}).Scopes(p.Scope).Find(&members)
func (p Predicate) Scope(db *gorm.DB) *gorm.DB {
	if p.IsMatchAll() {
		return db
	}
	return db.Clauses(clause.Where{Exprs: p.Exprs()})
}

// Combine folds the present predicates with AND and skips absent ones.
// When every input is absent the result is MatchAll.
func Combine(preds ...option.Option[Predicate]) Predicate {
	var acc option.Option[Predicate]
	for _, p := range preds {
		v, ok := p.Get()
		if !ok {
			continue
		}
		if acc.IsNothing() {
			acc = option.Some(v)
			continue
		}
		acc = option.Some(acc.Unwrap().And(v))
	}
	return acc.UnwrapOr(MatchAll())
}
