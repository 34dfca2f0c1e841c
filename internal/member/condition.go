package member

import (
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/predicate"
)

// SearchCondition holds the optional member search filters.
// Every field is independent; an absent field does not filter.
type SearchCondition struct {
	Username option.Option[string]
	TeamName option.Option[string]
	AgeGoe   option.Option[int]
	AgeLoe   option.Option[int]
}

// Predicate composes the present filters with AND
func (c SearchCondition) Predicate() predicate.Predicate {
	return predicate.Combine(
		Paths.Username.Eq(c.Username),
		Paths.TeamName.Eq(c.TeamName),
		Paths.Age.Goe(c.AgeGoe),
		Paths.Age.Loe(c.AgeLoe),
	)
}
