package member

import (
	"fmt"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/paging"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/predicate"
	"gorm.io/gorm/clause"
)

// Paths are the typed columns a member query can filter or sort on.
// team.* columns are only valid on queries joining the team table.
var Paths = struct {
	ID       predicate.Field[uint32]
	Username predicate.Field[string]
	Age      predicate.Field[int]
	TeamID   predicate.Field[uint32]
	TeamName predicate.Field[string]
}{
	ID:       predicate.NewField[uint32]("member", "id"),
	Username: predicate.NewField[string]("member", "username"),
	Age:      predicate.NewField[int]("member", "age"),
	TeamID:   predicate.NewField[uint32]("member", "team_id"),
	TeamName: predicate.NewField[string]("team", "name"),
}

var sortColumns = map[string]clause.Column{
	"id":       Paths.ID.Column(),
	"username": Paths.Username.Column(),
	"age":      Paths.Age.Column(),
	"teamName": Paths.TeamName.Column(),
}

// orderBy resolves the requested sort; member.id is always the final tiebreaker
func orderBy(sort paging.Sort, present bool) (clause.OrderBy, error) {
	byID := clause.OrderByColumn{Column: Paths.ID.Column()}
	if !present || sort.Key == "id" {
		byID.Desc = present && sort.Desc
		return clause.OrderBy{Columns: []clause.OrderByColumn{byID}}, nil
	}

	column, ok := sortColumns[sort.Key]
	if !ok {
		return clause.OrderBy{}, fmt.Errorf("unknown sort key %q: %w", sort.Key, paging.ErrInvalidPaginationSpec)
	}
	return clause.OrderBy{Columns: []clause.OrderByColumn{{Column: column, Desc: sort.Desc}, byID}}, nil
}
