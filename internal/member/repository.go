package member

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/model"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/paging"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/predicate"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// Create inserts member. A referenced team must already be persisted.
func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	if member.TeamID == nil && member.Team != nil && member.Team.ID != 0 {
		id := member.Team.ID
		member.TeamID = &id
	}
	return db.WithContext(ctx).Omit(clause.Associations).Create(member).Error
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Preload("Team").Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	return m.findWhere(ctx, db, predicate.MatchAll())
}

func (m *MemberRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) ([]model.Member, error) {
	return m.findWhere(ctx, db, predicate.Combine(Paths.Username.Eq(option.Some(username))))
}

func (m *MemberRepository) findWhere(ctx context.Context, db *gorm.DB, p predicate.Predicate) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).
		Scopes(p.Scope).
		Order(clause.OrderByColumn{Column: Paths.ID.Column()}).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// joined is the base member LEFT JOIN team query used by every search
func joined(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Model(&model.Member{}).
		Joins("LEFT JOIN team ON team.id = member.team_id")
}

// Search returns every member matching cond, projected with its team
func (m *MemberRepository) Search(ctx context.Context, db *gorm.DB, cond SearchCondition, sort option.Option[paging.Sort]) ([]MemberTeamDto, error) {
	s, present := sort.Get()
	order, err := orderBy(s, present)
	if err != nil {
		return nil, err
	}

	var rows []MemberTeamRow
	err = joined(ctx, db).
		Select(projectionColumns).
		Scopes(cond.Predicate().Scope).
		Order(order).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search members: %w: %w", paging.ErrQueryExecutionFailed, err)
	}

	return ProjectAll(rows), nil
}

// SearchPage returns one page of members matching cond.
// The content and count queries share the predicate but are built independently.
func (m *MemberRepository) SearchPage(ctx context.Context, db *gorm.DB, cond SearchCondition, spec paging.Spec, strategy paging.CountStrategy) (paging.Page[MemberTeamDto], error) {
	if err := spec.Validate(); err != nil {
		return paging.Page[MemberTeamDto]{}, err
	}

	s, present := spec.Sort.Get()
	order, err := orderBy(s, present)
	if err != nil {
		return paging.Page[MemberTeamDto]{}, err
	}

	where := cond.Predicate()
	content := joined(ctx, db).
		Select(projectionColumns).
		Scopes(where.Scope).
		Order(order)
	count := joined(ctx, db).
		Scopes(where.Scope)

	page, err := paging.Fetch[MemberTeamRow](ctx, content, count, spec, strategy)
	if err != nil {
		return paging.Page[MemberTeamDto]{}, err
	}

	return paging.MapPage(page, Project), nil
}

// FindByTeamName returns members of the named team (inner join)
func (m *MemberRepository) FindByTeamName(ctx context.Context, db *gorm.DB, teamName string) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).
		Select("member.*").
		Joins("JOIN team ON team.id = member.team_id").
		Scopes(predicate.Combine(Paths.TeamName.Eq(option.Some(teamName))).Scope).
		Order(clause.OrderByColumn{Column: Paths.ID.Column()}).
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("find members by team: %w: %w", paging.ErrQueryExecutionFailed, err)
	}
	return members, nil
}

// FindWithTeamOnFilter returns every member; team columns are filled only for
// members of teamName. The filter sits in the ON clause, so unmatched members
// keep their row with a null team instead of being dropped as a WHERE would.
func (m *MemberRepository) FindWithTeamOnFilter(ctx context.Context, db *gorm.DB, teamName string) ([]MemberTeamDto, error) {
	var rows []MemberTeamRow
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Select(projectionColumns).
		Joins("LEFT JOIN team ON team.id = member.team_id AND team.name = ?", teamName).
		Order(clause.OrderByColumn{Column: Paths.ID.Column()}).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find members with team on filter: %w: %w", paging.ErrQueryExecutionFailed, err)
	}
	return ProjectAll(rows), nil
}

// subAge is the age column of the member table aliased for subqueries
var subAge = predicate.NewField[int]("member_sub", "age")

func subquery(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).Table("member AS member_sub")
}

// FindOldest returns the members whose age equals the maximum age
func (m *MemberRepository) FindOldest(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	maxAge := subquery(db).Select("MAX(member_sub.age)")
	return m.findWithSubquery(ctx, db, "member.age = (?)", maxAge)
}

// FindAgeAtLeastAverage returns the members at or above the average age
func (m *MemberRepository) FindAgeAtLeastAverage(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	avgAge := subquery(db).Select("AVG(member_sub.age)")
	return m.findWithSubquery(ctx, db, "member.age >= (?)", avgAge)
}

// FindAgeInOlderThan returns members whose age appears among ages greater than age
func (m *MemberRepository) FindAgeInOlderThan(ctx context.Context, db *gorm.DB, age int) ([]model.Member, error) {
	ages := subquery(db).
		Select("member_sub.age").
		Scopes(predicate.Combine(subAge.Gt(option.Some(age))).Scope)
	return m.findWithSubquery(ctx, db, "member.age IN (?)", ages)
}

func (m *MemberRepository) findWithSubquery(ctx context.Context, db *gorm.DB, cond string, sub *gorm.DB) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).
		Where(cond, sub).
		Order(clause.OrderByColumn{Column: Paths.ID.Column()}).
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("subquery search: %w: %w", paging.ErrQueryExecutionFailed, err)
	}
	return members, nil
}

// BulkRename sets username on every member matching where
func (m *MemberRepository) BulkRename(ctx context.Context, db *gorm.DB, where predicate.Predicate, username string) (int64, error) {
	if where.IsMatchAll() {
		return 0, ErrBulkConditionRequired
	}

	result := db.WithContext(ctx).
		Model(&model.Member{}).
		Scopes(where.Scope).
		Update("username", username)
	if result.Error != nil {
		return 0, fmt.Errorf("bulk rename: %w: %w", paging.ErrQueryExecutionFailed, result.Error)
	}
	return result.RowsAffected, nil
}

// BulkAddAge adds delta to the age of every member matching where.
// MatchAll updates every row.
func (m *MemberRepository) BulkAddAge(ctx context.Context, db *gorm.DB, where predicate.Predicate, delta int) (int64, error) {
	tx := db.WithContext(ctx)
	if where.IsMatchAll() {
		tx = tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	}

	result := tx.Model(&model.Member{}).
		Scopes(where.Scope).
		Update("age", gorm.Expr("age + ?", delta))
	if result.Error != nil {
		return 0, fmt.Errorf("bulk add age: %w: %w", paging.ErrQueryExecutionFailed, result.Error)
	}
	return result.RowsAffected, nil
}

// BulkDelete removes every member matching where
func (m *MemberRepository) BulkDelete(ctx context.Context, db *gorm.DB, where predicate.Predicate) (int64, error) {
	if where.IsMatchAll() {
		return 0, ErrBulkConditionRequired
	}

	result := db.WithContext(ctx).
		Scopes(where.Scope).
		Delete(&model.Member{})
	if result.Error != nil {
		return 0, fmt.Errorf("bulk delete: %w: %w", paging.ErrQueryExecutionFailed, result.Error)
	}
	return result.RowsAffected, nil
}
