package team

import (
	"context"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/model"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/predicate"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var teamName = predicate.NewField[string]("team", "name")

type TeamRepository struct{}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{}
}

func (r *TeamRepository) Create(ctx context.Context, db *gorm.DB, team *model.Team) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(team).Error
}

func (r *TeamRepository) IsExist(ctx context.Context, db *gorm.DB, name string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Team{}).
		Scopes(predicate.Combine(teamName.Eq(option.Some(name))).Scope).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *TeamRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Team, error) {
	var team model.Team
	err := db.WithContext(ctx).
		Scopes(predicate.Combine(teamName.Eq(option.Some(name))).Scope).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// FindAllWithMembers loads every team and its members ordered by id
func (r *TeamRepository) FindAllWithMembers(ctx context.Context, db *gorm.DB) ([]model.Team, error) {
	var teams []model.Team
	err := db.WithContext(ctx).
		Preload("Members", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id")
		}).
		Order("id").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
