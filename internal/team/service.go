package team

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/model"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type TeamService struct {
	db             *gorm.DB
	teamRepository *TeamRepository
}

func NewTeamService(db *gorm.DB, teamRepository *TeamRepository) *TeamService {
	return &TeamService{
		db:             db,
		teamRepository: teamRepository,
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, actor string, request *CreateTeamRequest) (*TeamResponse, error) {
	log := logger.FromContext(ctx)
	var response *TeamResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.teamRepository.IsExist(ctx, tx, request.Name)
		if err != nil {
			return fmt.Errorf("check team existence: %w", err)
		}
		if exists {
			log.Warn("Team already exists", "name", request.Name)
			return fmt.Errorf("team name=%s %w", request.Name, ErrTeamAlreadyExists)
		}

		team := model.NewTeam(request.Name)
		team.StampCreator(actor)
		if err := s.teamRepository.Create(ctx, tx, team); err != nil {
			return fmt.Errorf("create team: %w", err)
		}

		response = &TeamResponse{ID: team.ID, Name: team.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Team created", "id", response.ID, "actor", logger.MaskUsername(actor))
	return response, nil
}

func (s *TeamService) ListTeams(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.teamRepository.FindAllWithMembers(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("팀 목록 조회 실패: %w", err)
	}

	response := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		response = append(response, TeamResponse{
			ID:          t.ID,
			Name:        t.Name,
			MemberCount: len(t.Members),
		})
	}
	return response, nil
}
