package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/model"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/paging"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/predicate"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/team"
	"gorm.io/gorm"
)

// SearchQuery is a search condition plus an optional window
type SearchQuery struct {
	Condition SearchCondition
	Page      option.Option[paging.Spec]
	Sort      option.Option[paging.Sort]
	Count     paging.CountStrategy
}

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
	teamRepository   *team.TeamRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository, teamRepository *team.TeamRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		teamRepository:   teamRepository,
	}
}

func (s *MemberService) CreateMember(ctx context.Context, actor string, request *CreateMemberRequest) (*MemberTeamDto, error) {
	log := logger.FromContext(ctx)
	var response MemberTeamDto

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var t *model.Team
		if name := option.FromPtr(request.TeamName); name.IsSome() {
			found, err := s.teamRepository.FindByName(ctx, tx, name.Unwrap())
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("팀을 찾을 수 없습니다 name=%s %w", name.Unwrap(), team.ErrTeamNotFound)
				}
				return fmt.Errorf("find team: %w", err)
			}
			t = found
		}

		member := model.NewMember(request.Username, *request.Age, t)
		member.StampCreator(actor)
		if err := s.memberRepository.Create(ctx, tx, member); err != nil {
			log.Error("Failed to create member", "error", err)
			return fmt.Errorf("create member: %w", err)
		}

		response = toDto(member)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Member created", "id", response.MemberID, "actor", logger.MaskUsername(actor))
	return &response, nil
}

func (s *MemberService) GetMember(ctx context.Context, memberID uint32) (*MemberTeamDto, error) {
	member, err := s.memberRepository.FindByID(ctx, s.db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	response := toDto(member)
	return &response, nil
}

// Search runs the dynamic member search. Without a window every match is
// returned and the total equals the content size.
func (s *MemberService) Search(ctx context.Context, query SearchQuery) (paging.Page[MemberTeamDto], error) {
	log := logger.FromContext(ctx)

	if spec, ok := query.Page.Get(); ok {
		if err := spec.Validate(); err != nil {
			log.Warn("Invalid pagination", "offset", spec.Offset, "limit", spec.Limit)
			return paging.Page[MemberTeamDto]{}, err
		}
		if sort, ok := query.Sort.Get(); ok {
			spec = spec.WithSort(sort)
		}

		page, err := s.memberRepository.SearchPage(ctx, s.db, query.Condition, spec, query.Count)
		if err != nil {
			log.Error("Member search failed", "error", err)
			return paging.Page[MemberTeamDto]{}, err
		}
		return page, nil
	}

	content, err := s.memberRepository.Search(ctx, s.db, query.Condition, query.Sort)
	if err != nil {
		log.Error("Member search failed", "error", err)
		return paging.Page[MemberTeamDto]{}, err
	}

	return paging.Page[MemberTeamDto]{
		Content: content,
		Total:   option.Some(int64(len(content))),
		Limit:   len(content),
	}, nil
}

func (s *MemberService) BulkRename(ctx context.Context, actor string, request *BulkRenameRequest) (int64, error) {
	where := predicate.Combine(Paths.Age.Lt(option.FromPtr(request.AgeLt)))
	return s.bulk(ctx, actor, "rename", func(tx *gorm.DB) (int64, error) {
		return s.memberRepository.BulkRename(ctx, tx, where, request.Username)
	})
}

func (s *MemberService) BulkAddAge(ctx context.Context, actor string, request *BulkAddAgeRequest) (int64, error) {
	where := predicate.Combine(Paths.Age.Lt(option.FromPtr(request.AgeLt)))
	return s.bulk(ctx, actor, "add_age", func(tx *gorm.DB) (int64, error) {
		return s.memberRepository.BulkAddAge(ctx, tx, where, request.Delta)
	})
}

func (s *MemberService) BulkDelete(ctx context.Context, actor string, request *BulkDeleteRequest) (int64, error) {
	where := predicate.Combine(Paths.Age.Lt(option.FromPtr(request.AgeLt)))
	return s.bulk(ctx, actor, "delete", func(tx *gorm.DB) (int64, error) {
		return s.memberRepository.BulkDelete(ctx, tx, where)
	})
}

func (s *MemberService) bulk(ctx context.Context, actor, op string, fn func(tx *gorm.DB) (int64, error)) (int64, error) {
	log := logger.FromContext(ctx)

	affected, err := database.InTransaction(ctx, s.db, fn)
	if err != nil {
		log.Warn("Bulk operation failed", "op", op, "error", err)
		return 0, err
	}

	log.Info("Bulk operation completed", "op", op, "affected", affected, "actor", logger.MaskUsername(actor))
	return affected, nil
}

func toDto(m *model.Member) MemberTeamDto {
	row := MemberTeamRow{
		MemberID: m.ID,
		Username: m.Username,
		Age:      m.Age,
		TeamID:   m.TeamID,
	}
	if m.Team != nil {
		row.TeamName = &m.Team.Name
	}
	return Project(row)
}
