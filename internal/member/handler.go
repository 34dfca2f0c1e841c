package member

import (
	"net/http"
	"strconv"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/config"
	sharedContext "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/paging"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
	paging        config.PagingConfig
}

func NewMemberHandler(memberService *MemberService, pagingConfig config.PagingConfig) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		paging:        pagingConfig,
	}
}

func (h *MemberHandler) Search(c *gin.Context) {
	var request SearchRequest
	if !handler.BindQuery(c, &request) {
		return
	}

	query, err := h.toSearchQuery(&request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	page, err := h.memberService.Search(c.Request.Context(), query)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *MemberHandler) toSearchQuery(request *SearchRequest) (SearchQuery, error) {
	query := SearchQuery{Condition: request.Condition()}

	if request.Sort != "" {
		sort, err := paging.ParseSort(request.Sort)
		if err != nil {
			return SearchQuery{}, err
		}
		query.Sort = option.Some(sort)
	}

	count, err := paging.ParseCountStrategy(request.Count)
	if err != nil {
		return SearchQuery{}, err
	}
	query.Count = count

	if request.Paged() {
		spec := paging.Spec{
			Offset: option.FromPtr(request.Offset).UnwrapOr(0),
			Limit:  option.FromPtr(request.Limit).UnwrapOr(h.paging.DefaultLimit),
		}
		if h.paging.MaxLimit > 0 && spec.Limit > h.paging.MaxLimit {
			spec.Limit = h.paging.MaxLimit
		}
		query.Page = option.Some(spec)
	}

	return query, nil
}

func (h *MemberHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handler.RespondError(c, err, sharedError.InvalidRequest)
		return
	}

	response, err := h.memberService.GetMember(c.Request.Context(), uint32(id))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) Create(c *gin.Context) {
	actor, ok := sharedContext.RequireSubject(c)
	if !ok {
		return
	}

	var request CreateMemberRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.CreateMember(c.Request.Context(), actor, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *MemberHandler) BulkRename(c *gin.Context) {
	actor, ok := sharedContext.RequireSubject(c)
	if !ok {
		return
	}

	var request BulkRenameRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	affected, err := h.memberService.BulkRename(c.Request.Context(), actor, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, BulkResponse{Affected: affected})
}

func (h *MemberHandler) BulkAddAge(c *gin.Context) {
	actor, ok := sharedContext.RequireSubject(c)
	if !ok {
		return
	}

	var request BulkAddAgeRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	affected, err := h.memberService.BulkAddAge(c.Request.Context(), actor, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, BulkResponse{Affected: affected})
}

func (h *MemberHandler) BulkDelete(c *gin.Context) {
	actor, ok := sharedContext.RequireSubject(c)
	if !ok {
		return
	}

	var request BulkDeleteRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	affected, err := h.memberService.BulkDelete(c.Request.Context(), actor, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, BulkResponse{Affected: affected})
}
