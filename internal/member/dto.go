package member

import (
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
)

// SearchRequest binds the search query string. Absent parameters stay nil.
// Filters accept any value of their type; a bound no member satisfies yields an empty result.
type SearchRequest struct {
	Username *string `form:"username"`
	TeamName *string `form:"teamName"`
	AgeGoe   *int    `form:"ageGoe"`
	AgeLoe   *int    `form:"ageLoe"`

	// offset/limit are validated by the paging layer
	Offset *int   `form:"offset"`
	Limit  *int   `form:"limit"`
	Sort   string `form:"sort" binding:"omitempty,sortkey"`
	Count  string `form:"count" binding:"omitempty,oneof=auto always none"`
}

func (r *SearchRequest) Condition() SearchCondition {
	return SearchCondition{
		Username: option.FromPtr(r.Username),
		TeamName: option.FromPtr(r.TeamName),
		AgeGoe:   option.FromPtr(r.AgeGoe),
		AgeLoe:   option.FromPtr(r.AgeLoe),
	}
}

// Paged reports whether the caller asked for a window
func (r *SearchRequest) Paged() bool {
	return r.Offset != nil || r.Limit != nil
}

type CreateMemberRequest struct {
	Username string  `json:"username" binding:"required,max=100,username"`
	Age      *int    `json:"age" binding:"required,gte=0,lte=200"`
	TeamName *string `json:"teamName" binding:"omitempty,max=100"`
}

type BulkRenameRequest struct {
	Username string `json:"username" binding:"required,max=100,username"`
	AgeLt    *int   `json:"ageLt" binding:"omitempty,gte=0"`
}

type BulkAddAgeRequest struct {
	Delta int  `json:"delta" binding:"required,ne=0"`
	AgeLt *int `json:"ageLt" binding:"omitempty,gte=0"`
}

type BulkDeleteRequest struct {
	AgeLt *int `json:"ageLt" binding:"omitempty,gte=0"`
}

type BulkResponse struct {
	Affected int64 `json:"affected"`
}
