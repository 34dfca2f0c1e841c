package paging

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
	"gorm.io/gorm"
)

// Page is one window of results.
// Total is Nothing when the count was not requested.
type Page[T any] struct {
	Content []T                  `json:"content"`
	Total   option.Option[int64] `json:"total"`
	HasNext bool                 `json:"hasNext"`
	Offset  int                  `json:"offset"`
	Limit   int                  `json:"limit"`
}

// MapPage converts the content of a page, keeping its metadata
func MapPage[T any, U any](p Page[T], f func(T) U) Page[U] {
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, f(item))
	}
	return Page[U]{
		Content: content,
		Total:   p.Total,
		HasNext: p.HasNext,
		Offset:  p.Offset,
		Limit:   p.Limit,
	}
}

// Fetch runs the content query for the window described by spec and, depending
// on strategy, the count query. The two queries are independent: content must
// carry its own ordering, count must not carry a SELECT list.
//
// count may be nil when strategy is CountNone.
func Fetch[R any](ctx context.Context, content, count *gorm.DB, spec Spec, strategy CountStrategy) (Page[R], error) {
	if err := spec.Validate(); err != nil {
		return Page[R]{}, err
	}
	if count == nil && strategy != CountNone {
		return Page[R]{}, errors.New("paging: count query is required for strategy " + strategy.String())
	}

	// CountNone reads one extra row to learn HasNext
	limit := spec.Limit
	if strategy == CountNone && limit < math.MaxInt {
		limit++
	}

	var rows []R
	if err := content.WithContext(ctx).Offset(spec.Offset).Limit(limit).Scan(&rows).Error; err != nil {
		return Page[R]{}, fmt.Errorf("fetch page content: %w: %w", ErrQueryExecutionFailed, err)
	}

	if rows == nil {
		rows = []R{}
	}

	page := Page[R]{Content: rows, Offset: spec.Offset, Limit: spec.Limit}

	if strategy == CountNone {
		if len(rows) > spec.Limit {
			page.Content = rows[:spec.Limit]
			page.HasNext = true
		}
		return page, nil
	}

	total, known := int64(0), false
	if strategy == CountWhenNeeded {
		total, known = deriveTotal(spec, len(rows))
	}
	if !known {
		if err := count.WithContext(ctx).Count(&total).Error; err != nil {
			return Page[R]{}, fmt.Errorf("count rows: %w: %w", ErrQueryExecutionFailed, err)
		}
	}

	page.Total = option.Some(total)
	page.HasNext = int64(spec.Offset+len(rows)) < total
	return page, nil
}

// deriveTotal reports the total when a short page proves it:
// a short first page holds every row, and a non-empty short later page ends the set.
func deriveTotal(spec Spec, size int) (int64, bool) {
	if size >= spec.Limit {
		return 0, false
	}
	if spec.Offset == 0 {
		return int64(size), true
	}
	if size > 0 {
		return int64(spec.Offset + size), true
	}
	return 0, false
}
