package paging

import (
	"fmt"
	"strings"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
)

// Sort orders a result set by a single key
type Sort struct {
	Key  string
	Desc bool
}

// ParseSort parses "key" or "key,asc|desc"
func ParseSort(raw string) (Sort, error) {
	key, dir, _ := strings.Cut(strings.TrimSpace(raw), ",")
	key = strings.TrimSpace(key)
	if key == "" {
		return Sort{}, fmt.Errorf("sort key is empty: %w", ErrInvalidPaginationSpec)
	}

	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc":
		return Sort{Key: key}, nil
	case "desc":
		return Sort{Key: key, Desc: true}, nil
	default:
		return Sort{}, fmt.Errorf("sort direction %q: %w", dir, ErrInvalidPaginationSpec)
	}
}

// Spec is a window over an ordered result set
type Spec struct {
	Offset int
	Limit  int
	Sort   option.Option[Sort]
}

// NewSpec creates a validated pagination spec
func NewSpec(offset, limit int) (Spec, error) {
	spec := Spec{Offset: offset, Limit: limit}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// Validate rejects a negative offset or a non-positive limit
func (s Spec) Validate() error {
	if s.Offset < 0 {
		return fmt.Errorf("offset must be >= 0, got %d: %w", s.Offset, ErrInvalidPaginationSpec)
	}
	if s.Limit <= 0 {
		return fmt.Errorf("limit must be > 0, got %d: %w", s.Limit, ErrInvalidPaginationSpec)
	}
	return nil
}

func (s Spec) WithSort(sort Sort) Spec {
	s.Sort = option.Some(sort)
	return s
}

// CountStrategy decides how the total row count is obtained
type CountStrategy int

const (
	// CountWhenNeeded skips the count query when the page itself determines the total
	CountWhenNeeded CountStrategy = iota
	// CountAlways runs the count query for every page
	CountAlways
	// CountNone never counts; HasNext comes from fetching one extra row
	CountNone
)

func (c CountStrategy) String() string {
	switch c {
	case CountWhenNeeded:
		return "auto"
	case CountAlways:
		return "always"
	case CountNone:
		return "none"
	default:
		return fmt.Sprintf("CountStrategy(%d)", int(c))
	}
}

// ParseCountStrategy maps "auto", "always" and "none"; empty means auto
func ParseCountStrategy(raw string) (CountStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return CountWhenNeeded, nil
	case "always":
		return CountAlways, nil
	case "none":
		return CountNone, nil
	default:
		return 0, fmt.Errorf("count strategy %q: %w", raw, ErrInvalidPaginationSpec)
	}
}
