package paging_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/model"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/option"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/paging"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// countingQueries tracks how many COUNT queries reached the database
type countingQueries struct {
	counts int
}

func (c *countingQueries) register(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Callback().Query().Before("gorm:query").Register("test:count_counter", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*int64); ok {
			c.counts++
		}
	})
	require.NoError(t, err)
}

func setup(t *testing.T) (*gorm.DB, *countingQueries) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	testutil.SeedMembers(t, db)

	counter := &countingQueries{}
	counter.register(t, db)
	return db, counter
}

func queries(db *gorm.DB) (content, count *gorm.DB) {
	content = db.Model(&model.Member{}).Order("id")
	count = db.Model(&model.Member{})
	return content, count
}

func usernames(members []model.Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Username)
	}
	return names
}

func TestFetch_SecondPageOfFour(t *testing.T) {
	for _, strategy := range []paging.CountStrategy{paging.CountWhenNeeded, paging.CountAlways, paging.CountNone} {
		t.Run(strategy.String(), func(t *testing.T) {
			// Given: 4 members, window offset=2 limit=2
			db, _ := setup(t)
			content, count := queries(db)
			spec, err := paging.NewSpec(2, 2)
			require.NoError(t, err)

			// When
			page, err := paging.Fetch[model.Member](context.Background(), content, count, spec, strategy)

			// Then: records 3-4 and no next page
			require.NoError(t, err)
			assert.Equal(t, []string{"member3", "member4"}, usernames(page.Content))
			assert.False(t, page.HasNext)
			if strategy == paging.CountNone {
				assert.True(t, page.Total.IsNothing())
			} else {
				assert.Equal(t, option.Some(int64(4)), page.Total)
			}
		})
	}
}

func TestFetch_MaxIntLimit(t *testing.T) {
	for _, strategy := range []paging.CountStrategy{paging.CountWhenNeeded, paging.CountAlways, paging.CountNone} {
		t.Run(strategy.String(), func(t *testing.T) {
			// Given: the largest valid window
			db, _ := setup(t)
			content, count := queries(db)
			spec, err := paging.NewSpec(0, math.MaxInt)
			require.NoError(t, err)

			// When
			page, err := paging.Fetch[model.Member](context.Background(), content, count, spec, strategy)

			// Then: every record on one page
			require.NoError(t, err)
			assert.Equal(t, []string{"member1", "member2", "member3", "member4"}, usernames(page.Content))
			assert.False(t, page.HasNext)
			assert.Equal(t, math.MaxInt, page.Limit)
			if strategy != paging.CountNone {
				assert.Equal(t, option.Some(int64(4)), page.Total)
			}
		})
	}
}

func TestFetch_FirstPageHasNext(t *testing.T) {
	db, counter := setup(t)
	content, count := queries(db)

	page, err := paging.Fetch[model.Member](context.Background(), content, count, paging.Spec{Offset: 0, Limit: 3}, paging.CountWhenNeeded)

	require.NoError(t, err)
	assert.Len(t, page.Content, 3)
	assert.True(t, page.HasNext)
	assert.Equal(t, option.Some(int64(4)), page.Total)
	assert.Equal(t, 1, counter.counts)
}

func TestFetch_ShortPageSkipsCount(t *testing.T) {
	db, counter := setup(t)
	content, count := queries(db)

	page, err := paging.Fetch[model.Member](context.Background(), content, count, paging.Spec{Offset: 3, Limit: 5}, paging.CountWhenNeeded)

	require.NoError(t, err)
	assert.Equal(t, []string{"member4"}, usernames(page.Content))
	assert.Equal(t, option.Some(int64(4)), page.Total)
	assert.False(t, page.HasNext)
	assert.Zero(t, counter.counts)
}

func TestFetch_CountAlwaysRunsCount(t *testing.T) {
	db, counter := setup(t)
	content, count := queries(db)

	_, err := paging.Fetch[model.Member](context.Background(), content, count, paging.Spec{Offset: 0, Limit: 10}, paging.CountAlways)

	require.NoError(t, err)
	assert.Equal(t, 1, counter.counts)
}

func TestFetch_CountNoneDetectsNextPage(t *testing.T) {
	db, counter := setup(t)
	content, _ := queries(db)

	page, err := paging.Fetch[model.Member](context.Background(), content, nil, paging.Spec{Offset: 1, Limit: 2}, paging.CountNone)

	require.NoError(t, err)
	assert.Equal(t, []string{"member2", "member3"}, usernames(page.Content))
	assert.True(t, page.HasNext)
	assert.True(t, page.Total.IsNothing())
	assert.Zero(t, counter.counts)
}

func TestFetch_InvalidSpecFailsBeforeQuerying(t *testing.T) {
	db, _ := setup(t)

	var issued int
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:any_query", func(*gorm.DB) {
		issued++
	}))
	content, count := queries(db)

	_, err := paging.Fetch[model.Member](context.Background(), content, count, paging.Spec{Offset: -1, Limit: 2}, paging.CountAlways)

	require.Error(t, err)
	assert.True(t, errors.Is(err, paging.ErrInvalidPaginationSpec))
	assert.Zero(t, issued)
}

func TestFetch_QueryFailureIsWrapped(t *testing.T) {
	db, _ := setup(t)
	content := db.Table("no_such_table")

	_, err := paging.Fetch[model.Member](context.Background(), content, nil, paging.Spec{Offset: 0, Limit: 2}, paging.CountNone)

	require.Error(t, err)
	assert.ErrorIs(t, err, paging.ErrQueryExecutionFailed)
	assert.Contains(t, err.Error(), "no_such_table")
}

func TestFetch_CountRequired(t *testing.T) {
	db, _ := setup(t)
	content, _ := queries(db)

	_, err := paging.Fetch[model.Member](context.Background(), content, nil, paging.Spec{Offset: 0, Limit: 2}, paging.CountAlways)

	assert.Error(t, err)
}

func TestMapPage(t *testing.T) {
	page := paging.Page[int]{Content: []int{1, 2}, Total: option.Some(int64(5)), HasNext: true, Offset: 0, Limit: 2}

	mapped := paging.MapPage(page, func(v int) string { return string(rune('a' + v)) })

	assert.Equal(t, []string{"b", "c"}, mapped.Content)
	assert.Equal(t, page.Total, mapped.Total)
	assert.True(t, mapped.HasNext)
}
