package books

import (
	"context"
	"testing"
	"time"

	"github.com/alhDiallo2018/nextBiblio/internal/mongodb"
	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	t.Run("No reviews yields zero", func(t *testing.T) {
		require.Zero(t, AverageRating(nil))
		require.Zero(t, AverageRating([]mongodb.ReviewDb{}))
	})

	t.Run("Mean is rounded to two decimals", func(t *testing.T) {
		reviews := []mongodb.ReviewDb{
			{UserId: "a", Rating: 5},
			{UserId: "b", Rating: 4},
			{UserId: "c", Rating: 4},
		}
		require.Equal(t, 4.33, AverageRating(reviews))
	})

	t.Run("Single review is its own average", func(t *testing.T) {
		reviews := []mongodb.ReviewDb{{UserId: "a", Rating: 3}}
		require.Equal(t, 3.0, AverageRating(reviews))
	})
}

func TestMergeReviewSlice(t *testing.T) {
	t.Run("Appends a new review with its own timestamp", func(t *testing.T) {
		merged, updated := mergeReview(nil, "reviewer", "Nice", 4)
		require.False(t, updated)
		require.Len(t, merged, 1)
		require.Equal(t, "reviewer", merged[0].UserId)
		require.Equal(t, "Nice", merged[0].Comment)
		require.Equal(t, 4, merged[0].Rating)
		require.False(t, merged[0].CreatedAt.IsZero())
	})

	t.Run("Updates in place and preserves createdAt", func(t *testing.T) {
		createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		reviews := []mongodb.ReviewDb{
			{UserId: "reviewer", Comment: "Old", Rating: 5, CreatedAt: createdAt},
		}

		merged, updated := mergeReview(reviews, "reviewer", "New", 2)
		require.True(t, updated)
		require.Len(t, merged, 1)
		require.Equal(t, "New", merged[0].Comment)
		require.Equal(t, 2, merged[0].Rating)
		require.Equal(t, createdAt, merged[0].CreatedAt)
	})

	t.Run("Empty comment on update keeps the previous comment", func(t *testing.T) {
		reviews := []mongodb.ReviewDb{
			{UserId: "reviewer", Comment: "Keep me", Rating: 5, CreatedAt: time.Now()},
		}

		merged, updated := mergeReview(reviews, "reviewer", "", 1)
		require.True(t, updated)
		require.Equal(t, "Keep me", merged[0].Comment)
		require.Equal(t, 1, merged[0].Rating)
	})

	t.Run("Different reviewers keep separate entries", func(t *testing.T) {
		reviews := []mongodb.ReviewDb{
			{UserId: "first", Comment: "A", Rating: 5, CreatedAt: time.Now()},
		}

		merged, updated := mergeReview(reviews, "second", "B", 3)
		require.False(t, updated)
		require.Len(t, merged, 2)
	})
}

func TestReviewValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Rating bounds are checked before any database access", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1, 100} {
			_, _, err := MergeReview(nil, ctx, "64f000000000000000000000", "reviewer", ReviewRequest{
				Comment: "x",
				Rating:  rating,
			})
			require.ErrorIs(t, err, ErrInvalidRating)

			_, err = UpdateReview(nil, ctx, "64f000000000000000000000", "reviewer", ReviewRequest{
				Comment: "x",
				Rating:  rating,
			})
			require.ErrorIs(t, err, ErrInvalidRating)
		}
	})

	t.Run("Malformed book ids are rejected before any database access", func(t *testing.T) {
		_, _, err := MergeReview(nil, ctx, "notanid", "reviewer", ReviewRequest{Comment: "x", Rating: 3})
		require.ErrorIs(t, err, ErrInvalidBookId)

		_, err = DeleteReview(nil, ctx, "notanid", "reviewer")
		require.ErrorIs(t, err, ErrInvalidBookId)
	})
}
