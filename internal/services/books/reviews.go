package books

import (
	"context"
	"math"
	"time"

	"github.com/alhDiallo2018/nextBiblio/internal/mongodb"
)

// AverageRating returns the arithmetic mean of all review ratings rounded to
// two decimal places, or 0 when the book has no reviews.
func AverageRating(reviews []mongodb.ReviewDb) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}

	mean := float64(total) / float64(len(reviews))
	return math.Round(mean*100) / 100
}

// mergeReview adds or replaces the reviewer's entry in the reviews slice.
// A reviewer holds at most one review per book: when one already exists its
// comment and rating are replaced in place and the original createdAt is
// preserved. An empty comment on update keeps the previous comment.
// Returns the merged slice and whether an existing review was updated.
func mergeReview(reviews []mongodb.ReviewDb, reviewerId, comment string, rating int) ([]mongodb.ReviewDb, bool) {
	for i := range reviews {
		if reviews[i].UserId == reviewerId {
			if comment != "" {
				reviews[i].Comment = comment
			}
			reviews[i].Rating = rating
			return reviews, true
		}
	}

	reviews = append(reviews, mongodb.ReviewDb{
		UserId:    reviewerId,
		Comment:   comment,
		Rating:    rating,
		CreatedAt: time.Now(),
	})
	return reviews, false
}

func findReview(reviews []mongodb.ReviewDb, reviewerId string) int {
	for i := range reviews {
		if reviews[i].UserId == reviewerId {
			return i
		}
	}
	return -1
}

// MergeReview adds the reviewer's rating and comment to a book, or updates the
// existing entry when the reviewer already rated it. The book's aggregate
// rating is recomputed and persisted with the reviews in a single write.
// Returns the updated book and whether the review already existed.
func MergeReview(db *mongodb.DB, ctx context.Context, bookId, reviewerId string, req ReviewRequest) (Book, bool, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return Book{}, false, ErrInvalidRating
	}

	bookDb, err := getBookDb(db, ctx, bookId)
	if err != nil {
		return Book{}, false, err
	}

	if findReview(bookDb.Reviews, reviewerId) == -1 && req.Comment == "" {
		return Book{}, false, ErrMissingComment
	}

	merged, updated := mergeReview(bookDb.Reviews, reviewerId, req.Comment, req.Rating)
	average := AverageRating(merged)

	if err := db.SaveBookReviews(ctx, bookDb.Id, merged, average); err != nil {
		return Book{}, false, err
	}

	bookDb.Reviews = merged
	bookDb.AverageRating = average
	return MapDbBookToApiBook(bookDb), updated, nil
}

// UpdateReview replaces the comment and rating of the reviewer's existing
// review. Unlike MergeReview it never creates a new entry.
func UpdateReview(db *mongodb.DB, ctx context.Context, bookId, reviewerId string, req ReviewRequest) (Book, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return Book{}, ErrInvalidRating
	}

	bookDb, err := getBookDb(db, ctx, bookId)
	if err != nil {
		return Book{}, err
	}

	if findReview(bookDb.Reviews, reviewerId) == -1 {
		return Book{}, ErrReviewNotFound
	}

	merged, _ := mergeReview(bookDb.Reviews, reviewerId, req.Comment, req.Rating)
	average := AverageRating(merged)

	if err := db.SaveBookReviews(ctx, bookDb.Id, merged, average); err != nil {
		return Book{}, err
	}

	bookDb.Reviews = merged
	bookDb.AverageRating = average
	return MapDbBookToApiBook(bookDb), nil
}

// DeleteReview removes the reviewer's review from a book and recomputes the
// aggregate rating. The book is left untouched when the review does not exist.
func DeleteReview(db *mongodb.DB, ctx context.Context, bookId, reviewerId string) (Book, error) {
	bookDb, err := getBookDb(db, ctx, bookId)
	if err != nil {
		return Book{}, err
	}

	idx := findReview(bookDb.Reviews, reviewerId)
	if idx == -1 {
		return Book{}, ErrReviewNotFound
	}

	remaining := append(bookDb.Reviews[:idx], bookDb.Reviews[idx+1:]...)
	average := AverageRating(remaining)

	if err := db.SaveBookReviews(ctx, bookDb.Id, remaining, average); err != nil {
		return Book{}, err
	}

	bookDb.Reviews = remaining
	bookDb.AverageRating = average
	return MapDbBookToApiBook(bookDb), nil
}
