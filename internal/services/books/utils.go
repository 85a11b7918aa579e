package books

import (
	"errors"
	"net/http"
)

var (
	ErrBookNotFound         = errors.New("book not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrMissingComment       = errors.New("field comment is required")
	ErrMissingTitleOrAuthor = errors.New("fields title and author are required")
	ErrInvalidBookId        = errors.New("invalid or missing bookId")
	ErrInvalidReviewUserId  = errors.New("invalid userId in reviews")
	ErrInvalidSortField     = errors.New("invalid sortBy field")
)

var ErrorMap = map[error]int{
	ErrBookNotFound:         http.StatusNotFound,
	ErrReviewNotFound:       http.StatusNotFound,
	ErrInvalidRating:        http.StatusBadRequest,
	ErrMissingComment:       http.StatusBadRequest,
	ErrMissingTitleOrAuthor: http.StatusBadRequest,
	ErrInvalidBookId:        http.StatusBadRequest,
	ErrInvalidReviewUserId:  http.StatusBadRequest,
	ErrInvalidSortField:     http.StatusBadRequest,
}
