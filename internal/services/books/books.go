package books

import (
	"context"
	"strings"
	"time"

	"github.com/alhDiallo2018/nextBiblio/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fields accepted by the search endpoint's sortBy parameter.
var sortableFields = map[string]bool{
	"title":         true,
	"author":        true,
	"category":      true,
	"publishedDate": true,
	"averageRating": true,
	"createdAt":     true,
}

// AddBook validates and persists a new book owned by userId. An optional
// reviews array can seed the book; every entry is validated the same way a
// review mutation would be, and the aggregate rating is computed from it.
func AddBook(db *mongodb.DB, ctx context.Context, userId string, req NewBookRequest) (Book, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" {
		return Book{}, ErrMissingTitleOrAuthor
	}

	reviews := make([]mongodb.ReviewDb, 0, len(req.Reviews))
	now := time.Now()
	for _, entry := range req.Reviews {
		if !primitive.IsValidObjectID(entry.UserId) {
			return Book{}, ErrInvalidReviewUserId
		}
		if entry.Comment == "" {
			return Book{}, ErrMissingComment
		}
		if entry.Rating < 1 || entry.Rating > 5 {
			return Book{}, ErrInvalidRating
		}
		reviews = append(reviews, mongodb.ReviewDb{
			UserId:    entry.UserId,
			Comment:   entry.Comment,
			Rating:    entry.Rating,
			CreatedAt: now,
		})
	}

	bookDb, err := db.AddBook(ctx, mongodb.BookDb{
		Title:         req.Title,
		Author:        req.Author,
		PublishedDate: req.PublishedDate,
		Category:      req.Category,
		UserId:        userId,
		AverageRating: AverageRating(reviews),
		Reviews:       reviews,
	})
	if err != nil {
		return Book{}, err
	}

	return MapDbBookToApiBook(bookDb), nil
}

func GetBooksByUser(db *mongodb.DB, ctx context.Context, userId string) ([]Book, error) {
	booksDb, err := db.GetBooksByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	booksResponse := make([]Book, 0, len(booksDb))
	for _, bookDb := range booksDb {
		booksResponse = append(booksResponse, MapDbBookToApiBook(bookDb))
	}
	return booksResponse, nil
}

// UpdateBook applies a partial update to the book's own fields. Reviews and
// the aggregate rating are never touched here; they only change through the
// review operations.
func UpdateBook(db *mongodb.DB, ctx context.Context, req UpdateBookRequest) (Book, error) {
	if req.BookId == "" || !primitive.IsValidObjectID(req.BookId) {
		return Book{}, ErrInvalidBookId
	}

	fields := bson.M{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return Book{}, ErrMissingTitleOrAuthor
		}
		fields["title"] = *req.Title
	}
	if req.Author != nil {
		if strings.TrimSpace(*req.Author) == "" {
			return Book{}, ErrMissingTitleOrAuthor
		}
		fields["author"] = *req.Author
	}
	if req.PublishedDate != nil {
		fields["publishedDate"] = *req.PublishedDate
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}

	bookDb, err := db.UpdateBookFields(ctx, req.BookId, fields)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Book{}, ErrBookNotFound
		}
		return Book{}, err
	}

	return MapDbBookToApiBook(bookDb), nil
}

func DeleteBook(db *mongodb.DB, ctx context.Context, bookId string) error {
	if bookId == "" || !primitive.IsValidObjectID(bookId) {
		return ErrInvalidBookId
	}

	deleted, err := db.DeleteBook(ctx, bookId)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookNotFound
	}

	return nil
}

// SearchBooks filters books with case-insensitive partial matches on title,
// author and category, sorted by any of the sortable fields.
func SearchBooks(db *mongodb.DB, ctx context.Context, params SearchParams) ([]Book, error) {
	filter := bson.M{}
	if params.Title != "" {
		filter["title"] = bson.M{"$regex": params.Title, "$options": "i"}
	}
	if params.Author != "" {
		filter["author"] = bson.M{"$regex": params.Author, "$options": "i"}
	}
	if params.Category != "" {
		filter["category"] = bson.M{"$regex": params.Category, "$options": "i"}
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "publishedDate"
	}
	if !sortableFields[sortBy] {
		return nil, ErrInvalidSortField
	}

	sortOrder := 1
	if params.SortOrder == "desc" {
		sortOrder = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: sortBy, Value: sortOrder}})

	booksDb, err := db.GetBooks(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	booksResponse := make([]Book, 0, len(booksDb))
	for _, bookDb := range booksDb {
		booksResponse = append(booksResponse, MapDbBookToApiBook(bookDb))
	}
	return booksResponse, nil
}

func getBookDb(db *mongodb.DB, ctx context.Context, bookId string) (mongodb.BookDb, error) {
	if bookId == "" || !primitive.IsValidObjectID(bookId) {
		return mongodb.BookDb{}, ErrInvalidBookId
	}

	bookDb, err := db.GetBookById(ctx, bookId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return mongodb.BookDb{}, ErrBookNotFound
		}
		return mongodb.BookDb{}, err
	}
	return bookDb, nil
}
