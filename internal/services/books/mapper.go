package books

import "github.com/alhDiallo2018/nextBiblio/internal/mongodb"

func MapDbBookToApiBook(bookDb mongodb.BookDb) Book {
	reviews := make([]Review, 0, len(bookDb.Reviews))
	for _, reviewDb := range bookDb.Reviews {
		reviews = append(reviews, Review{
			UserId:    reviewDb.UserId,
			Comment:   reviewDb.Comment,
			Rating:    reviewDb.Rating,
			CreatedAt: reviewDb.CreatedAt,
		})
	}

	return Book{
		Id:            bookDb.Id,
		Title:         bookDb.Title,
		Author:        bookDb.Author,
		PublishedDate: bookDb.PublishedDate,
		Category:      bookDb.Category,
		UserId:        bookDb.UserId,
		AverageRating: bookDb.AverageRating,
		Reviews:       reviews,
		CreatedAt:     bookDb.CreatedAt,
		UpdatedAt:     bookDb.UpdatedAt,
	}
}
