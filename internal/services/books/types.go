package books

import "time"

type Book struct {
	Id            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	Category      string     `json:"category,omitempty"`
	UserId        string     `json:"userId"`
	AverageRating float64    `json:"averageRating"`
	Reviews       []Review   `json:"reviews"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type Review struct {
	UserId    string    `json:"userId"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewBookRequest struct {
	Title         string           `json:"title"`
	Author        string           `json:"author"`
	PublishedDate *time.Time       `json:"publishedDate,omitempty"`
	Category      string           `json:"category,omitempty"`
	Reviews       []NewReviewEntry `json:"reviews,omitempty"`
}

type NewReviewEntry struct {
	UserId  string `json:"userId"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type UpdateBookRequest struct {
	BookId        string     `json:"bookId"`
	Title         *string    `json:"title,omitempty"`
	Author        *string    `json:"author,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	Category      *string    `json:"category,omitempty"`
}

type ReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type SearchParams struct {
	Title     string
	Author    string
	Category  string
	SortBy    string
	SortOrder string
}

type AllBooksResponse struct {
	Books []Book `json:"books"`
}

type BookResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}
