package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ----- Types for the database -----

type BookDb struct {
	Id            string     `json:"id" bson:"_id"`
	Title         string     `json:"title" bson:"title"`
	Author        string     `json:"author" bson:"author"`
	PublishedDate *time.Time `json:"publishedDate,omitempty" bson:"publishedDate,omitempty"`
	Category      string     `json:"category,omitempty" bson:"category,omitempty"`
	UserId        string     `json:"userId" bson:"userId"`
	AverageRating float64    `json:"averageRating" bson:"averageRating"`
	Reviews       []ReviewDb `json:"reviews" bson:"reviews"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type ReviewDb struct {
	UserId    string    `json:"userId" bson:"userId"`
	Comment   string    `json:"comment" bson:"comment"`
	Rating    int       `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

func (db *DB) GetBookById(ctx context.Context, id string) (BookDb, error) {
	coll := db.Collection(BooksCollection)
	var bookDb BookDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&bookDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return BookDb{}, ErrRecordNotFound
		}
		return BookDb{}, err
	}
	return bookDb, nil
}

func (db *DB) AddBook(ctx context.Context, book BookDb) (BookDb, error) {
	coll := db.Collection(BooksCollection)

	book.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now
	if book.Reviews == nil {
		book.Reviews = []ReviewDb{}
	}

	_, err := coll.InsertOne(ctx, book)
	if err != nil {
		return BookDb{}, err
	}

	return book, nil
}

func (db *DB) GetBooksByUserId(ctx context.Context, userId string) ([]BookDb, error) {
	coll := db.Collection(BooksCollection)

	cursor, err := coll.Find(ctx, bson.M{"userId": userId})
	if err != nil {
		return []BookDb{}, err
	}
	defer cursor.Close(ctx)

	var books []BookDb
	if err := cursor.All(ctx, &books); err != nil {
		return []BookDb{}, err
	}
	return books, nil
}

func (db *DB) GetBooks(ctx context.Context, args ...any) ([]BookDb, error) {
	coll := db.Collection(BooksCollection)

	filter, opts := ResolveFilterAndOptionsSearch(args...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return []BookDb{}, err
	}
	defer cursor.Close(ctx)

	var books []BookDb
	if err := cursor.All(ctx, &books); err != nil {
		return []BookDb{}, err
	}
	return books, nil
}

// UpdateBookFields applies a partial $set update to a book and returns the
// updated document.
func (db *DB) UpdateBookFields(ctx context.Context, id string, fields bson.M) (BookDb, error) {
	coll := db.Collection(BooksCollection)

	fields["updatedAt"] = time.Now()
	update := bson.M{"$set": fields}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return BookDb{}, err
	}
	if result.MatchedCount == 0 {
		return BookDb{}, ErrRecordNotFound
	}

	return db.GetBookById(ctx, id)
}

// SaveBookReviews persists the full reviews array and the recomputed average
// rating of a book in a single write.
func (db *DB) SaveBookReviews(ctx context.Context, id string, reviews []ReviewDb, averageRating float64) error {
	coll := db.Collection(BooksCollection)

	update := bson.M{
		"$set": bson.M{
			"reviews":       reviews,
			"averageRating": averageRating,
			"updatedAt":     time.Now(),
		},
	}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (db *DB) DeleteBook(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(BooksCollection)
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (db *DB) DeleteBooksByUserId(ctx context.Context, userId string) (int64, error) {
	coll := db.Collection(BooksCollection)
	res, err := coll.DeleteMany(ctx, bson.M{"userId": userId})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
