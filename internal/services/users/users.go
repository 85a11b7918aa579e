package users

import (
	"context"
	"strings"

	"github.com/alhDiallo2018/nextBiblio/internal/auth"
	"github.com/alhDiallo2018/nextBiblio/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Register validates a registration request, hashes the password and persists
// the new user. The plaintext password never reaches the database.
func Register(db *mongodb.DB, ctx context.Context, req RegisterRequest) (mongodb.UserDb, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return mongodb.UserDb{}, ErrMissingFields
	}

	if !IsValidEmail(req.Email) {
		return mongodb.UserDb{}, ErrInvalidEmail
	}

	if len(req.Password) < 8 {
		return mongodb.UserDb{}, ErrInvalidPassword
	}

	if _, err := db.GetUserByEmail(ctx, req.Email); err == nil {
		return mongodb.UserDb{}, ErrEmailAlreadyExists
	} else if err != mongodb.ErrRecordNotFound {
		return mongodb.UserDb{}, err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return mongodb.UserDb{}, err
	}

	userDb, err := db.AddUser(ctx, mongodb.UserDb{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		// The unique index on email closes the race between the lookup
		// above and the insert.
		if mongo.IsDuplicateKeyError(err) {
			return mongodb.UserDb{}, ErrEmailAlreadyExists
		}
		return mongodb.UserDb{}, err
	}

	return userDb, nil
}

// GetUserDbByEmail looks up the user record used for password verification.
func GetUserDbByEmail(db *mongodb.DB, ctx context.Context, email string) (mongodb.UserDb, error) {
	userDb, err := db.GetUserByEmail(ctx, email)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return mongodb.UserDb{}, ErrUserNotFound
		}
		return mongodb.UserDb{}, err
	}
	return userDb, nil
}

func GetAllUsers(db *mongodb.DB, ctx context.Context) ([]UserResponse, error) {
	allUsers, err := db.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	usersResponse := make([]UserResponse, 0, len(allUsers))
	for _, userDb := range allUsers {
		usersResponse = append(usersResponse, MapDbUserToApiUserResponse(userDb))
	}

	return usersResponse, nil
}

func RenameUser(db *mongodb.DB, ctx context.Context, req UpdateUsernameRequest) error {
	if strings.TrimSpace(req.UserId) == "" || strings.TrimSpace(req.NewUsername) == "" {
		return ErrMissingUsername
	}

	if !primitive.IsValidObjectID(req.UserId) {
		return ErrInvalidUserId
	}

	if err := db.UpdateUsername(ctx, req.UserId, req.NewUsername); err != nil {
		if err == mongodb.ErrRecordNotFound {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}

func DeleteUser(db *mongodb.DB, ctx context.Context, userId string) error {
	if userId == "" || !primitive.IsValidObjectID(userId) {
		return ErrInvalidUserId
	}

	deleted, err := db.DeleteUser(ctx, userId)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	// Books are owned by exactly one user, so they go with the account.
	if _, err := db.DeleteBooksByUserId(ctx, userId); err != nil {
		return err
	}

	return nil
}
