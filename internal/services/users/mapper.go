package users

import "github.com/alhDiallo2018/nextBiblio/internal/mongodb"

func MapDbUserToApiUserResponse(userDb mongodb.UserDb) UserResponse {
	return UserResponse{
		Id:        userDb.Id,
		Email:     userDb.Email,
		Username:  userDb.Username,
		CreatedAt: userDb.CreatedAt,
		UpdatedAt: userDb.UpdatedAt,
	}
}
