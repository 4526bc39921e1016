package user

import (
	"github.com/SergeyKozhin/user-management-backend/internal/model"
)

type userDTO struct {
	ID           int64
	FirstName    string
	LastName     string
	Gender       string
	Email        string
	Phone        string
	ProfileImage string
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID: dto.ID,
		UserCreate: model.UserCreate{
			FirstName:    dto.FirstName,
			LastName:     dto.LastName,
			Gender:       dto.Gender,
			Email:        dto.Email,
			Phone:        dto.Phone,
			ProfileImage: dto.ProfileImage,
		},
	}
}
