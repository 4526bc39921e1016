package dummyjson

import (
	"strings"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
)

type listResponse struct {
	Users []*userDTO `json:"users"`
	Total int        `json:"total"`
	Skip  int        `json:"skip"`
	Limit int        `json:"limit"`
}

type userDTO struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Image        string `json:"image"`
	ProfileImage string `json:"profileImage"`
}

type addUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func mapToAddRequest(user *model.UserCreate) *addUserRequest {
	return &addUserRequest{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Gender:       user.Gender,
		Email:        user.Email,
		Phone:        user.Phone,
		ProfileImage: user.ProfileImage,
	}
}

func mapToUser(dto *userDTO) *model.User {
	image := dto.ProfileImage
	if image == "" {
		image = dto.Image
	}
	if image == "" {
		image = model.PlaceholderProfileImage
	}

	return &model.User{
		ID: dto.ID,
		UserCreate: model.UserCreate{
			FirstName:    dto.FirstName,
			LastName:     dto.LastName,
			Gender:       normalizeGender(dto.Gender),
			Email:        dto.Email,
			Phone:        dto.Phone,
			ProfileImage: image,
		},
	}
}

// normalizeGender maps the source's lower case values onto model.Gender
// spelling and leaves anything unknown as it came.
func normalizeGender(g string) string {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "male":
		return string(model.GenderMale)
	case "female":
		return string(model.GenderFemale)
	case "other":
		return string(model.GenderOther)
	default:
		return g
	}
}
