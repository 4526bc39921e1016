package model

// PlaceholderProfileImage is shown for users that came without a picture.
const PlaceholderProfileImage = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=600&auto=format&fit=crop&q=60"

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

type UserCreate struct {
	FirstName    string
	LastName     string
	Gender       string
	Email        string
	Phone        string
	ProfileImage string
}

type User struct {
	ID int64
	UserCreate
}

// ImageOrPlaceholder returns the profile image, falling back to PlaceholderProfileImage.
func (u *User) ImageOrPlaceholder() string {
	if u.ProfileImage == "" {
		return PlaceholderProfileImage
	}
	return u.ProfileImage
}
