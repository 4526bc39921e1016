package user

import (
	"github.com/SergeyKozhin/user-management-backend/internal/database"
)

var baseQuery = database.PSQL.
	Select(
		"id",
		"first_name",
		"last_name",
		"gender",
		"email",
		"phone",
		"profile_image",
	).
	From(database.UsersTable)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}
