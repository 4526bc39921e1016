package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/user-management-backend/internal/database"
	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"github.com/jackc/pgconn"
)

const uniqueViolation = "23505"

func (*Repository) CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.UsersTable).
		Columns("first_name", "last_name", "gender", "email", "phone", "profile_image").
		Values(
			user.FirstName,
			user.LastName,
			user.Gender,
			user.Email,
			user.Phone,
			user.ProfileImage,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, model.ErrAlreadyExists
		}
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
