package user

import (
	"context"

	"github.com/SergeyKozhin/user-management-backend/internal/database"
	"github.com/SergeyKozhin/user-management-backend/internal/model"
)

// Source serves the users table to the users service.
type Source struct {
	db       database.Queryable
	repo     *Repository
	maxUsers int
}

func NewSource(db database.Queryable, repo *Repository, maxUsers int) *Source {
	return &Source{
		db:       db,
		repo:     repo,
		maxUsers: maxUsers,
	}
}

func (s *Source) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.ListUsers(ctx, s.db, s.maxUsers)
	if err != nil {
		return nil, &model.DataSourceError{Op: "list users", Err: err}
	}

	for _, u := range users {
		u.ProfileImage = u.ImageOrPlaceholder()
	}

	return users, nil
}

func (s *Source) AddUser(ctx context.Context, create *model.UserCreate) (*model.User, error) {
	id, err := s.repo.CreateUser(ctx, s.db, create)
	if err != nil {
		return nil, &model.DataSourceError{Op: "add user", Err: err}
	}

	user := &model.User{ID: id, UserCreate: *create}
	user.ProfileImage = user.ImageOrPlaceholder()

	return user, nil
}
