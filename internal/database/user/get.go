package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/user-management-backend/internal/database"
	"github.com/SergeyKozhin/user-management-backend/internal/model"
)

// ListUsers returns up to limit users, newest first. A zero limit means all.
func (*Repository) ListUsers(ctx context.Context, q database.Queryable, limit int) ([]*model.User, error) {
	qb := baseQuery.OrderBy("created_at desc", "id desc")
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	return getUsers(ctx, q, qb)
}

func getUsers(ctx context.Context, q database.Queryable, qb sq.SelectBuilder) ([]*model.User, error) {
	var dtos []*userDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.User, len(dtos))
	for i, d := range dtos {
		res[i] = mapToUser(d)
	}

	return res, nil
}
