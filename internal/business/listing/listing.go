// Package listing filters and paginates an in-memory user collection.
package listing

import (
	"strings"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
)

const DefaultPageSize = 5

type Result struct {
	Users      []*model.User
	Page       int
	TotalPages int
	Matches    int
}

// Query returns the requested page of users matching searchTerm.
//
// Matching is a case-insensitive substring test on first name, last name and
// email; an empty term matches everyone. Input order is preserved. The page
// is clamped into [1, TotalPages] and TotalPages is never less than 1.
func Query(users []*model.User, searchTerm string, page, pageSize int) Result {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	matched := filter(users, searchTerm)

	totalPages := (len(matched) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page = clamp(page, 1, totalPages)

	from := (page - 1) * pageSize
	to := from + pageSize
	if to > len(matched) {
		to = len(matched)
	}

	return Result{
		Users:      matched[from:to:to],
		Page:       page,
		TotalPages: totalPages,
		Matches:    len(matched),
	}
}

func Matches(user *model.User, searchTerm string) bool {
	if searchTerm == "" {
		return true
	}

	term := strings.ToLower(searchTerm)
	return strings.Contains(strings.ToLower(user.FirstName), term) ||
		strings.Contains(strings.ToLower(user.LastName), term) ||
		strings.Contains(strings.ToLower(user.Email), term)
}

func filter(users []*model.User, searchTerm string) []*model.User {
	res := make([]*model.User, 0, len(users))
	for _, u := range users {
		if Matches(u, searchTerm) {
			res = append(res, u)
		}
	}
	return res
}

// NextPage moves forward one page without passing totalPages.
func NextPage(page, totalPages int) int {
	return clamp(page+1, 1, totalPages)
}

// PrevPage moves back one page without going below the first one.
func PrevPage(page int) int {
	if page <= 1 {
		return 1
	}
	return page - 1
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
