package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
)

type draftRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Gender          string `json:"gender"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ProfileImageRef string `json:"profile_image_ref"`
}

func (d *draftRequest) toDraft() model.RegistrationDraft {
	return model.RegistrationDraft{
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Gender:          model.Gender(d.Gender),
		Email:           d.Email,
		Phone:           d.Phone,
		ProfileImageRef: d.ProfileImageRef,
	}
}

type userResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Gender       string `json:"gender"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profile_image"`
}

func mapToUserResponse(user *model.User) *userResponse {
	return &userResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Gender:       user.Gender,
		Email:        user.Email,
		Phone:        user.Phone,
		ProfileImage: user.ImageOrPlaceholder(),
	}
}

func (a *Api) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	state := model.QueryState{
		SearchTerm: r.URL.Query().Get("search"),
		Page:       1,
	}

	if v := r.URL.Query().Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid page: %w", err))
			return
		}
		state.Page = page
	}

	res := a.users.List(state)

	resp := &struct {
		Users        []*userResponse `json:"users"`
		Page         int             `json:"page"`
		TotalPages   int             `json:"total_pages"`
		TotalMatches int             `json:"total_matches"`
	}{
		Users:        mapSlice(res.Users, mapToUserResponse),
		Page:         res.Page,
		TotalPages:   res.TotalPages,
		TotalMatches: res.Matches,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) validateUserHandler(w http.ResponseWriter, r *http.Request) {
	req := &draftRequest{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	errs, err := a.users.Validate(r.Context(), req.toDraft())
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if !errs.Valid() {
		a.failedValidationResponse(w, r, errs)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, struct{}{}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	req := &draftRequest{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	user, err := a.users.Register(r.Context(), req.toDraft())
	if err != nil {
		var validationErr *model.ValidationError
		var sourceErr *model.DataSourceError
		switch {
		case errors.As(err, &validationErr):
			a.failedValidationResponse(w, r, validationErr.Fields)
		case errors.Is(err, model.ErrSubmissionInProgress):
			a.conflictResponse(w, r, err)
		case errors.As(err, &sourceErr):
			a.badGatewayResponse(w, r, err, "failed to register user")
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, mapToUserResponse(user), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) reloadUsersHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.users.Load(r.Context()); err != nil {
		var sourceErr *model.DataSourceError
		if errors.As(err, &sourceErr) {
			a.badGatewayResponse(w, r, err, "failed to load users")
			return
		}
		a.serverErrorResponse(w, r, err)
		return
	}

	res := a.users.List(model.QueryState{Page: 1})

	resp := &struct {
		TotalMatches int `json:"total_matches"`
	}{
		TotalMatches: res.Matches,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
