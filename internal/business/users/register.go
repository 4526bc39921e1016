package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
)

// Validate checks the draft. A handle that is no longer in the image store
// counts as no image at all.
func (s *Service) Validate(ctx context.Context, draft model.RegistrationDraft) (model.ValidationResult, error) {
	draft, err := s.resolveImage(ctx, draft)
	if err != nil {
		return nil, err
	}

	return s.validator.Validate(draft), nil
}

// Register submits the draft to the user source and prepends the created user.
// Only one registration per email runs at a time; a second one for the same
// email gets ErrSubmissionInProgress.
func (s *Service) Register(ctx context.Context, draft model.RegistrationDraft) (*model.User, error) {
	release, ok := s.startSubmission(draft.Email)
	if !ok {
		return nil, model.ErrSubmissionInProgress
	}
	defer release()

	draft, err := s.resolveImage(ctx, draft)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.Validate(draft); !errs.Valid() {
		return nil, &model.ValidationError{Fields: errs}
	}

	create := &model.UserCreate{
		FirstName: draft.FirstName,
		LastName:  draft.LastName,
		Gender:    string(draft.Gender),
		Email:     draft.Email,
		Phone:     draft.Phone,
	}
	if draft.ProfileImageRef != "" {
		create.ProfileImage = PreviewURL(draft.ProfileImageRef)
	}

	user, err := s.source.AddUser(ctx, create)
	if err != nil {
		return nil, asDataSourceError("add user", err)
	}

	user.ProfileImage = user.ImageOrPlaceholder()
	s.prepend(user)

	s.logger.Infow("user registered", "id", user.ID, "email", user.Email)

	return user, nil
}

func (s *Service) resolveImage(ctx context.Context, draft model.RegistrationDraft) (model.RegistrationDraft, error) {
	if draft.ProfileImageRef == "" {
		return draft, nil
	}

	_, err := s.images.Get(ctx, draft.ProfileImageRef)
	switch {
	case errors.Is(err, model.ErrNoRecord):
		draft.ProfileImageRef = ""
	case err != nil:
		return draft, fmt.Errorf("get image: %w", err)
	}

	return draft, nil
}
