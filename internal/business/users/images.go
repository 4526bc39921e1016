package users

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"github.com/google/uuid"
)

// PreviewURL is where the api serves the image stored under ref.
func PreviewURL(ref string) string {
	return "/images/" + ref
}

// SelectImage checks the asset and, if it is acceptable, stores data under a
// fresh handle that replaces the draft's previous one. A rejected asset leaves
// the draft untouched and is reported under the profileImage key.
func (s *Service) SelectImage(
	ctx context.Context,
	draft model.RegistrationDraft,
	asset model.ImageAsset,
	data []byte,
) (model.RegistrationDraft, model.ValidationResult, error) {
	var ref string
	updated, errs := s.validator.SelectImage(draft, nil, asset, func() string {
		ref = uuid.NewString()
		return ref
	})
	if ref == "" {
		return draft, errs, nil
	}

	img := &model.Image{MediaType: asset.MediaType, Data: data}
	if err := s.images.Put(ctx, ref, img); err != nil {
		return draft, nil, fmt.Errorf("put image: %w", err)
	}

	return updated, errs, nil
}

func (s *Service) Image(ctx context.Context, ref string) (*model.Image, error) {
	img, err := s.images.Get(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("get image: %w", err)
	}

	return img, nil
}
