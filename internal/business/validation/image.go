package validation

import (
	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"github.com/SergeyKozhin/user-management-backend/internal/pkg/validator"
)

const (
	MaxImageSize = 2 * 1024 * 1024

	MediaTypeJPEG = "image/jpeg"
	MediaTypePNG  = "image/png"

	msgImageTooLarge = "Image must be less than 2MB"
	msgImageType     = "Only JPG and PNG images are allowed"
)

// CheckImage reports why an asset can't be used as a profile image.
// The size rule wins when both fail.
func (v *Validator) CheckImage(asset model.ImageAsset) (string, bool) {
	if asset.Size > MaxImageSize {
		return msgImageTooLarge, false
	}
	if !validator.In(asset.MediaType, MediaTypeJPEG, MediaTypePNG) {
		return msgImageType, false
	}
	return "", true
}

// SelectImage applies an image selection to the draft.
//
// A rejected asset leaves the draft as it was and records the reason under
// the profileImage key. An accepted one gets a handle from newRef and clears
// any earlier profileImage error. newRef is only called on acceptance.
func (v *Validator) SelectImage(
	draft model.RegistrationDraft,
	errs model.ValidationResult,
	asset model.ImageAsset,
	newRef func() string,
) (model.RegistrationDraft, model.ValidationResult) {
	res := errs.Clone()

	if msg, ok := v.CheckImage(asset); !ok {
		res[model.FieldProfileImage] = msg
		return draft, res
	}

	draft.ProfileImageRef = newRef()
	delete(res, model.FieldProfileImage)

	return draft, res
}
