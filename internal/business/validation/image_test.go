package validation

import (
	"testing"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCheckImage(t *testing.T) {
	tests := []struct {
		name  string
		asset model.ImageAsset
		msg   string
		ok    bool
	}{
		{"small jpeg", model.ImageAsset{Size: 1024, MediaType: "image/jpeg"}, "", true},
		{"png at limit", model.ImageAsset{Size: MaxImageSize, MediaType: "image/png"}, "", true},
		{"one byte over", model.ImageAsset{Size: MaxImageSize + 1, MediaType: "image/png"}, "Image must be less than 2MB", false},
		{"3MB", model.ImageAsset{Size: 3 * 1024 * 1024, MediaType: "image/jpeg"}, "Image must be less than 2MB", false},
		{"gif", model.ImageAsset{Size: 10, MediaType: "image/gif"}, "Only JPG and PNG images are allowed", false},
		{"jpg alias", model.ImageAsset{Size: 10, MediaType: "image/jpg"}, "Only JPG and PNG images are allowed", false},
		{"with params", model.ImageAsset{Size: 10, MediaType: "image/png; charset=binary"}, "Only JPG and PNG images are allowed", false},
		{"large gif", model.ImageAsset{Size: 3 * 1024 * 1024, MediaType: "image/gif"}, "Image must be less than 2MB", false},
	}

	v := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := v.CheckImage(tt.asset)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestSelectImage_RejectKeepsPreviousRef(t *testing.T) {
	v := New(Options{})
	draft := validDraft()
	draft.ProfileImageRef = "accepted-before"

	called := false
	newRef := func() string {
		called = true
		return "fresh"
	}

	got, errs := v.SelectImage(draft, nil, model.ImageAsset{Size: 3 * 1024 * 1024, MediaType: "image/png"}, newRef)
	assert.Equal(t, "accepted-before", got.ProfileImageRef)
	assert.Equal(t, "Image must be less than 2MB", errs[model.FieldProfileImage])

	got, errs = v.SelectImage(draft, errs, model.ImageAsset{Size: 100, MediaType: "image/gif"}, newRef)
	assert.Equal(t, "accepted-before", got.ProfileImageRef)
	assert.Equal(t, "Only JPG and PNG images are allowed", errs[model.FieldProfileImage])

	assert.False(t, called)
}

func TestSelectImage_AcceptClearsError(t *testing.T) {
	v := New(Options{})
	draft := validDraft()
	prev := model.ValidationResult{
		model.FieldProfileImage: "Only JPG and PNG images are allowed",
		model.FieldEmail:        "Invalid email format",
	}

	got, errs := v.SelectImage(draft, prev, model.ImageAsset{Size: 100, MediaType: "image/jpeg"}, func() string { return "fresh" })

	assert.Equal(t, "fresh", got.ProfileImageRef)
	assert.Equal(t, model.ValidationResult{model.FieldEmail: "Invalid email format"}, errs)
	assert.Len(t, prev, 2, "input error map must not be modified")
	assert.Empty(t, draft.ProfileImageRef, "input draft must not be modified")
}
