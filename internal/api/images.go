package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/SergeyKozhin/user-management-backend/internal/business/users"
	"github.com/SergeyKozhin/user-management-backend/internal/config"
	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"github.com/go-chi/chi/v5"
)

func (a *Api) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	maxSize := config.MaxUploadSize()
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			a.oversizedImageResponse(w, r, maxBytesError.Limit)
			return
		}
		a.badRequestResponse(w, r, err)
		return
	}

	multipartFile, headers, err := r.FormFile("image")
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	defer multipartFile.Close()

	data, err := io.ReadAll(multipartFile)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	draft := model.RegistrationDraft{ProfileImageRef: r.FormValue("profile_image_ref")}
	asset := model.ImageAsset{
		Size:      headers.Size,
		MediaType: headers.Header.Get("Content-Type"),
	}

	draft, errs, err := a.users.SelectImage(r.Context(), draft, asset, data)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if !errs.Valid() {
		a.rejectedImageResponse(w, r, errs, draft.ProfileImageRef)
		return
	}

	resp := &struct {
		ProfileImageRef string `json:"profile_image_ref"`
		PreviewURL      string `json:"preview_url"`
	}{
		ProfileImageRef: draft.ProfileImageRef,
		PreviewURL:      users.PreviewURL(draft.ProfileImageRef),
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// oversizedImageResponse rejects a body that hit the upload limit the same way
// an oversized image is rejected. The form was not read, so no handle is kept.
func (a *Api) oversizedImageResponse(w http.ResponseWriter, r *http.Request, limit int64) {
	asset := model.ImageAsset{Size: limit + 1}

	_, errs, err := a.users.SelectImage(r.Context(), model.RegistrationDraft{}, asset, nil)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	a.rejectedImageResponse(w, r, errs, "")
}

func (a *Api) getImageHandler(w http.ResponseWriter, r *http.Request) {
	img, err := a.users.Image(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	w.Header().Set("Content-Type", img.MediaType)
	w.Header().Set("Cache-Control", "private, max-age=60")
	w.WriteHeader(http.StatusOK)
	w.Write(img.Data)
}
