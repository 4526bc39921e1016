package model

// Field keys used in ValidationResult.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldGender       = "gender"
	FieldProfileImage = "profileImage"
)

// RegistrationDraft is the not yet submitted registration form.
type RegistrationDraft struct {
	FirstName       string
	LastName        string
	Gender          Gender
	Email           string
	Phone           string
	ProfileImageRef string
}

// ImageAsset describes a selected image as reported by whoever picked it.
type ImageAsset struct {
	Size      int64
	MediaType string
}

// ValidationResult maps a field to its error message. Empty means valid.
type ValidationResult map[string]string

func (r ValidationResult) Valid() bool {
	return len(r) == 0
}

func (r ValidationResult) Clone() ValidationResult {
	res := make(ValidationResult, len(r))
	for k, v := range r {
		res[k] = v
	}
	return res
}

type QueryState struct {
	SearchTerm string
	Page       int
	PageSize   int
}

// WithSearchTerm changes the term and resets the page to the first one.
func (s QueryState) WithSearchTerm(term string) QueryState {
	s.SearchTerm = term
	s.Page = 1
	return s
}
