package validator

import "regexp"

// EmailRX counts Unicode separators and U+FEFF as whitespace.
var (
	EmailRX = regexp.MustCompile(`^[^@[:space:]\p{Z}\x{FEFF}]+@[^@[:space:]\p{Z}\x{FEFF}]+\.[^@[:space:]\p{Z}\x{FEFF}]+$`)
	PhoneRX = regexp.MustCompile(`^\+\d{1,3}-\d{10}$`)
)

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError keeps the first message reported for a key.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

func In(value string, list ...string) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}
