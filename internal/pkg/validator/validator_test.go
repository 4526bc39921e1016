package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_KeepsFirstMessage(t *testing.T) {
	v := New()
	v.Check(false, "name", "first")
	v.Check(false, "name", "second")
	v.Check(true, "other", "never")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"name": "first"}, v.Errors)
}

func TestMatches(t *testing.T) {
	tests := []struct {
		value string
		rx    string
		want  bool
	}{
		{"a@b.c", "email", true},
		{"user.name@mail.example.com", "email", true},
		{"not-an-email", "email", false},
		{"a b@c.d", "email", false},
		{"a@b@c.d", "email", false},
		{"a@bc", "email", false},
		{"ann\vlee@x.io", "email", false},
		{"ann\u00a0lee@x.io", "email", false},
		{"ann@x\u2003y.io", "email", false},
		{"ann@x.i\u3000o", "email", false},
		{"\ufeffann@x.io", "email", false},
		{"zoë@exämple.io", "email", true},
		{"+1-1234567890", "phone", true},
		{"+91-9876543210", "phone", true},
		{"+123-1234567890", "phone", true},
		{"+1234-1234567890", "phone", false},
		{"1234567890", "phone", false},
		{"+91 9876543210", "phone", false},
		{"+91-987654321", "phone", false},
		{"+91-98765432100", "phone", false},
	}

	for _, tt := range tests {
		t.Run(tt.rx+"/"+tt.value, func(t *testing.T) {
			rx := EmailRX
			if tt.rx == "phone" {
				rx = PhoneRX
			}
			assert.Equal(t, tt.want, Matches(tt.value, rx))
		})
	}
}

func TestIn(t *testing.T) {
	assert.True(t, In("b", "a", "b"))
	assert.False(t, In("c", "a", "b"))
	assert.False(t, In("a"))
}
