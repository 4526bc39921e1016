package config

import (
	"testing"

	"github.com/SergeyKozhin/user-management-backend/internal/business/validation"
	"github.com/stretchr/testify/assert"
)

func TestMaxUploadSize(t *testing.T) {
	saved := conf.MaxUploadSize
	t.Cleanup(func() { conf.MaxUploadSize = saved })

	tests := []struct {
		name       string
		configured int64
		want       int64
	}{
		{"default", 10 << 20, 10 << 20},
		{"below image limit", 1 << 20, minUploadSize},
		{"exactly image limit", validation.MaxImageSize, minUploadSize},
		{"zero", 0, minUploadSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf.MaxUploadSize = tt.configured
			assert.Equal(t, tt.want, MaxUploadSize())
		})
	}

	assert.Greater(t, MaxUploadSize(), int64(validation.MaxImageSize))
}
