package config

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/user-management-backend/internal/business/validation"
	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

const (
	SourceDummyJSON = "dummyjson"
	SourcePostgres  = "postgres"

	ImageStoreMemory = "memory"
	ImageStoreRedis  = "redis"

	// room for the multipart framing and the other form fields
	multipartOverhead = 64 * 1024
	minUploadSize     = validation.MaxImageSize + multipartOverhead
)

type config struct {
	Production             bool          `env:"PRODUCTION" envDefault:"false"`
	Port                   string        `env:"PORT" envDefault:"80"`
	UserSource             string        `env:"USER_SOURCE" envDefault:"dummyjson"`
	SourceURL              string        `env:"SOURCE_URL" envDefault:"https://dummyjson.com"`
	SourceTimeout          time.Duration `env:"SOURCE_TIMEOUT" envDefault:"10s"`
	SourcePageSize         int           `env:"SOURCE_PAGE_SIZE" envDefault:"30"`
	SourceMaxUsers         int           `env:"SOURCE_MAX_USERS" envDefault:"100"`
	SourceFetchConcurrency int           `env:"SOURCE_FETCH_CONCURRENCY" envDefault:"4"`
	PostgresUrl            string        `env:"POSTGRES_URL" envDefault:""`
	ImageStore             string        `env:"IMAGE_STORE" envDefault:"memory"`
	RedisUrl               string        `env:"REDIS_URL" envDefault:"redis:6379"`
	ImageTTL               time.Duration `env:"IMAGE_TTL" envDefault:"30m"`
	ImageSweepInterval     time.Duration `env:"IMAGE_SWEEP_INTERVAL" envDefault:"1m"`
	PageSize               int           `env:"PAGE_SIZE" envDefault:"5"`
	RequireProfileImage    bool          `env:"REQUIRE_PROFILE_IMAGE" envDefault:"false"`
	MaxUploadSize          int64         `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"`
}

var conf config

func init() {
	// .env is optional, real environment variables win.
	_ = godotenv.Load()

	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func UserSource() string {
	return conf.UserSource
}

func SourceURL() string {
	return conf.SourceURL
}

func SourceTimeout() time.Duration {
	return conf.SourceTimeout
}

func SourcePageSize() int {
	return conf.SourcePageSize
}

func SourceMaxUsers() int {
	return conf.SourceMaxUsers
}

func SourceFetchConcurrency() int {
	return conf.SourceFetchConcurrency
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func ImageStore() string {
	return conf.ImageStore
}

func RedisURL() string {
	return conf.RedisUrl
}

func ImageTTL() time.Duration {
	return conf.ImageTTL
}

func ImageSweepInterval() time.Duration {
	return conf.ImageSweepInterval
}

func PageSize() int {
	return conf.PageSize
}

func RequireProfileImage() bool {
	return conf.RequireProfileImage
}

// MaxUploadSize never drops below minUploadSize, so that any image the size
// rule would reject still reaches it.
func MaxUploadSize() int64 {
	return max(conf.MaxUploadSize, minUploadSize)
}
