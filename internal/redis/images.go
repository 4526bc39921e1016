package redis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const imageKeyPrefix = "image:"

// ImageStore keeps preview images in redis until their TTL runs out.
// Values are stored as "<media type>\n<bytes>".
type ImageStore struct {
	pool   *redis.Pool
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewImageStore(pool *redis.Pool, ttl time.Duration, logger *zap.SugaredLogger) *ImageStore {
	return &ImageStore{
		pool:   pool,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *ImageStore) Put(ctx context.Context, ref string, img *model.Image) error {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis conn: %w", err)
	}
	defer s.closeConn(conn)

	value := make([]byte, 0, len(img.MediaType)+1+len(img.Data))
	value = append(value, img.MediaType...)
	value = append(value, '\n')
	value = append(value, img.Data...)

	seconds := int64(s.ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	if _, err := conn.Do("SET", imageKeyPrefix+ref, value, "EX", seconds); err != nil {
		return fmt.Errorf("redis SET: %w", err)
	}

	return nil
}

func (s *ImageStore) Get(ctx context.Context, ref string) (*model.Image, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get redis conn: %w", err)
	}
	defer s.closeConn(conn)

	value, err := redis.Bytes(conn.Do("GET", imageKeyPrefix+ref))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("redis GET: %w", err)
	}

	mediaType, data, ok := bytes.Cut(value, []byte{'\n'})
	if !ok {
		return nil, fmt.Errorf("malformed image value for %q", ref)
	}

	return &model.Image{
		MediaType: string(mediaType),
		Data:      data,
	}, nil
}

func (s *ImageStore) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		s.logger.Errorw("Failed closing redis connection", "err", err)
	}
}
