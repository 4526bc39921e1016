package users

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/SergeyKozhin/user-management-backend/internal/business/listing"
	"github.com/SergeyKozhin/user-management-backend/internal/business/validation"
	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"go.uber.org/zap"
)

type Service struct {
	logger    *zap.SugaredLogger
	source    userSource
	images    imageStore
	validator *validation.Validator
	pageSize  int

	mu    sync.RWMutex
	users []*model.User

	submitMu   sync.Mutex
	submitting map[string]struct{}
}

type userSource interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	AddUser(ctx context.Context, user *model.UserCreate) (*model.User, error)
}

type imageStore interface {
	Put(ctx context.Context, ref string, img *model.Image) error
	Get(ctx context.Context, ref string) (*model.Image, error)
}

func NewService(
	logger *zap.SugaredLogger,
	source userSource,
	images imageStore,
	validator *validation.Validator,
	pageSize int,
) *Service {
	if pageSize < 1 {
		pageSize = listing.DefaultPageSize
	}

	return &Service{
		logger:    logger,
		source:    source,
		images:    images,
		validator: validator,
		pageSize:  pageSize,
		users:     []*model.User{},

		submitting: make(map[string]struct{}),
	}
}

// Load replaces the collection with whatever the source lists.
// On failure the current collection is kept.
func (s *Service) Load(ctx context.Context) error {
	users, err := s.source.ListUsers(ctx)
	if err != nil {
		return asDataSourceError("list users", err)
	}

	for _, u := range users {
		u.ProfileImage = u.ImageOrPlaceholder()
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()

	s.logger.Infow("users loaded", "count", len(users))

	return nil
}

// List runs the search and pagination over a snapshot of the collection.
// A zero PageSize in state falls back to the configured one.
func (s *Service) List(state model.QueryState) listing.Result {
	pageSize := state.PageSize
	if pageSize < 1 {
		pageSize = s.pageSize
	}

	s.mu.RLock()
	users := s.users
	s.mu.RUnlock()

	return listing.Query(users, state.SearchTerm, state.Page, pageSize)
}

func (s *Service) prepend(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*model.User, 0, len(s.users)+1)
	users = append(users, user)
	s.users = append(users, s.users...)
}

// startSubmission claims the email for one registration. The returned func
// releases it; ok is false if another registration holds it already.
func (s *Service) startSubmission(email string) (release func(), ok bool) {
	key := strings.ToLower(strings.TrimSpace(email))

	s.submitMu.Lock()
	defer s.submitMu.Unlock()

	if _, busy := s.submitting[key]; busy {
		return nil, false
	}
	s.submitting[key] = struct{}{}

	return func() {
		s.submitMu.Lock()
		delete(s.submitting, key)
		s.submitMu.Unlock()
	}, true
}

func asDataSourceError(op string, err error) error {
	var dsErr *model.DataSourceError
	if errors.As(err, &dsErr) {
		return err
	}
	return &model.DataSourceError{Op: op, Err: err}
}
