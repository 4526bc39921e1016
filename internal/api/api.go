package api

import (
	"context"
	"net/http"

	"github.com/SergeyKozhin/user-management-backend/internal/business/listing"
	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	users usersService
}

type usersService interface {
	Load(ctx context.Context) error
	List(state model.QueryState) listing.Result
	Validate(ctx context.Context, draft model.RegistrationDraft) (model.ValidationResult, error)
	Register(ctx context.Context, draft model.RegistrationDraft) (*model.User, error)
	SelectImage(
		ctx context.Context,
		draft model.RegistrationDraft,
		asset model.ImageAsset,
		data []byte,
	) (model.RegistrationDraft, model.ValidationResult, error)
	Image(ctx context.Context, ref string) (*model.Image, error)
}

func NewApi(logger *zap.SugaredLogger, users usersService) *Api {
	a := &Api{
		logger: logger,
		users:  users,
	}
	a.setupHandler()

	return a
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", a.listUsersHandler)
		r.Post("/", a.registerUserHandler)
		r.Post("/validate", a.validateUserHandler)
		r.Post("/reload", a.reloadUsersHandler)
	})

	r.Route("/images", func(r chi.Router) {
		r.Post("/", a.uploadImageHandler)
		r.Get("/{ref}", a.getImageHandler)
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
