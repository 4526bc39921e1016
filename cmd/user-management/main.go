package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SergeyKozhin/user-management-backend/internal/api"
	"github.com/SergeyKozhin/user-management-backend/internal/business/users"
	"github.com/SergeyKozhin/user-management-backend/internal/business/validation"
	"github.com/SergeyKozhin/user-management-backend/internal/config"
	"github.com/SergeyKozhin/user-management-backend/internal/database"
	"github.com/SergeyKozhin/user-management-backend/internal/database/user"
	"github.com/SergeyKozhin/user-management-backend/internal/imagestore"
	"github.com/SergeyKozhin/user-management-backend/internal/model"
	"github.com/SergeyKozhin/user-management-backend/internal/pkg/dummyjson"
	"github.com/SergeyKozhin/user-management-backend/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type userSource interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	AddUser(ctx context.Context, user *model.UserCreate) (*model.User, error)
}

type imageStore interface {
	Put(ctx context.Context, ref string, img *model.Image) error
	Get(ctx context.Context, ref string) (*model.Image, error)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(cancel)

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	source, err := initSource(ctx)
	if err != nil {
		logger.Fatalw("unable to initialize user source", "err", err)
	}

	images := initImageStore(ctx, logger)

	validator := validation.New(validation.Options{
		RequireProfileImage: config.RequireProfileImage(),
	})

	usersService := users.NewService(logger, source, images, validator, config.PageSize())
	if err := usersService.Load(ctx); err != nil {
		logger.Errorw("initial users load failed, starting with an empty list", "err", err)
	}

	api := api.NewApi(logger, usersService)

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	closer.Bind(func() {
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Errorw("server shutdown", "err", err)
		}
	})

	go func() {
		logger.Infow("Started server", "port", config.Port(), "source", config.UserSource())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorw("server error", "err", err)
			closer.Close()
		}
	}()

	closer.Hold()
}

func initSource(ctx context.Context) (userSource, error) {
	switch config.UserSource() {
	case config.SourceDummyJSON:
		return dummyjson.NewClient(config.SourceURL(),
			dummyjson.WithTimeout(config.SourceTimeout()),
			dummyjson.WithPageSize(config.SourcePageSize()),
			dummyjson.WithMaxUsers(config.SourceMaxUsers()),
			dummyjson.WithConcurrency(config.SourceFetchConcurrency()),
		), nil
	case config.SourcePostgres:
		db, err := database.NewPGX(ctx, config.PostgresURL())
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			return nil, err
		}
		return user.NewSource(db, user.NewRepository(), config.SourceMaxUsers()), nil
	default:
		return nil, fmt.Errorf("unknown user source %q", config.UserSource())
	}
}

func initImageStore(ctx context.Context, logger *zap.SugaredLogger) imageStore {
	if config.ImageStore() == config.ImageStoreRedis {
		return redis.NewImageStore(redis.NewRedisPool(logger), config.ImageTTL(), logger)
	}

	store := imagestore.NewMemoryStore(config.ImageTTL())
	go imagestore.NewJanitor(store, config.ImageSweepInterval(), logger).Start(ctx)

	return store
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
