package main

import (
	"context"
	"log/slog"
	"os"

	"nativoseo/config"
	"nativoseo/internal/delivery"
	"nativoseo/internal/delivery/api"
	"nativoseo/internal/delivery/api/middleware"
	"nativoseo/internal/delivery/api/router/handler"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/infra/auth"
	"nativoseo/internal/infra/auth/google"
	"nativoseo/internal/infra/businessprofile"
	logs "nativoseo/internal/infra/log"
	"nativoseo/internal/infra/persistence/database"
	"nativoseo/internal/infra/storage"
	"nativoseo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		database.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			database.NewUserRepository,
			database.NewOAuthTokenRepository,
			database.NewActiveLocationRepository,
			database.NewBusinessCacheRepository,
			database.NewPostRepository,
			database.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewOAuthService,
			google.NewStateStore,
			fx.Annotate(
				businessprofile.NewClient,
				fx.As(new(service.BusinessProfileClient)),
			),
			fx.Annotate(
				storage.New,
				fx.As(new(service.ImageStorage)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewGoogleConnectService,
			impl.NewBusinessProfileService,
			impl.NewActiveLocationService,
			impl.NewReviewService,
			impl.NewPostService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewLocationHandler,
			handler.NewReviewHandler,
			handler.NewPostHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
