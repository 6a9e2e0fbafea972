package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "nativoseo/internal/delivery/context"
	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	"nativoseo/internal/errors"
	"nativoseo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultActiveListLimit = 100
	maxActiveListLimit     = 1000
)

type activeLocationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.ActiveLocationRepository
	logger       *slog.Logger
}

// ActiveLocationServiceParams holds dependencies for activeLocationService.
type ActiveLocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.ActiveLocationRepository
	Logger       *slog.Logger
}

// NewActiveLocationService is the constructor for activeLocationService.
func NewActiveLocationService(params ActiveLocationServiceParams) usecase.ActiveLocationUsecase {
	return &activeLocationService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

func (srv *activeLocationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *activeLocationService) List(ctx context.Context, userID uuid.UUID, skip, limit int) ([]*entity.ActiveLocation, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultActiveListLimit
	}
	if limit > maxActiveListLimit {
		limit = maxActiveListLimit
	}

	locations, err := srv.locationRepo.List(ctx, userID, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active locations")
	}

	return locations, nil
}

func (srv *activeLocationService) Activate(ctx context.Context, userID uuid.UUID, input *usecase.ActivateLocationInput) (*entity.ActiveLocation, bool, error) {
	accountID := entity.BareID(strings.TrimSpace(input.AccountID))
	locationID := entity.BareID(strings.TrimSpace(input.LocationID))
	if accountID == "" || locationID == "" {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails("account_id and location_id are required")
	}

	var (
		location *entity.ActiveLocation
		created  bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewActiveLocationRepository()

		existing, err := repo.Find(ctx, userID, accountID, locationID)
		if err == nil {
			location = existing

			return nil
		}
		if !errors.Is(err, repository.ErrActiveLocationNotFound) {
			return errors.Wrap(err, "failed to find active location")
		}

		location = &entity.ActiveLocation{
			UserID:       userID,
			AccountID:    accountID,
			LocationID:   locationID,
			LocationName: strings.TrimSpace(input.LocationName),
		}
		if err := repo.Create(ctx, location); err != nil {
			return err
		}
		created = true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		srv.log(ctx).Info("Location activated",
			slog.String("userID", userID.String()),
			slog.String("accountID", accountID),
			slog.String("locationID", locationID),
		)
	}

	return location, created, nil
}

func (srv *activeLocationService) Deactivate(ctx context.Context, userID uuid.UUID, accountID, locationID string) error {
	locationID = entity.BareID(strings.TrimSpace(locationID))
	if locationID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("location_id is required")
	}
	if accountID != "" {
		accountID = entity.BareID(accountID)
	}

	if err := srv.locationRepo.Delete(ctx, userID, accountID, locationID); err != nil {
		if errors.Is(err, repository.ErrActiveLocationNotFound) {
			return domainerrors.ErrActiveLocationNotFound
		}

		return errors.Wrap(err, "failed to deactivate location")
	}

	srv.log(ctx).Info("Location deactivated", slog.String("userID", userID.String()), slog.String("locationID", locationID))

	return nil
}
