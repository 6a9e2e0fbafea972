package database

import (
	"context"
	"time"

	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	"nativoseo/internal/errors"
	"nativoseo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type activeLocationRepository struct {
	db *gorm.DB
}

// NewActiveLocationRepository is the constructor for activeLocationRepository.
func NewActiveLocationRepository(db *gorm.DB) repository.ActiveLocationRepository {
	return &activeLocationRepository{db: db}
}

// List returns the user's active locations, oldest activation first. limit <= 0 means no limit.
func (repo *activeLocationRepository) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.ActiveLocation, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("activated_at ASC").
		Offset(max(offset, 0))
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []*model.ActiveLocationModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active locations")
	}

	result := make([]*entity.ActiveLocation, 0, len(rows))
	for _, row := range rows {
		result = append(result, toActiveLocationDomain(row))
	}

	return result, nil
}

// Find returns the row for (user, account, location).
func (repo *activeLocationRepository) Find(ctx context.Context, userID uuid.UUID, accountID, locationID string) (*entity.ActiveLocation, error) {
	var row model.ActiveLocationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND account_id = ? AND location_id = ?", userID, accountID, locationID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActiveLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find active location")
	}

	return toActiveLocationDomain(&row), nil
}

// FindByLocation returns the earliest activation of locationID for the user.
func (repo *activeLocationRepository) FindByLocation(ctx context.Context, userID uuid.UUID, locationID string) (*entity.ActiveLocation, error) {
	var row model.ActiveLocationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Order("activated_at ASC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActiveLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find active location")
	}

	return toActiveLocationDomain(&row), nil
}

// Create persists a new active location.
func (repo *activeLocationRepository) Create(ctx context.Context, location *entity.ActiveLocation) error {
	if location.ActivatedAt.IsZero() {
		location.ActivatedAt = time.Now().UTC()
	}
	row := fromActiveLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("location already active")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create active location")
	}

	location.ID = row.ID

	return nil
}

// Delete removes matching rows. An empty accountID matches any account.
func (repo *activeLocationRepository) Delete(ctx context.Context, userID uuid.UUID, accountID, locationID string) error {
	query := repo.db.WithContext(ctx).Where("user_id = ? AND location_id = ?", userID, locationID)
	if accountID != "" {
		query = query.Where("account_id = ?", accountID)
	}

	result := query.Delete(&model.ActiveLocationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete active location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActiveLocationNotFound
	}

	return nil
}

func toActiveLocationDomain(data *model.ActiveLocationModel) *entity.ActiveLocation {
	return &entity.ActiveLocation{
		ID:           data.ID,
		UserID:       data.UserID,
		AccountID:    data.AccountID,
		LocationID:   data.LocationID,
		LocationName: data.LocationName,
		ActivatedAt:  data.ActivatedAt,
	}
}

func fromActiveLocationDomain(data *entity.ActiveLocation) *model.ActiveLocationModel {
	return &model.ActiveLocationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		AccountID:    data.AccountID,
		LocationID:   data.LocationID,
		LocationName: data.LocationName,
		ActivatedAt:  data.ActivatedAt,
	}
}
