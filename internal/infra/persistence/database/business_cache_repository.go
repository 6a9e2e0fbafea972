package database

import (
	"context"

	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	"nativoseo/internal/errors"
	"nativoseo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type businessCacheRepository struct {
	db *gorm.DB
}

// NewBusinessCacheRepository is the constructor for businessCacheRepository.
func NewBusinessCacheRepository(db *gorm.DB) repository.BusinessCacheRepository {
	return &businessCacheRepository{db: db}
}

// FindAccounts returns the cached accounts of a user.
func (repo *businessCacheRepository) FindAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.GoogleAccount, error) {
	var rows []*model.GoogleAccountModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cached accounts")
	}

	result := make([]*entity.GoogleAccount, 0, len(rows))
	for _, row := range rows {
		result = append(result, toGoogleAccountDomain(row))
	}

	return result, nil
}

// SaveAccounts inserts accounts that are not cached yet.
func (repo *businessCacheRepository) SaveAccounts(ctx context.Context, userID uuid.UUID, accounts []*entity.GoogleAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	rows := make([]*model.GoogleAccountModel, 0, len(accounts))
	for _, account := range accounts {
		row := fromGoogleAccountDomain(account)
		row.UserID = userID
		rows = append(rows, row)
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cache accounts")
	}

	return nil
}

// FindLocations returns the cached locations of one account of the user.
func (repo *businessCacheRepository) FindLocations(ctx context.Context, userID uuid.UUID, accountID string) ([]*entity.Location, error) {
	account, err := repo.findAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return []*entity.Location{}, nil
	}

	var rows []*model.LocationModel
	if err := repo.db.WithContext(ctx).Where("google_account_id = ?", account.ID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cached locations")
	}

	result := make([]*entity.Location, 0, len(rows))
	for _, row := range rows {
		result = append(result, toLocationDomain(row))
	}

	return result, nil
}

// SaveLocations caches locations under the account row, creating it when missing.
func (repo *businessCacheRepository) SaveLocations(ctx context.Context, userID uuid.UUID, accountID string, locations []*entity.Location) error {
	account, err := repo.findAccount(ctx, userID, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		account = &model.GoogleAccountModel{UserID: userID, AccountID: accountID}
		if err := repo.db.WithContext(ctx).Create(account).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to cache account")
		}
	}

	if len(locations) == 0 {
		return nil
	}

	rows := make([]*model.LocationModel, 0, len(locations))
	for _, location := range locations {
		row := fromLocationDomain(location)
		row.GoogleAccountID = account.ID
		rows = append(rows, row)
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cache locations")
	}

	return nil
}

func (repo *businessCacheRepository) findAccount(ctx context.Context, userID uuid.UUID, accountID string) (*model.GoogleAccountModel, error) {
	var account model.GoogleAccountModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND account_id = ?", userID, accountID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find cached account")
	}

	return &account, nil
}

func toGoogleAccountDomain(data *model.GoogleAccountModel) *entity.GoogleAccount {
	return &entity.GoogleAccount{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        entity.AccountResource(data.AccountID),
		AccountID:   data.AccountID,
		AccountName: data.AccountName,
		Type:        data.Type,
		Role:        data.Role,
		CreatedAt:   data.CreatedAt,
	}
}

func fromGoogleAccountDomain(data *entity.GoogleAccount) *model.GoogleAccountModel {
	return &model.GoogleAccountModel{
		ID:          data.ID,
		UserID:      data.UserID,
		AccountID:   data.AccountID,
		AccountName: data.AccountName,
		Type:        data.Type,
		Role:        data.Role,
	}
}

func toLocationDomain(data *model.LocationModel) *entity.Location {
	return &entity.Location{
		ID:              data.ID,
		GoogleAccountID: data.GoogleAccountID,
		Name:            entity.LocationResource(data.LocationID),
		LocationID:      data.LocationID,
		Title:           data.Title,
		Address:         data.Address,
		Phone:           data.Phone,
		Website:         data.Website,
		Status:          data.Status,
		CreatedAt:       data.CreatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	return &model.LocationModel{
		ID:              data.ID,
		GoogleAccountID: data.GoogleAccountID,
		LocationID:      data.LocationID,
		Title:           data.Title,
		Address:         data.Address,
		Phone:           data.Phone,
		Website:         data.Website,
		Status:          data.Status,
	}
}
