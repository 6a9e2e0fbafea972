package database

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	"nativoseo/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "hash",
		IsActive:       true,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "maria")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria", byID.Username)

	byName, err := repo.FindByUsername(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByUsername(ctx, "nadie")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "maria")

	err := NewUserRepository(db).Create(context.Background(), &entity.User{
		Username:       "otra",
		Email:          "maria@example.com",
		HashedPassword: "hash",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestOAuthTokenRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewOAuthTokenRepository(db)
	ctx := context.Background()
	user := createUser(t, db, "maria")

	_, err := repo.FindByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrOAuthTokenNotFound)

	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, repo.Upsert(ctx, &entity.OAuthToken{
		UserID:       user.ID,
		AccessToken:  "a1",
		RefreshToken: "r1",
		ExpiresAt:    &expiry,
	}))

	// An empty refresh token keeps the stored one.
	require.NoError(t, repo.Upsert(ctx, &entity.OAuthToken{UserID: user.ID, AccessToken: "a2"}))

	got, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.AccessToken)
	assert.Equal(t, "r1", got.RefreshToken)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.Nil(t, got.ExpiresAt)

	var count int64
	require.NoError(t, db.Table("oauth_tokens").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestActiveLocationRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewActiveLocationRepository(db)
	ctx := context.Background()
	user := createUser(t, db, "maria")

	first := &entity.ActiveLocation{UserID: user.ID, AccountID: "1", LocationID: "10", LocationName: "Centro"}
	require.NoError(t, repo.Create(ctx, first))
	second := &entity.ActiveLocation{
		UserID: user.ID, AccountID: "1", LocationID: "20", LocationName: "Norte",
		ActivatedAt: first.ActivatedAt.Add(time.Second),
	}
	require.NoError(t, repo.Create(ctx, second))

	err := repo.Create(ctx, &entity.ActiveLocation{UserID: user.ID, AccountID: "1", LocationID: "10"})
	assert.Error(t, err)

	list, err := repo.List(ctx, user.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "10", list[0].LocationID)

	page, err := repo.List(ctx, user.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "20", page[0].LocationID)

	found, err := repo.FindByLocation(ctx, user.ID, "20")
	require.NoError(t, err)
	assert.Equal(t, "Norte", found.LocationName)

	assert.ErrorIs(t, repo.Delete(ctx, user.ID, "2", "10"), repository.ErrActiveLocationNotFound)
	require.NoError(t, repo.Delete(ctx, user.ID, "", "10"))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID, "", "10"), repository.ErrActiveLocationNotFound)

	_, err = repo.Find(ctx, user.ID, "1", "10")
	assert.ErrorIs(t, err, repository.ErrActiveLocationNotFound)
}

func TestBusinessCacheRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewBusinessCacheRepository(db)
	ctx := context.Background()
	user := createUser(t, db, "maria")

	accounts, err := repo.FindAccounts(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	require.NoError(t, repo.SaveAccounts(ctx, user.ID, []*entity.GoogleAccount{
		{AccountID: "1", AccountName: "Mi negocio", Type: "PERSONAL", Role: "PRIMARY_OWNER"},
	}))
	// Saving again is a no-op.
	require.NoError(t, repo.SaveAccounts(ctx, user.ID, []*entity.GoogleAccount{{AccountID: "1"}}))

	accounts, err = repo.FindAccounts(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "accounts/1", accounts[0].Name)
	assert.Equal(t, "Mi negocio", accounts[0].AccountName)

	require.NoError(t, repo.SaveLocations(ctx, user.ID, "2", []*entity.Location{
		{LocationID: "10", Title: "Centro", Status: "OPEN"},
	}))

	locations, err := repo.FindLocations(ctx, user.ID, "2")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "locations/10", locations[0].Name)
	assert.Equal(t, "OPEN", locations[0].Status)

	empty, err := repo.FindLocations(ctx, user.ID, "999")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPostRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	user := createUser(t, db, "maria")

	post := &entity.Post{UserID: user.ID, AccountID: "1", LocationID: "10", Summary: "Hola", State: entity.PostStateLive}
	require.NoError(t, repo.Create(ctx, post))
	assert.NotEqual(t, uuid.Nil, post.ID)

	posts, err := repo.ListByUser(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hola", posts[0].Summary)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewUserRepository().Create(ctx, &entity.User{Username: "temp", Email: "temp@example.com", HashedPassword: "h"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByUsername(ctx, "temp")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().Create(ctx, &entity.User{Username: "kept", Email: "kept@example.com", HashedPassword: "h"})
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).FindByUsername(ctx, "kept")
	assert.NoError(t, err)
}
