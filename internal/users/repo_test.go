package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/drenteria/catalog-backend/pkg/db/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Product{}))
	return gdb
}

func sampleCreate(username string) CreateUserDTO {
	return CreateUserDTO{
		Username:     username,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        username + "@example.com",
		BirthDate:    time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
		PasswordHash: "$argon2id$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA",
	}
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleCreate("ada"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.IsAdmin, "new users must not be admins")
	assert.True(t, created.IsActive, "new users must be active")

	byName, err := repo.FindByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", byID.Username)
}

func TestRepositoryDuplicateUsername(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleCreate("ada"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleCreate("ada"))
	require.Error(t, err, "duplicate username must violate the unique index")
}

func TestRepositoryFindMissing(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositorySaveAndDelete(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleCreate("ada"))
	require.NoError(t, err)

	created.PageSize = 5
	_, err = repo.Save(ctx, created)
	require.NoError(t, err)

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.PageSize)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), gorm.ErrRecordNotFound)
}

func TestRepositoryList(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	for _, name := range []string{"ada", "grace", "edsger"} {
		_, err := repo.Create(ctx, sampleCreate(name))
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
