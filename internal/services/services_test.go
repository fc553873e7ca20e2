package services_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"gamestore-backend/internal/models"
	"gamestore-backend/internal/repository"
	"gamestore-backend/internal/services"
	"gamestore-backend/internal/testutil"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestConsoleService_Create(t *testing.T) {
	db := testutil.NewDatabase(t)
	svc := services.NewConsoleService(repository.NewConsoleRepository(db), quietLogger())
	ctx := context.Background()

	console, err := svc.Create(ctx, "Nintendo")
	require.NoError(t, err)
	assert.NotZero(t, console.ID)
	assert.Equal(t, "Nintendo", console.Name)

	_, err = svc.Create(ctx, "Nintendo")
	assert.ErrorIs(t, err, services.ErrConflict)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestConsoleService_GetByID(t *testing.T) {
	db := testutil.NewDatabase(t)
	svc := services.NewConsoleService(repository.NewConsoleRepository(db), quietLogger())
	created := testutil.CreateConsole(t, db)

	console, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, *console)

	_, err = svc.GetByID(context.Background(), created.ID+1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGameService_Create(t *testing.T) {
	db := testutil.NewDatabase(t)
	consoleRepo := repository.NewConsoleRepository(db)
	svc := services.NewGameService(repository.NewGameRepository(db), consoleRepo, quietLogger())
	ctx := context.Background()
	console := testutil.CreateConsole(t, db)
	other := testutil.CreateConsole(t, db)

	game, err := svc.Create(ctx, "Zelda", console.ID)
	require.NoError(t, err)
	assert.NotZero(t, game.ID)
	assert.Equal(t, console.ID, game.ConsoleID)

	_, err = svc.Create(ctx, "Zelda", console.ID)
	assert.ErrorIs(t, err, services.ErrConflict)

	// Same title on another console is allowed.
	_, err = svc.Create(ctx, "Zelda", other.ID)
	assert.NoError(t, err)

	_, err = svc.Create(ctx, "Metroid", other.ID+100)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestGameService_ListAndGet(t *testing.T) {
	db := testutil.NewDatabase(t)
	svc := services.NewGameService(repository.NewGameRepository(db), repository.NewConsoleRepository(db), quietLogger())
	ctx := context.Background()
	console := testutil.CreateConsole(t, db)
	game := testutil.CreateGame(t, db, console.ID)

	games, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	require.NotNil(t, games[0].Console)
	assert.Equal(t, console, *games[0].Console)

	found, err := svc.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Console)
	assert.Equal(t, game.Title, found.Title)

	_, err = svc.GetByID(ctx, game.ID+1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

// racingConsoleRepository reports no existing console but then loses the
// insert to the unique index.
type racingConsoleRepository struct {
	repository.ConsoleRepository
}

func (racingConsoleRepository) FindByName(context.Context, string) (*models.Console, error) {
	return nil, nil
}

func (racingConsoleRepository) Create(context.Context, *models.Console) error {
	return gorm.ErrDuplicatedKey
}

func TestConsoleService_CreateLosesRace(t *testing.T) {
	svc := services.NewConsoleService(racingConsoleRepository{}, quietLogger())

	_, err := svc.Create(context.Background(), "Nintendo")
	assert.ErrorIs(t, err, services.ErrConflict)
}

// racingGameRepository reports no existing game but then has the insert
// rejected by the engine with err.
type racingGameRepository struct {
	repository.GameRepository
	err error
}

func (racingGameRepository) FindByTitleAndConsole(context.Context, string, uint) (*models.Game, error) {
	return nil, nil
}

func (r racingGameRepository) Create(context.Context, *models.Game) error {
	return r.err
}

type fixedConsoleRepository struct {
	repository.ConsoleRepository
}

func (fixedConsoleRepository) FindByID(_ context.Context, id uint) (*models.Console, error) {
	return &models.Console{ID: id, Name: "Nintendo"}, nil
}

func TestGameService_CreateRejectedByEngine(t *testing.T) {
	for _, engineErr := range []error{gorm.ErrDuplicatedKey, gorm.ErrForeignKeyViolated} {
		t.Run(engineErr.Error(), func(t *testing.T) {
			svc := services.NewGameService(racingGameRepository{err: engineErr}, fixedConsoleRepository{}, quietLogger())

			_, err := svc.Create(context.Background(), "Zelda", 1)
			assert.True(t, errors.Is(err, services.ErrConflict))
		})
	}
}

func TestGameService_CreateOtherEngineError(t *testing.T) {
	svc := services.NewGameService(racingGameRepository{err: gorm.ErrInvalidDB}, fixedConsoleRepository{}, quietLogger())

	_, err := svc.Create(context.Background(), "Zelda", 1)
	assert.ErrorIs(t, err, gorm.ErrInvalidDB)
	assert.NotErrorIs(t, err, services.ErrConflict)
}
