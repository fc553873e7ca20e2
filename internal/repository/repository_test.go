package repository_test

import (
	"context"
	"math"
	"testing"
	"time"

	"gamestore-backend/internal/models"
	"gamestore-backend/internal/repository"
	"gamestore-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleRepository(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := repository.NewConsoleRepository(db)
	ctx := context.Background()

	console := &models.Console{Name: "Nintendo"}
	require.NoError(t, repo.Create(ctx, console))
	assert.NotZero(t, console.ID)

	found, err := repo.FindByID(ctx, console.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Nintendo", found.Name)

	byName, err := repo.FindByName(ctx, "Nintendo")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, console.ID, byName.ID)

	missing, err := repo.FindByID(ctx, console.ID+1)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.FindByName(ctx, "Sega")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestConsoleRepository_FindAllEmpty(t *testing.T) {
	repo := repository.NewConsoleRepository(testutil.NewDatabase(t))

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestGameRepository(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := repository.NewGameRepository(db)
	ctx := context.Background()
	console := testutil.CreateConsole(t, db)

	game := &models.Game{Title: "Zelda", ConsoleID: console.ID}
	require.NoError(t, repo.Create(ctx, game))
	assert.NotZero(t, game.ID)

	found, err := repo.FindByID(ctx, game.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Zelda", found.Title)
	assert.Nil(t, found.Console)

	dup, err := repo.FindByTitleAndConsole(ctx, "Zelda", console.ID)
	require.NoError(t, err)
	require.NotNil(t, dup)

	other, err := repo.FindByTitleAndConsole(ctx, "Zelda", console.ID+1)
	assert.NoError(t, err)
	assert.Nil(t, other)

	games, err := repo.FindAllWithConsole(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	require.NotNil(t, games[0].Console)
	assert.Equal(t, console.Name, games[0].Console.Name)
}

func TestGameRepository_CallerDeadlineIsKept(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := repository.NewGameRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := repo.FindAllWithConsole(ctx)
	assert.Error(t, err)
}

func TestFindByID_BeyondColumnRange(t *testing.T) {
	db := testutil.NewDatabase(t)
	ctx := context.Background()
	console := testutil.CreateConsole(t, db)
	testutil.CreateGame(t, db, console.ID)

	found, err := repository.NewConsoleRepository(db).FindByID(ctx, math.MaxUint)
	assert.NoError(t, err)
	assert.Nil(t, found)

	games := repository.NewGameRepository(db)
	game, err := games.FindByID(ctx, math.MaxUint)
	assert.NoError(t, err)
	assert.Nil(t, game)

	game, err = games.FindByTitleAndConsole(ctx, "Zelda", math.MaxUint)
	assert.NoError(t, err)
	assert.Nil(t, game)
}
