package testutil

import (
	"context"
	"testing"

	"gamestore-backend/internal/database"
	"gamestore-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// RandomName returns a unique, human-readable name with the given prefix.
func RandomName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

func CreateConsole(t testing.TB, db *database.Database) models.Console {
	t.Helper()

	console := models.Console{Name: RandomName("console")}
	require.NoError(t, db.WithContext(context.Background()).Create(&console).Error)
	return console
}

func CreateGame(t testing.TB, db *database.Database, consoleID uint) models.Game {
	t.Helper()

	game := models.Game{Title: RandomName("game"), ConsoleID: consoleID}
	require.NoError(t, db.WithContext(context.Background()).Omit("Console").Create(&game).Error)
	return game
}

// GetGameWithInfo loads a game together with its console.
func GetGameWithInfo(t testing.TB, db *database.Database, id uint) models.Game {
	t.Helper()

	var game models.Game
	require.NoError(t, db.WithContext(context.Background()).Preload("Console").First(&game, id).Error)
	return game
}
