package services

import (
	"fmt"
	"testing"
	"time"

	"artmarket-api/config"
	"artmarket-api/models"
	"artmarket-api/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createApprovedArtist(t *testing.T, repo repositories.ArtistRepository, name, identityID string) *models.Artist {
	t.Helper()
	artist := &models.Artist{
		PublicID:   "fx-" + name,
		Name:       name,
		IdentityID: identityID,
		Country:    "Japan",
	}
	artist.Submit(time.Now())
	artist.Approve(time.Now())
	require.NoError(t, repo.Create(artist))
	return artist
}

func createArt(t *testing.T, repo repositories.ArtRepository, artistName, title string) *models.Art {
	t.Helper()
	art := &models.Art{
		PublicID:     "fx-" + title,
		Title:        title,
		ArtistName:   artistName,
		Description:  "test artwork",
		Category:     "Painting",
		Price:        100,
		Images:       []string{"https://example.com/a.jpg"},
		Availability: "For Sale",
		Visible:      true,
	}
	require.NoError(t, repo.Create(art))
	return art
}
