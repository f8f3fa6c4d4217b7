package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTopGamesDefaults(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.GET("/analytics/top-games", GetTopGames(gormDB))

	// Defaults: critics ratings, no filters, limit 10.
	mock.ExpectQuery(`WHERE g\.overall_critics_score IS NOT NULL`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"game_id", "title", "cover_photo", "score", "rating_count"}).
			AddRow(1, "Outer Wilds", "", 4.8, 310).
			AddRow(2, "Hades", "", 4.7, 950))

	w := performRequest(t, router, http.MethodGet, "/analytics/top-games", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "critics", body["rating_type"])
	assert.Equal(t, float64(2), body["count"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopGamesWithGenreAndYear(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.GET("/analytics/top-games", GetTopGames(gormDB))

	mock.ExpectQuery(`WHERE g\.overall_players_score IS NOT NULL`).
		WithArgs("RPG", 2015, 3).
		WillReturnRows(sqlmock.NewRows([]string{"game_id", "title", "cover_photo", "score", "rating_count"}).
			AddRow(7, "Chrono Drift", "", 4.6, 120))

	w := performRequest(t, router, http.MethodGet,
		"/analytics/top-games?genre=RPG&year=2015&rating_type=players&limit=3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "players", body["rating_type"])
	assert.Equal(t, "RPG", body["genre"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopGamesRejectsUnknownRatingType(t *testing.T) {
	gormDB, _ := setupMockDB(t)

	router := gin.New()
	router.GET("/analytics/top-games", GetTopGames(gormDB))

	w := performRequest(t, router, http.MethodGet,
		"/analytics/top-games?rating_type=bots", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTopGamesByMoby(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.GET("/analytics/top-games-by-moby", GetTopGamesByMoby(gormDB))

	mock.ExpectQuery(`WHERE g\.overall_moby_score IS NOT NULL`).
		WithArgs("RPG", "Sci-Fi", 5).
		WillReturnRows(summaryRows().AddRow(7, "Chrono Drift", "", "", 4.5))

	w := performRequest(t, router, http.MethodGet,
		"/analytics/top-games-by-moby?genre=RPG&setting=Sci-Fi", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Sci-Fi", body["setting"])
	assert.Equal(t, float64(1), body["count"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopDevelopers(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.GET("/analytics/top-developers", GetTopDevelopers(gormDB))

	mock.ExpectQuery(`GROUP BY c\.company_name, c\.country`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"company_name", "country", "avg_critics_score", "game_count"}).
			AddRow("FromSoftware", "Japan", 4.4, 12).
			AddRow("Supergiant Games", "United States", 4.3, 4))

	w := performRequest(t, router, http.MethodGet, "/analytics/top-developers", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["count"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDreamGameFailsClosed(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.GET("/analytics/dream-game", GetDreamGame(gormDB))

	// The very first axis lookup fails; resolution aborts instead of
	// serving a half-filled composite.
	mock.ExpectQuery(`SELECT\s+ga\.attribute_name`).
		WillReturnError(errors.New("connection reset"))

	w := performRequest(t, router, http.MethodGet, "/analytics/dream-game", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to compute dream game", decodeBody(t, w)["error"])
}

func TestGetTopDirectors(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.GET("/analytics/top-directors", GetTopDirectors(gormDB))

	mock.ExpectQuery(`string_agg\(DISTINCT g\.title`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"person_id", "director_name", "game_count", "games"}).
			AddRow(1, "Hideo Kojima", 9, "Death Stranding, MGS V"))

	w := performRequest(t, router, http.MethodGet, "/analytics/top-directors", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["count"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopCollaborations(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.GET("/analytics/top-collaborations", GetTopCollaborations(gormDB))

	mock.ExpectQuery(`ORDER BY collaboration_count DESC`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"director_name", "developer_name", "collaboration_count", "games"}).
			AddRow("Hidetaka Miyazaki", "FromSoftware", 6, "Dark Souls, Elden Ring"))

	w := performRequest(t, router, http.MethodGet, "/analytics/top-collaborations?limit=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["count"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlatformStatsPreservesRowOrder(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.GET("/analytics/platform-stats", GetPlatformStats(gormDB))

	mock.ExpectQuery(`GROUP BY gp\.platform_name`).
		WillReturnRows(sqlmock.NewRows([]string{"platform_name", "game_count", "avg_critics_score", "avg_players_score", "avg_moby_score"}).
			AddRow("PC", 900, 4.1, 4.0, 3.9).
			AddRow("Switch", 400, 4.2, 4.3, 4.0))

	w := performRequest(t, router, http.MethodGet, "/analytics/platform-stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["count"])

	platforms := body["platforms"].([]interface{})
	first := platforms[0].(map[string]interface{})
	assert.Equal(t, "PC", first["platform_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
