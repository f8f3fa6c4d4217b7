package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func gamePlatformRows(gameID int, platformName string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"game_id", "platform_name"}).
		AddRow(gameID, platformName)
}

func gameRows(gameID int, title string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"game_id", "title"}).
		AddRow(gameID, title)
}

func TestAddRatingInsertsNewRow(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.POST("/ratings", AddRating(gormDB))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email_address`).
		WillReturnRows(userRows("ana@example.com", "ana", "secret123"))
	mock.ExpectQuery(`SELECT \* FROM "game_platforms" WHERE game_id`).
		WillReturnRows(gamePlatformRows(7, "PC"))

	// No rating stored yet, so the upsert takes the insert path.
	mock.ExpectQuery(`SELECT \* FROM "user_game_platforms" WHERE user_email_address`).
		WillReturnRows(sqlmock.NewRows([]string{"user_email_address"}))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "user_game_platforms"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "games" WHERE game_id`).
		WillReturnRows(gameRows(7, "Chrono Drift"))

	w := performRequest(t, router, http.MethodPost, "/ratings", gin.H{
		"user_email":    "ana@example.com",
		"game_id":       7,
		"platform_name": "PC",
		"rating":        4.5,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Chrono Drift", body["game_title"])
	assert.Equal(t, 4.5, body["rating"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddRatingOverwritesExisting(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.POST("/ratings", AddRating(gormDB))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email_address`).
		WillReturnRows(userRows("ana@example.com", "ana", "secret123"))
	mock.ExpectQuery(`SELECT \* FROM "game_platforms" WHERE game_id`).
		WillReturnRows(gamePlatformRows(7, "PC"))

	// A rating already exists for the key, so the upsert updates in place.
	mock.ExpectQuery(`SELECT \* FROM "user_game_platforms" WHERE user_email_address`).
		WillReturnRows(sqlmock.NewRows([]string{"user_email_address", "game_id", "platform_name", "rating"}).
			AddRow("ana@example.com", 7, "PC", 2.0))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "user_game_platforms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "games" WHERE game_id`).
		WillReturnRows(gameRows(7, "Chrono Drift"))

	w := performRequest(t, router, http.MethodPost, "/ratings", gin.H{
		"user_email":    "ana@example.com",
		"game_id":       7,
		"platform_name": "PC",
		"rating":        5.0,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 5.0, decodeBody(t, w)["rating"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddRatingRetriesLosingInsertAsUpdate(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.POST("/ratings", AddRating(gormDB))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email_address`).
		WillReturnRows(userRows("ana@example.com", "ana", "secret123"))
	mock.ExpectQuery(`SELECT \* FROM "game_platforms" WHERE game_id`).
		WillReturnRows(gamePlatformRows(7, "PC"))

	// The existence check sees no row, but a concurrent submission wins
	// the insert; the duplicate-key failure is retried as an update.
	mock.ExpectQuery(`SELECT \* FROM "user_game_platforms" WHERE user_email_address`).
		WillReturnRows(sqlmock.NewRows([]string{"user_email_address"}))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "user_game_platforms"`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "user_game_platforms" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "games" WHERE game_id`).
		WillReturnRows(gameRows(7, "Chrono Drift"))

	w := performRequest(t, router, http.MethodPost, "/ratings", gin.H{
		"user_email":    "ana@example.com",
		"game_id":       7,
		"platform_name": "PC",
		"rating":        4.0,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 4.0, decodeBody(t, w)["rating"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddRatingUnknownUser(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.POST("/ratings", AddRating(gormDB))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email_address`).
		WillReturnRows(sqlmock.NewRows([]string{"email_address"}))

	w := performRequest(t, router, http.MethodPost, "/ratings", gin.H{
		"user_email":    "ghost@example.com",
		"game_id":       7,
		"platform_name": "PC",
		"rating":        4.0,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found. Please register first.", decodeBody(t, w)["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddRatingUnknownGamePlatform(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.POST("/ratings", AddRating(gormDB))

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email_address`).
		WillReturnRows(userRows("ana@example.com", "ana", "secret123"))
	mock.ExpectQuery(`SELECT \* FROM "game_platforms" WHERE game_id`).
		WillReturnRows(sqlmock.NewRows([]string{"game_id"}))

	w := performRequest(t, router, http.MethodPost, "/ratings", gin.H{
		"user_email":    "ana@example.com",
		"game_id":       7,
		"platform_name": "Dreamcast",
		"rating":        4.0,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Game-Platform combination not found", decodeBody(t, w)["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddRatingRejectsOutOfRange(t *testing.T) {
	gormDB, _ := setupMockDB(t)

	router := gin.New()
	router.POST("/ratings", AddRating(gormDB))

	w := performRequest(t, router, http.MethodPost, "/ratings", gin.H{
		"user_email":    "ana@example.com",
		"game_id":       7,
		"platform_name": "PC",
		"rating":        5.5,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserRatings(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.GET("/ratings/user/:email", GetUserRatings(gormDB))

	mock.ExpectQuery(`FROM user_game_platforms ugp`).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_email_address", "game_id", "title", "platform_name", "rating"}).
			AddRow("ana@example.com", 7, "Chrono Drift", "PC", 4.5).
			AddRow("ana@example.com", 9, "Starfall", "Switch", 3.0))

	w := performRequest(t, router, http.MethodGet, "/ratings/user/ana@example.com", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var ratings []RatingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ratings))
	assert.Len(t, ratings, 2)
	assert.Equal(t, "Chrono Drift", ratings[0].GameTitle)
	assert.Equal(t, 3.0, ratings[1].Rating)
}

func TestGetUserRatingsEmptyIsArray(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.GET("/ratings/user/:email", GetUserRatings(gormDB))

	mock.ExpectQuery(`FROM user_game_platforms ugp`).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_email_address", "game_id", "title", "platform_name", "rating"}))

	w := performRequest(t, router, http.MethodGet, "/ratings/user/ghost@example.com", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestDeleteRating(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	router := gin.New()
	router.DELETE("/ratings", DeleteRating(gormDB))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "user_game_platforms"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(t, router, http.MethodDelete,
		"/ratings?user_email=ana@example.com&game_id=7&platform_name=PC", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rating deleted successfully", decodeBody(t, w)["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
