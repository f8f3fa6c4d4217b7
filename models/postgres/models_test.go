package postgres

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, model interface{}) *schema.Schema {
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func TestTableNames(t *testing.T) {
	cases := []struct {
		model interface{}
		table string
	}{
		{&Game{}, "games"},
		{&Attribute{}, "attributes"},
		{&GameAttribute{}, "game_attributes"},
		{&Platform{}, "platforms"},
		{&GamePlatform{}, "game_platforms"},
		{&GamePlatformAttribute{}, "game_platform_attributes"},
		{&MaturityRatingGamePlatform{}, "maturity_rating_game_platforms"},
		{&Company{}, "companies"},
		{&Release{}, "releases"},
		{&Person{}, "people"},
		{&GamePersonCredit{}, "game_person_credits"},
		{&User{}, "users"},
		{&UserGamePlatform{}, "user_game_platforms"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.table, parseSchema(t, tc.model).Table)
	}
}

func TestCompositePrimaryKeys(t *testing.T) {
	cases := []struct {
		model  interface{}
		fields int
	}{
		{&GameAttribute{}, 3},
		{&GamePlatform{}, 2},
		{&GamePlatformAttribute{}, 4},
		{&MaturityRatingGamePlatform{}, 3},
		{&GamePersonCredit{}, 2},
		{&UserGamePlatform{}, 3},
	}

	for _, tc := range cases {
		s := parseSchema(t, tc.model)
		assert.Len(t, s.PrimaryFields, tc.fields, "table %s", s.Table)
	}
}

func TestUserKeyedByEmail(t *testing.T) {
	s := parseSchema(t, &User{})
	require.Len(t, s.PrimaryFields, 1)
	assert.Equal(t, "email_address", s.PrimaryFields[0].DBName)
}

func TestReleaseKeyedBySurrogateID(t *testing.T) {
	s := parseSchema(t, &Release{})
	require.Len(t, s.PrimaryFields, 1)
	assert.Equal(t, "release_id", s.PrimaryFields[0].DBName)
	assert.True(t, s.PrimaryFields[0].AutoIncrement)
}

func TestRatingHookEnforcesScale(t *testing.T) {
	valid := []float64{0.0, 2.5, 5.0}
	for _, rating := range valid {
		r := UserGamePlatform{Rating: rating}
		assert.NoError(t, r.BeforeSave(nil))
	}

	invalid := []float64{-0.1, 5.5, 100}
	for _, rating := range invalid {
		r := UserGamePlatform{Rating: rating}
		assert.Error(t, r.BeforeSave(nil))
	}
}
