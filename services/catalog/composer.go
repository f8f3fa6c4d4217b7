// Package catalog builds the parameterized SQL behind the filtered-search
// and analytics endpoints. Every builder is a pure function: given the same
// filter record it returns the same query text and the same ordered argument
// list. User-supplied values are always bound parameters; the only
// identifiers spliced into the text come from fixed allow-lists.
package catalog

import (
	"fmt"
	"strings"
)

// SortKey selects the ORDER BY expression for the filtered game search.
type SortKey string

const (
	SortMobyScore    SortKey = "moby_score"
	SortTitle        SortKey = "title"
	SortCriticsScore SortKey = "critics_score"
	SortPlayersScore SortKey = "players_score"
)

// sortColumns is the allow-list mapping sort keys to column expressions.
// Raw column names from the caller never reach the query text.
var sortColumns = map[SortKey]string{
	SortMobyScore:    "g.overall_moby_score DESC NULLS LAST",
	SortTitle:        "g.title ASC",
	SortCriticsScore: "g.overall_critics_score DESC NULLS LAST",
	SortPlayersScore: "g.overall_players_score DESC NULLS LAST",
}

// OrderClause returns the mapped ORDER BY expression, falling back to the
// moby score ordering for unknown keys.
func (k SortKey) OrderClause() string {
	if clause, ok := sortColumns[k]; ok {
		return clause
	}
	return sortColumns[SortMobyScore]
}

// RatingType selects which score/count column pair an analytics query
// aggregates over.
type RatingType string

const (
	RatingCritics RatingType = "critics"
	RatingPlayers RatingType = "players"
)

// Columns returns the (score, count) column pair for the rating type.
// Anything that is not "players" aggregates the critics columns.
func (t RatingType) Columns() (string, string) {
	if t == RatingPlayers {
		return "g.overall_players_score", "g.overall_players_count"
	}
	return "g.overall_critics_score", "g.overall_critics_count"
}

// GameFilter is the immutable per-call filter record for the filtered game
// search. Zero values mean "filter absent": empty strings, year 0 and
// limit 0 contribute neither a join nor a predicate.
type GameFilter struct {
	Genre     string
	Platform  string
	Publisher string
	Developer string
	Year      int
	SortBy    SortKey
	Limit     int
}

// clampLimit bound-checks a requested limit, substituting fallback when the
// request carried none.
func clampLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}

// BuildFilteredGamesQuery composes the query for the by-criteria search.
// Each present filter appends exactly one join and one predicate; publisher
// and developer share a single releases join, and a year filter reuses that
// join when it is already present. Argument order is deterministic:
// genre, platform, developer, publisher, year, limit.
func BuildFilteredGamesQuery(f GameFilter) (string, []interface{}) {
	query := `SELECT DISTINCT
            g.game_id,
            g.title,
            g.description,
            g.cover_photo,
            g.overall_moby_score,
            g.overall_critics_score,
            g.overall_players_score
        FROM games g`

	var joins []string
	var conditions []string
	var args []interface{}

	if f.Genre != "" {
		joins = append(joins, "JOIN game_attributes ga ON g.game_id = ga.game_id")
		conditions = append(conditions, "ga.attribute_type = 'Genre' AND ga.attribute_name = ?")
		args = append(args, f.Genre)
	}

	if f.Platform != "" {
		joins = append(joins, "JOIN game_platforms gp ON g.game_id = gp.game_id")
		conditions = append(conditions, "gp.platform_name = ?")
		args = append(args, f.Platform)
	}

	releasesJoined := false
	if f.Publisher != "" || f.Developer != "" {
		joins = append(joins,
			"JOIN releases r ON g.game_id = r.game_id "+
				"JOIN companies dc ON r.developer_company_id = dc.company_id "+
				"JOIN companies pc ON r.publisher_company_id = pc.company_id")
		releasesJoined = true
		if f.Developer != "" {
			conditions = append(conditions, "dc.company_name = ?")
			args = append(args, f.Developer)
		}
		if f.Publisher != "" {
			conditions = append(conditions, "pc.company_name = ?")
			args = append(args, f.Publisher)
		}
	}

	if f.Year != 0 {
		if !releasesJoined {
			joins = append(joins, "JOIN releases r ON g.game_id = r.game_id")
		}
		conditions = append(conditions, "EXTRACT(YEAR FROM r.release_date) = ?")
		args = append(args, f.Year)
	}

	if len(joins) > 0 {
		query += " " + strings.Join(joins, " ")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY " + f.SortBy.OrderClause()
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, clampLimit(f.Limit, 1, 1000))
	}

	return query, args
}

// BuildTopGamesQuery composes the top rated games query for one rating type,
// optionally narrowed by genre and release year. Rows without a score for
// the selected rating type are excluded.
func BuildTopGamesQuery(genre string, year int, ratingType RatingType, limit int) (string, []interface{}) {
	scoreCol, countCol := ratingType.Columns()

	query := fmt.Sprintf(`SELECT DISTINCT
            g.game_id,
            g.title,
            g.cover_photo,
            %s AS score,
            %s AS rating_count
        FROM games g`, scoreCol, countCol)

	var joins []string
	conditions := []string{scoreCol + " IS NOT NULL"}
	var args []interface{}

	if genre != "" {
		joins = append(joins, "JOIN game_attributes ga ON g.game_id = ga.game_id")
		conditions = append(conditions, "ga.attribute_type = 'Genre' AND ga.attribute_name = ?")
		args = append(args, genre)
	}

	if year != 0 {
		joins = append(joins, "JOIN releases r ON g.game_id = r.game_id")
		conditions = append(conditions, "EXTRACT(YEAR FROM r.release_date) = ?")
		args = append(args, year)
	}

	if len(joins) > 0 {
		query += " " + strings.Join(joins, " ")
	}
	query += " WHERE " + strings.Join(conditions, " AND ")
	query += fmt.Sprintf(" ORDER BY %s DESC, %s DESC NULLS LAST", scoreCol, countCol)
	query += " LIMIT ?"
	args = append(args, clampLimit(limit, 10, 50))

	return query, args
}

// BuildTopGamesByMobyQuery composes the top games by Moby score query,
// optionally narrowed by genre and setting. Both filters target
// game_attributes, so each present one gets its own aliased join.
func BuildTopGamesByMobyQuery(genre, setting string, limit int) (string, []interface{}) {
	query := `SELECT DISTINCT
            g.game_id,
            g.title,
            g.description,
            g.cover_photo,
            g.overall_moby_score
        FROM games g`

	var joins []string
	conditions := []string{"g.overall_moby_score IS NOT NULL"}
	var args []interface{}

	if genre != "" {
		joins = append(joins, "JOIN game_attributes ga_genre ON g.game_id = ga_genre.game_id")
		conditions = append(conditions, "ga_genre.attribute_type = 'Genre' AND ga_genre.attribute_name = ?")
		args = append(args, genre)
	}

	if setting != "" {
		joins = append(joins, "JOIN game_attributes ga_setting ON g.game_id = ga_setting.game_id")
		conditions = append(conditions, "ga_setting.attribute_type = 'Setting' AND ga_setting.attribute_name = ?")
		args = append(args, setting)
	}

	if len(joins) > 0 {
		query += " " + strings.Join(joins, " ")
	}
	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY g.overall_moby_score DESC"
	query += " LIMIT ?"
	args = append(args, clampLimit(limit, 5, 20))

	return query, args
}

// BuildTopDevelopersQuery composes the top development companies query,
// ranked by the critics weighted average over each company's games.
// Releases are reduced to DISTINCT (game_id, developer_company_id) pairs
// before the company join so multi-release games count once, and the
// average is SUM(score*count)/SUM(count), not AVG(score), so games with
// more critic reviews weigh more.
func BuildTopDevelopersQuery(genre string, limit int) (string, []interface{}) {
	query := `SELECT
            c.company_name,
            c.country,
            SUM(g.overall_critics_score * g.overall_critics_count) / NULLIF(SUM(g.overall_critics_count), 0) AS avg_critics_score,
            COUNT(DISTINCT g.game_id) AS game_count
        FROM games g`

	var joins []string
	var conditions []string
	var args []interface{}

	if genre != "" {
		joins = append(joins, "JOIN game_attributes ga ON g.game_id = ga.game_id")
		conditions = append(conditions, "ga.attribute_type = 'Genre' AND ga.attribute_name = ?")
		args = append(args, genre)
	}

	joins = append(joins,
		"JOIN (SELECT DISTINCT game_id, developer_company_id FROM releases) r ON g.game_id = r.game_id "+
			"JOIN companies c ON r.developer_company_id = c.company_id")

	query += " " + strings.Join(joins, " ")
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " GROUP BY c.company_name, c.country"
	query += " ORDER BY avg_critics_score DESC NULLS LAST, game_count DESC"
	query += " LIMIT ?"
	args = append(args, clampLimit(limit, 5, 20))

	return query, args
}
