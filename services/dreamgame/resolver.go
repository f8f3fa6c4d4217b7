// Package dreamgame synthesizes the "dream game": for each classification
// axis (genre, setting, platform, developer, ...) it looks up the single
// best-performing value by player-weighted average score and merges the
// winners into one composite record.
package dreamgame

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// Placeholder marks an axis with no qualifying data in the composite result.
const Placeholder = "N/A"

const attributeAxisQuery = `SELECT
            ga.attribute_name,
            SUM(g.overall_players_score * g.overall_players_count) / NULLIF(SUM(g.overall_players_count), 0) AS avg_rating,
            COUNT(DISTINCT g.game_id) AS game_count
        FROM game_attributes ga
        JOIN games g ON ga.game_id = g.game_id
        WHERE ga.attribute_type = ?
        GROUP BY ga.attribute_name
        ORDER BY avg_rating DESC NULLS LAST, game_count DESC
        LIMIT 1`

const platformAttributeAxisQuery = `SELECT
            gpa.attribute_name,
            SUM(g.overall_players_score * g.overall_players_count) / NULLIF(SUM(g.overall_players_count), 0) AS avg_rating,
            COUNT(DISTINCT g.game_id) AS game_count
        FROM game_platform_attributes gpa
        JOIN games g ON gpa.game_id = g.game_id
        WHERE gpa.attribute_type LIKE ?
        GROUP BY gpa.attribute_name
        ORDER BY avg_rating DESC NULLS LAST, game_count DESC
        LIMIT 1`

const platformAxisQuery = `SELECT
            gp.platform_name,
            SUM(g.overall_players_score * g.overall_players_count) / NULLIF(SUM(g.overall_players_count), 0) AS avg_rating,
            COUNT(DISTINCT g.game_id) AS game_count
        FROM game_platforms gp
        JOIN games g ON gp.game_id = g.game_id
        GROUP BY gp.platform_name
        ORDER BY avg_rating DESC NULLS LAST, game_count DESC
        LIMIT 1`

// Developer and publisher axes reduce releases to DISTINCT
// (game_id, company_id) pairs before the company join; without that,
// multi-release games double-count in the sums.
const developerAxisQuery = `SELECT
            c.company_name,
            SUM(g.overall_players_score * g.overall_players_count) / NULLIF(SUM(g.overall_players_count), 0) AS avg_rating,
            COUNT(DISTINCT g.game_id) AS game_count
        FROM games g
        JOIN (SELECT DISTINCT game_id, developer_company_id FROM releases) r ON g.game_id = r.game_id
        JOIN companies c ON r.developer_company_id = c.company_id
        GROUP BY c.company_name
        ORDER BY avg_rating DESC NULLS LAST, game_count DESC
        LIMIT 1`

const publisherAxisQuery = `SELECT
            c.company_name,
            SUM(g.overall_players_score * g.overall_players_count) / NULLIF(SUM(g.overall_players_count), 0) AS avg_rating,
            COUNT(DISTINCT g.game_id) AS game_count
        FROM games g
        JOIN (SELECT DISTINCT game_id, publisher_company_id FROM releases) r ON g.game_id = r.game_id
        JOIN companies c ON r.publisher_company_id = c.company_id
        GROUP BY c.company_name
        ORDER BY avg_rating DESC NULLS LAST, game_count DESC
        LIMIT 1`

const directorAxisQuery = `SELECT
            p.name,
            SUM(g.overall_players_score * g.overall_players_count) / NULLIF(SUM(g.overall_players_count), 0) AS avg_rating,
            COUNT(DISTINCT g.game_id) AS game_count
        FROM people p
        JOIN game_person_credits gpc ON p.person_id = gpc.person_id
        JOIN games g ON gpc.game_id = g.game_id
        GROUP BY p.name
        ORDER BY avg_rating DESC NULLS LAST, game_count DESC
        LIMIT 1`

// The maturity axis averages the plain player score over per-game
// deduplicated label rows, because the same label repeats across platforms.
const maturityAxisQuery = `SELECT
            sub.label,
            sub.maturity_rating_organization,
            AVG(sub.player_score) AS avg_rating,
            COUNT(*) AS game_count
        FROM (
            SELECT DISTINCT
                mr.label,
                mr.maturity_rating_organization,
                g.game_id,
                g.overall_players_score AS player_score
            FROM maturity_rating_game_platforms mr
            JOIN games g ON mr.game_id = g.game_id
        ) sub
        GROUP BY sub.label, sub.maturity_rating_organization
        ORDER BY avg_rating DESC NULLS LAST, game_count DESC
        LIMIT 1`

// DreamGame holds the winning value per axis, or the placeholder (core
// axes) / null (optional axes) when an axis has no qualifying data.
type DreamGame struct {
	Genre                  string  `json:"genre"`
	Gameplay               string  `json:"gameplay"`
	Setting                string  `json:"setting"`
	Narrative              string  `json:"narrative"`
	Perspective            string  `json:"perspective"`
	VisualStyle            string  `json:"visual_style"`
	ArtStyle               string  `json:"art_style"`
	Interface              string  `json:"interface"`
	Pacing                 string  `json:"pacing"`
	Platform               string  `json:"platform"`
	BusinessModel          string  `json:"business_model"`
	MediaType              string  `json:"media_type"`
	Developer              string  `json:"developer"`
	Publisher              string  `json:"publisher"`
	Director               string  `json:"director"`
	SportType              *string `json:"sport_type"`
	VehicularType          *string `json:"vehicular_type"`
	EducationalFocus       *string `json:"educational_focus"`
	MiscFeatures           *string `json:"misc_features"`
	AddonType              *string `json:"addon_type"`
	InputDeviceSupported   *string `json:"input_device_supported"`
	SpecialEditionFeatures *string `json:"special_edition_features"`
	MaturityRating         string  `json:"maturity_rating"`
	MaturityOrganization   string  `json:"maturity_organization"`
}

// Stats carries the weighted-average score behind each axis winner,
// 0 when the axis resolved to the placeholder.
type Stats struct {
	GenreRating          float64 `json:"genre_rating"`
	GameplayRating       float64 `json:"gameplay_rating"`
	SettingRating        float64 `json:"setting_rating"`
	NarrativeRating      float64 `json:"narrative_rating"`
	PerspectiveRating    float64 `json:"perspective_rating"`
	VisualRating         float64 `json:"visual_rating"`
	ArtRating            float64 `json:"art_rating"`
	InterfaceRating      float64 `json:"interface_rating"`
	PacingRating         float64 `json:"pacing_rating"`
	PlatformRating       float64 `json:"platform_rating"`
	DeveloperRating      float64 `json:"developer_rating"`
	PublisherRating      float64 `json:"publisher_rating"`
	DirectorRating       float64 `json:"director_rating"`
	MaturityRating       float64 `json:"maturity_rating"`
	BusinessModelRating  float64 `json:"business_model_rating"`
	MediaTypeRating      float64 `json:"media_type_rating"`
	InputSupportedRating float64 `json:"input_supported_rating"`
	SpecialEditionRating float64 `json:"special_edition_rating"`
	SportRating          float64 `json:"sport_rating"`
	VehicularRating      float64 `json:"vehicular_rating"`
	EducationalRating    float64 `json:"educational_rating"`
	MiscRating           float64 `json:"misc_rating"`
	AddonRating          float64 `json:"addon_rating"`
}

// Result is the composite response of the dream-game endpoint.
type Result struct {
	DreamGame DreamGame `json:"dream_game"`
	Stats     Stats     `json:"stats"`
	Note      string    `json:"note"`
}

// axisResult is one resolved axis: the winning value, its weighted average
// and its distinct game count. found is false when the axis had no
// qualifying rows or only null/zero rating counts.
type axisResult struct {
	Name         string
	Organization string
	AvgRating    float64
	GameCount    int
	found        bool
}

func (r axisResult) value() string {
	if !r.found {
		return Placeholder
	}
	return r.Name
}

func (r axisResult) optionalValue() *string {
	if !r.found {
		return nil
	}
	name := r.Name
	return &name
}

// resolver runs the axis lookups, remembering the first hard failure.
// Subsequent lookups become no-ops once an error is recorded.
type resolver struct {
	db  *gorm.DB
	err error
}

// lookup runs one single-row axis query. A missing row or a NULL weighted
// average (all counts null or zero) is a valid "no data" result, not an
// error; anything else aborts the resolution.
func (r *resolver) lookup(query string, args ...interface{}) axisResult {
	if r.err != nil {
		return axisResult{}
	}

	var (
		name      string
		avgRating sql.NullFloat64
		gameCount int
	)
	row := r.db.Raw(query, args...).Row()
	if err := row.Scan(&name, &avgRating, &gameCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return axisResult{}
		}
		r.err = err
		return axisResult{}
	}
	if !avgRating.Valid {
		return axisResult{}
	}
	return axisResult{Name: name, AvgRating: avgRating.Float64, GameCount: gameCount, found: true}
}

func (r *resolver) bestAttribute(attributeType string) axisResult {
	return r.lookup(attributeAxisQuery, attributeType)
}

func (r *resolver) bestPlatformAttribute(attributeType string) axisResult {
	return r.lookup(platformAttributeAxisQuery, attributeType)
}

// bestMaturity is like lookup but scans the extra organization column.
func (r *resolver) bestMaturity() axisResult {
	if r.err != nil {
		return axisResult{}
	}

	var (
		label        string
		organization string
		avgRating    sql.NullFloat64
		gameCount    int
	)
	row := r.db.Raw(maturityAxisQuery).Row()
	if err := row.Scan(&label, &organization, &avgRating, &gameCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return axisResult{}
		}
		r.err = err
		return axisResult{}
	}
	if !avgRating.Valid {
		return axisResult{}
	}
	return axisResult{Name: label, Organization: organization, AvgRating: avgRating.Float64, GameCount: gameCount, found: true}
}

// Resolve computes the composite dream game. The axis lookups are mutually
// independent, read-only and issued sequentially without a shared
// transaction; a write landing between two of them is an accepted
// inconsistency.
func Resolve(db *gorm.DB) (*Result, error) {
	r := &resolver{db: db}

	genre := r.bestAttribute("Genre")
	gameplay := r.bestAttribute("Gameplay")
	setting := r.bestAttribute("Setting")
	narrative := r.bestAttribute("Narrative")
	perspective := r.bestAttribute("Perspective")
	visual := r.bestAttribute("Visual")
	iface := r.bestAttribute("Interface")
	pacing := r.bestAttribute("Pacing")
	art := r.bestAttribute("Art")
	sport := r.bestAttribute("Sport")
	vehicular := r.bestAttribute("Vehicular")
	educational := r.bestAttribute("Educational")
	misc := r.bestAttribute("Misc")
	addon := r.bestAttribute("Add-on")
	specialEdition := r.bestAttribute("Special Edition")

	businessModel := r.bestPlatformAttribute("Business Model")
	mediaType := r.bestPlatformAttribute("Media Type")
	inputDevices := r.bestPlatformAttribute("Input Devices%")

	platform := r.lookup(platformAxisQuery)
	developer := r.lookup(developerAxisQuery)
	publisher := r.lookup(publisherAxisQuery)
	director := r.lookup(directorAxisQuery)
	maturity := r.bestMaturity()

	if r.err != nil {
		return nil, r.err
	}

	maturityOrganization := Placeholder
	if maturity.found {
		maturityOrganization = maturity.Organization
	}

	result := &Result{
		DreamGame: DreamGame{
			Genre:                  genre.value(),
			Gameplay:               gameplay.value(),
			Setting:                setting.value(),
			Narrative:              narrative.value(),
			Perspective:            perspective.value(),
			VisualStyle:            visual.value(),
			ArtStyle:               art.value(),
			Interface:              iface.value(),
			Pacing:                 pacing.value(),
			Platform:               platform.value(),
			BusinessModel:          businessModel.value(),
			MediaType:              mediaType.value(),
			Developer:              developer.value(),
			Publisher:              publisher.value(),
			Director:               director.value(),
			SportType:              sport.optionalValue(),
			VehicularType:          vehicular.optionalValue(),
			EducationalFocus:       educational.optionalValue(),
			MiscFeatures:           misc.optionalValue(),
			AddonType:              addon.optionalValue(),
			InputDeviceSupported:   inputDevices.optionalValue(),
			SpecialEditionFeatures: specialEdition.optionalValue(),
			MaturityRating:         maturity.value(),
			MaturityOrganization:   maturityOrganization,
		},
		Stats: Stats{
			GenreRating:          genre.AvgRating,
			GameplayRating:       gameplay.AvgRating,
			SettingRating:        setting.AvgRating,
			NarrativeRating:      narrative.AvgRating,
			PerspectiveRating:    perspective.AvgRating,
			VisualRating:         visual.AvgRating,
			ArtRating:            art.AvgRating,
			InterfaceRating:      iface.AvgRating,
			PacingRating:         pacing.AvgRating,
			PlatformRating:       platform.AvgRating,
			DeveloperRating:      developer.AvgRating,
			PublisherRating:      publisher.AvgRating,
			DirectorRating:       director.AvgRating,
			MaturityRating:       maturity.AvgRating,
			BusinessModelRating:  businessModel.AvgRating,
			MediaTypeRating:      mediaType.AvgRating,
			InputSupportedRating: inputDevices.AvgRating,
			SpecialEditionRating: specialEdition.AvgRating,
			SportRating:          sport.AvgRating,
			VehicularRating:      vehicular.AvgRating,
			EducationalRating:    educational.AvgRating,
			MiscRating:           misc.AvgRating,
			AddonRating:          addon.AvgRating,
		},
		Note: "Dream game based on highest average player ratings across all game attributes",
	}

	return result, nil
}
