package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	TagCategoryTheme       = "Theme"
	TagCategoryDemographic = "Demographic"

	maxThemes = 5
	notAvail  = "N/A"
)

// MediaSummary is the denormalized view of one anime returned by the sampling query.
type MediaSummary struct {
	ID          int64      `json:"id"`
	Title       Title      `json:"title"`
	Description string     `json:"description"`
	CoverImage  CoverImage `json:"cover_image"`
	StartDate   FuzzyDate  `json:"start_date"`
	EndDate     FuzzyDate  `json:"end_date"`
	Episodes    *int       `json:"episodes,omitempty"`
	Genres      []string   `json:"genres"`
	Score       *int       `json:"average_score,omitempty"` // 0-100
	Studios     []string   `json:"studios"`
	Tags        []Tag      `json:"tags"`
	SiteURL     string     `json:"site_url"`
	Format      string     `json:"format,omitempty"`
	Season      string     `json:"season,omitempty"`
	SeasonYear  *int       `json:"season_year,omitempty"`
}

type Title struct {
	Romaji  string `json:"romaji"`
	English string `json:"english,omitempty"`
}

// Display prefers the English title.
func (t Title) Display() string {
	if t.English != "" {
		return t.English
	}
	return t.Romaji
}

type CoverImage struct {
	Large      string `json:"large,omitempty"`
	ExtraLarge string `json:"extra_large,omitempty"`
}

// Best prefers the extra large image.
func (c CoverImage) Best() string {
	if c.ExtraLarge != "" {
		return c.ExtraLarge
	}
	return c.Large
}

// FuzzyDate tolerates missing components.
type FuzzyDate struct {
	Year  *int `json:"year,omitempty"`
	Month *int `json:"month,omitempty"`
	Day   *int `json:"day,omitempty"`
}

type Tag struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (m *MediaSummary) DisplayTitle() string {
	return m.Title.Display()
}

func (m *MediaSummary) Cover() string {
	return m.CoverImage.Best()
}

func (m *MediaSummary) Themes() string {
	return ExtractThemes(m.Tags)
}

func (m *MediaSummary) Demographics() string {
	return ExtractDemographics(m.Tags)
}

func (m *MediaSummary) Studio() string {
	if len(m.Studios) == 0 || m.Studios[0] == "" {
		return "Unknown"
	}
	return m.Studios[0]
}

func (m *MediaSummary) ScoreLabel() string {
	if m.Score == nil || *m.Score == 0 {
		return "Not Rated"
	}
	return fmt.Sprintf("%d/100", *m.Score)
}

func (m *MediaSummary) EpisodesLabel() string {
	if m.Episodes == nil || *m.Episodes == 0 {
		return "Unknown"
	}
	return strconv.Itoa(*m.Episodes)
}

func (m *MediaSummary) GenresLabel() string {
	if len(m.Genres) == 0 {
		return notAvail
	}
	return strings.Join(m.Genres, ", ")
}

func (m *MediaSummary) FormatLabel() string {
	if m.Format == "" {
		return notAvail
	}
	return m.Format
}

// AirDates renders the release span: "2010", "2010-2012", "?-2012" or "2010-Present".
func (m *MediaSummary) AirDates() string {
	start := "?"
	if y := m.StartDate.Year; y != nil && *y != 0 {
		start = strconv.Itoa(*y)
	}
	end := "Present"
	if y := m.EndDate.Year; y != nil && *y != 0 {
		end = strconv.Itoa(*y)
	}
	if start == end {
		return start
	}
	return start + "-" + end
}

func (m *MediaSummary) Plot() string {
	if strings.TrimSpace(m.Description) == "" {
		return "No description available."
	}
	return m.Description
}

// ReleaseYear returns the start year, if known.
func (m *MediaSummary) ReleaseYear() (int, bool) {
	if m.StartDate.Year == nil || *m.StartDate.Year == 0 {
		return 0, false
	}
	return *m.StartDate.Year, true
}

// ExtractThemes joins the names of the first five Theme tags.
func ExtractThemes(tags []Tag) string {
	return joinTags(tags, TagCategoryTheme, maxThemes)
}

// ExtractDemographics joins the names of all Demographic tags.
func ExtractDemographics(tags []Tag) string {
	return joinTags(tags, TagCategoryDemographic, 0)
}

func joinTags(tags []Tag, category string, limit int) string {
	var names []string
	for _, t := range tags {
		if t.Category != category {
			continue
		}
		names = append(names, t.Name)
		if limit > 0 && len(names) == limit {
			break
		}
	}
	if len(names) == 0 {
		return notAvail
	}
	return strings.Join(names, ", ")
}

// MediaCard is the flat, display-ready projection of a MediaSummary.
type MediaCard struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Image        string `json:"image"`
	Episodes     string `json:"episodes"`
	Genres       string `json:"genres"`
	Score        string `json:"score"`
	Studio       string `json:"studio"`
	Format       string `json:"format"`
	Themes       string `json:"themes"`
	Demographics string `json:"demographics"`
	AirDates     string `json:"air_dates"`
	Plot         string `json:"plot"`
	SiteURL      string `json:"site_url"`
}

func (m *MediaSummary) Card() MediaCard {
	return MediaCard{
		ID:           m.ID,
		Title:        m.DisplayTitle(),
		Image:        m.Cover(),
		Episodes:     m.EpisodesLabel(),
		Genres:       m.GenresLabel(),
		Score:        m.ScoreLabel(),
		Studio:       m.Studio(),
		Format:       m.FormatLabel(),
		Themes:       m.Themes(),
		Demographics: m.Demographics(),
		AirDates:     m.AirDates(),
		Plot:         m.Plot(),
		SiteURL:      m.SiteURL,
	}
}
