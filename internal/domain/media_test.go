package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestExtractThemesAndDemographics(t *testing.T) {
	tags := []Tag{
		{Name: "Isekai", Category: "Theme"},
		{Name: "Seinen", Category: "Demographic"},
		{Name: "Time Travel", Category: "Theme"},
	}

	assert.Equal(t, "Isekai, Time Travel", ExtractThemes(tags))
	assert.Equal(t, "Seinen", ExtractDemographics(tags))
}

func TestExtractThemes_NoTags(t *testing.T) {
	assert.Equal(t, "N/A", ExtractThemes(nil))
	assert.Equal(t, "N/A", ExtractDemographics([]Tag{}))
}

func TestExtractThemes_CappedAtFive(t *testing.T) {
	var tags []Tag
	for _, n := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		tags = append(tags, Tag{Name: n, Category: TagCategoryTheme})
	}

	assert.Equal(t, "A, B, C, D, E", ExtractThemes(tags))
}

func TestExtractDemographics_NotCapped(t *testing.T) {
	var tags []Tag
	for _, n := range []string{"Shounen", "Seinen", "Josei", "Shoujo", "Kids", "Adult"} {
		tags = append(tags, Tag{Name: n, Category: TagCategoryDemographic})
	}

	assert.Equal(t, "Shounen, Seinen, Josei, Shoujo, Kids, Adult", ExtractDemographics(tags))
}

func TestMediaSummary_Card(t *testing.T) {
	m := &MediaSummary{
		ID:          21,
		Title:       Title{Romaji: "Shingeki no Kyojin", English: "Attack on Titan"},
		Description: "Humanity fights titans.",
		CoverImage:  CoverImage{Large: "large.jpg", ExtraLarge: "xl.jpg"},
		StartDate:   FuzzyDate{Year: intPtr(2013)},
		EndDate:     FuzzyDate{Year: intPtr(2013)},
		Episodes:    intPtr(25),
		Genres:      []string{"Action", "Drama"},
		Score:       intPtr(85),
		Studios:     []string{"Wit Studio", "Production I.G"},
		SiteURL:     "https://anilist.co/anime/16498",
		Format:      "TV",
	}

	card := m.Card()

	assert.Equal(t, "Attack on Titan", card.Title)
	assert.Equal(t, "xl.jpg", card.Image)
	assert.Equal(t, "25", card.Episodes)
	assert.Equal(t, "Action, Drama", card.Genres)
	assert.Equal(t, "85/100", card.Score)
	assert.Equal(t, "Wit Studio", card.Studio)
	assert.Equal(t, "TV", card.Format)
	assert.Equal(t, "2013", card.AirDates)
	assert.Equal(t, "N/A", card.Themes)
	assert.Equal(t, "Humanity fights titans.", card.Plot)
}

func TestMediaSummary_CardFallbacks(t *testing.T) {
	m := &MediaSummary{
		Title:      Title{Romaji: "Akira"},
		CoverImage: CoverImage{Large: "large.jpg"},
	}

	card := m.Card()

	assert.Equal(t, "Akira", card.Title)
	assert.Equal(t, "large.jpg", card.Image)
	assert.Equal(t, "Unknown", card.Episodes)
	assert.Equal(t, "N/A", card.Genres)
	assert.Equal(t, "Not Rated", card.Score)
	assert.Equal(t, "Unknown", card.Studio)
	assert.Equal(t, "N/A", card.Format)
	assert.Equal(t, "?-Present", card.AirDates)
	assert.Equal(t, "No description available.", card.Plot)
}

func TestMediaSummary_AirDates(t *testing.T) {
	tests := []struct {
		name  string
		start *int
		end   *int
		want  string
	}{
		{"same year", intPtr(1998), intPtr(1998), "1998"},
		{"span", intPtr(1998), intPtr(1999), "1998-1999"},
		{"airing", intPtr(2024), nil, "2024-Present"},
		{"unknown start", nil, intPtr(2001), "?-2001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MediaSummary{StartDate: FuzzyDate{Year: tt.start}, EndDate: FuzzyDate{Year: tt.end}}
			assert.Equal(t, tt.want, m.AirDates())
		})
	}
}
