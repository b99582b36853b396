package anilist

import "encoding/json"

// graphQLRequest is the POST body understood by the AniList endpoint.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphQLResponse is the common envelope; Data is decoded per query.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

type GraphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type pageData struct {
	Page *Page `json:"Page"`
}

type Page struct {
	PageInfo *PageInfo `json:"pageInfo"`
	Media    []Media   `json:"media"`
}

type PageInfo struct {
	Total       int  `json:"total"`
	PerPage     int  `json:"perPage"`
	CurrentPage int  `json:"currentPage"`
	LastPage    int  `json:"lastPage"`
	HasNextPage bool `json:"hasNextPage"`
}

type Media struct {
	ID           int64      `json:"id"`
	Title        Title      `json:"title"`
	Description  *string    `json:"description"`
	CoverImage   CoverImage `json:"coverImage"`
	StartDate    FuzzyDate  `json:"startDate"`
	EndDate      FuzzyDate  `json:"endDate"`
	Episodes     *int       `json:"episodes"`
	Genres       []string   `json:"genres"`
	AverageScore *int       `json:"averageScore"`
	Studios      struct {
		Nodes []Studio `json:"nodes"`
	} `json:"studios"`
	Tags       []Tag   `json:"tags"`
	SiteURL    string  `json:"siteUrl"`
	Format     *string `json:"format"`
	Season     *string `json:"season"`
	SeasonYear *int    `json:"seasonYear"`
}

type Title struct {
	Romaji  *string `json:"romaji"`
	English *string `json:"english"`
}

type CoverImage struct {
	Large      *string `json:"large"`
	ExtraLarge *string `json:"extraLarge"`
}

type FuzzyDate struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

type Studio struct {
	Name string `json:"name"`
}

type Tag struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type mediaData struct {
	Media *RelationMedia `json:"Media"`
}

// RelationMedia is the subject of the relations query.
type RelationMedia struct {
	Node
	Relations *struct {
		Edges []Edge `json:"edges"`
	} `json:"relations"`
}

type Node struct {
	ID         int64      `json:"id"`
	Title      Title      `json:"title"`
	CoverImage CoverImage `json:"coverImage"`
	StartDate  FuzzyDate  `json:"startDate"`
	Format     *string    `json:"format"`
}

type Edge struct {
	RelationType string `json:"relationType"`
	Node         *Node  `json:"node"`
}
