package domain

import "fmt"

const (
	DefaultMinYear = 1960
	DefaultMaxYear = 2025
)

// YearBounds is the supported release-year window for sampling requests.
type YearBounds struct {
	Min int
	Max int
}

var DefaultYearBounds = YearBounds{Min: DefaultMinYear, Max: DefaultMaxYear}

// MediaFilter selects media released between StartYear and EndYear, both inclusive.
type MediaFilter struct {
	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`
}

// NewFilter validates the range against the bounds. No network call is made for a rejected range.
func (b YearBounds) NewFilter(startYear, endYear int) (MediaFilter, error) {
	if startYear > endYear {
		return MediaFilter{}, &ValidationError{
			Field:   "start_year",
			Message: "start year must be less than or equal to end year",
		}
	}
	if startYear < b.Min || endYear > b.Max {
		return MediaFilter{}, &ValidationError{
			Field:   "year_range",
			Message: fmt.Sprintf("years must be between %d and %d", b.Min, b.Max),
		}
	}
	return MediaFilter{StartYear: startYear, EndYear: endYear}, nil
}

// StartDate is the exclusive lower bound sent as startDate_greater: Dec 31 of the
// year before StartYear, so Jan 1 and year-only dates (YYYY0000) of StartYear match.
func (f MediaFilter) StartDate() int {
	return (f.StartYear-1)*10000 + 1231
}

// EndDate is the exclusive upper bound sent as startDate_lesser: the year after EndYear
// with zero month and day, so Dec 31 of EndYear still matches.
func (f MediaFilter) EndDate() int {
	return (f.EndYear + 1) * 10000
}

// Contains reports whether year falls inside the filter.
func (f MediaFilter) Contains(year int) bool {
	return year >= f.StartYear && year <= f.EndYear
}

// PageInfo describes the result set as of one request; it is not stable across requests.
type PageInfo struct {
	Total       int  `json:"total"`
	PerPage     int  `json:"per_page"`
	CurrentPage int  `json:"current_page"`
	LastPage    int  `json:"last_page"`
	HasNextPage bool `json:"has_next_page"`
}

// MediaPage is one page of the sampling query.
type MediaPage struct {
	PageInfo PageInfo
	Media    []MediaSummary
}

// PageQuery is everything the gateway needs to fetch one page of a filter.
type PageQuery struct {
	Filter  MediaFilter
	Page    int
	PerPage int
	Sort    string
}
