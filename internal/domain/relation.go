package domain

import (
	"fmt"
	"strconv"
)

type RelationType string

const (
	RelationSequel      RelationType = "SEQUEL"
	RelationPrequel     RelationType = "PREQUEL"
	RelationSideStory   RelationType = "SIDE_STORY"
	RelationAlternative RelationType = "ALTERNATIVE"
	RelationParent      RelationType = "PARENT"
	RelationSpinOff     RelationType = "SPIN_OFF"

	// RelationCurrent tags the subject of a timeline.
	RelationCurrent RelationType = "CURRENT"
)

var relationLabels = map[RelationType]string{
	RelationSequel:      "Sequel",
	RelationPrequel:     "Prequel",
	RelationSideStory:   "Side Story",
	RelationAlternative: "Alternative",
	RelationParent:      "Parent Story",
	RelationSpinOff:     "Spin-off",
}

// IsRelevant reports whether the relation belongs on a visual timeline.
func (r RelationType) IsRelevant() bool {
	_, ok := relationLabels[r]
	return ok
}

// Label returns the display name; unknown kinds are shown verbatim.
func (r RelationType) Label() string {
	if l, ok := relationLabels[r]; ok {
		return l
	}
	return string(r)
}

// MediaNode is the lightweight media view carried on relation edges.
type MediaNode struct {
	ID         int64      `json:"id"`
	Title      Title      `json:"title"`
	CoverImage CoverImage `json:"cover_image"`
	StartYear  *int       `json:"start_year,omitempty"`
	Format     string     `json:"format,omitempty"`
}

type RelationEdge struct {
	RelationType RelationType `json:"relation_type"`
	Node         MediaNode    `json:"node"`
}

// MediaRelations is the subject media together with every declared relation.
type MediaRelations struct {
	MediaNode
	Edges []RelationEdge `json:"edges"`
}

type TimelineEntry struct {
	MediaNode
	RelationType RelationType `json:"relation_type"`
	IsCurrent    bool         `json:"is_current"`
}

func (e TimelineEntry) Year() (int, bool) {
	if e.StartYear == nil || *e.StartYear == 0 {
		return 0, false
	}
	return *e.StartYear, true
}

func (e TimelineEntry) YearLabel() string {
	if y, ok := e.Year(); ok {
		return strconv.Itoa(y)
	}
	return "Unknown"
}

func (e TimelineEntry) FormatLabel() string {
	if e.Format == "" {
		return "Unknown"
	}
	return e.Format
}

// RelationLabel is empty for the current entry, which carries no badge.
func (e TimelineEntry) RelationLabel() string {
	if e.IsCurrent {
		return ""
	}
	return e.RelationType.Label()
}

func (e TimelineEntry) URL() string {
	return MediaURL(e.ID)
}

// MediaURL is the public AniList page of a media id.
func MediaURL(id int64) string {
	return fmt.Sprintf("https://anilist.co/anime/%d", id)
}
