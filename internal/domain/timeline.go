package domain

import "fmt"

type TimelineState string

const (
	TimelineNoSubject   TimelineState = "no_subject"
	TimelineSuccess     TimelineState = "success"
	TimelineNoRelations TimelineState = "no_relations"
)

// Timeline is the outcome of one timeline build. Fetch failures are returned as errors instead.
type Timeline struct {
	State         TimelineState
	Subject       *MediaNode
	Entries       []TimelineEntry
	RelationCount int
}

// Message is the one-line summary shown above the timeline.
func (t *Timeline) Message() string {
	switch t.State {
	case TimelineNoSubject:
		return "Please generate an anime from the main page first."
	case TimelineNoRelations:
		return "This anime has no related series"
	default:
		return fmt.Sprintf("Found %d related anime in this series", t.RelationCount)
	}
}

// TimelineCard is the display-ready projection of one entry.
type TimelineCard struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Year     string `json:"year"`
	Format   string `json:"format"`
	Relation string `json:"relation,omitempty"`
	Current  bool   `json:"current"`
	URL      string `json:"url"`
}

type TimelineView struct {
	State   TimelineState  `json:"state"`
	Title   string         `json:"title,omitempty"`
	Message string         `json:"message"`
	Count   int            `json:"relation_count"`
	Cards   []TimelineCard `json:"cards"`
}

func (t *Timeline) View() TimelineView {
	v := TimelineView{
		State:   t.State,
		Message: t.Message(),
		Count:   t.RelationCount,
		Cards:   make([]TimelineCard, 0, len(t.Entries)),
	}
	if t.Subject != nil {
		v.Title = t.Subject.Title.Display()
	}
	for _, e := range t.Entries {
		v.Cards = append(v.Cards, TimelineCard{
			ID:       e.ID,
			Title:    e.Title.Display(),
			Image:    e.CoverImage.Best(),
			Year:     e.YearLabel(),
			Format:   e.FormatLabel(),
			Relation: e.RelationLabel(),
			Current:  e.IsCurrent,
			URL:      e.URL(),
		})
	}
	return v
}
