package anilist

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripTags returns the text content of an HTML fragment with all markup removed.
func StripTags(fragment string) (string, error) {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.TrimSpace(fragment), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Text()), nil
}
