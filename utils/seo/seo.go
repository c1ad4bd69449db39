// Package seo derives slugs, meta defaults, and content metrics for the
// content hierarchy.
package seo

import (
	"strings"
	"unicode/utf8"

	"github.com/codesmentors/codesmentors-api/model"
	"github.com/gosimple/slug"
)

// WordsPerMinute is the assumed reading speed for the readingTime metric
const WordsPerMinute = 200

// MetaDescriptionLimit is the recommended length for meta descriptions
const MetaDescriptionLimit = 160

// Slugify derives the URL-safe, lowercase identifier for a name.
// "React JS" -> "react-js".
func Slugify(name string) string {
	return slug.Make(name)
}

// ReadingTime returns ceil(word_count / 200) in minutes, minimum 1 for any
// non-empty content.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// Truncate cuts s to at most limit bytes, backing up so a multi-byte rune
// is never split at the boundary
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// TechnologyDefaults fills the SEO block for a technology when the caller
// did not supply one: metaTitle from the name, metaDescription from the
// first 160 chars of the description, and a stock keyword set.
func TechnologyDefaults(seo model.SEO, name, description string) model.SEO {
	if seo.MetaTitle == "" {
		seo.MetaTitle = name
	}
	if seo.MetaDescription == "" {
		seo.MetaDescription = Truncate(description, MetaDescriptionLimit)
	}
	if len(seo.Keywords) == 0 {
		seo.Keywords = []string{name, "Learn " + name, name + " tutorial"}
	}
	return seo
}

// TopicDefaults fills the SEO block for a topic from its name
func TopicDefaults(seo model.SEO, name string) model.SEO {
	if seo.MetaTitle == "" {
		seo.MetaTitle = name + " Tutorials & Guides"
	}
	if seo.MetaDescription == "" {
		seo.MetaDescription = "Learn " + name + " with step-by-step tutorials, examples, and best practices."
	}
	if len(seo.Keywords) == 0 {
		seo.Keywords = []string{name, name + " tutorial", name + " examples", name + " guide"}
	}
	return seo
}

// TutorialKeywords merges caller-supplied keywords with the auto-generated
// tags: the title, "tutorial", "guide", and the parent topic and technology
// names.
func TutorialKeywords(userKeywords []string, title, topicName, technologyName string) []string {
	merged := make([]string, 0, len(userKeywords)+5)
	merged = append(merged, userKeywords...)
	merged = append(merged, title, "tutorial", "guide", topicName, technologyName)
	return merged
}
