package seo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/codesmentors/codesmentors-api/model"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "react-js", Slugify("React JS"))
	assert.Equal(t, "c-plus-plus-basics", Slugify("C Plus Plus Basics"))
	assert.Equal(t, "nodejs", Slugify("NodeJS"))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("one"))
	assert.Equal(t, 1, ReadingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("word ", 400)))
	assert.Equal(t, 3, ReadingTime(strings.Repeat("word ", 401)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))

	long := strings.Repeat("x", 300)
	assert.Len(t, Truncate(long, MetaDescriptionLimit), MetaDescriptionLimit)
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	// "é" is 2 bytes; a byte-index cut at 3 would split the second rune
	assert.Equal(t, "é", Truncate("éé", 3))
	assert.Equal(t, "日", Truncate("日本語", 5))

	// every prefix cut must stay valid UTF-8
	s := strings.Repeat("日", 60)
	for limit := 0; limit <= len(s); limit++ {
		got := Truncate(s, limit)
		assert.True(t, utf8.ValidString(got))
		assert.LessOrEqual(t, len(got), limit)
	}
}

func TestTechnologyDefaults(t *testing.T) {
	got := TechnologyDefaults(model.SEO{}, "React", "A JavaScript library for building user interfaces")

	assert.Equal(t, "React", got.MetaTitle)
	assert.Equal(t, "A JavaScript library for building user interfaces", got.MetaDescription)
	assert.Equal(t, []string{"React", "Learn React", "React tutorial"}, got.Keywords)
}

func TestTechnologyDefaultsKeepsProvidedValues(t *testing.T) {
	in := model.SEO{
		MetaTitle:       "Custom Title",
		MetaDescription: "Custom description",
		Keywords:        []string{"custom"},
	}
	got := TechnologyDefaults(in, "React", "ignored")

	assert.Equal(t, in, got)
}

func TestTechnologyDefaultsTruncatesDescription(t *testing.T) {
	long := strings.Repeat("d", 500)
	got := TechnologyDefaults(model.SEO{}, "Go", long)

	assert.Len(t, got.MetaDescription, MetaDescriptionLimit)
}

func TestTopicDefaults(t *testing.T) {
	got := TopicDefaults(model.SEO{}, "Hooks")

	assert.Equal(t, "Hooks Tutorials & Guides", got.MetaTitle)
	assert.Contains(t, got.MetaDescription, "Hooks")
	assert.Contains(t, got.Keywords, "Hooks tutorial")
}

func TestTutorialKeywords(t *testing.T) {
	got := TutorialKeywords([]string{"state"}, "useState Explained", "Hooks", "React")

	assert.Equal(t, []string{"state", "useState Explained", "tutorial", "guide", "Hooks", "React"}, got)
}

func TestTutorialKeywordsEmptyUserSet(t *testing.T) {
	got := TutorialKeywords(nil, "Intro", "Basics", "Go")

	assert.Equal(t, []string{"Intro", "tutorial", "guide", "Basics", "Go"}, got)
}
