package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateReadingTime(t *testing.T) {
	// Tam 400 kelime 2 dakika eder
	words := make([]string, 400)
	for i := range words {
		words[i] = "kelime"
	}
	assert.Equal(t, 2, CalculateReadingTime(strings.Join(words, " ")))

	// Boş içerik en az 1 dakika
	assert.Equal(t, 1, CalculateReadingTime(""))

	// 200 kelime ve altı 1 dakika
	assert.Equal(t, 1, CalculateReadingTime(strings.Join(words[:200], " ")))

	// 201 kelime yukarı yuvarlanır
	assert.Equal(t, 2, CalculateReadingTime(strings.Join(words[:201], " ")))
}

func TestCalculateReadingTimeStripsTags(t *testing.T) {
	// Etiketler kelime sayılmaz
	html := "<p>bir iki üç</p><div class=\"x\">dört beş</div>"
	assert.Equal(t, 1, CalculateReadingTime(html))

	// Etiketsiz eşdeğeriyle aynı sonuç
	assert.Equal(t, CalculateReadingTime("bir iki üç dört beş"), CalculateReadingTime(html))
}

func TestSEORobots(t *testing.T) {
	seo := SEO{IsIndexed: true, IsFollowed: true}
	assert.Equal(t, "index, follow", seo.Robots())

	seo = SEO{IsIndexed: false, IsFollowed: true}
	assert.Equal(t, "noindex, follow", seo.Robots())

	seo = SEO{IsIndexed: false, IsFollowed: false}
	assert.Equal(t, "noindex, nofollow", seo.Robots())
}
