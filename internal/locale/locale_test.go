package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	loc, ok := Parse("tr")
	assert.True(t, ok)
	assert.Equal(t, TR, loc)

	loc, ok = Parse("en")
	assert.True(t, ok)
	assert.Equal(t, EN, loc)

	loc, ok = Parse("de")
	assert.False(t, ok)
	assert.Equal(t, Default, loc)

	_, ok = Parse("")
	assert.False(t, ok)
}

func TestPick(t *testing.T) {
	assert.Equal(t, "Basma Yaylar", Pick(TR, "Basma Yaylar", "Compression Springs"))
	assert.Equal(t, "Compression Springs", Pick(EN, "Basma Yaylar", "Compression Springs"))

	// Eksik çeviri boş döner, diğer dile düşmez
	assert.Equal(t, "", Pick(EN, "Sadece Türkçe", ""))
}

func TestPickMeta(t *testing.T) {
	// Dolu değer aynen döner
	assert.Equal(t, "Özel Başlık", PickMeta(TR, "Özel Başlık", "Custom Title", "Varsayılan"))

	// Boş değer varsayılana düşer, diğer dile değil
	assert.Equal(t, "Default Title", PickMeta(EN, "Özel Başlık", "", "Default Title"))
	assert.Equal(t, "Varsayılan", PickMeta(TR, "", "Custom Title", "Varsayılan"))
}

func TestSegments(t *testing.T) {
	assert.Equal(t, "urunler", Segment(SectionProducts, TR))
	assert.Equal(t, "products", Segment(SectionProducts, EN))
	assert.Equal(t, "sektorler", Segment(SectionIndustries, TR))
	assert.Equal(t, "blog", Segment(SectionBlog, EN))

	sec, ok := SectionFromSegment("urunler")
	assert.True(t, ok)
	assert.Equal(t, SectionProducts, sec)

	sec, ok = SectionFromSegment("industries")
	assert.True(t, ok)
	assert.Equal(t, SectionIndustries, sec)

	_, ok = SectionFromSegment("bilinmeyen")
	assert.False(t, ok)
}
