package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aktifyay_backend/internal/model"
	"aktifyay_backend/internal/relation"
	"aktifyay_backend/pkg/database"
)

func TestGetProductBySlug(t *testing.T) {
	app := setupTest(t)

	product := model.Product{
		Slug:      "basma-yaylar",
		NameTr:    "Basma Yaylar",
		NameEn:    "Compression Springs",
		SummaryTr: "Özet",
		SummaryEn: "Summary",
		IsActive:  true,
	}
	require.NoError(t, database.GetDB().Create(&product).Error)

	resp, err := app.Test(jsonRequest(t, "GET", "/api/tr/urunler/basma-yaylar", nil, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Basma Yaylar", body["name"])

	// Aynı slug İngilizce segmentte İngilizce içerikle döner
	resp, err = app.Test(jsonRequest(t, "GET", "/api/en/products/basma-yaylar", nil, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	decodeBody(t, resp, &body)
	assert.Equal(t, "Compression Springs", body["name"])
}

func TestInactiveProductReturnsNotFound(t *testing.T) {
	app := setupTest(t)

	product := model.Product{
		Slug: "basma-yaylar", NameTr: "Basma Yaylar", IsActive: true,
	}
	require.NoError(t, database.GetDB().Create(&product).Error)

	resp, err := app.Test(jsonRequest(t, "GET", "/api/tr/urunler/basma-yaylar", nil, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Pasife çekilen ürün aynı istekte 404 döner
	require.NoError(t, database.GetDB().Model(&product).Update("is_active", false).Error)

	resp, err = app.Test(jsonRequest(t, "GET", "/api/tr/urunler/basma-yaylar", nil, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownSlugReturnsNotFound(t *testing.T) {
	app := setupTest(t)

	resp, err := app.Test(jsonRequest(t, "GET", "/api/tr/urunler/yok-boyle-urun", nil, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIndustryDetailResolvesReverseRelations(t *testing.T) {
	app := setupTest(t)

	industry := model.Industry{
		Slug: "otomotiv", NameTr: "Otomotiv", NameEn: "Automotive", IsActive: true,
	}
	require.NoError(t, database.GetDB().Create(&industry).Error)

	// Ürün sektörü işaret ediyor, sektör ürünü etmiyor
	product := model.Product{
		Slug: "basma-yaylar", NameTr: "Basma Yaylar", IsActive: true,
		RelatedIndustries: relation.EncodeSlugs([]string{"otomotiv"}),
	}
	require.NoError(t, database.GetDB().Create(&product).Error)

	resp, err := app.Test(jsonRequest(t, "GET", "/api/tr/sektorler/otomotiv", nil, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		RelatedProducts []struct {
			Slug string `json:"slug"`
			Name string `json:"name"`
		} `json:"related_products"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.RelatedProducts, 1)
	assert.Equal(t, "basma-yaylar", body.RelatedProducts[0].Slug)
	assert.Equal(t, "Basma Yaylar", body.RelatedProducts[0].Name)
}

func TestSEOFallsBackToComputedDefault(t *testing.T) {
	app := setupTest(t)

	require.NoError(t, database.GetDB().Create(&model.Settings{
		Model:        gorm.Model{ID: model.SettingsID},
		MetaSuffixTr: " | Aktif Yay",
		MetaSuffixEn: " | Aktif Yay",
	}).Error)

	// Meta başlık sadece Türkçe dolu
	product := model.Product{
		Slug: "cekme-yaylar", NameTr: "Çekme Yaylar", NameEn: "Extension Springs",
		IsActive: true,
		SEO:      model.SEO{MetaTitleTr: "Çekme Yay İmalatı", IsIndexed: true, IsFollowed: true},
	}
	require.NoError(t, database.GetDB().Create(&product).Error)

	var body struct {
		SEO struct {
			MetaTitle string `json:"meta_title"`
		} `json:"seo"`
	}

	resp, err := app.Test(jsonRequest(t, "GET", "/api/tr/urunler/cekme-yaylar", nil, ""), -1)
	require.NoError(t, err)
	decodeBody(t, resp, &body)
	assert.Equal(t, "Çekme Yay İmalatı", body.SEO.MetaTitle)

	// İngilizce meta boş: Türkçe metne değil hesaplanmış varsayılana düşer
	resp, err = app.Test(jsonRequest(t, "GET", "/api/en/products/cekme-yaylar", nil, ""), -1)
	require.NoError(t, err)
	decodeBody(t, resp, &body)
	assert.Equal(t, "Extension Springs | Aktif Yay", body.SEO.MetaTitle)
}

func TestUnpublishedBlogPostReturnsNotFound(t *testing.T) {
	app := setupTest(t)

	post := model.BlogPost{
		Slug: "taslak-yazi", TitleTr: "Taslak", ContentTr: "içerik",
		IsPublished: false,
	}
	require.NoError(t, database.GetDB().Create(&post).Error)

	resp, err := app.Test(jsonRequest(t, "GET", "/api/tr/blog/taslak-yazi", nil, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnprefixedPathRedirectsToDefaultLocale(t *testing.T) {
	app := setupTest(t)

	resp, err := app.Test(jsonRequest(t, "GET", "/api/urunler", nil, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/api/tr/urunler", resp.Header.Get("Location"))
}
