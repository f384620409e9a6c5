package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aktifyay_backend/internal/locale"
	"aktifyay_backend/internal/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Industry{}))
	return db
}

func TestDecodeSlugs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, DecodeSlugs(datatypes.JSON(`["a","b"]`)))

	// Null ve bozuk veri boş liste sayılır, asla hata değil
	assert.Empty(t, DecodeSlugs(nil))
	assert.Empty(t, DecodeSlugs(datatypes.JSON(``)))
	assert.Empty(t, DecodeSlugs(datatypes.JSON(`{bozuk json`)))
	assert.Empty(t, DecodeSlugs(datatypes.JSON(`"dizi degil"`)))
}

func TestIndustriesForManualDeclaration(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&model.Industry{
		Slug: "otomotiv", NameTr: "Otomotiv", NameEn: "Automotive", IsActive: true,
	}).Error)

	product := model.Product{
		Slug: "basma-yaylar", NameTr: "Basma Yaylar", IsActive: true,
		RelatedIndustries: EncodeSlugs([]string{"otomotiv"}),
	}
	require.NoError(t, db.Create(&product).Error)

	refs := NewResolver(db).IndustriesFor(&product, locale.TR)
	require.Len(t, refs, 1)
	assert.Equal(t, "otomotiv", refs[0].Slug)
	assert.Equal(t, "Otomotiv", refs[0].Name)

	// İngilizce istekte görünen ad da İngilizce
	refs = NewResolver(db).IndustriesFor(&product, locale.EN)
	assert.Equal(t, "Automotive", refs[0].Name)
}

func TestReverseDiscovery(t *testing.T) {
	db := setupDB(t)

	// Ürün sektörü listeliyor ama sektör ürünü listelemiyor
	product := model.Product{
		Slug: "cekme-yaylar", NameTr: "Çekme Yaylar", IsActive: true,
		RelatedIndustries: EncodeSlugs([]string{"beyaz-esya"}),
	}
	require.NoError(t, db.Create(&product).Error)

	industry := model.Industry{
		Slug: "beyaz-esya", NameTr: "Beyaz Eşya", IsActive: true,
		RelatedProducts: EncodeSlugs([]string{}),
	}
	require.NoError(t, db.Create(&industry).Error)

	// Ters yön: sektörün ürün listesi boş olsa da ürün keşfedilir
	products := NewResolver(db).ProductsFor(&industry, locale.TR)
	require.Len(t, products, 1)
	assert.Equal(t, "cekme-yaylar", products[0].Slug)

	// Manuel yön bağımsız çalışır
	industries := NewResolver(db).IndustriesFor(&product, locale.TR)
	require.Len(t, industries, 1)
	assert.Equal(t, "beyaz-esya", industries[0].Slug)
}

func TestManualOrderPreservedAndDeduplicated(t *testing.T) {
	db := setupDB(t)

	for _, s := range []struct{ slug, name string }{
		{"gida", "Gıda"}, {"otomotiv", "Otomotiv"}, {"enerji", "Enerji"},
	} {
		require.NoError(t, db.Create(&model.Industry{
			Slug: s.slug, NameTr: s.name, IsActive: true,
		}).Error)
	}

	// Manuel liste sırası korunur; otomotiv hem manuel hem ters yönde,
	// ilk görülen kazanır
	require.NoError(t, db.Model(&model.Industry{}).Where("slug = ?", "otomotiv").
		Update("related_products", EncodeSlugs([]string{"yay"})).Error)

	product := model.Product{
		Slug: "yay", NameTr: "Yay", IsActive: true,
		RelatedIndustries: EncodeSlugs([]string{"enerji", "otomotiv"}),
	}
	require.NoError(t, db.Create(&product).Error)

	refs := NewResolver(db).IndustriesFor(&product, locale.TR)
	require.Len(t, refs, 2)
	assert.Equal(t, "enerji", refs[0].Slug)
	assert.Equal(t, "otomotiv", refs[1].Slug)
}

func TestInactiveAndMissingSlugsIgnored(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&model.Industry{
		Slug: "otomotiv", NameTr: "Otomotiv", IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&model.Industry{
		Slug: "pasif", NameTr: "Pasif", IsActive: false,
	}).Error)

	product := model.Product{
		Slug: "yay", NameTr: "Yay", IsActive: true,
		RelatedIndustries: EncodeSlugs([]string{"pasif", "silinmis-sektor", "otomotiv"}),
	}
	require.NoError(t, db.Create(&product).Error)

	// Pasif ve artık var olmayan slug'lar sessizce atlanır
	refs := NewResolver(db).IndustriesFor(&product, locale.TR)
	require.Len(t, refs, 1)
	assert.Equal(t, "otomotiv", refs[0].Slug)
}

func TestMalformedRelationFieldFailsOpen(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&model.Industry{
		Slug: "otomotiv", NameTr: "Otomotiv", IsActive: true,
	}).Error)

	product := model.Product{
		Slug: "yay", NameTr: "Yay", IsActive: true,
		RelatedIndustries: datatypes.JSON(`{not valid json`),
	}
	require.NoError(t, db.Create(&product).Error)

	refs := NewResolver(db).IndustriesFor(&product, locale.TR)
	assert.Empty(t, refs)
}

func TestResolveIsPureAndIdempotent(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&model.Industry{
		Slug: "otomotiv", NameTr: "Otomotiv", IsActive: true,
		RelatedProducts: EncodeSlugs([]string{}),
	}).Error)

	product := model.Product{
		Slug: "yay", NameTr: "Yay", IsActive: true,
		RelatedIndustries: EncodeSlugs([]string{"otomotiv"}),
	}
	require.NoError(t, db.Create(&product).Error)

	resolver := NewResolver(db)
	first := resolver.IndustriesFor(&product, locale.TR)
	second := resolver.IndustriesFor(&product, locale.TR)
	assert.Equal(t, first, second)

	// Keşfedilen ters bağ hiçbir zaman geri yazılmaz
	var industry model.Industry
	require.NoError(t, db.Where("slug = ?", "otomotiv").First(&industry).Error)
	assert.Empty(t, DecodeSlugs(industry.RelatedProducts))

	var stored model.Product
	require.NoError(t, db.Where("slug = ?", "yay").First(&stored).Error)
	assert.Equal(t, []string{"otomotiv"}, DecodeSlugs(stored.RelatedIndustries))
}
