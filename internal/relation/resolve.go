package relation

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aktifyay_backend/internal/locale"
	"aktifyay_backend/internal/model"
)

// Ref çözümlenmiş ilişki: slug + aktif dildeki görünen ad
type Ref struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// DecodeSlugs JSON dizisini çözer. Null veya bozuk veri boş liste sayılır,
// tek bir bozuk ilişki alanı sayfayı düşürmemeli.
func DecodeSlugs(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

// EncodeSlugs ilişki listesini saklama formatına çevirir
func EncodeSlugs(slugs []string) datatypes.JSON {
	if slugs == nil {
		slugs = []string{}
	}
	b, _ := json.Marshal(slugs)
	return datatypes.JSON(b)
}

// Resolver ürün-sektör ilişkilerini okuma anında çözer.
// Salt okumadır: keşfedilen ters yönlü bağları hiçbir zaman geri yazmaz,
// tek taraflı ilişkiler geçerlidir.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// IndustriesFor ürünün sektörlerini döner: ürünün kendi listesi (manuel,
// liste sırası korunur) ++ ürünü kendi listesinde anan sektörler (ters yön),
// slug'a göre tekilleştirilmiş, ilk görülen kazanır.
func (r *Resolver) IndustriesFor(p *model.Product, loc locale.Locale) []Ref {
	var industries []model.Industry
	if err := r.db.Where("is_active = ?", true).Order("\"order\" asc, id asc").Find(&industries).Error; err != nil {
		return []Ref{}
	}

	bySlug := make(map[string]model.Industry, len(industries))
	for _, ind := range industries {
		bySlug[ind.Slug] = ind
	}

	refs := make([]Ref, 0)
	seen := make(map[string]bool)

	for _, s := range DecodeSlugs(p.RelatedIndustries) {
		ind, ok := bySlug[s]
		if !ok || seen[s] {
			continue // artık var olmayan slug sessizce atlanır
		}
		seen[s] = true
		refs = append(refs, Ref{Slug: ind.Slug, Name: ind.Name(loc)})
	}

	for _, ind := range industries {
		if seen[ind.Slug] {
			continue
		}
		if containsSlug(DecodeSlugs(ind.RelatedProducts), p.Slug) {
			seen[ind.Slug] = true
			refs = append(refs, Ref{Slug: ind.Slug, Name: ind.Name(loc)})
		}
	}

	return refs
}

// ProductsFor sektörün ürünlerini döner, IndustriesFor ile simetrik
func (r *Resolver) ProductsFor(ind *model.Industry, loc locale.Locale) []Ref {
	var products []model.Product
	if err := r.db.Where("is_active = ?", true).Order("\"order\" asc, id asc").Find(&products).Error; err != nil {
		return []Ref{}
	}

	bySlug := make(map[string]model.Product, len(products))
	for _, p := range products {
		bySlug[p.Slug] = p
	}

	refs := make([]Ref, 0)
	seen := make(map[string]bool)

	for _, s := range DecodeSlugs(ind.RelatedProducts) {
		p, ok := bySlug[s]
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		refs = append(refs, Ref{Slug: p.Slug, Name: p.Name(loc)})
	}

	for _, p := range products {
		if seen[p.Slug] {
			continue
		}
		if containsSlug(DecodeSlugs(p.RelatedIndustries), ind.Slug) {
			seen[p.Slug] = true
			refs = append(refs, Ref{Slug: p.Slug, Name: p.Name(loc)})
		}
	}

	return refs
}

func containsSlug(slugs []string, s string) bool {
	for _, v := range slugs {
		if v == s {
			return true
		}
	}
	return false
}
