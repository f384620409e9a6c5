package locale

// Section site bölümleri, URL segmentleri dile göre değişir
type Section string

const (
	SectionProducts   Section = "products"
	SectionIndustries Section = "industries"
	SectionBlog       Section = "blog"
	SectionReferences Section = "references"
	SectionCatalogs   Section = "catalogs"
	SectionContact    Section = "contact"
)

var segments = map[Section]map[Locale]string{
	SectionProducts:   {TR: "urunler", EN: "products"},
	SectionIndustries: {TR: "sektorler", EN: "industries"},
	SectionBlog:       {TR: "blog", EN: "blog"},
	SectionReferences: {TR: "referanslar", EN: "references"},
	SectionCatalogs:   {TR: "kataloglar", EN: "catalogs"},
	SectionContact:    {TR: "iletisim", EN: "contact"},
}

// Segment bölümün dile özel URL parçasını döner
func Segment(sec Section, loc Locale) string {
	if m, ok := segments[sec]; ok {
		return m[loc]
	}
	return string(sec)
}

// SectionFromSegment gelen URL parçasını bölüme çözer.
// Hem TR hem EN segmentleri her iki dilde de kabul edilir.
func SectionFromSegment(segment string) (Section, bool) {
	for sec, m := range segments {
		for _, s := range m {
			if s == segment {
				return sec, true
			}
		}
	}
	return "", false
}
