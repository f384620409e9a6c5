package locale

// Locale sitenin desteklediği diller
type Locale string

const (
	TR Locale = "tr"
	EN Locale = "en"

	Default = TR
)

// Parse locale segmentini doğrular, bilinmeyen değerler için ok=false döner
func Parse(s string) (Locale, bool) {
	switch Locale(s) {
	case TR:
		return TR, true
	case EN:
		return EN, true
	}
	return Default, false
}

// Pick aktif dile göre Tr/En alan çiftinden birini seçer.
// Boş değerde diğer dile DÜŞMEZ; eksik çeviri boş string olarak döner.
func Pick(loc Locale, tr, en string) string {
	if loc == TR {
		return tr
	}
	return en
}

// PickMeta SEO alanları için: dil değeri boşsa hesaplanmış varsayılana düşer,
// asla diğer dilin metnine değil.
func PickMeta(loc Locale, tr, en, fallback string) string {
	v := Pick(loc, tr, en)
	if v == "" {
		return fallback
	}
	return v
}
