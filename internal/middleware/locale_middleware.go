package middleware

import (
	"github.com/gofiber/fiber/v2"

	"aktifyay_backend/internal/locale"
)

// LocaleMiddleware :locale segmentini çözer ve context'e koyar.
// Dil öneki olmayan istekler varsayılan dile (tr) yönlendirilir.
func LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		loc, ok := locale.Parse(c.Params("locale"))
		if !ok {
			// /api/urunler gibi öneksiz bir path yakalandıysa tr'ye yönlendir
			return c.Redirect("/api/"+string(locale.Default)+c.Path()[len("/api"):], fiber.StatusMovedPermanently)
		}

		c.Locals("locale", loc)
		return c.Next()
	}
}

// CurrentLocale context'teki dili döner, yoksa varsayılan
func CurrentLocale(c *fiber.Ctx) locale.Locale {
	if loc, ok := c.Locals("locale").(locale.Locale); ok {
		return loc
	}
	return locale.Default
}
