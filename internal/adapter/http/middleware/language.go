package middleware

import (
	"tasklist/pkg/translator"

	"github.com/gin-gonic/gin"
)

const langKey = "lang"

// LanguageMiddleware resolves Accept-Language to one of the loaded catalogs
// and stores the result for GetLang.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, translator.MatchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// GetLang returns the request language, English when the middleware did not run.
func GetLang(c *gin.Context) string {
	if lang := c.GetString(langKey); lang != "" {
		return lang
	}
	return translator.LanguageEn
}
