package translator

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// Translator holds every loaded message catalog. It is nil until InitTranslator runs.
var Translator *i18n.Bundle

var matcher = language.NewMatcher([]language.Tag{language.English, language.French})

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

// InitTranslator loads <lang>.toml from cfg.TranslationFolder for every
// supported language. Missing or unreadable files are logged and skipped.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	tags := []language.Tag{language.English}
	for _, entry := range entries {
		name := entry.Name()
		lang := strings.TrimSuffix(name, ".toml")
		if entry.IsDir() || lang == name || !slices.Contains(cfg.SupportedLanguages, lang) {
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, name)); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", name), zap.Error(err))
			continue
		}
		if lang != LanguageEn {
			tags = append(tags, language.Make(lang))
		}
	}
	matcher = language.NewMatcher(tags)
}

// MatchLanguage picks the best loaded language for an Accept-Language header
// value and returns its base code. It falls back to English.
func MatchLanguage(acceptLanguage string) string {
	if acceptLanguage == "" {
		return LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}
	tag, _, _ := matcher.Match(tags...)
	base, _ := tag.Base()
	return base.String()
}

// Localize translates messageID into lang, falling back to English.
func Localize(lang, messageID string) (string, error) {
	if Translator == nil {
		return messageID, nil
	}
	localizer := i18n.NewLocalizer(Translator, lang, LanguageEn)
	return localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
}
