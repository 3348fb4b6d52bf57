package handler

import (
	"net/http"

	"golang.org/x/text/language"

	"scholarportal/internal/domain/models"
)

// supportedLocales is ordered by preference; the first entry is the fallback.
var supportedLocales = []models.Language{models.LanguageEnglish, models.LanguageArabic}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

// negotiateLocale picks the response locale from ?lang=, then Accept-Language.
func negotiateLocale(r *http.Request) models.Language {
	var tags []language.Tag
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		parsed, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
		if err == nil {
			tags = parsed
		}
	}
	if len(tags) == 0 {
		return supportedLocales[0]
	}

	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return supportedLocales[0]
	}
	return supportedLocales[index]
}
