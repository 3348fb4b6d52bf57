package main

import (
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
)

type seedCollection struct {
	key     string
	request *services.CreateCollectionRequest
}

type seedResource struct {
	collection string // seedCollection key, or ""
	featured   bool
	request    *services.CreateResourceRequest
}

func seedCollections() []seedCollection {
	return []seedCollection{
		{
			key: "fiqh-salah",
			request: &services.CreateCollectionRequest{
				Name:        "شرح فقه الصلاة",
				Description: stringPtr("دروس صوتية في أحكام الصلاة"),
				Language:    langPtr(models.LanguageArabic),
				Category:    categoryPtr(models.CategoryPrayer),
				ContentType: contentTypePtr(models.ContentTypeAudio),
			},
		},
		{
			key: "aqidah-texts",
			request: &services.CreateCollectionRequest{
				Name:        "Foundational Creed Texts",
				Description: stringPtr("Classical texts on creed with commentary"),
				Language:    langPtr(models.LanguageEnglish),
				Category:    categoryPtr(models.CategoryAqidah),
				ContentType: contentTypePtr(models.ContentTypeBook),
			},
		},
	}
}

func seedResources() []seedResource {
	return []seedResource{
		{
			collection: "fiqh-salah",
			featured:   true,
			request: &services.CreateResourceRequest{
				Title:    "شروط الصلاة - الدرس الأول",
				Type:     models.ResourceTypeAudio,
				Language: models.LanguageArabic,
				Category: models.CategoryPrayer,
				Tags:     []string{"صلاة", "شروط"},
				URL:      "https://media.example.org/audio/salah-01.mp3",
			},
		},
		{
			collection: "fiqh-salah",
			request: &services.CreateResourceRequest{
				Title:    "أركان الصلاة - الدرس الثاني",
				Type:     models.ResourceTypeAudio,
				Language: models.LanguageArabic,
				Category: models.CategoryPrayer,
				Tags:     []string{"صلاة", "أركان"},
				URL:      "https://media.example.org/audio/salah-02.mp3",
			},
		},
		{
			collection: "aqidah-texts",
			featured:   true,
			request: &services.CreateResourceRequest{
				Title:       "The Three Fundamental Principles",
				Description: stringPtr("Annotated translation"),
				Type:        models.ResourceTypePDF,
				Language:    models.LanguageEnglish,
				Category:    models.CategoryAqidah,
				Tags:        []string{"creed", "primer"},
				URL:         "https://media.example.org/books/three-principles.pdf",
			},
		},
		{
			featured: true,
			request: &services.CreateResourceRequest{
				Title:    "Rulings on Trade Contracts",
				Type:     models.ResourceTypeVideo,
				Language: models.LanguageEnglish,
				Category: models.CategoryBusiness,
				Tags:     []string{"trade"},
				URL:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			},
		},
	}
}

func seedIjazat() []*services.CreateIjazaRequest {
	return []*services.CreateIjazaRequest{
		{
			Title:  models.BilingualText{En: "Ijaza in the Six Books", Ar: "إجازة في الكتب الستة"},
			Issuer: models.BilingualText{En: "Shaykh Abdullah", Ar: "الشيخ عبد الله"},
			Description: models.BilingualText{
				En: "Connected chain of narration for the six canonical collections",
				Ar: "سند متصل في الكتب الستة",
			},
			Year:     "1440",
			Category: "Hadith",
			PDFURL:   "https://media.example.org/ijazat/six-books.pdf",
		},
	}
}

func seedSettings() *models.SiteSettingsUpdate {
	defaults := models.DefaultSiteSettings()
	return &models.SiteSettingsUpdate{
		SiteTitleEn:  &defaults.SiteTitle.En,
		SiteTitleAr:  &defaults.SiteTitle.Ar,
		ContactEmail: stringPtr("contact@example.org"),
		FooterTextEn: &defaults.FooterText.En,
		FooterTextAr: &defaults.FooterText.Ar,
	}
}

// stringPtr returns a pointer to a string
func stringPtr(s string) *string {
	return &s
}

func langPtr(l models.Language) *models.Language { return &l }
func categoryPtr(c models.Category) *models.Category { return &c }
func contentTypePtr(c models.ContentType) *models.ContentType { return &c }
