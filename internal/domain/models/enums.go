package models

// Language is the content language of a resource or collection.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// Languages lists every valid Language.
var Languages = []Language{LanguageArabic, LanguageEnglish}

// Category is the subject area shared by resources and collections.
type Category string

const (
	CategoryAqidah   Category = "aqidah"
	CategoryAhadith  Category = "ahadith"
	CategoryQuran    Category = "quran"
	CategoryFiqh     Category = "fiqh"
	CategoryFamily   Category = "family"
	CategoryBusiness Category = "business"
	CategoryPrayer   Category = "prayer"
)

// Categories lists every valid Category.
var Categories = []Category{
	CategoryAqidah,
	CategoryAhadith,
	CategoryQuran,
	CategoryFiqh,
	CategoryFamily,
	CategoryBusiness,
	CategoryPrayer,
}

// ResourceType is the media kind behind a resource's url.
type ResourceType string

const (
	ResourceTypePDF     ResourceType = "pdf"
	ResourceTypeAudio   ResourceType = "audio"
	ResourceTypeVideo   ResourceType = "video"
	ResourceTypeArticle ResourceType = "article"
	ResourceTypeImage   ResourceType = "image"
	ResourceTypeOther   ResourceType = "other"
)

// ResourceTypes lists every valid ResourceType.
var ResourceTypes = []ResourceType{
	ResourceTypePDF,
	ResourceTypeAudio,
	ResourceTypeVideo,
	ResourceTypeArticle,
	ResourceTypeImage,
	ResourceTypeOther,
}

// ContentType is the kind of items a collection groups.
type ContentType string

const (
	ContentTypeBook  ContentType = "book"
	ContentTypeAudio ContentType = "audio"
	ContentTypeVideo ContentType = "video"
)

// ContentTypes lists every valid ContentType.
var ContentTypes = []ContentType{ContentTypeBook, ContentTypeAudio, ContentTypeVideo}

// ContentTypeFor returns the collection content type a resource of type t
// belongs in. ok is false for types with no matching collection kind.
func ContentTypeFor(t ResourceType) (ct ContentType, ok bool) {
	switch t {
	case ResourceTypePDF, ResourceTypeArticle:
		return ContentTypeBook, true
	case ResourceTypeAudio:
		return ContentTypeAudio, true
	case ResourceTypeVideo:
		return ContentTypeVideo, true
	default:
		return "", false
	}
}

// QuestionCategory overlaps with Category but is its own domain.
type QuestionCategory string

const (
	QuestionCategoryAqidah        QuestionCategory = "aqidah"
	QuestionCategoryAhadith       QuestionCategory = "ahadith"
	QuestionCategoryFiqh          QuestionCategory = "fiqh"
	QuestionCategoryFamily        QuestionCategory = "family"
	QuestionCategoryBusiness      QuestionCategory = "business"
	QuestionCategoryPrayer        QuestionCategory = "prayer"
	QuestionCategoryMiscellaneous QuestionCategory = "miscellaneous"
)

// QuestionCategories lists every valid QuestionCategory.
var QuestionCategories = []QuestionCategory{
	QuestionCategoryAqidah,
	QuestionCategoryAhadith,
	QuestionCategoryFiqh,
	QuestionCategoryFamily,
	QuestionCategoryBusiness,
	QuestionCategoryPrayer,
	QuestionCategoryMiscellaneous,
}

// QuestionStatus is the review state of a submitted question.
type QuestionStatus string

const (
	QuestionStatusPending  QuestionStatus = "pending"
	QuestionStatusAnswered QuestionStatus = "answered"
	QuestionStatusRejected QuestionStatus = "rejected"
)

// QuestionStatuses lists every valid QuestionStatus.
var QuestionStatuses = []QuestionStatus{
	QuestionStatusPending,
	QuestionStatusAnswered,
	QuestionStatusRejected,
}

// IjazaCategory classifies an authorization certificate.
type IjazaCategory string

// IjazaCategories lists every valid IjazaCategory.
var IjazaCategories = []IjazaCategory{"Hadith", "Fiqh", "Aqeedah", "Quran", "Usool", "Other"}

// Contains reports whether v is one of values.
func Contains[T ~string](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
