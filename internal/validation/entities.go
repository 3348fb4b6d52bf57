package validation

import (
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"scholarportal/internal/config"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/services"
)

var errEmptyUpdate = errors.New("at least one field must be provided")

// CreateResource checks a resource creation payload.
func CreateResource(req *services.CreateResourceRequest) error {
	return toDomainError(ozzo.ValidateStruct(req,
		ozzo.Field(&req.Title, ozzo.Required, notBlank, ozzo.RuneLength(1, config.MaxTitleLength)),
		ozzo.Field(&req.Description, ozzo.RuneLength(0, config.MaxDescriptionLength)),
		ozzo.Field(&req.Type, ozzo.Required, oneOf(models.ResourceTypes)),
		ozzo.Field(&req.Language, ozzo.Required, oneOf(models.Languages)),
		ozzo.Field(&req.Category, ozzo.Required, oneOf(models.Categories)),
		ozzo.Field(&req.URL, ozzo.Required, notBlank, httpURL),
		ozzo.Field(&req.CoverImageURL, httpURL),
		ozzo.Field(&req.CollectionID, uuidOrBlank),
	))
}

// UpdateResource checks a partial resource update. Only present fields are
// validated; an update with no fields is rejected.
func UpdateResource(req *services.UpdateResourceRequest) error {
	if req.IsEmpty() {
		return toDomainError(ozzo.Errors{"body": errEmptyUpdate})
	}
	return toDomainError(ozzo.Errors{
		"title":           ozzo.Validate(req.Title, notBlank, ozzo.RuneLength(1, config.MaxTitleLength)),
		"description":     ozzo.Validate(optionalValue(req.Description), ozzo.RuneLength(0, config.MaxDescriptionLength)),
		"type":            ozzo.Validate(req.Type, notBlank, oneOf(models.ResourceTypes)),
		"language":        ozzo.Validate(req.Language, notBlank, oneOf(models.Languages)),
		"category":        ozzo.Validate(req.Category, notBlank, oneOf(models.Categories)),
		"url":             ozzo.Validate(req.URL, notBlank, httpURL),
		"cover_image_url": ozzo.Validate(optionalValue(req.CoverImageURL), httpURL),
		"collection_id":   ozzo.Validate(optionalValue(req.CollectionID), uuidOrBlank),
	}.Filter())
}

// CreateCollection checks a collection creation payload. The content type
// is required here even though a form may hold it empty while editing.
func CreateCollection(req *services.CreateCollectionRequest) error {
	return toDomainError(ozzo.ValidateStruct(req,
		ozzo.Field(&req.Name, ozzo.Required, notBlank, ozzo.RuneLength(1, config.MaxCollectionNameLength)),
		ozzo.Field(&req.Description, ozzo.RuneLength(0, config.MaxDescriptionLength)),
		ozzo.Field(&req.CoverImageURL, httpURL),
		ozzo.Field(&req.Language, oneOf(models.Languages)),
		ozzo.Field(&req.Category, oneOf(models.Categories)),
		ozzo.Field(&req.ContentType, ozzo.Required, oneOf(models.ContentTypes)),
	))
}

// UpdateCollection checks a partial collection update.
func UpdateCollection(req *services.UpdateCollectionRequest) error {
	if req.IsEmpty() {
		return toDomainError(ozzo.Errors{"body": errEmptyUpdate})
	}
	var contentTypeErr error
	if req.ContentType.Cleared() {
		contentTypeErr = errors.New("cannot be cleared")
	} else {
		contentTypeErr = ozzo.Validate(optionalEnum[models.ContentType](req.ContentType), oneOf(models.ContentTypes))
	}
	return toDomainError(ozzo.Errors{
		"name":                    ozzo.Validate(req.Name, notBlank, ozzo.RuneLength(1, config.MaxCollectionNameLength)),
		"description":             ozzo.Validate(optionalValue(req.Description), ozzo.RuneLength(0, config.MaxDescriptionLength)),
		"cover_image_url":         ozzo.Validate(optionalValue(req.CoverImageURL), httpURL),
		"language":                ozzo.Validate(optionalEnum[models.Language](req.Language), oneOf(models.Languages)),
		"category":                ozzo.Validate(optionalEnum[models.Category](req.Category), oneOf(models.Categories)),
		"collection_content_type": contentTypeErr,
	}.Filter())
}

// SubmitQuestion checks a public question. The text must be at least ten
// characters and contain no Latin letters.
func SubmitQuestion(req *services.SubmitQuestionRequest) error {
	return toDomainError(ozzo.ValidateStruct(req,
		ozzo.Field(&req.Email, ozzo.Required, is.EmailFormat),
		ozzo.Field(&req.Category, ozzo.Required, oneOf(models.QuestionCategories)),
		ozzo.Field(&req.QuestionText,
			ozzo.Required,
			ozzo.RuneLength(config.MinQuestionLength, config.MaxQuestionLength),
			noLatinLetters,
		),
	))
}

// AnswerQuestion checks the admin answer payload.
func AnswerQuestion(req *services.AnswerQuestionRequest) error {
	return toDomainError(ozzo.ValidateStruct(req,
		ozzo.Field(&req.YoutubeLink, ozzo.Required, httpURL),
		ozzo.Field(&req.QuestionEmail, ozzo.Required, is.EmailFormat),
	))
}

// RejectQuestion checks the admin rejection payload.
func RejectQuestion(req *services.RejectQuestionRequest) error {
	return toDomainError(ozzo.ValidateStruct(req,
		ozzo.Field(&req.RejectionReason, ozzo.RuneLength(0, config.MaxRejectionReasonLength)),
		ozzo.Field(&req.QuestionEmail, ozzo.Required, is.EmailFormat),
	))
}

// CreateIjaza checks an ijaza record.
func CreateIjaza(req *services.CreateIjazaRequest) error {
	return toDomainError(ozzo.ValidateStruct(req,
		ozzo.Field(&req.Title, bilingualRequired),
		ozzo.Field(&req.Issuer, bilingualRequired),
		ozzo.Field(&req.Year, ozzo.Required, notBlank),
		ozzo.Field(&req.Category, ozzo.Required, oneOf(models.IjazaCategories)),
		ozzo.Field(&req.PDFURL, ozzo.Required, httpURL),
	))
}

// SiteSettings checks a merged settings record before it is saved.
func SiteSettings(s *models.SiteSettings) error {
	return toDomainError(ozzo.ValidateStruct(s,
		ozzo.Field(&s.SiteTitle, bilingualRequired),
		ozzo.Field(&s.ContactEmail, is.EmailFormat),
		ozzo.Field(&s.FeaturedResourceIDs, ozzo.Length(models.FeaturedSlots, models.FeaturedSlots), ozzo.Each(uuidOrBlank)),
	))
}
