package services

import (
	"context"

	"scholarportal/internal/domain/models"
)

// IjazaService manages authorization certificates
type IjazaService interface {
	ListIjazat(ctx context.Context) ([]models.Ijaza, error)
	CreateIjaza(ctx context.Context, req *CreateIjazaRequest) (*models.Ijaza, error)
	DeleteIjaza(ctx context.Context, id string) error
}

// CreateIjazaRequest represents an ijaza creation request
type CreateIjazaRequest struct {
	Title       models.BilingualText `json:"title"`
	Issuer      models.BilingualText `json:"issuer"`
	Description models.BilingualText `json:"description"`
	Year        string               `json:"year"`
	Category    models.IjazaCategory `json:"category"`
	PDFURL      string               `json:"pdf_url"`
}
