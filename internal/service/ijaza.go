package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"scholarportal/internal/domain/models"
	"scholarportal/internal/domain/repositories"
	"scholarportal/internal/domain/services"
	"scholarportal/internal/validation"
)

type ijazaService struct {
	ijazaRepo repositories.IjazaRepository
	logger    *slog.Logger
}

// NewIjazaService creates a new ijaza service
func NewIjazaService(ijazaRepo repositories.IjazaRepository, logger *slog.Logger) services.IjazaService {
	return &ijazaService{ijazaRepo: ijazaRepo, logger: logger}
}

func (s *ijazaService) ListIjazat(ctx context.Context) ([]models.Ijaza, error) {
	return s.ijazaRepo.List(ctx)
}

func (s *ijazaService) CreateIjaza(ctx context.Context, req *services.CreateIjazaRequest) (*models.Ijaza, error) {
	req.Title = trimBilingual(req.Title)
	req.Issuer = trimBilingual(req.Issuer)
	req.Description = trimBilingual(req.Description)
	req.Year = strings.TrimSpace(req.Year)
	req.PDFURL = validation.CleanDuplicatedURL(req.PDFURL)

	if err := validation.CreateIjaza(req); err != nil {
		return nil, err
	}

	ijaza := &models.Ijaza{
		Title:       req.Title,
		Issuer:      req.Issuer,
		Description: req.Description,
		Year:        req.Year,
		Category:    req.Category,
		PDFURL:      req.PDFURL,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.ijazaRepo.Create(ctx, ijaza); err != nil {
		return nil, err
	}

	s.logger.Info("ijaza created", "id", ijaza.ID, "category", ijaza.Category)
	return ijaza, nil
}

func (s *ijazaService) DeleteIjaza(ctx context.Context, id string) error {
	if err := s.ijazaRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("ijaza deleted", "id", id)
	return nil
}

func trimBilingual(b models.BilingualText) models.BilingualText {
	return models.BilingualText{En: strings.TrimSpace(b.En), Ar: strings.TrimSpace(b.Ar)}
}
