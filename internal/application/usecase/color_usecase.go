package usecase

import (
	"context"

	"github.com/ilogush/backoffice-api/internal/application/dto"
	"github.com/ilogush/backoffice-api/internal/domain/repository"
)

// ColorUseCase lectura de la referencia de colores.
type ColorUseCase struct {
	repo repository.ColorRepository
}

// NewColorUseCase construye el caso de uso.
func NewColorUseCase(repo repository.ColorRepository) *ColorUseCase {
	return &ColorUseCase{repo: repo}
}

// List devuelve todos los colores (full scan, tabla pequeña).
func (uc *ColorUseCase) List(ctx context.Context) ([]dto.ColorResponse, error) {
	colors, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ColorResponse, 0, len(colors))
	for _, c := range colors {
		out = append(out, dto.ColorResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}
