package usecases

import (
	"context"
	"strings"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	"github.com/google/uuid"
)

type SpecialtyUseCase interface {
	List(ctx context.Context, onlyActive bool) ([]entities.Specialty, error)
	Create(ctx context.Context, specialty *entities.Specialty) error
	Update(ctx context.Context, id uuid.UUID, specialty *entities.Specialty) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type specialtyUseCase struct {
	specialtyRepo repositories.SpecialtyRepository
}

func NewSpecialtyUseCase(specialtyRepo repositories.SpecialtyRepository) SpecialtyUseCase {
	return &specialtyUseCase{specialtyRepo}
}

func (uc *specialtyUseCase) List(ctx context.Context, onlyActive bool) ([]entities.Specialty, error) {
	return uc.specialtyRepo.List(ctx, onlyActive)
}

func (uc *specialtyUseCase) Create(ctx context.Context, specialty *entities.Specialty) error {
	if err := normalizeSpecialty(specialty); err != nil {
		return err
	}
	return uc.specialtyRepo.Create(ctx, specialty)
}

func (uc *specialtyUseCase) Update(ctx context.Context, id uuid.UUID, specialty *entities.Specialty) error {
	if err := normalizeSpecialty(specialty); err != nil {
		return err
	}

	existing, err := uc.specialtyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	specialty.ID = existing.ID
	specialty.CreatedAt = existing.CreatedAt
	return uc.specialtyRepo.Update(ctx, specialty)
}

func (uc *specialtyUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.specialtyRepo.Delete(ctx, id)
}

// normalizeSpecialty gera o slug a partir do nome quando ele não é informado
func normalizeSpecialty(specialty *entities.Specialty) error {
	specialty.Name = strings.TrimSpace(specialty.Name)
	if specialty.Name == "" {
		return invalidField("nome", "o nome do núcleo é obrigatório")
	}

	specialty.Slug = utils.Slugify(specialty.Slug)
	if specialty.Slug == "" {
		specialty.Slug = utils.Slugify(specialty.Name)
	}
	if specialty.Slug == "" {
		return invalidField("slug", "não foi possível gerar o slug a partir do nome")
	}

	if specialty.Color != nil && *specialty.Color != "" && !utils.IsValidHexColor(*specialty.Color) {
		return invalidField("cor", "cor deve estar no formato #RRGGBB")
	}
	return nil
}
