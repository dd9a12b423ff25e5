package usecases

import (
	"context"
	"strings"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Showcase é a vitrine exibida no totem após o cadastro
type Showcase struct {
	Specialties   []entities.Specialty    `json:"nucleos"`
	Professionals []entities.Professional `json:"profissionais"`
}

type ProfessionalUseCase interface {
	List(ctx context.Context, onlyActive bool, specialtyID *uuid.UUID) ([]entities.Professional, error)
	Showcase(ctx context.Context) (*Showcase, error)
	Create(ctx context.Context, professional *entities.Professional, procedures []entities.Procedure) error
	Update(ctx context.Context, id uuid.UUID, professional *entities.Professional, procedures []entities.Procedure) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*entities.Professional, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type professionalUseCase struct {
	professionalRepo repositories.ProfessionalRepository
	specialtyRepo    repositories.SpecialtyRepository
}

func NewProfessionalUseCase(professionalRepo repositories.ProfessionalRepository, specialtyRepo repositories.SpecialtyRepository) ProfessionalUseCase {
	return &professionalUseCase{professionalRepo, specialtyRepo}
}

func (uc *professionalUseCase) List(ctx context.Context, onlyActive bool, specialtyID *uuid.UUID) ([]entities.Professional, error) {
	return uc.professionalRepo.List(ctx, onlyActive, specialtyID)
}

func (uc *professionalUseCase) Showcase(ctx context.Context) (*Showcase, error) {
	var showcase Showcase

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		specialties, err := uc.specialtyRepo.List(gctx, true)
		showcase.Specialties = specialties
		return err
	})
	g.Go(func() error {
		professionals, err := uc.professionalRepo.List(gctx, true, nil)
		showcase.Professionals = professionals
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &showcase, nil
}

func (uc *professionalUseCase) Create(ctx context.Context, professional *entities.Professional, procedures []entities.Procedure) error {
	if err := prepareProfessional(professional, procedures); err != nil {
		return err
	}
	return uc.professionalRepo.Create(ctx, professional)
}

func (uc *professionalUseCase) Update(ctx context.Context, id uuid.UUID, professional *entities.Professional, procedures []entities.Procedure) error {
	if err := prepareProfessional(professional, procedures); err != nil {
		return err
	}

	existing, err := uc.professionalRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	professional.ID = existing.ID
	professional.CreatedAt = existing.CreatedAt
	return uc.professionalRepo.Update(ctx, professional)
}

func (uc *professionalUseCase) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entities.Professional, error) {
	if err := uc.professionalRepo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return uc.professionalRepo.FindByID(ctx, id)
}

func (uc *professionalUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.professionalRepo.Delete(ctx, id)
}

func prepareProfessional(professional *entities.Professional, procedures []entities.Procedure) error {
	professional.Name = strings.TrimSpace(professional.Name)
	if professional.Name == "" {
		return invalidField("nome", "o nome do profissional é obrigatório")
	}
	for i := range procedures {
		procedures[i].Name = strings.TrimSpace(procedures[i].Name)
	}
	return professional.SetProcedures(procedures)
}
