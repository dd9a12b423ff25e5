package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadFilter são os filtros da listagem de leads. From e To são inclusivos.
type LeadFilter struct {
	Search      string
	Status      entities.LeadStatus
	SpecialtyID *uuid.UUID
	From        time.Time
	To          time.Time
	Page        int
	Limit       int
}

type LeadRepository interface {
	List(ctx context.Context, filter LeadFilter) ([]entities.LeadView, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.LeadView, error)
	InterestsByLeads(ctx context.Context, leadIDs []uuid.UUID) ([]entities.Interest, error)
	AnswersByLead(ctx context.Context, leadID uuid.UUID) ([]entities.Answer, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateLead(ctx context.Context, lead *entities.Lead) error
	CreateAnswers(ctx context.Context, answers []entities.Answer) error
	CreateInterests(ctx context.Context, interests []entities.Interest) error
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db}
}

// List consulta form_leads_view. Limit <= 0 devolve todas as linhas (exportação).
func (r *leadRepository) List(ctx context.Context, filter LeadFilter) ([]entities.LeadView, int64, error) {
	var leads []entities.LeadView
	var total int64

	query := applyLeadFilter(r.db.WithContext(ctx).Model(&entities.LeadView{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	if err := query.Find(&leads).Error; err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike protege os curingas do LIKE; o Postgres usa \ como escape padrão
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func applyLeadFilter(query *gorm.DB, filter LeadFilter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + escapeLike(filter.Search) + "%"
		if digits := utils.OnlyDigits(filter.Search); digits != "" {
			query = query.Where("nome ILIKE ? OR whatsapp LIKE ?", like, "%"+digits+"%")
		} else {
			query = query.Where("nome ILIKE ?", like)
		}
	}

	// Mesma regra de entities.ClassifyLead: conversão tem precedência sobre followups
	switch filter.Status {
	case entities.LeadStatusConverted:
		query = query.Where("total_conversoes > 0")
	case entities.LeadStatusAwaiting:
		query = query.Where("total_conversoes = 0 AND total_followups = 0")
	case entities.LeadStatusOneMessage:
		query = query.Where("total_conversoes = 0 AND total_followups = 1")
	case entities.LeadStatusTwoMessages:
		query = query.Where("total_conversoes = 0 AND total_followups = 2")
	case entities.LeadStatusThreePlus:
		query = query.Where("total_conversoes = 0 AND total_followups >= 3")
	}

	if filter.SpecialtyID != nil {
		query = query.Where("id IN (?)",
			query.Session(&gorm.Session{NewDB: true}).
				Model(&entities.Interest{}).
				Select("paciente_id").
				Where("nucleo_id = ?", *filter.SpecialtyID))
	}

	if !filter.From.IsZero() {
		query = query.Where("created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("created_at <= ?", filter.To)
	}
	return query
}

func (r *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.LeadView, error) {
	var lead entities.LeadView
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&lead).Error; err != nil {
		return nil, translate(err)
	}
	return &lead, nil
}

func (r *leadRepository) InterestsByLeads(ctx context.Context, leadIDs []uuid.UUID) ([]entities.Interest, error) {
	var interests []entities.Interest
	if len(leadIDs) == 0 {
		return interests, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Specialty").
		Where("paciente_id IN ?", leadIDs).
		Order("quantidade_respostas DESC").
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

func (r *leadRepository) AnswersByLead(ctx context.Context, leadID uuid.UUID) ([]entities.Answer, error) {
	var answers []entities.Answer
	err := r.db.WithContext(ctx).
		Preload("Question").
		Preload("Option").
		Where("paciente_id = ?", leadID).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// Delete remove o lead; respostas, interesses, followups e conversões caem em cascata
func (r *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&entities.Lead{}, "id = ?", id))
}

func (r *leadRepository) CreateLead(ctx context.Context, lead *entities.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) CreateAnswers(ctx context.Context, answers []entities.Answer) error {
	return r.db.WithContext(ctx).Omit("Lead", "Question", "Option").Create(&answers).Error
}

func (r *leadRepository) CreateInterests(ctx context.Context, interests []entities.Interest) error {
	return r.db.WithContext(ctx).Omit("Lead", "Specialty").Create(&interests).Error
}
