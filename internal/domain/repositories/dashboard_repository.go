package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"gorm.io/gorm"
)

// dashboardTimezone agrupa os dias no fuso da clínica
const dashboardTimezone = "America/Sao_Paulo"

type DashboardRepository interface {
	CountLeads(ctx context.Context, since time.Time) (int64, error)
	CountFollowups(ctx context.Context) (int64, error)
	CountConversions(ctx context.Context) (int64, error)
	SumConversionValue(ctx context.Context) (float64, error)
	CountByStatus(ctx context.Context) (map[entities.LeadStatus]int64, error)
	SpecialtyStats(ctx context.Context) ([]entities.SpecialtyStats, error)
	LeadsPerDay(ctx context.Context, since time.Time) ([]entities.DailyCount, error)
	FollowupsPerDay(ctx context.Context, since time.Time) ([]entities.DailyCount, error)
	ConversionsPerDay(ctx context.Context, since time.Time) ([]entities.DailyCount, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

// CountLeads conta leads criados a partir de since (zero conta todos)
func (r *dashboardRepository) CountLeads(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Lead{})
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountFollowups(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Followup{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountConversions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Conversion{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) SumConversionValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entities.Conversion{}).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}

// CountByStatus agrupa os contadores da view e classifica cada grupo com ClassifyLead
func (r *dashboardRepository) CountByStatus(ctx context.Context) (map[entities.LeadStatus]int64, error) {
	var rows []struct {
		Followups   int64 `gorm:"column:total_followups"`
		Conversions int64 `gorm:"column:total_conversoes"`
		Count       int64 `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).Model(&entities.LeadView{}).
		Select("total_followups, LEAST(total_conversoes, 1) AS total_conversoes, COUNT(*) AS count").
		Group("total_followups, LEAST(total_conversoes, 1)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.LeadStatus]int64, len(entities.LeadStatuses()))
	for _, status := range entities.LeadStatuses() {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[entities.ClassifyLead(row.Followups, row.Conversions)] += row.Count
	}
	return counts, nil
}

func (r *dashboardRepository) SpecialtyStats(ctx context.Context) ([]entities.SpecialtyStats, error) {
	var stats []entities.SpecialtyStats
	if err := r.db.WithContext(ctx).Order("total_interessados DESC, nucleo_nome ASC").Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *dashboardRepository) LeadsPerDay(ctx context.Context, since time.Time) ([]entities.DailyCount, error) {
	return r.perDay(ctx, entities.Lead{}.TableName(), "created_at", since)
}

func (r *dashboardRepository) FollowupsPerDay(ctx context.Context, since time.Time) ([]entities.DailyCount, error) {
	return r.perDay(ctx, entities.Followup{}.TableName(), "data_envio", since)
}

func (r *dashboardRepository) ConversionsPerDay(ctx context.Context, since time.Time) ([]entities.DailyCount, error) {
	return r.perDay(ctx, entities.Conversion{}.TableName(), "data_conversao", since)
}

func (r *dashboardRepository) perDay(ctx context.Context, table, column string, since time.Time) ([]entities.DailyCount, error) {
	var counts []entities.DailyCount
	day := fmt.Sprintf("TO_CHAR((%s AT TIME ZONE '%s')::date, 'YYYY-MM-DD')", column, dashboardTimezone)

	err := r.db.WithContext(ctx).Table(table).
		Select(day+" AS day, COUNT(*) AS count").
		Where(column+" >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
