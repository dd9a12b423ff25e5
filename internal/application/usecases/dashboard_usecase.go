package usecases

import (
	"context"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/repositories"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/utils"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultDashboardDays = 30
	MaxDashboardDays     = 365
)

// DashboardUseCase define a interface para o painel consolidado
type DashboardUseCase interface {
	Overview(ctx context.Context, days int) (*entities.DashboardOverview, error)
}

type dashboardUseCase struct {
	dashboardRepo repositories.DashboardRepository
	now           func() time.Time
}

func NewDashboardUseCase(dashboardRepo repositories.DashboardRepository) DashboardUseCase {
	return &dashboardUseCase{dashboardRepo: dashboardRepo, now: time.Now}
}

// Overview executa as consultas em paralelo e monta a série diária dos últimos dias
func (uc *dashboardUseCase) Overview(ctx context.Context, days int) (*entities.DashboardOverview, error) {
	if days < 1 {
		days = DefaultDashboardDays
	}
	if days > MaxDashboardDays {
		days = MaxDashboardDays
	}

	today := utils.StartOfDay(uc.now())
	since := today.AddDate(0, 0, -(days - 1))

	var (
		overview    entities.DashboardOverview
		byStatus    map[entities.LeadStatus]int64
		leadDays    []entities.DailyCount
		followDays  []entities.DailyCount
		convertDays []entities.DailyCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.Summary.TotalLeads, err = uc.dashboardRepo.CountLeads(gctx, time.Time{})
		return
	})
	g.Go(func() (err error) {
		overview.Summary.LeadsToday, err = uc.dashboardRepo.CountLeads(gctx, today)
		return
	})
	g.Go(func() (err error) {
		overview.Summary.TotalFollowups, err = uc.dashboardRepo.CountFollowups(gctx)
		return
	})
	g.Go(func() (err error) {
		overview.Summary.TotalConversions, err = uc.dashboardRepo.CountConversions(gctx)
		return
	})
	g.Go(func() (err error) {
		overview.Summary.Revenue, err = uc.dashboardRepo.SumConversionValue(gctx)
		return
	})
	g.Go(func() (err error) {
		byStatus, err = uc.dashboardRepo.CountByStatus(gctx)
		return
	})
	g.Go(func() (err error) {
		overview.Specialties, err = uc.dashboardRepo.SpecialtyStats(gctx)
		return
	})
	g.Go(func() (err error) {
		leadDays, err = uc.dashboardRepo.LeadsPerDay(gctx, since)
		return
	})
	g.Go(func() (err error) {
		followDays, err = uc.dashboardRepo.FollowupsPerDay(gctx, since)
		return
	})
	g.Go(func() (err error) {
		convertDays, err = uc.dashboardRepo.ConversionsPerDay(gctx, since)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview.Summary.ConversionRate = entities.ConversionRate(overview.Summary.TotalConversions, overview.Summary.TotalLeads)
	if overview.Specialties == nil {
		overview.Specialties = []entities.SpecialtyStats{}
	}

	for _, status := range entities.LeadStatuses() {
		overview.Statuses = append(overview.Statuses, entities.StatusCount{
			Status: status,
			Label:  status.Label(),
			Count:  byStatus[status],
		})
	}

	overview.ChartData = buildChartData(since, today, leadDays, followDays, convertDays)
	overview.CalculateETag()
	return &overview, nil
}

// buildChartData preenche com zero os dias sem registros
func buildChartData(from, to time.Time, leads, followups, conversions []entities.DailyCount) []entities.DashboardPeriodData {
	index := func(counts []entities.DailyCount) map[string]int64 {
		m := make(map[string]int64, len(counts))
		for _, c := range counts {
			m[c.Day] = c.Count
		}
		return m
	}
	leadsByDay, followupsByDay, conversionsByDay := index(leads), index(followups), index(conversions)

	dates := utils.GenerateDateRange(from, to)
	chart := make([]entities.DashboardPeriodData, 0, len(dates))
	for _, day := range dates {
		date, _ := time.ParseInLocation("2006-01-02", day, utils.GetBrasilLocation())
		chart = append(chart, entities.DashboardPeriodData{
			Period:        day,
			DisplayPeriod: entities.FormatDisplayPeriod(date),
			Leads:         leadsByDay[day],
			Followups:     followupsByDay[day],
			Conversions:   conversionsByDay[day],
		})
	}
	return chart
}
