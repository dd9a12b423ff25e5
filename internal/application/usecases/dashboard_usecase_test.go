package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
)

func TestDashboardOverview(t *testing.T) {
	repo := &fakeDashboardRepo{
		leads:       40,
		today:       3,
		followups:   25,
		conversions: 10,
		revenue:     1500,
		statuses:    map[entities.LeadStatus]int64{entities.LeadStatusAwaiting: 20, entities.LeadStatusConverted: 10},
		leadDays:    []entities.DailyCount{{Day: "2024-05-08", Count: 3}},
	}
	uc := &dashboardUseCase{
		dashboardRepo: repo,
		now:           func() time.Time { return time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC) },
	}

	overview, err := uc.Overview(context.Background(), 7)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	if overview.Summary.TotalLeads != 40 || overview.Summary.LeadsToday != 3 {
		t.Errorf("unexpected summary %+v", overview.Summary)
	}
	if overview.Summary.ConversionRate != 25 {
		t.Errorf("conversion rate = %v, want 25", overview.Summary.ConversionRate)
	}

	if len(overview.Statuses) != len(entities.LeadStatuses()) {
		t.Fatalf("every status should be listed, got %d", len(overview.Statuses))
	}
	if overview.Statuses[0].Count != 20 || overview.Statuses[1].Count != 0 {
		t.Errorf("unexpected statuses %+v", overview.Statuses)
	}

	if len(overview.ChartData) != 7 {
		t.Fatalf("expected 7 days, got %d", len(overview.ChartData))
	}
	first, last := overview.ChartData[0], overview.ChartData[6]
	if first.Period != "2024-05-04" || last.Period != "2024-05-10" || last.DisplayPeriod != "10/05" {
		t.Errorf("unexpected range %s..%s", first.Period, last.Period)
	}
	if overview.ChartData[4].Leads != 3 || overview.ChartData[3].Leads != 0 {
		t.Errorf("days without rows should be zero-filled: %+v", overview.ChartData)
	}

	if overview.Specialties == nil || overview.ETag == "" {
		t.Error("specialties should be an empty list and the ETag set")
	}
}

func TestDashboardOverview_ClampsDays(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := &dashboardUseCase{
		dashboardRepo: repo,
		now:           func() time.Time { return time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC) },
	}

	overview, err := uc.Overview(context.Background(), 0)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if len(overview.ChartData) != DefaultDashboardDays {
		t.Errorf("expected %d days, got %d", DefaultDashboardDays, len(overview.ChartData))
	}
	if overview.Summary.ConversionRate != 0 {
		t.Errorf("rate without leads should be zero")
	}

	overview, _ = uc.Overview(context.Background(), 5000)
	if len(overview.ChartData) != MaxDashboardDays {
		t.Errorf("expected %d days, got %d", MaxDashboardDays, len(overview.ChartData))
	}
}
