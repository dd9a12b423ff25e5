package entities

import (
	"crypto/md5"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// DashboardOverview representa a resposta consolidada do dashboard
type DashboardOverview struct {
	Summary     DashboardSummary      `json:"summary"`
	Statuses    []StatusCount         `json:"statuses"`
	Specialties []SpecialtyStats      `json:"nucleos"`
	ChartData   []DashboardPeriodData `json:"chartData"`
	ETag        string                `json:"-"` // Campo interno para geração de ETag
}

// DashboardSummary contém os totais gerais
type DashboardSummary struct {
	TotalLeads       int64   `json:"totalLeads"`
	LeadsToday       int64   `json:"leadsHoje"`
	TotalFollowups   int64   `json:"totalFollowups"`
	TotalConversions int64   `json:"totalConversoes"`
	ConversionRate   float64 `json:"taxaConversaoGeral"`
	Revenue          float64 `json:"valorConvertido"`
}

// StatusCount é a quantidade de leads em um estágio do funil
type StatusCount struct {
	Status LeadStatus `json:"status"`
	Label  string     `json:"label"`
	Count  int64      `json:"count"`
}

// SpecialtyStats é a linha da view form_dashboard_view
type SpecialtyStats struct {
	SpecialtyID      uuid.UUID `json:"nucleo_id" gorm:"column:nucleo_id"`
	SpecialtyName    string    `json:"nucleo_nome" gorm:"column:nucleo_nome"`
	SpecialtySlug    string    `json:"nucleo_slug" gorm:"column:nucleo_slug"`
	Color            *string   `json:"nucleo_cor" gorm:"column:nucleo_cor"`
	TotalInterested  int64     `json:"total_interessados" gorm:"column:total_interessados"`
	TotalFollowups   int64     `json:"total_followups" gorm:"column:total_followups"`
	TotalConversions int64     `json:"total_conversoes" gorm:"column:total_conversoes"`
	Revenue          float64   `json:"valor_convertido" gorm:"column:valor_convertido"`
	ConversionRate   float64   `json:"taxa_conversao" gorm:"column:taxa_conversao"`
}

func (SpecialtyStats) TableName() string {
	return "form_dashboard_view"
}

// DashboardPeriodData contém dados de um único dia para o gráfico
type DashboardPeriodData struct {
	Period        string `json:"period"`
	DisplayPeriod string `json:"displayPeriod"`
	Leads         int64  `json:"leads"`
	Followups     int64  `json:"followups"`
	Conversions   int64  `json:"conversions"`
}

// DailyCount é a contagem agrupada por dia (YYYY-MM-DD)
type DailyCount struct {
	Day   string `gorm:"column:day"`
	Count int64  `gorm:"column:count"`
}

// ConversionRate calcula a taxa percentual, zero quando não há leads
func ConversionRate(conversions, leads int64) float64 {
	if leads <= 0 {
		return 0
	}
	return float64(conversions) / float64(leads) * 100
}

// CalculateETag gera um hash único para identificar a versão dos dados
func (d *DashboardOverview) CalculateETag() string {
	data, _ := sonic.Marshal(d)
	hash := md5.Sum(data)
	d.ETag = fmt.Sprintf("%x", hash)
	return d.ETag
}

// FormatDisplayPeriod formata uma data para exibição no gráfico
func FormatDisplayPeriod(date time.Time) string {
	return date.Format("02/01")
}
