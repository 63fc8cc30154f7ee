package dto

import "github.com/shopspring/decimal"

// StatCard métrica simple del dashboard con tendencia indicativa.
type StatCard struct {
	Value    decimal.Decimal `json:"value"`
	Trend    string          `json:"trend"`
	Positive bool            `json:"positive"`
}

// NameValue punto nombre/valor para los gráficos del dashboard.
type NameValue struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// StatsCharts series para los gráficos del dashboard.
type StatsCharts struct {
	DealsByStage    []NameValue `json:"deals_by_stage"`
	RevenueForecast []NameValue `json:"revenue_forecast"`
}

// StatsResponse resumen del dashboard de la organización.
type StatsResponse struct {
	Accounts StatCard    `json:"accounts"`
	Deals    StatCard    `json:"deals"`
	Revenue  StatCard    `json:"revenue"`
	Charts   StatsCharts `json:"charts"`
}
