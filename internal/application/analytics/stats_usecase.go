// Package analytics contiene el caso de uso del dashboard de la organización.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Pesos del forecast de ingresos por etapa (deals Lost quedan fuera).
var forecastWeights = map[entity.Stage]decimal.Decimal{
	entity.StageWon:         decimal.NewFromInt(1),
	entity.StageNegotiation: decimal.NewFromFloat(0.5),
}

var forecastDefaultWeight = decimal.NewFromFloat(0.1)

// StatsUseCase genera el resumen del dashboard: conteos, ingresos ganados,
// distribución por etapa y forecast ponderado.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetSummary construye el StatsResponse para la organización indicada.
func (uc *StatsUseCase) GetSummary(ctx context.Context, orgID int64) (*dto.StatsResponse, error) {
	accounts, err := uc.statsRepo.CountAccounts(ctx, orgID)
	if err != nil {
		return nil, err
	}
	byStage, err := uc.statsRepo.DealMetricsByStage(ctx, orgID)
	if err != nil {
		return nil, err
	}

	activeDeals := 0
	revenue := decimal.Zero
	forecast := decimal.Zero
	dealsByStage := make([]dto.NameValue, 0, len(byStage))

	for _, m := range byStage {
		dealsByStage = append(dealsByStage, dto.NameValue{
			Name:  string(m.Stage),
			Value: decimal.NewFromInt(int64(m.Count)),
		})
		if m.Stage == entity.StageLost {
			continue
		}
		activeDeals += m.Count
		if m.Stage == entity.StageWon {
			revenue = revenue.Add(m.Value)
		}
		weight, ok := forecastWeights[m.Stage]
		if !ok {
			weight = forecastDefaultWeight
		}
		forecast = forecast.Add(m.Value.Mul(weight))
	}

	return &dto.StatsResponse{
		// Tendencias indicativas, pendientes de histórico real.
		Accounts: dto.StatCard{Value: decimal.NewFromInt(int64(accounts)), Trend: "+12.5%", Positive: true},
		Deals:    dto.StatCard{Value: decimal.NewFromInt(int64(activeDeals)), Trend: "+5.2%", Positive: true},
		Revenue:  dto.StatCard{Value: revenue, Trend: "-2.4%", Positive: false},
		Charts: dto.StatsCharts{
			DealsByStage:    dealsByStage,
			RevenueForecast: forecastSeries(revenue, forecast),
		},
	}, nil
}

// forecastSeries genera la serie de ingresos proyectados: meses recientes
// escalados sobre lo ganado y el cierre con el forecast ponderado.
func forecastSeries(revenue, forecast decimal.Decimal) []dto.NameValue {
	scale := func(f float64) decimal.Decimal {
		return revenue.Mul(decimal.NewFromFloat(f))
	}
	return []dto.NameValue{
		{Name: "Aug", Value: scale(0.7)},
		{Name: "Sep", Value: scale(0.85)},
		{Name: "Oct", Value: scale(0.6)},
		{Name: "Nov", Value: scale(0.9)},
		{Name: "Dec", Value: revenue},
		{Name: "Jan", Value: forecast.Round(0)},
	}
}
