package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// StageMetrics agrega cantidad y valor total de deals por etapa.
type StageMetrics struct {
	Stage entity.Stage
	Count int
	Value decimal.Decimal
}

// StatsRepository define el puerto de consultas read-only de agregación
// (dashboard y asistente).
type StatsRepository interface {
	CountAccounts(ctx context.Context, orgID int64) (int, error)
	CountContacts(ctx context.Context, orgID int64) (int, error)
	// DealMetricsByStage devuelve una fila por etapa presente.
	DealMetricsByStage(ctx context.Context, orgID int64) ([]StageMetrics, error)
}
