// Package scoring calcula la probabilidad de cierre de un Deal.
//
// Función pura y determinista: sin I/O, sin aleatoriedad. Misma entrada,
// mismo resultado, siempre.
package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Mensajes de insight generados por el motor.
const (
	InsightClosed    = "Deal closed successfully!"
	InsightLost      = "Lost to competitor."
	InsightHighProb  = "High probability! Focus on closing."
	InsightHighValue = "High average value. Requires executive attention."
	InsightStandard  = "Standard deal progress."
)

// Umbrales de valor para los bonos de probabilidad.
var (
	midValue  = decimal.NewFromInt(10_000)
	highValue = decimal.NewFromInt(50_000)
)

// Score devuelve la probabilidad de cierre en [0, 1] y el texto de insight
// para un deal según su valor y etapa.
//
// Reglas:
//   - Won  → (1.0, InsightClosed) sin importar el valor.
//   - Lost → (0.0, InsightLost) sin importar el valor.
//   - Base 0.5; +0.1 si valor > 10.000; +0.1 adicional si valor > 50.000;
//     +0.2 si la etapa es Negotiation. Tope 0.99.
func Score(value decimal.Decimal, stage entity.Stage) (float64, string) {
	if stage == entity.StageWon {
		return 1.0, InsightClosed
	}
	if stage == entity.StageLost {
		return 0.0, InsightLost
	}

	prob := 0.5
	if value.GreaterThan(midValue) {
		prob += 0.1
	}
	if value.GreaterThan(highValue) {
		prob += 0.1
	}
	if stage == entity.StageNegotiation {
		prob += 0.2
	}
	if prob > 0.99 {
		prob = 0.99
	}
	return prob, insightFor(prob, value)
}

func insightFor(prob float64, value decimal.Decimal) string {
	if prob > 0.8 {
		return InsightHighProb
	}
	if value.GreaterThan(highValue) {
		return InsightHighValue
	}
	return InsightStandard
}
