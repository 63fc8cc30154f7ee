package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage es la etapa del pipeline de un Deal (conjunto cerrado).
type Stage string

const (
	StageNew         Stage = "New"
	StageNegotiation Stage = "Negotiation"
	StageWon         Stage = "Won"
	StageLost        Stage = "Lost"
)

// IsValid reporta si la etapa pertenece al conjunto cerrado.
func (s Stage) IsValid() bool {
	switch s {
	case StageNew, StageNegotiation, StageWon, StageLost:
		return true
	}
	return false
}

// Deal representa una oportunidad de venta asociada a un Account de la misma
// organización. WinProbability y AIInsight se calculan al crear el deal y no
// son asignables por el cliente.
type Deal struct {
	ID             int64
	OrganizationID int64
	AccountID      int64
	Title          string
	Value          decimal.Decimal // unidad monetaria agnóstica
	Stage          Stage
	WinProbability float64 // [0, 1]
	AIInsight      string
	CreatedAt      time.Time
}

// DealWithAccount es un Deal junto con el resumen de su Account (para listados).
type DealWithAccount struct {
	Deal
	Account Account
}
