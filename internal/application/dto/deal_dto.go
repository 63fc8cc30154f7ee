package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDealRequest entrada para crear un deal. Stage es opcional (por defecto
// "New"); WinProbability y AIInsight nunca se aceptan del cliente.
type CreateDealRequest struct {
	Title     string          `json:"title" validate:"required,min=1,max=200"`
	Value     decimal.Decimal `json:"value"`
	Stage     string          `json:"stage"`
	AccountID int64           `json:"account_id" validate:"required"`
}

/// UpdateDealRequest entrada para actualizar un deal: reemplazo completo, los
// cuatro campos son obligatorios (sin semántica de patch parcial).
type UpdateDealRequest struct {
	Title     string          `json:"title" validate:"required,min=1,max=200"`
	Value     decimal.Decimal `json:"value"`
	Stage     string          `json:"stage" validate:"required"`
	AccountID int64           `json:"account_id" validate:"required"`
}

// AccountSummary resumen de la cuenta asociada a un deal.
type AccountSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

// DealResponse salida de un deal con los campos calculados.
type DealResponse struct {
	ID             int64           `json:"id"`
	OrganizationID int64           `json:"organization_id"`
	AccountID      int64           `json:"account_id"`
	Title          string          `json:"title"`
	Value          decimal.Decimal `json:"value"`
	Stage          string          `json:"stage"`
	WinProbability float64         `json:"win_probability"`
	AIInsight      string          `json:"ai_insight"`
	Account        *AccountSummary `json:"account,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
