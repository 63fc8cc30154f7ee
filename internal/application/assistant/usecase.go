// Package assistant implementa el asistente conversacional del CRM: responde
// preguntas sobre las métricas de la organización. Con un LLM configurado
// delega en el modelo; sin él (o si el modelo falla) responde en modo offline
// con reglas deterministas por palabras clave.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// Snapshot es el contexto de negocio de la organización que ve el asistente.
type Snapshot struct {
	Revenue     decimal.Decimal // suma de deals Won
	DealCount   int             // todos los deals
	ActiveDeals int             // deals en etapa distinta de Lost
	Accounts    int
	Contacts    int
}

// ChatUseCase orquesta las respuestas del asistente. Aplica un timeout de 10
// segundos en cada llamada al LLM para que las latencias externas no bloqueen
// los goroutines del servidor.
type ChatUseCase struct {
	statsRepo repository.StatsRepository
	llm       LLMService // nil = solo modo offline
	log       *logger.Logger
}

// NewChatUseCase construye el caso de uso. llm puede ser nil.
func NewChatUseCase(statsRepo repository.StatsRepository, llm LLMService, log *logger.Logger) *ChatUseCase {
	return &ChatUseCase{statsRepo: statsRepo, llm: llm, log: log}
}

// Chat responde la pregunta del usuario sobre los datos de su organización.
// El fallo del LLM nunca llega al llamador: se loguea y se degrada al modo
// offline por palabras clave.
func (uc *ChatUseCase) Chat(ctx context.Context, orgID int64, in dto.ChatRequest) (*dto.ChatResponse, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, domain.ErrInvalidInput
	}

	snap, err := uc.snapshot(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if uc.llm != nil {
		llmCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		answer, err := uc.llm.Reply(llmCtx, in.Message, snap)
		if err == nil {
			return &dto.ChatResponse{Response: answer}, nil
		}
		uc.log.Warn().Err(err).Msg("LLM no disponible, respondiendo en modo offline")
	}

	return &dto.ChatResponse{Response: offlineAnswer(in.Message, snap)}, nil
}

// snapshot arma el contexto de negocio con las consultas de agregación.
func (uc *ChatUseCase) snapshot(ctx context.Context, orgID int64) (Snapshot, error) {
	accounts, err := uc.statsRepo.CountAccounts(ctx, orgID)
	if err != nil {
		return Snapshot{}, err
	}
	contacts, err := uc.statsRepo.CountContacts(ctx, orgID)
	if err != nil {
		return Snapshot{}, err
	}
	byStage, err := uc.statsRepo.DealMetricsByStage(ctx, orgID)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Revenue: decimal.Zero, Accounts: accounts, Contacts: contacts}
	for _, m := range byStage {
		snap.DealCount += m.Count
		if m.Stage != entity.StageLost {
			snap.ActiveDeals += m.Count
		}
		if m.Stage == entity.StageWon {
			snap.Revenue = snap.Revenue.Add(m.Value)
		}
	}
	return snap, nil
}

// offlineAnswer responde por palabras clave sobre el snapshot. Determinista:
// la primera regla que coincide gana.
func offlineAnswer(message string, snap Snapshot) string {
	msg := strings.ToLower(message)
	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(msg, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("revenue", "sales", "money"):
		return fmt.Sprintf("Based on your closed deals, the total revenue is %s.", snap.Revenue.String())
	case contains("deal", "pipeline"):
		return fmt.Sprintf("You have %d deals in total, with %d currently active in the pipeline.", snap.DealCount, snap.ActiveDeals)
	case contains("customer", "client", "account"):
		return fmt.Sprintf("There are currently %d accounts in your client directory.", snap.Accounts)
	case contains("contact", "people"):
		return fmt.Sprintf("You have %d contacts saved in the system.", snap.Contacts)
	case contains("setting", "profile"):
		return "You can manage your profile and global configurations in the Settings page."
	case contains("report", "export"):
		return "Head over to the 'Reports & Analytics' section to generate CSV exports."
	case contains("hello", "hi"):
		return "Hello! I am NexusAI. Ask me about your revenue or deals."
	default:
		return "I'm currently running in offline mode. I can help with basic stats like 'revenue', 'deals', or 'clients'."
	}
}
