package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/assistant"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

type fakeStatsRepo struct {
	accounts int
	contacts int
	byStage  []repository.StageMetrics
}

func (r *fakeStatsRepo) CountAccounts(_ context.Context, _ int64) (int, error) {
	return r.accounts, nil
}

func (r *fakeStatsRepo) CountContacts(_ context.Context, _ int64) (int, error) {
	return r.contacts, nil
}

func (r *fakeStatsRepo) DealMetricsByStage(_ context.Context, _ int64) ([]repository.StageMetrics, error) {
	return r.byStage, nil
}

// fakeLLM responde fijo o falla, según se configure.
type fakeLLM struct {
	answer string
	err    error
	snap   assistant.Snapshot // último snapshot recibido
}

func (l *fakeLLM) Reply(_ context.Context, _ string, snap assistant.Snapshot) (string, error) {
	l.snap = snap
	if l.err != nil {
		return "", l.err
	}
	return l.answer, nil
}

func statsFixture() *fakeStatsRepo {
	return &fakeStatsRepo{
		accounts: 5,
		contacts: 6,
		byStage: []repository.StageMetrics{
			{Stage: entity.StageWon, Count: 3, Value: decimal.NewFromInt(1050000)},
			{Stage: entity.StageNegotiation, Count: 3, Value: decimal.NewFromInt(2750000)},
			{Stage: entity.StageNew, Count: 3, Value: decimal.NewFromInt(750000)},
			{Stage: entity.StageLost, Count: 1, Value: decimal.NewFromInt(350000)},
		},
	}
}

func buildChatUseCase(llm assistant.LLMService) *assistant.ChatUseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return assistant.NewChatUseCase(statsFixture(), llm, log)
}

const orgID int64 = 1

// ──────────────────────────────────────────────────────────────────────────────
// Modo offline por palabras clave
// ──────────────────────────────────────────────────────────────────────────────

func TestChat_OfflineRespondePorPalabrasClave(t *testing.T) {
	uc := buildChatUseCase(nil)

	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"revenue", "What's our total revenue this year?",
			"Based on your closed deals, the total revenue is 1050000."},
		{"deals", "how is the pipeline looking",
			"You have 10 deals in total, with 9 currently active in the pipeline."},
		{"accounts", "how many clients do we have",
			"There are currently 5 accounts in your client directory."},
		{"contacts", "list my contact count",
			"You have 6 contacts saved in the system."},
		{"settings", "where do I change my profile",
			"You can manage your profile and global configurations in the Settings page."},
		{"reports", "can I export a report",
			"Head over to the 'Reports & Analytics' section to generate CSV exports."},
		{"saludo", "hello there",
			"Hello! I am NexusAI. Ask me about your revenue or deals."},
		{"desconocido", "what's the weather today?",
			"I'm currently running in offline mode. I can help with basic stats like 'revenue', 'deals', or 'clients'."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := uc.Chat(context.Background(), orgID, dto.ChatRequest{Message: tc.message})
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.Response)
		})
	}
}

func TestChat_MensajeVacio(t *testing.T) {
	uc := buildChatUseCase(nil)

	_, err := uc.Chat(context.Background(), orgID, dto.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChat_EsDeterminista(t *testing.T) {
	uc := buildChatUseCase(nil)

	r1, err := uc.Chat(context.Background(), orgID, dto.ChatRequest{Message: "revenue?"})
	require.NoError(t, err)
	r2, err := uc.Chat(context.Background(), orgID, dto.ChatRequest{Message: "revenue?"})
	require.NoError(t, err)
	assert.Equal(t, r1.Response, r2.Response)
}

// ──────────────────────────────────────────────────────────────────────────────
// Con LLM configurado
// ──────────────────────────────────────────────────────────────────────────────

func TestChat_LLMRespondeConElSnapshot(t *testing.T) {
	llm := &fakeLLM{answer: "Your pipeline looks healthy."}
	uc := buildChatUseCase(llm)

	resp, err := uc.Chat(context.Background(), orgID, dto.ChatRequest{Message: "how are we doing?"})
	require.NoError(t, err)

	assert.Equal(t, "Your pipeline looks healthy.", resp.Response)
	assert.Equal(t, 10, llm.snap.DealCount)
	assert.Equal(t, 9, llm.snap.ActiveDeals)
	assert.Equal(t, 5, llm.snap.Accounts)
	assert.Equal(t, 6, llm.snap.Contacts)
	assert.True(t, decimal.NewFromInt(1050000).Equal(llm.snap.Revenue))
}

func TestChat_FalloDelLLMDegradaAModoOffline(t *testing.T) {
	llm := &fakeLLM{err: errors.New("api caída")}
	uc := buildChatUseCase(llm)

	resp, err := uc.Chat(context.Background(), orgID, dto.ChatRequest{Message: "what's our revenue?"})
	require.NoError(t, err, "el fallo del LLM nunca llega al llamador")
	assert.Equal(t, "Based on your closed deals, the total revenue is 1050000.", resp.Response)
}
