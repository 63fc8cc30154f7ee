package automation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/automation"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeWorkflowRepo struct {
	workflows map[int64]*entity.Workflow
	nextID    int64
}

func newFakeWorkflowRepo() *fakeWorkflowRepo {
	return &fakeWorkflowRepo{workflows: make(map[int64]*entity.Workflow), nextID: 1}
}

func (r *fakeWorkflowRepo) Create(wf *entity.Workflow) error {
	wf.ID = r.nextID
	r.nextID++
	cp := *wf
	r.workflows[wf.ID] = &cp
	return nil
}

func (r *fakeWorkflowRepo) ListByOrg(orgID int64) ([]*entity.Workflow, error) {
	var out []*entity.Workflow
	for _, wf := range r.workflows {
		if wf.OrganizationID == orgID {
			out = append(out, wf)
		}
	}
	return out, nil
}

func (r *fakeWorkflowRepo) ListActiveByTrigger(orgID int64, trigger string) ([]*entity.Workflow, error) {
	var out []*entity.Workflow
	// Orden por ID para ejecución determinista en los tests.
	for id := int64(1); id < r.nextID; id++ {
		wf, ok := r.workflows[id]
		if ok && wf.OrganizationID == orgID && wf.Trigger == trigger && wf.IsActive {
			out = append(out, wf)
		}
	}
	return out, nil
}

func (r *fakeWorkflowRepo) DeleteByOrg(orgID, id int64) error {
	wf, ok := r.workflows[id]
	if ok && wf.OrganizationID == orgID {
		delete(r.workflows, id)
	}
	return nil
}

type fakeActivityRepo struct {
	entries []entity.Activity
}

func (r *fakeActivityRepo) Create(a *entity.Activity) error {
	r.entries = append(r.entries, *a)
	return nil
}

func (r *fakeActivityRepo) ListByOrg(orgID int64, limit int) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for i := range r.entries {
		if r.entries[i].OrganizationID == orgID {
			out = append(out, &r.entries[i])
		}
	}
	return out, nil
}

const orgID int64 = 1

func buildEngine() (*automation.Engine, *fakeWorkflowRepo, *fakeActivityRepo) {
	repo := newFakeWorkflowRepo()
	activityRepo := &fakeActivityRepo{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return automation.NewEngine(repo, activityRepo, log), repo, activityRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Define / List / Remove
// ──────────────────────────────────────────────────────────────────────────────

func TestEngineDefine_CreaReglaActiva(t *testing.T) {
	engine, repo, activityRepo := buildEngine()

	wf, err := engine.Define(orgID, dto.CreateWorkflowRequest{
		Name:         "Follow up on won deals",
		Trigger:      "DEAL_WON",
		Action:       "CREATE_ACTIVITY",
		ActionParams: map[string]string{"message": "Follow up sent"},
	})
	require.NoError(t, err)

	assert.True(t, wf.IsActive, "una regla nueva debe quedar activa")
	assert.JSONEq(t, `{"message":"Follow up sent"}`, wf.ActionParams)
	assert.Len(t, repo.workflows, 1)

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, "Created workflow", activityRepo.entries[0].Action)
	assert.Equal(t, "Follow up on won deals", activityRepo.entries[0].Target)
}

func TestEngineDefine_AccionDesconocida(t *testing.T) {
	engine, _, _ := buildEngine()

	_, err := engine.Define(orgID, dto.CreateWorkflowRequest{
		Name:    "Bad rule",
		Trigger: "DEAL_WON",
		Action:  "SEND_EMAIL",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEngineRemove_CeroCoincidenciasNoEsError(t *testing.T) {
	engine, _, _ := buildEngine()
	assert.NoError(t, engine.Remove(orgID, 999))
}

func TestEngineRemove_SoloDeLaPropiaOrganizacion(t *testing.T) {
	engine, repo, _ := buildEngine()

	wf, err := engine.Define(orgID, dto.CreateWorkflowRequest{
		Name:    "Mine",
		Trigger: "DEAL_WON",
		Action:  "CREATE_ACTIVITY",
	})
	require.NoError(t, err)

	// Otra organización intenta borrar la regla: silencioso y sin efecto.
	require.NoError(t, engine.Remove(orgID+1, wf.ID))
	assert.Len(t, repo.workflows, 1)

	require.NoError(t, engine.Remove(orgID, wf.ID))
	assert.Empty(t, repo.workflows)
}

// ──────────────────────────────────────────────────────────────────────────────
// Execute
// ──────────────────────────────────────────────────────────────────────────────

func TestEngineExecute_CreaActividadConMensajeConfigurado(t *testing.T) {
	engine, _, activityRepo := buildEngine()

	_, err := engine.Define(orgID, dto.CreateWorkflowRequest{
		Name:         "Notify on won",
		Trigger:      "DEAL_WON",
		Action:       "CREATE_ACTIVITY",
		ActionParams: map[string]string{"message": "Follow up sent"},
	})
	require.NoError(t, err)
	activityRepo.entries = nil // descartar la auditoría del Define

	engine.Execute(context.Background(), "DEAL_WON", automation.EventContext{Title: "Enterprise License Deal"}, orgID)

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, "System Automation", activityRepo.entries[0].Action)
	assert.Equal(t, "Follow up sent", activityRepo.entries[0].Target)
	assert.Equal(t, orgID, activityRepo.entries[0].OrganizationID)
}

func TestEngineExecute_MensajePorDefectoUsaElTitulo(t *testing.T) {
	engine, _, activityRepo := buildEngine()

	_, err := engine.Define(orgID, dto.CreateWorkflowRequest{
		Name:    "Default message",
		Trigger: "DEAL_WON",
		Action:  "CREATE_ACTIVITY",
	})
	require.NoError(t, err)
	activityRepo.entries = nil

	engine.Execute(context.Background(), "DEAL_WON", automation.EventContext{Title: "Cloud Migration"}, orgID)

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, "Automated task for Cloud Migration", activityRepo.entries[0].Target)
}

func TestEngineExecute_TriggerSinReglasNoHaceNada(t *testing.T) {
	engine, _, activityRepo := buildEngine()

	engine.Execute(context.Background(), "DEAL_LOST", automation.EventContext{Title: "X"}, orgID)
	assert.Empty(t, activityRepo.entries)
}

func TestEngineExecute_FalloDeUnaReglaNoDetieneLasDemas(t *testing.T) {
	engine, repo, activityRepo := buildEngine()

	// Regla 1 corrupta: action_params no es JSON válido. Se siembra directo en
	// el repo porque Define nunca la habría aceptado.
	require.NoError(t, repo.Create(&entity.Workflow{
		OrganizationID: orgID,
		Name:           "Broken rule",
		Trigger:        "DEAL_WON",
		Action:         entity.ActionCreateActivity,
		ActionParams:   "{not json",
		IsActive:       true,
	}))
	// Regla 2 con un tipo de acción no soportado.
	require.NoError(t, repo.Create(&entity.Workflow{
		OrganizationID: orgID,
		Name:           "Unknown action",
		Trigger:        "DEAL_WON",
		Action:         entity.ActionKind("SEND_EMAIL"),
		ActionParams:   "{}",
		IsActive:       true,
	}))
	// Regla 3 sana: debe ejecutarse aunque las anteriores fallen.
	require.NoError(t, repo.Create(&entity.Workflow{
		OrganizationID: orgID,
		Name:           "Healthy rule",
		Trigger:        "DEAL_WON",
		Action:         entity.ActionCreateActivity,
		ActionParams:   `{"message":"Still alive"}`,
		IsActive:       true,
	}))

	engine.Execute(context.Background(), "DEAL_WON", automation.EventContext{Title: "Resilience"}, orgID)

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, "Still alive", activityRepo.entries[0].Target)
}

func TestEngineExecute_IgnoraReglasInactivas(t *testing.T) {
	engine, repo, activityRepo := buildEngine()

	require.NoError(t, repo.Create(&entity.Workflow{
		OrganizationID: orgID,
		Name:           "Paused rule",
		Trigger:        "DEAL_WON",
		Action:         entity.ActionCreateActivity,
		ActionParams:   "{}",
		IsActive:       false,
	}))

	engine.Execute(context.Background(), "DEAL_WON", automation.EventContext{Title: "X"}, orgID)
	assert.Empty(t, activityRepo.entries)
}
