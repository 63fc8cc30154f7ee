// Package automation implementa el motor de workflows del tenant: reglas que
// escuchan un trigger y ejecutan una acción configurada.
package automation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// EventContext es el contexto del evento que disparó el trigger.
type EventContext struct {
	Title string
}

// actionFunc ejecuta una acción concreta de una regla.
type actionFunc func(ctx context.Context, wf *entity.Workflow, ec EventContext) error

// Engine almacena y ejecuta reglas de automatización.
//
// La ejecución es best-effort y fire-and-forget: el fallo de una regla se
// loguea y no impide la ejecución de las demás ni llega nunca al llamador.
type Engine struct {
	repo         repository.WorkflowRepository
	activityRepo repository.ActivityRepository
	log          *logger.Logger
	dispatch     map[entity.ActionKind]actionFunc
}

// NewEngine construye el motor con su tabla de despacho por tipo de acción.
func NewEngine(repo repository.WorkflowRepository, activityRepo repository.ActivityRepository, log *logger.Logger) *Engine {
	e := &Engine{repo: repo, activityRepo: activityRepo, log: log}
	e.dispatch = map[entity.ActionKind]actionFunc{
		entity.ActionCreateActivity: e.createActivity,
	}
	return e
}

// Define almacena una regla nueva, activa por defecto.
func (e *Engine) Define(orgID int64, in dto.CreateWorkflowRequest) (*dto.WorkflowResponse, error) {
	if in.Name == "" || in.Trigger == "" {
		return nil, domain.ErrInvalidInput
	}
	kind := entity.ActionKind(in.Action)
	if !kind.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	params := in.ActionParams
	if params == nil {
		params = map[string]string{}
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("serializar action_params: %w", err)
	}

	wf := &entity.Workflow{
		OrganizationID: orgID,
		Name:           in.Name,
		Trigger:        in.Trigger,
		Action:         kind,
		ActionParams:   string(raw),
		IsActive:       true,
	}
	if err := e.repo.Create(wf); err != nil {
		return nil, err
	}
	e.recordActivity("Created workflow", wf.Name, orgID)
	return toWorkflowResponse(wf), nil
}

// List lista las reglas de la organización, más recientes primero.
func (e *Engine) List(orgID int64) ([]*dto.WorkflowResponse, error) {
	list, err := e.repo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WorkflowResponse, 0, len(list))
	for _, wf := range list {
		out = append(out, toWorkflowResponse(wf))
	}
	return out, nil
}

// Remove borra una regla solo si pertenece a la organización. Cero
// coincidencias no es un error (misma semántica que un deleteMany).
func (e *Engine) Remove(orgID, id int64) error {
	return e.repo.DeleteByOrg(orgID, id)
}

// Execute evalúa todas las reglas activas de la organización cuyo trigger
// coincide y ejecuta sus acciones. Nunca devuelve error al llamador: cada
// fallo se aísla por regla, se loguea y se continúa con la siguiente.
func (e *Engine) Execute(ctx context.Context, trigger string, ec EventContext, orgID int64) {
	workflows, err := e.repo.ListActiveByTrigger(orgID, trigger)
	if err != nil {
		e.log.Error().
			Err(err).
			Str("trigger", trigger).
			Int64("organization_id", orgID).
			Msg("no se pudieron cargar las reglas del trigger")
		return
	}

	for _, wf := range workflows {
		e.log.Info().
			Str("workflow", wf.Name).
			Str("trigger", trigger).
			Msg("ejecutando workflow")

		fn, ok := e.dispatch[wf.Action]
		if !ok {
			e.log.Warn().
				Str("workflow", wf.Name).
				Str("action", string(wf.Action)).
				Msg("tipo de acción desconocido, regla omitida")
			continue
		}
		if err := fn(ctx, wf, ec); err != nil {
			e.log.Error().
				Err(err).
				Str("workflow", wf.Name).
				Msg("falló la ejecución del workflow")
			continue
		}
	}
}

// createActivity es la acción CREATE_ACTIVITY: escribe una Activity de
// automatización con el mensaje configurado en los parámetros de la regla.
func (e *Engine) createActivity(_ context.Context, wf *entity.Workflow, ec EventContext) error {
	var params struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(wf.ActionParams), &params); err != nil {
		return fmt.Errorf("parsear action_params: %w", err)
	}
	target := params.Message
	if target == "" {
		target = fmt.Sprintf("Automated task for %s", ec.Title)
	}
	return e.activityRepo.Create(&entity.Activity{
		OrganizationID: wf.OrganizationID,
		Action:         "System Automation",
		Target:         target,
	})
}

// recordActivity registra auditoría best-effort de la gestión de reglas.
func (e *Engine) recordActivity(action, target string, orgID int64) {
	err := e.activityRepo.Create(&entity.Activity{
		OrganizationID: orgID,
		Action:         action,
		Target:         target,
	})
	if err != nil {
		e.log.Warn().Err(err).Str("action", action).Msg("no se pudo registrar la actividad")
	}
}

func toWorkflowResponse(wf *entity.Workflow) *dto.WorkflowResponse {
	return &dto.WorkflowResponse{
		ID:             wf.ID,
		OrganizationID: wf.OrganizationID,
		Name:           wf.Name,
		Trigger:        wf.Trigger,
		Action:         string(wf.Action),
		ActionParams:   wf.ActionParams,
		IsActive:       wf.IsActive,
		CreatedAt:      wf.CreatedAt,
	}
}
