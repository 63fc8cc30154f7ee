// Package activity implementa el registro de auditoría de la organización.
package activity

import (
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// Recorder escribe entradas de auditoría con semántica best-effort: si la
// escritura falla, el error se loguea y se descarta. El registro nunca hace
// fallar la operación de negocio que lo origina.
type Recorder struct {
	repo repository.ActivityRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.ActivityRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record inserta una entrada de auditoría. No devuelve error: el fallo se
// loguea internamente y el llamador continúa.
func (r *Recorder) Record(action, target string, orgID int64) {
	err := r.repo.Create(&entity.Activity{
		OrganizationID: orgID,
		Action:         action,
		Target:         target,
	})
	if err != nil {
		r.log.Warn().
			Err(err).
			Str("action", action).
			Str("target", target).
			Int64("organization_id", orgID).
			Msg("no se pudo registrar la actividad")
	}
}

// List devuelve las actividades de la organización, más recientes primero.
// limit <= 0 significa sin tope.
func (r *Recorder) List(orgID int64, limit int) ([]*dto.ActivityResponse, error) {
	list, err := r.repo.ListByOrg(orgID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, &dto.ActivityResponse{
			ID:             a.ID,
			OrganizationID: a.OrganizationID,
			Action:         a.Action,
			Target:         a.Target,
			CreatedAt:      a.CreatedAt,
		})
	}
	return out, nil
}
