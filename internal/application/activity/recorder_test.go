package activity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/activity"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// fakeActivityRepo lista más recientes primero (id descendente), igual que el
// ORDER BY created_at DESC del repositorio real.
type fakeActivityRepo struct {
	entries []entity.Activity
	nextID  int64
	failing bool
}

func (r *fakeActivityRepo) Create(a *entity.Activity) error {
	if r.failing {
		return errors.New("insert falló")
	}
	r.nextID++
	a.ID = r.nextID
	r.entries = append(r.entries, *a)
	return nil
}

func (r *fakeActivityRepo) ListByOrg(orgID int64, limit int) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].OrganizationID != orgID {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		cp := r.entries[i]
		out = append(out, &cp)
	}
	return out, nil
}

const orgID int64 = 1

func buildRecorder(repo *fakeActivityRepo) *activity.Recorder {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return activity.NewRecorder(repo, log)
}

func TestRecorder_ListMasRecientesPrimero(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := buildRecorder(repo)

	rec.Record("Created account", "Acme Corporation", orgID)
	rec.Record("Created deal", "Cloud Migration", orgID)
	rec.Record("Deleted contact", "jane@acme.com", orgID)

	list, err := rec.List(orgID, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Deleted contact", list[0].Action)
	assert.Equal(t, "Created deal", list[1].Action)
	assert.Equal(t, "Created account", list[2].Action)
}

func TestRecorder_ListEsIdempotente(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := buildRecorder(repo)

	rec.Record("Created account", "Acme Corporation", orgID)
	rec.Record("Created deal", "Cloud Migration", orgID)

	first, err := rec.List(orgID, 0)
	require.NoError(t, err)
	second, err := rec.List(orgID, 0)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Action, second[i].Action)
		assert.Equal(t, first[i].Target, second[i].Target)
	}
}

func TestRecorder_ListRespetaLimite(t *testing.T) {
	repo := &fakeActivityRepo{}
	rec := buildRecorder(repo)

	rec.Record("Created account", "A", orgID)
	rec.Record("Created account", "B", orgID)
	rec.Record("Created account", "C", orgID)

	list, err := rec.List(orgID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "C", list[0].Target)
	assert.Equal(t, "B", list[1].Target)
}

func TestRecorder_RecordEsBestEffort(t *testing.T) {
	repo := &fakeActivityRepo{failing: true}
	rec := buildRecorder(repo)

	// No hay error que propagar: Record traga el fallo del repositorio.
	rec.Record("Created deal", "Doomed", orgID)
	assert.Empty(t, repo.entries)
}
