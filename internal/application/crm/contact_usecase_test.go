package crm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/activity"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

type fakeContactRepo struct {
	contacts map[int64]*entity.Contact
	nextID   int64
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[int64]*entity.Contact), nextID: 1}
}

func (r *fakeContactRepo) Create(c *entity.Contact) error {
	for _, existing := range r.contacts {
		if existing.OrganizationID == c.OrganizationID && existing.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.contacts[c.ID] = &cp
	return nil
}

func (r *fakeContactRepo) GetByOrgAndID(orgID, id int64) (*entity.Contact, error) {
	c, ok := r.contacts[id]
	if !ok || c.OrganizationID != orgID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContactRepo) ListByOrg(orgID int64) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for _, c := range r.contacts {
		if c.OrganizationID == orgID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) Update(c *entity.Contact) error {
	cp := *c
	r.contacts[c.ID] = &cp
	return nil
}

func (r *fakeContactRepo) Delete(id int64) error {
	delete(r.contacts, id)
	return nil
}

func buildContactUseCase() (*crm.ContactUseCase, *fakeContactRepo, *fakeAccountRepo) {
	repo := newFakeContactRepo()
	accountRepo := newFakeAccountRepo()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	recorder := activity.NewRecorder(&fakeActivityRepo{}, log)
	return crm.NewContactUseCase(repo, accountRepo, recorder), repo, accountRepo
}

func TestContactCreate_VinculaCuentaDeLaOrganizacion(t *testing.T) {
	uc, _, accountRepo := buildContactUseCase()

	account := &entity.Account{OrganizationID: orgID, Name: "Acme Corporation"}
	require.NoError(t, accountRepo.Create(account))

	contact, err := uc.Create(orgID, dto.CreateContactRequest{
		Name:      "Rahul Sharma",
		Email:     "rahul@acme.com",
		AccountID: &account.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, contact.AccountID)
	assert.Equal(t, account.ID, *contact.AccountID)
}

func TestContactCreate_CuentaDeOtraOrganizacionQuedaSinVinculo(t *testing.T) {
	uc, _, accountRepo := buildContactUseCase()

	// Cuenta de otra organización: el contacto se crea igual pero sin cuenta.
	foreign := &entity.Account{OrganizationID: orgID + 1, Name: "Foreign Corp"}
	require.NoError(t, accountRepo.Create(foreign))

	contact, err := uc.Create(orgID, dto.CreateContactRequest{
		Name:      "Priya Patel",
		Email:     "priya@foreign.com",
		AccountID: &foreign.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, contact.AccountID)
}

func TestContactCreate_EmailDuplicadoEnLaOrganizacion(t *testing.T) {
	uc, _, _ := buildContactUseCase()

	_, err := uc.Create(orgID, dto.CreateContactRequest{Name: "A", Email: "same@crm.com"})
	require.NoError(t, err)

	_, err = uc.Create(orgID, dto.CreateContactRequest{Name: "B", Email: "same@crm.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// En otra organización el mismo email es válido.
	_, err = uc.Create(orgID+1, dto.CreateContactRequest{Name: "C", Email: "same@crm.com"})
	assert.NoError(t, err)
}

func TestContactUpdate_ContactoDeOtraOrganizacionEsNotFound(t *testing.T) {
	uc, _, _ := buildContactUseCase()

	created, err := uc.Create(orgID, dto.CreateContactRequest{Name: "Mine", Email: "mine@crm.com"})
	require.NoError(t, err)

	_, err = uc.Update(orgID+1, created.ID, dto.UpdateContactRequest{Name: "Stolen", Email: "mine@crm.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactDelete_SoloDeLaPropiaOrganizacion(t *testing.T) {
	uc, repo, _ := buildContactUseCase()

	created, err := uc.Create(orgID, dto.CreateContactRequest{Name: "Keep", Email: "keep@crm.com"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(orgID+1, created.ID), domain.ErrNotFound)
	assert.Len(t, repo.contacts, 1)

	require.NoError(t, uc.Delete(orgID, created.ID))
	assert.Empty(t, repo.contacts)
}
