package crm

import (
	"github.com/tu-usuario/crm-pro/internal/application/activity"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ContactUseCase casos de uso para contactos.
type ContactUseCase struct {
	repo        repository.ContactRepository
	accountRepo repository.AccountRepository
	recorder    *activity.Recorder
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository, accountRepo repository.AccountRepository, recorder *activity.Recorder) *ContactUseCase {
	return &ContactUseCase{repo: repo, accountRepo: accountRepo, recorder: recorder}
}

// Create crea un contacto. Si AccountID no resuelve dentro de la organización
// el contacto queda sin cuenta asociada.
func (uc *ContactUseCase) Create(orgID int64, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	contact := &entity.Contact{
		OrganizationID: orgID,
		AccountID:      uc.resolveAccount(orgID, in.AccountID),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Title:          in.Title,
	}
	if err := uc.repo.Create(contact); err != nil {
		return nil, err
	}
	uc.recorder.Record("Added new contact", contact.Name, orgID)
	return toContactResponse(contact), nil
}

// List lista los contactos de la organización, más recientes primero.
func (uc *ContactUseCase) List(orgID int64) ([]*dto.ContactResponse, error) {
	list, err := uc.repo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContactResponse(c))
	}
	return out, nil
}

// Update reemplaza los campos de un contacto de la organización.
func (uc *ContactUseCase) Update(orgID, id int64, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	contact, err := uc.repo.GetByOrgAndID(orgID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	contact.Name = in.Name
	contact.Email = in.Email
	contact.Phone = in.Phone
	contact.Title = in.Title
	contact.AccountID = uc.resolveAccount(orgID, in.AccountID)
	if err := uc.repo.Update(contact); err != nil {
		return nil, err
	}
	uc.recorder.Record("Updated contact", contact.Name, orgID)
	return toContactResponse(contact), nil
}

// Delete borra un contacto de la organización.
func (uc *ContactUseCase) Delete(orgID, id int64) error {
	contact, err := uc.repo.GetByOrgAndID(orgID, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(contact.ID); err != nil {
		return err
	}
	uc.recorder.Record("Deleted contact", contact.Name, orgID)
	return nil
}

// resolveAccount devuelve el id solo si la cuenta existe en la organización;
// en cualquier otro caso el contacto queda sin cuenta (comportamiento laxo,
// a diferencia del path de deals que rechaza la referencia).
func (uc *ContactUseCase) resolveAccount(orgID int64, accountID *int64) *int64 {
	if accountID == nil {
		return nil
	}
	account, err := uc.accountRepo.GetByOrgAndID(orgID, *accountID)
	if err != nil || account == nil {
		return nil
	}
	return &account.ID
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		AccountID:      c.AccountID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Title:          c.Title,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
