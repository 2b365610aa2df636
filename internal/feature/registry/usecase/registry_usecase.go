package usecase

import (
	"context"
	"time"

	"registry_backend/internal/feature/registry/domain/entity"
)

// ProfessionalPatch is a partial update. Nil fields are left untouched;
// present fields replace the stored value, with name fields renormalized.
type ProfessionalPatch struct {
	TrackingNumber     *string
	FullName           *string
	Gender             *string
	DateOfRegistration *time.Time
	PhoneNumber        *string
	ProfessionalTitle  *string
	ProfessionalNumber *string
	Sector             *string
	ServiceType        *string
}

// RegistryUsecase provides the operations over the professional register.
type RegistryUsecase struct {
	repo ProfessionalRepository
}

// NewRegistryUsecase creates a new RegistryUsecase with the given repository.
func NewRegistryUsecase(repo ProfessionalRepository) *RegistryUsecase {
	return &RegistryUsecase{repo: repo}
}

// List returns all registration records.
func (u *RegistryUsecase) List(ctx context.Context) ([]entity.Professional, error) {
	return u.repo.FindAll(ctx)
}

// Search filters records by a free-text term over full name and phone
// number. An empty term behaves exactly like List.
func (u *RegistryUsecase) Search(ctx context.Context, term string) ([]entity.Professional, error) {
	if term == "" {
		return u.repo.FindAll(ctx)
	}
	return u.repo.Search(ctx, term)
}

// Create normalizes the person's names and persists a new record. The id
// is always assigned by storage, whatever the caller put in the struct.
func (u *RegistryUsecase) Create(ctx context.Context, p entity.Professional) (*entity.Professional, error) {
	p.ID = 0
	p.FullName = normalizeName(p.FullName)
	p.ProfessionalTitle = normalizeName(p.ProfessionalTitle)

	if err := u.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update merges the patch into the stored record and writes it back.
// Returns domain.ErrProfessionalNotFound when the id does not exist. An
// empty patch returns the record unchanged.
func (u *RegistryUsecase) Update(ctx context.Context, id uint, patch ProfessionalPatch) (*entity.Professional, error) {
	p, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.TrackingNumber != nil {
		p.TrackingNumber = *patch.TrackingNumber
	}
	if patch.FullName != nil {
		p.FullName = normalizeName(*patch.FullName)
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.DateOfRegistration != nil {
		p.DateOfRegistration = *patch.DateOfRegistration
	}
	if patch.PhoneNumber != nil {
		p.PhoneNumber = *patch.PhoneNumber
	}
	if patch.ProfessionalTitle != nil {
		p.ProfessionalTitle = normalizeName(*patch.ProfessionalTitle)
	}
	if patch.ProfessionalNumber != nil {
		p.ProfessionalNumber = *patch.ProfessionalNumber
	}
	if patch.Sector != nil {
		p.Sector = *patch.Sector
	}
	if patch.ServiceType != nil {
		p.ServiceType = *patch.ServiceType
	}

	if err := u.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a record, reporting whether it existed.
func (u *RegistryUsecase) Delete(ctx context.Context, id uint) (bool, error) {
	return u.repo.Delete(ctx, id)
}
