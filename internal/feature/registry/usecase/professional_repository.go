// Package usecase implements the business logic for the registry feature.
package usecase

import (
	"context"

	"registry_backend/internal/feature/registry/domain/entity"
)

// ProfessionalRepository abstracts persistence of registration records.
type ProfessionalRepository interface {
	// FindAll returns every record, ordered by id.
	FindAll(ctx context.Context) ([]entity.Professional, error)

	// Search returns the records whose full name or phone number contains
	// term as a case-insensitive substring. An empty term matches everything.
	Search(ctx context.Context, term string) ([]entity.Professional, error)

	// FindByID returns the record with the given id, or
	// domain.ErrProfessionalNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Professional, error)

	// Create persists a new record and assigns its id.
	Create(ctx context.Context, p *entity.Professional) error

	// Update writes the full record back.
	Update(ctx context.Context, p *entity.Professional) error

	// Delete removes the record, reporting whether it existed.
	Delete(ctx context.Context, id uint) (bool, error)
}
