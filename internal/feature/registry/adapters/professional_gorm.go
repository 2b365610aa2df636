// Package adapters provides repository implementations for the registry feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"registry_backend/internal/feature/registry/domain"
	"registry_backend/internal/feature/registry/domain/entity"
	"registry_backend/internal/feature/registry/usecase"
)

// professionalGorm is the SQL implementation of the ProfessionalRepository interface.
type professionalGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure professionalGorm implements ProfessionalRepository.
var _ usecase.ProfessionalRepository = (*professionalGorm)(nil)

// NewProfessionalRepository creates the repository on the given connection.
func NewProfessionalRepository(db *gorm.DB) *professionalGorm {
	return &professionalGorm{db: db}
}

// likeEscaper neutralizes LIKE wildcards in user-supplied search terms so
// the match stays a literal substring match.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindAll returns every record in id order.
func (r *professionalGorm) FindAll(ctx context.Context) ([]entity.Professional, error) {
	var out []entity.Professional
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Search matches term as a case-insensitive substring of the full name or
// the phone number. The explicit ESCAPE clause keeps Postgres and SQLite
// agreeing on the escape character.
func (r *professionalGorm) Search(ctx context.Context, term string) ([]entity.Professional, error) {
	pattern := "%" + strings.ToLower(likeEscaper.Replace(term)) + "%"

	var out []entity.Professional
	if err := r.db.WithContext(ctx).
		Where(`LOWER(full_name) LIKE ? ESCAPE '\' OR LOWER(phone_number) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID retrieves one record by id.
func (r *professionalGorm) FindByID(ctx context.Context, id uint) (*entity.Professional, error) {
	var p entity.Professional
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfessionalNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create persists a new record; GORM writes the assigned id back into p.
func (r *professionalGorm) Create(ctx context.Context, p *entity.Professional) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update writes the full record back. Last write wins; there is no
// conflict detection.
func (r *professionalGorm) Update(ctx context.Context, p *entity.Professional) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete hard-deletes the record and reports whether a row was removed.
func (r *professionalGorm) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Professional{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
