// Package dto defines request and response payloads for the registry endpoints.
package dto

import (
	"time"

	"registry_backend/internal/feature/registry/domain/entity"
	"registry_backend/internal/feature/registry/usecase"
)

// dateLayout is the wire format for registration dates.
const dateLayout = "2006-01-02"

// CreateProfessionalRequest is the payload for POST /api/professionals.
// All nine business fields are required and non-empty.
type CreateProfessionalRequest struct {
	TrackingNumber     string `json:"trackingNumber" binding:"required"`
	FullName           string `json:"fullName" binding:"required"`
	Gender             string `json:"gender" binding:"required"`
	DateOfRegistration string `json:"dateOfRegistration" binding:"required,datetime=2006-01-02"`
	PhoneNumber        string `json:"phoneNumber" binding:"required"`
	ProfessionalTitle  string `json:"professionalTitle" binding:"required"`
	ProfessionalNumber string `json:"professionalNumber" binding:"required"`
	Sector             string `json:"sector" binding:"required"`
	ServiceType        string `json:"serviceType" binding:"required,oneof=New Renewal Upgrade Practicing Lost Replacement"`
}

// ToEntity converts the request into a domain entity. The date has already
// passed the datetime binding check, so the parse cannot fail.
func (r CreateProfessionalRequest) ToEntity() entity.Professional {
	date, _ := time.Parse(dateLayout, r.DateOfRegistration)
	return entity.Professional{
		TrackingNumber:     r.TrackingNumber,
		FullName:           r.FullName,
		Gender:             r.Gender,
		DateOfRegistration: date,
		PhoneNumber:        r.PhoneNumber,
		ProfessionalTitle:  r.ProfessionalTitle,
		ProfessionalNumber: r.ProfessionalNumber,
		Sector:             r.Sector,
		ServiceType:        r.ServiceType,
	}
}

// UpdateProfessionalRequest is the payload for PATCH /api/professionals/:id.
// Absent fields are left untouched; present fields must not be emptied.
type UpdateProfessionalRequest struct {
	TrackingNumber     *string `json:"trackingNumber" binding:"omitempty,min=1"`
	FullName           *string `json:"fullName" binding:"omitempty,min=1"`
	Gender             *string `json:"gender" binding:"omitempty,min=1"`
	DateOfRegistration *string `json:"dateOfRegistration" binding:"omitempty,datetime=2006-01-02"`
	PhoneNumber        *string `json:"phoneNumber" binding:"omitempty,min=1"`
	ProfessionalTitle  *string `json:"professionalTitle" binding:"omitempty,min=1"`
	ProfessionalNumber *string `json:"professionalNumber" binding:"omitempty,min=1"`
	Sector             *string `json:"sector" binding:"omitempty,min=1"`
	ServiceType        *string `json:"serviceType" binding:"omitempty,oneof=New Renewal Upgrade Practicing Lost Replacement"`
}

// ToPatch converts the request into a usecase patch.
func (r UpdateProfessionalRequest) ToPatch() usecase.ProfessionalPatch {
	patch := usecase.ProfessionalPatch{
		TrackingNumber:     r.TrackingNumber,
		FullName:           r.FullName,
		Gender:             r.Gender,
		PhoneNumber:        r.PhoneNumber,
		ProfessionalTitle:  r.ProfessionalTitle,
		ProfessionalNumber: r.ProfessionalNumber,
		Sector:             r.Sector,
		ServiceType:        r.ServiceType,
	}
	if r.DateOfRegistration != nil {
		date, _ := time.Parse(dateLayout, *r.DateOfRegistration)
		patch.DateOfRegistration = &date
	}
	return patch
}

// SearchQuery binds the optional free-text search parameter.
type SearchQuery struct {
	SearchTerm string `form:"searchTerm"`
}

// ProfessionalResponse is the public view of a registration record.
type ProfessionalResponse struct {
	ID                 uint   `json:"id"`
	TrackingNumber     string `json:"trackingNumber"`
	FullName           string `json:"fullName"`
	Gender             string `json:"gender"`
	DateOfRegistration string `json:"dateOfRegistration"`
	PhoneNumber        string `json:"phoneNumber"`
	ProfessionalTitle  string `json:"professionalTitle"`
	ProfessionalNumber string `json:"professionalNumber"`
	Sector             string `json:"sector"`
	ServiceType        string `json:"serviceType"`
}

// NewProfessionalResponse maps an entity onto its public view.
func NewProfessionalResponse(p entity.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ID:                 p.ID,
		TrackingNumber:     p.TrackingNumber,
		FullName:           p.FullName,
		Gender:             p.Gender,
		DateOfRegistration: p.DateOfRegistration.Format(dateLayout),
		PhoneNumber:        p.PhoneNumber,
		ProfessionalTitle:  p.ProfessionalTitle,
		ProfessionalNumber: p.ProfessionalNumber,
		Sector:             p.Sector,
		ServiceType:        p.ServiceType,
	}
}

// NewProfessionalList converts a slice of entities. It always returns a
// non-nil slice so an empty register serializes as [].
func NewProfessionalList(ps []entity.Professional) []ProfessionalResponse {
	out := make([]ProfessionalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProfessionalResponse(p))
	}
	return out
}
