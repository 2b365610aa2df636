// Package entity defines the domain entities for the registry feature.
package entity

import "time"

// Service types a registration record can carry.
const (
	ServiceNew         = "New"
	ServiceRenewal     = "Renewal"
	ServiceUpgrade     = "Upgrade"
	ServicePracticing  = "Practicing"
	ServiceLost        = "Lost"
	ServiceReplacement = "Replacement"
)

// Professional is one registered professional tracked by the authority.
// The ID is assigned by the storage layer and never supplied by clients;
// FullName and ProfessionalTitle are title-cased on every write.
type Professional struct {
	ID                 uint      `gorm:"primaryKey"`
	TrackingNumber     string    `gorm:"size:255;not null"`
	FullName           string    `gorm:"size:255;not null"`
	Gender             string    `gorm:"size:32;not null"`
	DateOfRegistration time.Time `gorm:"type:date;not null"`
	PhoneNumber        string    `gorm:"size:64;not null"`
	ProfessionalTitle  string    `gorm:"size:255;not null"`
	ProfessionalNumber string    `gorm:"size:255;not null"`
	Sector             string    `gorm:"size:255;not null"`
	ServiceType        string    `gorm:"size:32;not null"`
}
