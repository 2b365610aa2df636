// Package dto defines request and response payloads for the auth endpoints.
package dto

// RegisterRequest is the payload for POST /api/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	IsStaff  bool   `json:"isStaff"`
}
