package dto

import "registry_backend/internal/feature/auth/domain/entity"

// UserResponse is the public view of a user. The password hash never
// leaves the server.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	IsStaff  bool   `json:"isStaff"`
}

// NewUserResponse maps a user entity onto its public view.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		IsStaff:  u.IsStaff,
	}
}
