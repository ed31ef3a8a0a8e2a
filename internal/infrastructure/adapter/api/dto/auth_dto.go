package dto

// SignupRequest represents the API request for user registration
type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	InviteCode      string `json:"inviteCode"`
}

// LoginRequest represents the API request for user login
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	InviteCode string `json:"inviteCode"`
}

// AdminLoginRequest represents the API request for admin login
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminResponse represents an authenticated administrator
type AdminResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
