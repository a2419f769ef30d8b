package request

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type SendPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmPasswordResetRequest struct {
	Token    string `json:"token" validate:"required,uuid"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateProfileRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
}
