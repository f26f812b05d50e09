package dto

type SignUpRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddAdminRoleRequest struct {
	UserID int64 `json:"user_id"`
}

type UpdateUserRequest struct {
	ID     int64
	RaNome string `json:"ra_nome"`
	Email  string `json:"email"`
}

type ForgotPasswordRequest struct {
	Username string `json:"username"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username"`
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
