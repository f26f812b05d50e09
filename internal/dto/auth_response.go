package dto

import "time"

type RegistrationStatusResponse struct {
	Login   bool   `json:"login"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type UserResponse struct {
	ID         int64    `json:"id"`
	Username   string   `json:"username"`
	RaNome     string   `json:"ra_nome"`
	Email      string   `json:"email"`
	ProtheusID string   `json:"protheus_id"`
	Roles      []string `json:"roles,omitempty"`
}

type SignInResponse struct {
	Token      string       `json:"token"`
	Expiration time.Time    `json:"expiration"`
	Roles      []string     `json:"roles"`
	User       UserResponse `json:"user"`
	ClientIP   string       `json:"client_ip,omitempty"`
}
