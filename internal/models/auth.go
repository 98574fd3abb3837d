package models

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"  example:"admin"`
	Password string `json:"password" validate:"required,max=256" example:"secret"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}
