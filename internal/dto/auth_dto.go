package dto

type LoginRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
	Senha string `json:"senha" binding:"required" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	TokenType    string              `json:"token_type"`
	ExpiresIn    int                 `json:"expires_in"`
	Colaborador  ColaboradorResponse `json:"colaborador"`
}
