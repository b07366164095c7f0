package dto

type CriarColaboradorRequest struct {
	Nome            string  `json:"nome" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Senha           string  `json:"senha" validate:"required,min=8"`
	Perfil          string  `json:"perfil" validate:"required,oneof=ADMINISTRADOR GERENTE CORRETOR"`
	DataContratacao *string `json:"dataContratacao" validate:"omitempty,datetime=2006-01-02"`
}

type AtualizarColaboradorRequest struct {
	Nome            string  `json:"nome"`
	Email           string  `json:"email" validate:"omitempty,email"`
	Senha           string  `json:"senha" validate:"omitempty,min=8"`
	Perfil          string  `json:"perfil" validate:"omitempty,oneof=ADMINISTRADOR GERENTE CORRETOR"`
	DataContratacao *string `json:"dataContratacao" validate:"omitempty,datetime=2006-01-02"`
}

type ColaboradorResponse struct {
	ID              uint    `json:"id"`
	Nome            string  `json:"nome"`
	Email           string  `json:"email"`
	Perfil          string  `json:"perfil"`
	DataContratacao *string `json:"dataContratacao,omitempty"`
	Ativo           bool    `json:"ativo"`
}
