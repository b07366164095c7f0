package dto

type CriarTarefaRequest struct {
	Titulo         string  `json:"titulo" validate:"required"`
	ClienteID      *uint   `json:"clienteId"`
	ApoliceID      *uint   `json:"apoliceId"`
	ColaboradorID  *uint   `json:"colaboradorId"`
	DataVencimento string  `json:"dataVencimento" validate:"required,datetime=2006-01-02"`
	Prioridade     string  `json:"prioridade" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
	Observacoes    *string `json:"observacoes"`
}

type AtualizarTarefaRequest struct {
	Titulo         string  `json:"titulo"`
	DataVencimento *string `json:"dataVencimento" validate:"omitempty,datetime=2006-01-02"`
	Prioridade     string  `json:"prioridade" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
	Status         string  `json:"status" validate:"omitempty,oneof=PENDENTE EM_ANDAMENTO CANCELADA"`
}

// ConcluirTarefaRequest closes a task; the outcome must be recorded.
type ConcluirTarefaRequest struct {
	Resultado string `json:"resultado" validate:"required"`
}

type TarefaResponse struct {
	ID             uint    `json:"id"`
	Titulo         string  `json:"titulo"`
	ClienteID      *uint   `json:"clienteId,omitempty"`
	ApoliceID      *uint   `json:"apoliceId,omitempty"`
	ColaboradorID  uint    `json:"colaboradorId"`
	Colaborador    string  `json:"colaborador,omitempty"`
	DataVencimento string  `json:"dataVencimento"`
	Prioridade     string  `json:"prioridade"`
	Status         string  `json:"status"`
	Resultado      *string `json:"resultado,omitempty"`
	Observacoes    *string `json:"observacoes,omitempty"`
}

type TarefaFilter struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type TarefaListResponse struct {
	Data  []TarefaResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
