package model

import (
	"time"
)

const (
	TarefaPendente    = "PENDENTE"
	TarefaEmAndamento = "EM_ANDAMENTO"
	TarefaConcluida   = "CONCLUIDA"
	TarefaCancelada   = "CANCELADA"
)

const (
	PrioridadeBaixa   = "BAIXA"
	PrioridadeMedia   = "MEDIA"
	PrioridadeAlta    = "ALTA"
	PrioridadeUrgente = "URGENTE"
)

// Tarefa is a follow-up reminder, created manually or suggested by the
// renewal workflow. Concluding a task requires a recorded Resultado.
type Tarefa struct {
	ID             uint   `gorm:"primaryKey"`
	Titulo         string `gorm:"not null"`
	ClienteID      *uint  `gorm:"index"`
	ApoliceID      *uint  `gorm:"index"`
	ColaboradorID  uint   `gorm:"not null;index"`
	DataVencimento time.Time `gorm:"not null;index"`
	Prioridade     string    `gorm:"size:10;not null;default:'MEDIA'"`
	Status         string    `gorm:"size:15;not null;default:'PENDENTE';index"`
	Resultado      *string
	Observacoes    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Cliente     *Cliente     `gorm:"foreignKey:ClienteID"`
	Apolice     *Apolice     `gorm:"foreignKey:ApoliceID"`
	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID"`
}

func (Tarefa) TableName() string { return "tarefas" }

// PrioridadeRank orders priorities for the pending-task projection:
// URGENTE > ALTA > MEDIA > BAIXA. Unknown values sort last.
func PrioridadeRank(p string) int {
	switch p {
	case PrioridadeUrgente:
		return 4
	case PrioridadeAlta:
		return 3
	case PrioridadeMedia:
		return 2
	case PrioridadeBaixa:
		return 1
	}
	return 0
}

// PrioridadeValida reports whether p is one of the closed priorities.
func PrioridadeValida(p string) bool {
	return PrioridadeRank(p) > 0
}

// StatusTarefaValido reports whether s is one of the closed task statuses.
func StatusTarefaValido(s string) bool {
	switch s {
	case TarefaPendente, TarefaEmAndamento, TarefaConcluida, TarefaCancelada:
		return true
	}
	return false
}
