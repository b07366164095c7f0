package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestStatusExibicao(t *testing.T) {
	asOf := dia(2026, time.March, 15)
	const diasAviso = 30

	cases := []struct {
		nome     string
		status   string
		fim      time.Time
		esperado string
	}{
		{"ativa longe do vencimento", ApoliceAtiva, dia(2026, time.December, 31), ApoliceAtiva},
		{"vence exatamente no limite do aviso", ApoliceAtiva, dia(2026, time.April, 14), ApoliceVencendo},
		{"vence um dia depois do limite", ApoliceAtiva, dia(2026, time.April, 15), ApoliceAtiva},
		{"vence hoje", ApoliceAtiva, dia(2026, time.March, 15), ApoliceVencendo},
		{"venceu ontem", ApoliceAtiva, dia(2026, time.March, 14), ApoliceVencida},
		{"cancelada nao reclassifica", ApoliceCancelada, dia(2026, time.January, 1), ApoliceCancelada},
		{"renovada nao reclassifica", ApoliceRenovada, dia(2026, time.January, 1), ApoliceRenovada},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			a := Apolice{Status: tc.status, FimVigencia: tc.fim}
			assert.Equal(t, tc.esperado, a.StatusExibicao(asOf, diasAviso))
		})
	}
}

// The classification moves with asOf alone; re-reading the same row on a later
// date reclassifies it with no write in between.
func TestStatusExibicaoReavaliaComNovaData(t *testing.T) {
	a := Apolice{Status: ApoliceAtiva, FimVigencia: dia(2026, time.June, 30)}

	assert.Equal(t, ApoliceAtiva, a.StatusExibicao(dia(2026, time.March, 1), 30))
	assert.Equal(t, ApoliceVencendo, a.StatusExibicao(dia(2026, time.June, 10), 30))
	assert.Equal(t, ApoliceVencida, a.StatusExibicao(dia(2026, time.July, 1), 30))
}

func TestStatusExibicaoIgnoraHorario(t *testing.T) {
	a := Apolice{Status: ApoliceAtiva, FimVigencia: dia(2026, time.March, 15)}
	quaseMeiaNoite := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, ApoliceVencendo, a.StatusExibicao(quaseMeiaNoite, 30))
}

func TestVenceEntre(t *testing.T) {
	asOf := dia(2026, time.March, 15)
	a := Apolice{FimVigencia: dia(2026, time.April, 14)}

	assert.True(t, a.VenceEntre(asOf, 30), "limite superior inclusivo")
	assert.False(t, a.VenceEntre(asOf, 29))

	hoje := Apolice{FimVigencia: asOf}
	assert.True(t, hoje.VenceEntre(asOf, 30), "limite inferior inclusivo")

	vencida := Apolice{FimVigencia: dia(2026, time.March, 14)}
	assert.False(t, vencida.VenceEntre(asOf, 30), "vencida fica fora da janela")
}
