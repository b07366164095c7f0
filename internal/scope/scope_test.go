package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
)

func TestParsePerfil(t *testing.T) {
	for _, s := range []string{"ADMINISTRADOR", "GERENTE", "CORRETOR"} {
		p, err := ParsePerfil(s)
		require.NoError(t, err)
		assert.Equal(t, Perfil(s), p)
	}

	_, err := ParsePerfil("ESTAGIARIO")
	require.Error(t, err)
	assert.Equal(t, domainerr.KindInvalidArgument, domainerr.KindOf(err))

	// Profiles are a closed enum, no case folding.
	_, err = ParsePerfil("corretor")
	require.Error(t, err)
}

func TestEscopoIrrestrito(t *testing.T) {
	admin := Scope{Perfil: PerfilAdministrador, ColaboradorID: 1}
	gerente := Scope{Perfil: PerfilGerente, ColaboradorID: 2}

	for _, sc := range []Scope{admin, gerente} {
		assert.True(t, sc.Irrestrito())
		assert.True(t, sc.PodeAcessar(99))
		assert.NoError(t, sc.Autorizar(99))
	}
}

func TestEscopoCorretor(t *testing.T) {
	corretor := Scope{Perfil: PerfilCorretor, ColaboradorID: 7}

	assert.False(t, corretor.Irrestrito())
	assert.True(t, corretor.PodeAcessar(7))
	assert.False(t, corretor.PodeAcessar(8))

	assert.NoError(t, corretor.Autorizar(7))

	err := corretor.Autorizar(8)
	require.Error(t, err)
	// Out-of-scope reads fail loudly as FORBIDDEN, not masked as NOT_FOUND.
	assert.Equal(t, domainerr.KindForbidden, domainerr.KindOf(err))
}
