// Package scope resolves what a requester may see or act upon. The legacy
// system re-derived permissions per handler from a free-text job title; here
// the profile is a closed enum resolved once per request (from the JWT) and
// threaded explicitly into every scope-sensitive call.
package scope

import (
	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
)

// Perfil is the closed set of access profiles. ADMINISTRADOR and GERENTE are
// unrestricted; CORRETOR only reaches records whose responsible agent is the
// requester.
type Perfil string

const (
	PerfilAdministrador Perfil = "ADMINISTRADOR"
	PerfilGerente       Perfil = "GERENTE"
	PerfilCorretor      Perfil = "CORRETOR"
)

// ParsePerfil validates a profile string coming from storage or a token.
func ParsePerfil(s string) (Perfil, error) {
	switch Perfil(s) {
	case PerfilAdministrador, PerfilGerente, PerfilCorretor:
		return Perfil(s), nil
	}
	return "", domainerr.Invalid("perfil", "perfil desconhecido: "+s)
}

// Scope is the visibility predicate of one authenticated request.
type Scope struct {
	Perfil        Perfil
	ColaboradorID uint
}

// Irrestrito reports whether the scope sees the whole broker-house dataset.
func (s Scope) Irrestrito() bool {
	return s.Perfil == PerfilAdministrador || s.Perfil == PerfilGerente
}

// PodeAcessar reports whether a record owned by colaboradorID is reachable.
func (s Scope) PodeAcessar(colaboradorID uint) bool {
	return s.Irrestrito() || s.ColaboradorID == colaboradorID
}

// Autorizar returns FORBIDDEN when the record's responsible agent is outside
// the scope. The record's existence is intentionally not masked as NOT_FOUND;
// see DESIGN.md.
func (s Scope) Autorizar(colaboradorID uint) error {
	if !s.PodeAcessar(colaboradorID) {
		return domainerr.Forbidden("registro fora do escopo do colaborador")
	}
	return nil
}

// Aplicar narrows a gorm query to the scope using the given agent column
// (e.g. "colaborador_id"). Unrestricted scopes pass through unchanged.
func (s Scope) Aplicar(q *gorm.DB, coluna string) *gorm.DB {
	if s.Irrestrito() {
		return q
	}
	return q.Where(coluna+" = ?", s.ColaboradorID)
}
