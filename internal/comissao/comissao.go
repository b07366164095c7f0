// Package comissao implements the commission calculation shared by policy
// issuance and renewal. Both sides of a policy's commission (seguradora →
// corretora and corretora → colaborador) are computed by the same function
// with independent rates; there is no cross-subsidy between them.
package comissao

import (
	"github.com/shopspring/decimal"

	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
)

var cem = decimal.NewFromInt(100)

// Calcular returns premio × percentual / 100 rounded half-up to centavos.
// Pure and idempotent. Fails with INVALID_ARGUMENT when premio is not
// strictly positive or percentual falls outside [0,100].
func Calcular(premio, percentual decimal.Decimal) (decimal.Decimal, error) {
	if !premio.IsPositive() {
		return decimal.Zero, domainerr.Invalid("valorPremio", "prêmio deve ser maior que zero")
	}
	if percentual.IsNegative() || percentual.GreaterThan(cem) {
		return decimal.Zero, domainerr.Invalid("percentualComissao", "percentual deve estar entre 0 e 100")
	}
	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative operands accepted above.
	return premio.Mul(percentual).Div(cem).Round(2), nil
}

// PercentualValido reports whether p is a legal commission percentage.
func PercentualValido(p decimal.Decimal) bool {
	return !p.IsNegative() && !p.GreaterThan(cem)
}
