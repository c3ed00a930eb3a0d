package catalog

import (
	"strconv"
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Claves de filtro que manda la vitrina. Cualquier otra clave se ignora.
const (
	FilterName         = "name"
	FilterMaxPrice     = "maxPrice"
	FilterFreeShipping = "freeShipping"
)

// Narrow aplica los filtros de la vitrina sobre un listado ya obtenido.
// Los filtros se combinan con AND; cero filtros deja el listado intacto.
//   - name: subcadena del nombre del producto, sin distinguir mayúsculas.
//   - maxPrice: cota superior inclusiva; solo se aplica si el valor es un número positivo.
//   - freeShipping: si es true, deja solo productos con envío gratis.
func Narrow(products []dto.ProductResponse, filters map[string]string) []dto.ProductResponse {
	if len(filters) == 0 {
		return products
	}
	name, hasName := filters[FilterName]
	nameFold := fold(name)

	var maxPrice decimal.Decimal
	hasMaxPrice := false
	if raw, ok := filters[FilterMaxPrice]; ok {
		if d, err := decimal.NewFromString(strings.TrimSpace(raw)); err == nil && d.IsPositive() {
			maxPrice = d
			hasMaxPrice = true
		}
	}

	freeShipping := false
	if raw, ok := filters[FilterFreeShipping]; ok {
		if b, err := strconv.ParseBool(raw); err == nil && b {
			freeShipping = true
		}
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if hasName && !strings.Contains(fold(p.Name), nameFold) {
			continue
		}
		if hasMaxPrice && p.Price.GreaterThan(maxPrice) {
			continue
		}
		if freeShipping && !p.FreeShipping {
			continue
		}
		out = append(out, p)
	}
	return out
}

// fold normaliza a NFC antes de bajar a minúsculas, para que un acento compuesto
// y uno descompuesto comparen igual (entrada típica de navegadores distintos).
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
