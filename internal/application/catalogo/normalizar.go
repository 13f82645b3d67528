package catalogo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitaDiacriticos descompone (NFD), elimina las marcas combinantes y
// recompone (NFC): "Huánuco" → "Huanuco".
var quitaDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizarTermino deja un término de búsqueda comparable: sin tildes,
// sin espacios sobrantes y en minúsculas. Los nombres de ciudad llegan del
// frontend con grafías mixtas ("Huánuco", "huanuco", "HUANUCO").
func normalizarTermino(s string) string {
	limpio, _, err := transform.String(quitaDiacriticos, s)
	if err != nil {
		limpio = s
	}
	return strings.ToLower(strings.Join(strings.Fields(limpio), " "))
}

// mismoTermino compara dos términos tras normalizarlos.
func mismoTermino(a, b string) bool {
	return normalizarTermino(a) == normalizarTermino(b)
}
