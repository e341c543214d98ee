// Package textutil normaliza texto para búsquedas insensibles a tildes y
// mayúsculas (los nombres de clientes y marcas llegan con acentos).
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve el texto en minúsculas y sin marcas diacríticas:
// "Diseño Gráfico" → "diseno grafico". Si la transformación falla devuelve
// el texto en minúsculas sin tocar.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
