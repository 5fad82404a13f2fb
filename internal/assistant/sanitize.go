package assistant

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Sanitize убирает HTML из сгенерированного текста, оставляя только текстовое содержимое.
// Сущности раскрываются до политики, чтобы закодированная разметка тоже удалялась;
// после политики остаются только экранированные символы текста.
func Sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(html.UnescapeString(text))))
}
