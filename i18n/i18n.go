// Package i18n translates the few user-facing labels of the application.
// The language is taken from KEYTICKER_LANG, then the config file, then the
// system locale.
package i18n

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

var (
	mu   sync.RWMutex
	lang = "en"
)

var translations = map[string]map[string]string{
	"Show Window": {
		"pt": "Mostrar janela",
		"es": "Mostrar ventana",
		"ru": "Показать окно",
		"zh": "显示窗口",
	},
	"Hide Window": {
		"pt": "Ocultar janela",
		"es": "Ocultar ventana",
		"ru": "Скрыть окно",
		"zh": "隐藏窗口",
	},
	"Exit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
		"zh": "退出",
	},
}

// Init selects the display language. preferred is the configured language
// and may be empty.
func Init(preferred string) {
	selected := detect(preferred)
	mu.Lock()
	lang = selected
	mu.Unlock()
	slog.Info("language selected", "lang", selected)
}

func detect(preferred string) string {
	if forced := strings.TrimSpace(os.Getenv("KEYTICKER_LANG")); forced != "" {
		slog.Debug("KEYTICKER_LANG is set", "lang", forced)
		return normalize(forced)
	}
	if preferred = strings.TrimSpace(preferred); preferred != "" {
		return normalize(preferred)
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		slog.Warn("could not get user locale, defaulting to english", "error", err)
		return "en"
	}
	if len(userLocales) == 0 {
		slog.Debug("no user locale detected, defaulting to english")
		return "en"
	}
	slog.Debug("detected user locale", "locale", userLocales[0])
	return normalize(userLocales[0])
}

func normalize(tag string) string {
	tag = strings.ToLower(tag)
	for _, l := range []string{"pt", "es", "ru", "zh"} {
		if strings.HasPrefix(tag, l) {
			return l
		}
	}
	return "en"
}

// T returns the translation of key, or key itself.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// GetLang returns the selected language code.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
