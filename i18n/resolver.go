package i18n

import (
	ut "github.com/go-playground/universal-translator"
)

// Resolver resolves a message key to a display string.
// Implementations return the key itself when no translation exists.
type Resolver interface {
	Resolve(key string) string
}

// Func adapts a plain function to the Resolver interface.
type Func func(key string) string

// Resolve calls f(key).
func (f Func) Resolve(key string) string {
	return f(key)
}

// Passthrough returns a resolver that returns every key unchanged.
func Passthrough() Resolver {
	return Func(func(key string) string {
		return key
	})
}

// Map is a resolver backed by a static key-to-message map.
type Map map[string]string

// Resolve returns the mapped message, or the key when unmapped.
func (m Map) Resolve(key string) string {
	if msg, ok := m[key]; ok {
		return msg
	}
	return key
}

// Translator adapts a universal-translator Translator to the Resolver
// interface. Untranslated keys fall back to the key itself.
type Translator struct {
	trans ut.Translator
}

// NewTranslator creates a resolver over the given translator.
func NewTranslator(trans ut.Translator) *Translator {
	return &Translator{trans: trans}
}

// Resolve looks the key up through the translator.
func (t *Translator) Resolve(key string) string {
	if t.trans == nil {
		return key
	}
	msg, err := t.trans.T(key)
	if err != nil {
		return key
	}
	return msg
}
