package i18n

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

func TestPassthrough(t *testing.T) {
	r := Passthrough()
	if got := r.Resolve("user.created"); got != "user.created" {
		t.Errorf("expected key passthrough, got %q", got)
	}
}

func TestFunc(t *testing.T) {
	r := Func(func(key string) string {
		return "translated:" + key
	})
	if got := r.Resolve("k"); got != "translated:k" {
		t.Errorf("expected translated:k, got %q", got)
	}
}

func TestMap(t *testing.T) {
	r := Map{"user.created": "User created"}

	if got := r.Resolve("user.created"); got != "User created" {
		t.Errorf("expected mapped message, got %q", got)
	}
	if got := r.Resolve("user.deleted"); got != "user.deleted" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestTranslatorFallback(t *testing.T) {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	r := NewTranslator(trans)
	if got := r.Resolve("unregistered.key"); got != "unregistered.key" {
		t.Errorf("expected key fallback for untranslated key, got %q", got)
	}
}

func TestTranslatorRegistered(t *testing.T) {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")
	if err := trans.Add("user.created", "User created", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewTranslator(trans)
	if got := r.Resolve("user.created"); got != "User created" {
		t.Errorf("expected registered translation, got %q", got)
	}
}

func TestTranslatorNil(t *testing.T) {
	r := NewTranslator(nil)
	if got := r.Resolve("k"); got != "k" {
		t.Errorf("expected key fallback with nil translator, got %q", got)
	}
}
