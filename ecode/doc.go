// Package ecode provides canned message builders for envelope
// responses. The returned strings double as translation keys: fed
// through an i18n resolver they localize, and untranslated they read
// as plain English fallbacks.
//
//	e.MarkError(ecode.Failed("user"), map[string]string{
//	    "email": ecode.FieldIsRequired("email"),
//	})
package ecode
