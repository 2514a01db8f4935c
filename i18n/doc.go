// Package i18n provides message resolution for response messages.
//
// A Resolver maps a message key to a display string, falling back to
// the key itself when no translation exists. Several implementations
// are provided:
//
//   - Passthrough: returns every key unchanged (the default)
//   - Map: static in-memory key-to-message map
//   - Catalog: file-backed catalog with hot reload
//   - Translator: adapter over universal-translator
//
// # Usage
//
//	catalog, err := i18n.NewCatalog("translations.yaml")
//	if err != nil {
//	    return err
//	}
//	catalog.Watch(nil)
//
//	e := resp.NewEnvelope(resp.WithResolver(catalog))
//	e.MarkSuccess("user.created")
//
// Resolvers never fail: a missing translation resolves to the key, so
// untranslated deployments degrade to raw keys rather than errors.
package i18n
