// Package placeholder resolves ${keyPath[?default]} expressions embedded
// in configuration values.
//
// Grammar:
//
//	token      := "${" keyPath [ "?" defaultText ] "}"
//	keyPath    := hierarchical key in the host's delimiter convention
//	defaultText:= raw text, may itself contain nested tokens
//
// Resolution is recursive: a referenced value may contain further tokens,
// and a default may reference other keys. A token whose key is absent and
// that carries no default is kept as its literal source text, so
// resolution degrades to the identity transform instead of failing. True
// reference cycles terminate per a configurable policy; the default keeps
// the token literal and reports the cycle through the logging hook.
//
// View wraps a provider.Aggregate with the same Provider surface, so a
// resolving configuration can stand in anywhere a raw provider can.
package placeholder
