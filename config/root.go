package config

// RootOptions holds the settings describing the provider's single root.
// None of it affects how identifiers are resolved except Namespace.
type RootOptions struct {
	Dir       string   // Absolute path of the exposed directory tree
	Namespace string   // Identifier prefix naming the root (must not contain ':')
	Title     string   // Human readable root title
	Summary   string   // Human readable root subtitle
	MimeTypes []string // Content types accepted for new documents
}
