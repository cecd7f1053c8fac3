package ports

// TemplateProvider defines the interface for sourcing the content used to seed new .aliases files.
type TemplateProvider interface {
	// Template returns the raw template bytes.
	Template() ([]byte, error)
}
