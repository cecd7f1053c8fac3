package testutil

// MockTemplateProvider is a mock implementation of ports.TemplateProvider.
type MockTemplateProvider struct {
	TemplateFunc func() ([]byte, error)
}

func (m *MockTemplateProvider) Template() ([]byte, error) {
	if m.TemplateFunc != nil {
		return m.TemplateFunc()
	}
	return nil, nil // Default behavior
}
