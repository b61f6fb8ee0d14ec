package mocks

// MockClipboard records copied text
type MockClipboard struct {
	Text string
	Err  error
}

// WriteAll records text, or fails with Err
func (m *MockClipboard) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
