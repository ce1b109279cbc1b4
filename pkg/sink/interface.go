package sink

// Sink defines the interface for persisting rendered output artifacts
type Sink interface {
	WriteFile(name string, data []byte) error
	Path(name string) string
}
