package export

import "sync"

// Registry manages the available image exporters.
type Registry struct {
	mu        sync.RWMutex
	exporters map[string]Exporter // key can be either name or media type
}

var defaultRegistry = &Registry{
	exporters: make(map[string]Exporter),
}

// Register registers an exporter using both its name and media type.
func Register(e Exporter) {
	defaultRegistry.Register(e)
}

// Get retrieves an exporter by name or media type.
func Get(nameOrMediaType string) (Exporter, error) {
	return defaultRegistry.Get(nameOrMediaType)
}

// List returns all registered exporters.
func List() []Exporter {
	return defaultRegistry.List()
}

// Register registers an exporter using both its name and media type.
func (r *Registry) Register(e Exporter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.exporters[e.Name()] = e
	r.exporters[e.MediaType()] = e
}

// Get retrieves an exporter by name or media type.
func (r *Registry) Get(nameOrMediaType string) (Exporter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.exporters[nameOrMediaType]
	if !ok {
		return nil, ErrExporterNotFound
	}
	return e, nil
}

// List returns all registered exporters (deduplicated).
func (r *Registry) List() []Exporter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Exporter]bool)
	exporters := make([]Exporter, 0, len(r.exporters))

	for _, e := range r.exporters {
		if !seen[e] {
			seen[e] = true
			exporters = append(exporters, e)
		}
	}

	return exporters
}
