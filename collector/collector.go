package collector

import "github.com/avelys/disktop/model"

// Collector is the interface for all metric collectors.
type Collector interface {
	Name() string
	Collect(snap *model.Snapshot) error
}

// Registry holds all registered collectors.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a collector.
func (r *Registry) Add(c Collector) {
	r.collectors = append(r.collectors, c)
}

// CollectAll runs all collectors against the snapshot. A failing collector
// leaves its fields zero; the panel simply draws less.
func (r *Registry) CollectAll(snap *model.Snapshot) []error {
	var errs []error
	for _, c := range r.collectors {
		if err := c.Collect(snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
