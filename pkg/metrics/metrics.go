// Package metrics builds the tally root scope shared by a service. When
// enabled, counters are exported in Prometheus format.
package metrics

import (
	"io"
	"net/http"
	"time"

	"github.com/uber-go/tally/v4"
	promreporter "github.com/uber-go/tally/v4/prometheus"
)

// Config toggles metric export.
type Config struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Metrics holds the root scope and, when exporting, the scrape handler.
type Metrics struct {
	Scope   tally.Scope
	Handler http.Handler
	closer  io.Closer
}

// New creates the root scope for a service. A disabled configuration yields
// tally.NoopScope and a nil handler.
func New(serviceName string, cfg Config) *Metrics {
	if !cfg.Enabled {
		return &Metrics{Scope: tally.NoopScope}
	}
	reporter := promreporter.NewReporter(promreporter.Options{})
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:         serviceName,
		Tags:           map[string]string{},
		CachedReporter: reporter,
		Separator:      promreporter.DefaultSeparator,
	}, time.Second)
	return &Metrics{Scope: scope, Handler: reporter.HTTPHandler(), closer: closer}
}

// Close flushes and stops the reporting loop.
func (m *Metrics) Close() error {
	if m.closer == nil {
		return nil
	}
	return m.closer.Close()
}
