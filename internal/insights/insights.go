// internal/insights/insights.go
// Package insights supplies per-model insight metrics for the gallery's
// "why this model matters" panel.
package insights

import (
	"math/rand"
	"time"
)

// Insights holds the metrics displayed for a selected model.
type Insights struct {
	ValidationAUC       float64
	DriftScore          float64
	DownstreamConsumers int
	PipelinesUsing      int
}

// Provider produces insight metrics for a model. The dashboard depends only
// on this interface, so the placeholder numbers can be swapped for a real
// monitoring feed without touching the filtering core.
type Provider interface {
	ModelInsights(modelName string) Insights
}

// Value ranges for the illustrative metrics.
const (
	aucMin   = 0.78
	aucMax   = 0.96
	driftMin = 0.01
	driftMax = 0.20

	consumersMin = 4
	consumersMax = 32
	pipelinesMin = 2
	pipelinesMax = 12
)

// RandomProvider samples illustrative metrics. The values carry no real
// monitoring signal and are regenerated on every call.
type RandomProvider struct {
	rng *rand.Rand
}

// NewRandomProvider returns a provider seeded from the clock.
func NewRandomProvider() *RandomProvider {
	return NewSeededProvider(time.Now().UnixNano())
}

// NewSeededProvider returns a provider with a fixed seed, for deterministic
// output in tests.
func NewSeededProvider(seed int64) *RandomProvider {
	return &RandomProvider{rng: rand.New(rand.NewSource(seed))}
}

// ModelInsights samples a fresh set of metrics. The model name is accepted
// for interface symmetry with real providers but does not influence the
// sample.
func (p *RandomProvider) ModelInsights(_ string) Insights {
	return Insights{
		ValidationAUC:       p.uniform(aucMin, aucMax),
		DriftScore:          p.uniform(driftMin, driftMax),
		DownstreamConsumers: p.intn(consumersMin, consumersMax),
		PipelinesUsing:      p.intn(pipelinesMin, pipelinesMax),
	}
}

// uniform samples from [min, max).
func (p *RandomProvider) uniform(min, max float64) float64 {
	return min + p.rng.Float64()*(max-min)
}

// intn samples an integer from [min, max).
func (p *RandomProvider) intn(min, max int) int {
	return min + p.rng.Intn(max-min)
}
