// Package engine turns monthly income and category assumptions into
// recommended amounts. An Engine holds no catalog state and does no locking;
// callers serialize writes to a catalog.
package engine

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/deeppockets-dev/deeppockets/internal/catalog"
	"github.com/deeppockets-dev/deeppockets/internal/model"
)

// Engine dispatches categories to special formulas or the default rule.
type Engine struct {
	registry *Registry
	log      logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the built-in formula registry. A nil registry is
// ignored.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine using DefaultRegistry unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{registry: DefaultRegistry()}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		e.log = l
	}
	return e
}

// DefaultAmount applies the percentage-of-income rule. Total categories
// report a yearly figure.
func DefaultAmount(cat model.BudgetCategory, monthlyIncome float64) float64 {
	amount := monthlyIncome * cat.AllocationPercentage
	if cat.DisplayType == model.DisplayTotal {
		amount *= 12
	}
	return amount
}

// Recommend computes the recommended amount for one category. Negative or
// non-finite income is treated as zero.
func (e *Engine) Recommend(cat model.BudgetCategory, monthlyIncome float64) float64 {
	if monthlyIncome < 0 || math.IsNaN(monthlyIncome) || math.IsInf(monthlyIncome, 0) {
		monthlyIncome = 0
	}
	if f, ok := e.registry.Get(cat.ID); ok {
		return f(cat, monthlyIncome)
	}
	return DefaultAmount(cat, monthlyIncome)
}

// Recompute refreshes the recommended amount of every category in c.
func (e *Engine) Recompute(c *catalog.Catalog, monthlyIncome float64) {
	if monthlyIncome < 0 {
		e.log.WithField("income", monthlyIncome).Debug("negative income treated as zero")
	}
	for _, cat := range c.All() {
		c.SetRecommendedAmount(cat.ID, e.Recommend(cat, monthlyIncome))
	}
	e.log.WithFields(logrus.Fields{
		"income":     monthlyIncome,
		"categories": c.Len(),
	}).Debug("recomputed recommendations")
}

// RecomputeOne refreshes a single category, typically after an assumption
// edit. It reports false for an unknown id.
func (e *Engine) RecomputeOne(c *catalog.Catalog, id string, monthlyIncome float64) bool {
	cat, ok := c.Get(id)
	if !ok {
		return false
	}
	c.SetRecommendedAmount(id, e.Recommend(cat, monthlyIncome))
	return true
}
