// Package catalog is the caller-owned registry of budget categories.
// A Catalog is not safe for concurrent use; hosts serialize access.
package catalog

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/deeppockets-dev/deeppockets/internal/model"
)

// Catalog provides ordered, O(1) by-id access to category templates.
type Catalog struct {
	categories []model.BudgetCategory
	byID       map[string]int
	log        logrus.FieldLogger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used to report assumption fallbacks.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Catalog) { c.log = l }
}

// New creates a Catalog from categories in declaration order. Later
// duplicates of an id are ignored.
func New(categories []model.BudgetCategory, opts ...Option) *Catalog {
	c := &Catalog{
		categories: make([]model.BudgetCategory, 0, len(categories)),
		byID:       make(map[string]int, len(categories)),
		log:        discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, cat := range categories {
		if _, dup := c.byID[cat.ID]; dup {
			c.log.WithField("category", cat.ID).Warn("duplicate category id ignored")
			continue
		}
		c.byID[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat.Clone())
	}
	return c
}

// Validate runs template validation over every category.
func (c *Catalog) Validate() error {
	var msgs []model.ValidationError
	for _, cat := range c.categories {
		msgs = append(msgs, cat.Validate()...)
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid catalog: %w (and %d more)", msgs[0], len(msgs)-1)
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// All returns copies of all categories in declaration order.
func (c *Catalog) All() []model.BudgetCategory {
	out := make([]model.BudgetCategory, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.Clone()
	}
	return out
}

// IDs returns category ids in declaration order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.categories))
	for i, cat := range c.categories {
		ids[i] = cat.ID
	}
	return ids
}

// Get returns a copy of the category with id.
func (c *Catalog) Get(id string) (model.BudgetCategory, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.BudgetCategory{}, false
	}
	return c.categories[i].Clone(), true
}

// Exists reports whether a category id exists.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ByType returns all categories of the given type in declaration order.
func (c *Catalog) ByType(t model.CategoryType) []model.BudgetCategory {
	var result []model.BudgetCategory
	for _, cat := range c.categories {
		if cat.Type == t {
			result = append(result, cat.Clone())
		}
	}
	return result
}

// SetRecommendedAmount stores the derived amount for id. Unknown ids are a no-op.
func (c *Catalog) SetRecommendedAmount(id string, amount float64) {
	i, ok := c.byID[id]
	if !ok {
		return
	}
	c.categories[i].RecommendedAmount = amount
}

// EditAssumption parses text into the titled assumption of category id.
// It returns false when the category or title is unknown, or when the
// text did not parse and the assumption's default was stored instead.
func (c *Catalog) EditAssumption(id, title, text string) bool {
	i, ok := c.byID[id]
	if !ok {
		return false
	}
	cat := &c.categories[i]
	for j, a := range cat.Assumptions {
		if a.Title != title {
			continue
		}
		updated, parsed := a.Edit(text)
		cat.Assumptions[j] = updated
		if !parsed {
			c.log.WithFields(logrus.Fields{
				"category":   id,
				"assumption": title,
				"input":      text,
				"default":    a.Default,
			}).Debug("assumption did not parse, using default")
		}
		return parsed
	}
	return false
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
