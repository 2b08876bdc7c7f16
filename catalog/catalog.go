package catalog

import (
	"slices"
	"strings"
	"sync"

	"github.com/tbxark/lessonflow/types"
)

// Step is one node of the dialogue graph. Every method is pure.
type Step interface {
	ID() types.StepID
	Prompt(locale types.Locale) string
	Options(locale types.Locale, data map[string]string) []string
	FreeText() bool
	// Next returns false when the reply is not understood.
	Next(reply string) (types.StepID, bool)
}

// Binding names the collected fields a step writes. A binding with more than
// one field splits the reply on commas and assigns the parts in order.
type Binding struct {
	Fields    []types.Field
	Normalize func(reply string) string
}

func (b Binding) None() bool {
	return len(b.Fields) == 0
}

func (b Binding) Values(reply string) map[types.Field]string {
	switch len(b.Fields) {
	case 0:
		return nil
	case 1:
		value := reply
		if b.Normalize != nil {
			value = b.Normalize(reply)
		}
		return map[types.Field]string{b.Fields[0]: value}
	}
	parts := strings.Split(reply, ",")
	values := make(map[types.Field]string, len(b.Fields))
	for i, field := range b.Fields {
		value := ""
		if i < len(parts) {
			value = strings.TrimSpace(parts[i])
		}
		if value == "" {
			value = types.NotAvailable
		}
		values[field] = value
	}
	return values
}

type Catalog struct {
	steps    map[types.StepID]Step
	bindings map[types.StepID]Binding
	order    []types.StepID
}

func New() *Catalog {
	return &Catalog{
		steps:    map[types.StepID]Step{},
		bindings: map[types.StepID]Binding{},
	}
}

// Register adds a step and its binding. Registering an id twice replaces it.
func (c *Catalog) Register(s Step, binding Binding) {
	if _, ok := c.steps[s.ID()]; !ok {
		c.order = append(c.order, s.ID())
	}
	c.steps[s.ID()] = s
	c.bindings[s.ID()] = binding
}

func (c *Catalog) Lookup(id types.StepID) (Step, bool) {
	s, ok := c.steps[id]
	return s, ok
}

func (c *Catalog) Binding(id types.StepID) Binding {
	return c.bindings[id]
}

// Steps lists the registered step ids in registration order.
func (c *Catalog) Steps() []types.StepID {
	return slices.Clone(c.order)
}

// AllowedPaths returns the JSON pointers of every bound field.
func (c *Catalog) AllowedPaths() map[string]bool {
	paths := map[string]bool{}
	for _, b := range c.bindings {
		for _, f := range b.Fields {
			paths["/"+string(f)] = true
		}
	}
	return paths
}

var defaultCatalog = sync.OnceValue(buildDefault)

// Default returns the process-wide catalog of the four lesson-planning flows.
func Default() *Catalog {
	return defaultCatalog()
}
