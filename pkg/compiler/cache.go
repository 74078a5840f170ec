package compiler

import (
	"reflect"

	"github.com/dmitrymomot/verify/pkg/cache"
	"github.com/dmitrymomot/verify/pkg/logger"
	"github.com/dmitrymomot/verify/pkg/shape"
)

// Cache owns a rule and the validators compiled from it, one per holder shape.
// Shapes that fail to compile are not cached.
type Cache[A any] struct {
	rule       *Rule[A]
	validators cache.Map[reflect.Type, *Validator[A]]
}

// NewCache returns an empty cache for rule. The rule is checked on first compilation.
func NewCache[A any](rule *Rule[A]) *Cache[A] {
	return &Cache[A]{rule: rule}
}

// GetOrCompile returns the validator for shape t, compiling it on first use.
func (c *Cache[A]) GetOrCompile(t reflect.Type) (*Validator[A], error) {
	t = shape.Deref(t)
	v, err := c.validators.GetOrCompute(t, func() (*Validator[A], error) {
		return Compile(c.rule, t)
	})
	if err != nil {
		log().Warn("validator compilation failed",
			logger.Error(err),
			logger.Rule(c.ruleName()),
			logger.Shape(t),
		)
		return nil, err
	}
	return v, nil
}

func (c *Cache[A]) ruleName() string {
	if c.rule == nil {
		return ""
	}
	return c.rule.Name
}

// Validate runs the rule against holder. An absent holder passes without compiling anything.
func (c *Cache[A]) Validate(holder any, args A) error {
	rv, ok := shape.Of(holder)
	if !ok {
		return nil
	}

	v, err := c.GetOrCompile(rv.Type())
	if err != nil {
		return err
	}

	return v.validate(rv, args)
}

// Len returns the number of compiled shapes.
func (c *Cache[A]) Len() int {
	return c.validators.Len()
}
