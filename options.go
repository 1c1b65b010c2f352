package collections

import (
	"errors"

	"github.com/joeycumines/logiface"
)

// config holds resolved construction options, shared by every engine.
type config[T any] struct {
	eq       Equality[T]
	logger   *logiface.Logger[logiface.Event]
	items    []T
	capacity int
	allowNil bool
	distinct bool
}

// Option configures a container at construction.
type Option[T any] interface {
	apply(*config[T]) error
}

// optionImpl implements Option.
type optionImpl[T any] struct {
	applyFunc func(*config[T]) error
}

func (o *optionImpl[T]) apply(cfg *config[T]) error { return o.applyFunc(cfg) }

// WithEquality sets the equality strategy, fixed for the container's
// lifetime. Defaults to [StructuralEquality].
func WithEquality[T any](eq Equality[T]) Option[T] {
	return &optionImpl[T]{func(cfg *config[T]) error {
		if eq == nil {
			return errors.New(`collections: WithEquality requires a non-nil strategy`)
		}
		cfg.eq = eq
		return nil
	}}
}

// WithNilAllowed sets whether nil items are accepted (default false).
// Construction fails if allowed is true and the item type cannot represent
// nil.
func WithNilAllowed[T any](allowed bool) Option[T] {
	return &optionImpl[T]{func(cfg *config[T]) error {
		cfg.allowNil = allowed
		return nil
	}}
}

// WithDistinct sets whether duplicate items (under the configured equality
// strategy) are rejected (default false). Rejection is signaled by the false
// return of Add and friends, never by an error.
func WithDistinct[T any](distinct bool) Option[T] {
	return &optionImpl[T]{func(cfg *config[T]) error {
		cfg.distinct = distinct
		return nil
	}}
}

// WithCapacity hints the initial backing capacity.
func WithCapacity[T any](capacity int) Option[T] {
	return &optionImpl[T]{func(cfg *config[T]) error {
		if capacity < 0 {
			return errors.New(`collections: WithCapacity requires a non-negative capacity`)
		}
		cfg.capacity = capacity
		return nil
	}}
}

// WithItems seeds the container's initial contents. Items are subject to the
// nil and duplicate policies: a nil item fails construction, a duplicate is
// silently skipped when [WithDistinct] applies. Seeding does not bump the
// version counter or emit events.
func WithItems[T any](items ...T) Option[T] {
	return &optionImpl[T]{func(cfg *config[T]) error {
		cfg.items = append(cfg.items, items...)
		return nil
	}}
}

// WithLogger attaches an optional structured logger, used to trace
// structural mutations at debug level. The logiface facade is nil-safe, so
// the default (nil) disables logging entirely.
func WithLogger[T any](logger *logiface.Logger[logiface.Event]) Option[T] {
	return &optionImpl[T]{func(cfg *config[T]) error {
		cfg.logger = logger
		return nil
	}}
}

// resolveOptions applies opts over defaults, skipping nil options.
func resolveOptions[T any](opts []Option[T]) (*config[T], error) {
	cfg := &config[T]{eq: StructuralEquality[T]()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.allowNil && !typeIsNilable[T]() {
		return nil, errors.New(`collections: WithNilAllowed requires a nilable item type`)
	}
	return cfg, nil
}
