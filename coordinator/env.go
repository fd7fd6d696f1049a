package coordinator

import (
	"context"

	"github.com/amp-labs/arrange/envutil"
	"github.com/amp-labs/arrange/errors"
	"github.com/amp-labs/arrange/logger"
	"github.com/amp-labs/arrange/ordering"
	"github.com/amp-labs/arrange/presentation"
)

// Environment variables read by FromEnv.
const (
	EnvOrdering     = "ARRANGE_ORDERING"
	EnvPresentation = "ARRANGE_PRESENTATION"
)

// FromEnv builds a coordinator whose strategies are chosen by name from the
// environment (or from envutil overrides carried by ctx):
//
//   - ARRANGE_ORDERING: "insertion" (default) or "selection"
//   - ARRANGE_PRESENTATION: "forward" (default) or "reverse"
//
// Unknown names fail with an error wrapping errors.ErrInvalidConfiguration;
// every bad setting is reported, not just the first.
func FromEnv[T Element[T]](ctx context.Context, label string, opts ...Option) (*Coordinator[T], error) {
	problems := &errors.Collection{}

	ord, err := envutil.Map(
		envutil.Lower(ctx, EnvOrdering, envutil.Default(ordering.InsertionName)),
		func(name string) (ordering.Strategy[T], error) {
			return ordering.Lookup[T](name)
		}).Value()
	problems.Add(err)

	pres, err := envutil.Map(
		envutil.Lower(ctx, EnvPresentation, envutil.Default(presentation.ForwardName)),
		presentation.Lookup[T]).Value()
	problems.Add(err)

	if problems.HasError() {
		return nil, logger.AnnotateError(problems.GetError(), "coordinator", label)
	}

	logger.Get(ctx).Debug("strategies selected from environment",
		"coordinator", label,
		"ordering", ord.Name(),
		"presentation", pres.Name())

	return New[T](label, ord, pres, opts...)
}
