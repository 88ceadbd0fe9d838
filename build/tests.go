package build

import (
	"context"

	"github.com/outofforest/build"
	"github.com/outofforest/buildgo"
)

func setup(ctx context.Context, deps build.DepsFunc) error {
	deps(goTests)
	return nil
}

func goTests(ctx context.Context, deps build.DepsFunc) error {
	return buildgo.GoTest(ctx, deps, ".")
}
