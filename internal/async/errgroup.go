// Package async provides a small helper on top of golang.org/x/sync/errgroup,
// grounded on dolt's go/libraries/utils/async package: run a unit of work
// under its own cancelable child context inside a shared errgroup, and hand
// the caller a CancelFunc to stop that one unit without affecting siblings
// sharing the same group.
package async

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// errCanceledByCaller is the cause GoWithCancel sets on its child context
// when its own CancelFunc is invoked, so the errgroup can tell "the caller
// deliberately stopped this one unit" apart from "the parent context (or
// another member of the group) failed" without every fn needing to know
// about the distinction itself.
var errCanceledByCaller = errors.New("canceled by GoWithCancel caller")

// GoWithCancel runs fn in eg under a context derived from ctx, returning a
// function that cancels fn's context specifically (the other members of eg
// are unaffected). If fn returns an error solely because the returned
// CancelFunc was called, that error is swallowed rather than failing the
// whole group; any other error (including the parent ctx being canceled)
// still propagates through eg.Wait(). Used by storage.Table.CompressChunk
// for its per-column fan-out, joined through one errgroup; it calls the
// returned CancelFuncs only after the join.
func GoWithCancel(ctx context.Context, eg *errgroup.Group, fn func(ctx context.Context) error) context.CancelFunc {
	childCtx, cancel := context.WithCancelCause(ctx)
	eg.Go(func() error {
		err := fn(childCtx)
		if err != nil && context.Cause(childCtx) == errCanceledByCaller {
			return nil
		}
		return err
	})
	return func() { cancel(errCanceledByCaller) }
}
