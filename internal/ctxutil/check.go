// Package ctxutil provides context utility functions.
package ctxutil

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/mrz1836/rcli/internal/errors"
)

// Canceled returns nil while ctx is live. A canceled ctx (Ctrl+C) yields
// errors.ErrOperationCanceled wrapping context.Canceled; any other context
// error is returned as is.
// Signing and verification call it once at entry; reads are not interruptible.
func Canceled(ctx context.Context) error {
	err := ctx.Err()
	if stderrors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", errors.ErrOperationCanceled, err)
	}
	return err
}
