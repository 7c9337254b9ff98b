package ctxutil_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/rcli/internal/ctxutil"
	"github.com/mrz1836/rcli/internal/errors"
)

func TestCanceled(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, cancelExpired := context.WithDeadline(context.Background(), time.Unix(0, 0))
	defer cancelExpired()

	tests := []struct {
		name         string
		ctx          context.Context //nolint:containedctx // table input
		want         error
		userCanceled bool
	}{
		{"live", context.Background(), nil, false},
		{"canceled", canceled, context.Canceled, true},
		{"past deadline", expired, context.DeadlineExceeded, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ctxutil.Canceled(tc.ctx)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.userCanceled, stderrors.Is(err, errors.ErrOperationCanceled))
		})
	}
}
