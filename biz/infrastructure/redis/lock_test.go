package redis

import (
	"context"
	"errors"
	"testing"

	"school-hub/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()
	key := ScheduleLockKey("c1", "Monday")
	assert.Equal(t, "lock:schedule:c1:Monday", key)

	unlock, err := l.Lock(ctx, key)
	require.NoError(t, err)

	_, err = l.Lock(ctx, key)
	assert.True(t, errors.Is(err, consts.ErrScheduleBusy))

	other, err := l.Lock(ctx, ScheduleLockKey("c1", "Tuesday"))
	require.NoError(t, err)
	other()

	unlock()
	again, err := l.Lock(ctx, key)
	require.NoError(t, err)
	again()
}
