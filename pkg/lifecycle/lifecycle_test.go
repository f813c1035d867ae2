package lifecycle_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/JaimeStill/sedam/pkg/lifecycle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStart_AllHooksSucceed(t *testing.T) {
	lc := lifecycle.New()

	var mu sync.Mutex
	ran := map[string]bool{}
	for _, name := range []string{"database", "storage"} {
		lc.OnStartup(name, func(context.Context) error {
			mu.Lock()
			ran[name] = true
			mu.Unlock()
			return nil
		})
	}

	assert.False(t, lc.Ready())
	require.NoError(t, lc.Start())
	assert.True(t, lc.Ready())
	assert.Equal(t, map[string]bool{"database": true, "storage": true}, ran)

	require.NoError(t, lc.Shutdown(time.Second))
}

func TestStart_HookFailure(t *testing.T) {
	lc := lifecycle.New()
	boom := errors.New("ping failed")

	lc.OnStartup("database", func(context.Context) error { return boom })
	lc.OnStartup("storage", func(context.Context) error { return nil })

	err := lc.Start()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "database")
	assert.False(t, lc.Ready())

	require.NoError(t, lc.Shutdown(time.Second))
}

func TestShutdown_ReverseOrder(t *testing.T) {
	lc := lifecycle.New()

	var order []string
	lc.OnShutdown("database", func(context.Context) error {
		order = append(order, "database")
		return nil
	})
	lc.OnShutdown("http", func(context.Context) error {
		order = append(order, "http")
		return nil
	})

	require.NoError(t, lc.Shutdown(time.Second))
	assert.Equal(t, []string{"http", "database"}, order)
	assert.Error(t, lc.Context().Err())
}

func TestShutdown_Timeout(t *testing.T) {
	lc := lifecycle.New()
	release := make(chan struct{})

	lc.OnShutdown("stuck", func(ctx context.Context) error {
		<-release
		return nil
	})

	err := lc.Shutdown(10 * time.Millisecond)
	assert.ErrorIs(t, err, lifecycle.ErrShutdownTimeout)

	close(release)
}
