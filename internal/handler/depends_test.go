package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(target string) echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
}

func TestDependencyResolvesOncePerRequest(t *testing.T) {
	t.Parallel()

	calls := 0
	dep := Depend("counter", func(echo.Context) (int, error) {
		calls++
		return calls, nil
	})

	c := newTestContext("/")

	first, err := dep.Resolve(c)
	require.NoError(t, err)
	second, err := dep.Resolve(c)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, calls)

	// A new request gets a new value.
	third, err := dep.Resolve(newTestContext("/"))
	require.NoError(t, err)
	assert.Equal(t, 2, third)
}

func TestDependencyNoCache(t *testing.T) {
	t.Parallel()

	calls := 0
	dep := Depend("counter", func(echo.Context) (int, error) {
		calls++
		return calls, nil
	}).NoCache()

	c := newTestContext("/")
	_, _ = dep.Resolve(c)
	_, _ = dep.Resolve(c)

	assert.Equal(t, 2, calls)
	assert.Equal(t, "counter", dep.Name())
}

func TestDependencyCachesErrors(t *testing.T) {
	t.Parallel()

	calls := 0
	boom := errors.New("boom")
	dep := Depend("failing", func(echo.Context) (string, error) {
		calls++
		return "", boom
	})

	c := newTestContext("/")
	_, err := dep.Resolve(c)
	assert.ErrorIs(t, err, boom)
	_, err = dep.Resolve(c)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestSubDependencySharesCache(t *testing.T) {
	t.Parallel()

	baseCalls := 0
	base := Depend("base", func(echo.Context) (int, error) {
		baseCalls++
		return 21, nil
	})
	doubled := Depend("doubled", func(c echo.Context) (int, error) {
		v, err := base.Resolve(c)
		return v * 2, err
	})

	c := newTestContext("/")
	v, err := doubled.Resolve(c)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = base.Resolve(c)
	require.NoError(t, err)
	assert.Equal(t, 21, v)
	assert.Equal(t, 1, baseCalls)
}

func TestDependsStopsAtFirstError(t *testing.T) {
	t.Parallel()

	var ran []string
	ok := Depend("ok", func(echo.Context) (string, error) {
		ran = append(ran, "ok")
		return "fine", nil
	})
	fail := Depend("fail", func(echo.Context) (string, error) {
		ran = append(ran, "fail")
		return "", errors.New("denied")
	})
	never := Depend("never", func(echo.Context) (string, error) {
		ran = append(ran, "never")
		return "", nil
	})

	handlerRan := false
	h := Depends(ok, fail, never)(func(echo.Context) error {
		handlerRan = true
		return nil
	})

	err := h(newTestContext("/"))
	require.EqualError(t, err, "denied")
	assert.Equal(t, []string{"ok", "fail"}, ran)
	assert.False(t, handlerRan)
}

func TestDependsValuesReachHandler(t *testing.T) {
	t.Parallel()

	calls := 0
	token := Depend("token", func(echo.Context) (string, error) {
		calls++
		return "secret", nil
	})

	var got string
	h := Depends(token)(func(c echo.Context) error {
		v, err := token.Resolve(c)
		got = v
		return err
	})

	require.NoError(t, h(newTestContext("/")))
	assert.Equal(t, "secret", got)
	assert.Equal(t, 1, calls)
}
