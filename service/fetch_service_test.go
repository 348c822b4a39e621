package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shellFetcher(script string, timeout time.Duration) *ScriptFetcher {
	return NewScriptFetcher([]string{"/bin/sh", "-c", script}, timeout)
}

func TestFetchRawEmptyArrayIsValid(t *testing.T) {
	f := shellFetcher(`echo '[]'`, 5*time.Second)
	items, err := f.FetchRaw(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetchRawParsesItems(t *testing.T) {
	f := shellFetcher(`echo '[{"title":"Recall Issued","content":"Units recalled.","source":"Wire","category":"Regulatory Compliance","industry":"HVAC","url":"https://example.com","publishedAt":"2025-06-01T10:00:00","tags":["EPA"]}]'`, 5*time.Second)
	items, err := f.FetchRaw(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Recall Issued", items[0].Title)
	assert.Equal(t, "HVAC", items[0].Industry)
	assert.Equal(t, []string{"EPA"}, items[0].Tags)
}

func TestFetchRawNonZeroExit(t *testing.T) {
	f := shellFetcher(`echo 'boom' >&2; exit 3`, 5*time.Second)
	_, err := f.FetchRaw(context.Background())
	var procErr *FetchProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, 3, procErr.ExitCode)
	assert.Equal(t, "boom", procErr.Stderr)
	assert.True(t, IsFetchError(err))
}

func TestFetchRawMalformedOutput(t *testing.T) {
	f := shellFetcher(`echo 'not json at all'`, 5*time.Second)
	_, err := f.FetchRaw(context.Background())
	var parseErr *FetchParseError
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, IsFetchError(err))
}

func TestFetchRawTimeoutKillsProcess(t *testing.T) {
	f := shellFetcher(`sleep 5; echo '[]'`, 100*time.Millisecond)
	start := time.Now()
	_, err := f.FetchRaw(context.Background())
	var timeoutErr *FetchTimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.True(t, IsFetchError(err))
}

func TestFetchRawCanceledContextIsNotAProcessFailure(t *testing.T) {
	f := shellFetcher(`sleep 5; echo '[]'`, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	_, err := f.FetchRaw(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	var procErr *FetchProcessError
	assert.False(t, errors.As(err, &procErr), "cancellation must not be reported as a process failure")
}

func TestIsFetchErrorRejectsOtherErrors(t *testing.T) {
	assert.False(t, IsFetchError(errors.New("something else")))
	assert.False(t, IsFetchError(nil))
}
