package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/NikhilBollineni/newsproject/types"
)

// Fetcher produces raw news items. Injectable so tests and alternate sources
// can stand in for the real subprocess.
type Fetcher interface {
	FetchRaw(ctx context.Context) ([]types.RawArticle, error)
}

// FetchTimeoutError reports that the fetch process exceeded its deadline and
// was killed.
type FetchTimeoutError struct {
	Timeout time.Duration
}

func (e *FetchTimeoutError) Error() string {
	return fmt.Sprintf("news fetch timed out after %s", e.Timeout)
}

// FetchProcessError reports a non-zero exit from the fetch process, carrying
// its captured stderr.
type FetchProcessError struct {
	ExitCode int
	Stderr   string
}

func (e *FetchProcessError) Error() string {
	return fmt.Sprintf("news fetch exited with status %d: %s", e.ExitCode, e.Stderr)
}

// FetchParseError reports malformed fetch output.
type FetchParseError struct {
	Err error
}

func (e *FetchParseError) Error() string {
	return fmt.Sprintf("news fetch produced invalid output: %v", e.Err)
}

func (e *FetchParseError) Unwrap() error { return e.Err }

// IsFetchError reports whether err belongs to the fetch failure taxonomy.
// Any such error aborts the ingestion run it occurred in.
func IsFetchError(err error) bool {
	var te *FetchTimeoutError
	var pe *FetchProcessError
	var je *FetchParseError
	return errors.As(err, &te) || errors.As(err, &pe) || errors.As(err, &je)
}

// ScriptFetcher runs an external process that must emit exactly one JSON
// array of raw items on stdout. An empty array is a valid "nothing new"
// result.
type ScriptFetcher struct {
	command []string
	timeout time.Duration
}

const defaultFetchTimeout = 5 * time.Minute

func NewScriptFetcher(command []string, timeout time.Duration) *ScriptFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &ScriptFetcher{command: command, timeout: timeout}
}

func (f *ScriptFetcher) FetchRaw(ctx context.Context) ([]types.RawArticle, error) {
	if len(f.command) == 0 {
		return nil, &FetchProcessError{ExitCode: -1, Stderr: "no fetch command configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, f.command[0], f.command[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	// CommandContext kills the process before Run returns once the context
	// ends. A caller cancellation is surfaced as such, not as a process
	// failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, &FetchTimeoutError{Timeout: f.timeout}
		}
		return nil, ctxErr
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, &FetchProcessError{
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderr.String()),
		}
	}

	var items []types.RawArticle
	if err := json.Unmarshal(stdout.Bytes(), &items); err != nil {
		return nil, &FetchParseError{Err: err}
	}
	if items == nil {
		items = []types.RawArticle{}
	}
	return items, nil
}
