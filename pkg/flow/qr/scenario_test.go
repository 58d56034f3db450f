package qr_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/seqflow/pkg/flow"
	"github.com/ib-77/seqflow/pkg/flow/core"
	"github.com/ib-77/seqflow/pkg/flow/iter"
	"github.com/ib-77/seqflow/pkg/flow/qr"
)

// syncBuffer is a bytes.Buffer safe for writes from timer goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// idle blocks until r finishes its current batch.
func idle[T any](t *testing.T, r *qr.Runner[T]) T {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	v, err := core.Await(ctx, func(done flow.Continuation[T]) {
		r.Exec(func(next flow.Continuation[T], prev T) {
			done(prev)
			next(prev)
		})
	})
	require.NoError(t, err)
	return v
}

func TestScenario_PrintOrder(t *testing.T) {
	out := &syncBuffer{}
	r := qr.New[any](qr.WithOutput(out))

	r.Log("A").Wait(5 * time.Millisecond).Log("B").Wait(time.Millisecond).Log("C")
	idle(t, r)

	assert.Equal(t, "A\nB\nC\n", out.String())
}

func TestScenario_DelayThenPrint(t *testing.T) {
	out := &syncBuffer{}
	r := qr.New[any](qr.WithOutput(out))

	start := time.Now()
	var printedAt time.Time
	r.Wait(100 * time.Millisecond).Log("done").Sync(func() { printedAt = time.Now() })
	idle(t, r)

	assert.Equal(t, "done\n", out.String())
	assert.GreaterOrEqual(t, printedAt.Sub(start), 100*time.Millisecond)
}

func TestScenario_ResultAcrossIdleGap(t *testing.T) {
	r := qr.New[int]()

	r.Exec(func(next flow.Continuation[int], prev int) {
		time.AfterFunc(time.Millisecond, func() { next(prev + 40) })
	})
	assert.Equal(t, 40, idle(t, r))

	time.Sleep(5 * time.Millisecond)
	assert.False(t, r.Running())

	r.Exec(func(next flow.Continuation[int], prev int) { next(prev + 2) })
	assert.Equal(t, 42, r.LastResult())
}

// TestScenario_URLProcessing drives a small validation pipeline through one
// runner: every URL is checked in order and the results are threaded along.
func TestScenario_URLProcessing(t *testing.T) {
	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(t, urls)

	assert.Equal(t, len(urls), len(results))

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}
	assert.Equal(t, 2, invalidCount)
	assert.Equal(t, fmt.Sprintf("title length: %d", len("Mock Page Title for "+urls[0])), results[0])
}

func processRequest(t *testing.T, urls []string) []string {
	r := qr.New[[]string]()

	r.Exec(func(next flow.Continuation[[]string], prev []string) {
		out := prev
		iter.Each(func(url string, advance func()) {
			mockFetchTitle(url, func(title string, err error) {
				if err != nil {
					out = append(out, "invalid")
				} else {
					out = append(out, fmt.Sprintf("title length: %d", len(title)))
				}
				advance()
			})
		}, urls, func() { next(out) })
	})

	return idle(t, r)
}

// mockFetchTitle simulates fetching a title asynchronously without HTTP
func mockFetchTitle(url string, cb func(string, error)) {
	time.AfterFunc(time.Millisecond, func() {
		if valid, msg := validateURLTest(url); !valid {
			cb("", fmt.Errorf("invalid URL: %s", msg))
			return
		}
		cb("Mock Page Title for "+url, nil)
	})
}

func validateURLTest(url string) (bool, string) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}
