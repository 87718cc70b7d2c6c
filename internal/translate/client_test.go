package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/notekeeper/internal/errs"
)

func newTestClient(url string) *Client {
	return New(Config{
		URL:      url,
		Attempts: 3,
		Delay:    time.Millisecond,
		Timeout:  time.Second,
	}, zap.NewNop())
}

func TestTranslate_SingleString(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method=%s", r.Method)
		}
		_, _ = w.Write([]byte(`{"data":{"translations":{"translatedText":"Hello"}}}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Translate(context.Background(), "Привет")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hello" {
		t.Fatalf("got %q, want Hello", got)
	}
}

func TestTranslate_MultiSegmentJoined(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"translations":{"translatedText":["Hello","world"]}}}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Translate(context.Background(), "Привет мир")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hello world" {
		t.Fatalf("got %q, want joined segments", got)
	}
}

func TestTranslate_ExhaustsThreeAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Translate(context.Background(), "Привет")
	if !errors.Is(err, errs.ErrUpstreamUnavailable) {
		t.Fatalf("got %v, want ErrUpstreamUnavailable", err)
	}
	if n := calls.Load(); n != 3 {
		t.Fatalf("attempts=%d, want exactly 3", n)
	}
}

func TestTranslate_RecoversOnRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"translations":{"translatedText":"Hi"}}}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Translate(context.Background(), "Привет")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hi" {
		t.Fatalf("got %q, want Hi", got)
	}
}

func TestTranslate_UnexpectedShape(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"translations":{"translatedText":{"nested":"x"}}}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Translate(context.Background(), "Привет")
	if !errors.Is(err, errs.ErrUpstreamUnavailable) {
		t.Fatalf("got %v, want ErrUpstreamUnavailable", err)
	}
}

func TestJoinSegments(t *testing.T) {
	t.Parallel()

	if s, err := joinSegments([]byte(`"a"`)); err != nil || s != "a" {
		t.Fatalf("string: s=%q err=%v", s, err)
	}
	if s, err := joinSegments([]byte(`["a","b","c"]`)); err != nil || s != "a b c" {
		t.Fatalf("array: s=%q err=%v", s, err)
	}
	if _, err := joinSegments(nil); err == nil {
		t.Fatalf("nil raw should fail")
	}
	if _, err := joinSegments([]byte(`42`)); err == nil {
		t.Fatalf("number should fail")
	}
}
