package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeServer struct {
	listenErr error

	stop     chan struct{}
	shutdown chan struct{}
	closed   chan struct{}
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		stop:     make(chan struct{}),
		shutdown: make(chan struct{}, 1),
		closed:   make(chan struct{}, 1),
	}
}

func (f *fakeServer) ListenAndServe() error {
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stop
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	close(f.stop)
	f.shutdown <- struct{}{}
	return nil
}

func (f *fakeServer) Close() error {
	f.closed <- struct{}{}
	return nil
}

func (f *fakeServer) Addr() string { return ":0" }

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestRun_GracefulShutdownOnSignal(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	cleanedUp := false
	build := func() (httpServer, func(), error) {
		return srv, func() { cleanedUp = true }, nil
	}

	sigCh := make(chan os.Signal, 1)
	done := make(chan int, 1)
	go func() { done <- Run(build, sigCh, testLogger()) }()

	sigCh <- syscall.SIGTERM

	select {
	case code := <-done:
		if code != 0 {
			t.Fatalf("exit code = %d", code)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return")
	}

	select {
	case <-srv.shutdown:
	default:
		t.Fatalf("Shutdown was not called")
	}
	if !cleanedUp {
		t.Fatalf("cleanup was not called")
	}
}

func TestRun_ServerCrash(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	srv.listenErr = fmt.Errorf("listen tcp: address in use")
	build := func() (httpServer, func(), error) {
		return srv, func() {}, nil
	}

	done := make(chan int, 1)
	go func() { done <- Run(build, make(chan os.Signal), testLogger()) }()

	select {
	case code := <-done:
		if code != 1 {
			t.Fatalf("exit code = %d, want 1", code)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return")
	}
}

func TestRun_BuildFailure(t *testing.T) {
	t.Parallel()

	build := func() (httpServer, func(), error) {
		return nil, nil, fmt.Errorf("bad config")
	}
	if code := Run(build, make(chan os.Signal), testLogger()); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
