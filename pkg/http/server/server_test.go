package http_server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	srv := New(http.NotFoundHandler(), Config{Port: 6060, Timeout: time.Second})
	assert.Equal(t, ":6060", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, time.Second, srv.WriteTimeout)
	assert.Equal(t, 2*time.Second, srv.IdleTimeout)
}

func TestServeShutsDownWithContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	srv := New(http.NotFoundHandler(), Config{Timeout: time.Second})

	errC := make(chan error, 1)
	go func() {
		errC <- Serve(ctx, srv, ln)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errC:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeWaitsForInFlightRequests(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	started := make(chan struct{})
	var finished atomic.Bool
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(300 * time.Millisecond)
		finished.Store(true)
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	srv := New(slow, Config{Timeout: 5 * time.Second})

	errC := make(chan error, 1)
	go func() {
		errC <- Serve(ctx, srv, ln)
	}()

	statusC := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err != nil {
			statusC <- 0
			return
		}
		resp.Body.Close()
		statusC <- resp.StatusCode
	}()

	<-started
	cancel()

	select {
	case err := <-errC:
		require.NoError(t, err)
		assert.True(t, finished.Load(), "Serve returned before the request finished")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, http.StatusOK, <-statusC)
}

func TestListenAndServeBadAddr(t *testing.T) {
	srv := New(http.NotFoundHandler(), Config{Port: -1, Timeout: time.Second})
	assert.Error(t, ListenAndServe(context.Background(), srv))
}
