package transport_test

import (
	"bytes"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/indigo-web/reqparse/config"
	"github.com/indigo-web/reqparse/http/path"
	"github.com/indigo-web/reqparse/internal/report"
	"github.com/indigo-web/reqparse/internal/server"
	"github.com/indigo-web/reqparse/transport"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type journal struct {
	mu      sync.Mutex
	results []report.Result
}

func (j *journal) Report(result report.Result) error {
	j.mu.Lock()
	j.results = append(j.results, result)
	j.mu.Unlock()
	return nil
}

func (j *journal) byPath() map[string]report.Result {
	j.mu.Lock()
	defer j.mu.Unlock()

	results := make(map[string]report.Result, len(j.results))
	for _, result := range j.results {
		results[result.Request.Line.Path.Path] = result
	}

	return results
}

func exchange(t *testing.T, conn net.Conn, request, wantReply string) {
	_, err := conn.Write([]byte(request))
	require.NoError(t, err)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	reply := make([]byte, len(wantReply))
	_, err = io.ReadFull(conn, reply)
	require.NoError(t, err)
	require.Equal(t, wantReply, string(reply))
}

func TestSupervisor_Server(t *testing.T) {
	cfg := config.Default().NET
	cfg.Reply = true
	cfg.AcceptLoopInterruptPeriod = 20 * time.Millisecond
	// long enough to notice if idle connections are waited out instead of closed
	cfg.ReadTimeout = time.Minute

	var logs bytes.Buffer
	j := new(journal)
	srv := server.New(cfg, j, zerolog.New(zerolog.SyncWriter(&logs)).Level(zerolog.DebugLevel))

	sup := transport.NewSupervisor()
	require.NoError(t, sup.Add("127.0.0.1:0", transport.NewTCP(), srv.OnConn))
	require.NoError(t, sup.Add("127.0.0.1:0", transport.NewTCP(), srv.OnConn))
	addrs := sup.Addrs()
	require.Len(t, addrs, 2)
	require.NotEqual(t, addrs[0].String(), addrs[1].String())

	running := make(chan error, 1)
	go func() {
		running <- sup.Run(cfg)
	}()

	first, err := net.Dial("tcp", addrs[0].String())
	require.NoError(t, err)
	defer first.Close()
	second, err := net.Dial("tcp", addrs[1].String())
	require.NoError(t, err)
	defer second.Close()

	exchange(t, first, "GET /first?a=b HTTP/1.1\r\nHost: one\r\n\r\n", "HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n")
	exchange(t, second, "GET /second HTTP/1.0\r\n\r\n", "HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n")
	exchange(t, second, "GET second HTTP/1.0\r\n\r\n", "HTTP/1.1 400 Bad Request\r\nContent-Length: 0\r\n\r\n")

	// both connections are left open and idle from here on
	stopped := make(chan struct{})
	start := time.Now()
	go func() {
		sup.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		require.Fail(t, "idle connections kept the supervisor from stopping")
	}
	require.Less(t, time.Since(start), 2*time.Second)

	select {
	case err = <-running:
		require.NoError(t, err)
	case <-time.After(time.Second):
		require.Fail(t, "supervisor did not stop running on time")
	}

	results := j.byPath()
	require.Len(t, results, 3)
	require.NoError(t, results["/first"].Err)
	require.Equal(t, "one", results["/first"].Request.Headers[0].Value)
	require.NoError(t, results["/second"].Err)
	// malformed requests carry no path
	require.ErrorIs(t, results[""].Err, path.ErrNoLeadingSlash)

	// connections closed by Stop are not failures
	require.NotContains(t, logs.String(), `"level":"error"`)
	require.Contains(t, logs.String(), `"message":"stop reading"`)

	// the listeners are released
	_, err = net.DialTimeout("tcp", addrs[0].String(), 100*time.Millisecond)
	require.Error(t, err)
}
