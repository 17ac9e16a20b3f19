package transport

import (
	"errors"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/reqparse/config"
)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

var _ Transport = new(TCP)

// TCP accepts plain TCP connections. Every connection is tracked until its callback
// returns, so Stop can close connections that sit idle in a read
type TCP struct {
	l     listener
	wg    *sync.WaitGroup
	stop  *atomic.Bool
	mu    *sync.Mutex
	conns map[net.Conn]struct{}
}

func NewTCP() *TCP {
	tcp := newTCP(nil)
	return &tcp
}

func newTCP(l listener) TCP {
	return TCP{
		l:     l,
		wg:    new(sync.WaitGroup),
		stop:  new(atomic.Bool),
		mu:    new(sync.Mutex),
		conns: make(map[net.Conn]struct{}),
	}
}

func bindTCP(addr string) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

func (t *TCP) Bind(addr string) (err error) {
	t.l, err = bindTCP(addr)
	return err
}

// Addr returns the address the listener is actually bound to. Useful when binding
// to the port 0
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen accepts connections until stopped. Every connection is served in its own
// goroutine and closed as soon as the callback returns
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	for !t.stop.Load() {
		err := t.l.SetDeadline(time.Now().Add(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}

			return err
		}

		if !t.track(conn) {
			// accepted right when stopping
			_ = conn.Close()
			continue
		}

		go func(conn net.Conn) {
			cb(conn)
			t.untrack(conn)
			_ = conn.Close()
			t.wg.Done()
		}(conn)
	}

	return nil
}

func (t *TCP) track(conn net.Conn) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop.Load() {
		return false
	}

	t.conns[conn] = struct{}{}
	t.wg.Add(1)

	return true
}

func (t *TCP) untrack(conn net.Conn) {
	t.mu.Lock()
	delete(t.conns, conn)
	t.mu.Unlock()
}

// Stop makes the accept loop quit on its next interruption and closes all the open
// connections, so nobody waits for idle clients to time out
func (t *TCP) Stop() {
	t.stop.Store(true)

	t.mu.Lock()
	for conn := range t.conns {
		_ = conn.Close()
	}
	t.mu.Unlock()
}

func (t *TCP) Close() {
	if t.l != nil {
		_ = t.l.Close()
	}
}

func (t *TCP) Wait() {
	t.wg.Wait()
}
