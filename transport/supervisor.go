package transport

import (
	"net"

	"github.com/indigo-web/reqparse/config"
)

// Supervisor runs every bound listener in its own goroutine. The first listener to
// die, or a call to Stop, brings all of them down: they stop accepting, open
// connections are closed and their handlers are waited for
type Supervisor struct {
	bound   []listening
	stopReq chan struct{}
	done    chan struct{}
}

type listening struct {
	t      Transport
	onConn func(conn net.Conn)
}

func NewSupervisor() Supervisor {
	return Supervisor{
		stopReq: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Add binds the transport right away, so the address is taken even before Run. On
// failure, everything bound so far is released
func (s *Supervisor) Add(addr string, t Transport, onConn func(net.Conn)) error {
	if err := t.Bind(addr); err != nil {
		for _, b := range s.bound {
			b.t.Close()
		}

		return err
	}

	s.bound = append(s.bound, listening{t: t, onConn: onConn})

	return nil
}

// Addrs returns addresses of all the bound transports, in order of addition
func (s *Supervisor) Addrs() []net.Addr {
	addrs := make([]net.Addr, len(s.bound))
	for i, b := range s.bound {
		addrs[i] = b.t.Addr()
	}

	return addrs
}

// Run blocks until Stop is called or any of the listeners returns. In the latter
// case its error is returned
func (s *Supervisor) Run(cfg config.NET) error {
	defer close(s.done)

	if len(s.bound) == 0 {
		return nil
	}

	exits := make(chan error, len(s.bound))

	for _, b := range s.bound {
		go func(b listening) {
			exits <- b.t.Listen(cfg, b.onConn)
		}(b)
	}

	select {
	case err := <-exits:
		s.halt(exits, len(s.bound)-1)
		return err
	case <-s.stopReq:
		s.halt(exits, len(s.bound))
		s.stopReq <- struct{}{}
		return nil
	}
}

// Stop returns as soon as all the listeners are down and all the connections are
// served. Does nothing if Run already returned
func (s *Supervisor) Stop() {
	select {
	case s.stopReq <- struct{}{}:
		<-s.stopReq
	case <-s.done:
	}
}

func (s *Supervisor) halt(exits <-chan error, running int) {
	for _, b := range s.bound {
		b.t.Stop()
	}

	for range running {
		<-exits
	}

	for _, b := range s.bound {
		b.t.Wait()
		b.t.Close()
	}
}
