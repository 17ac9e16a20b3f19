package transport

import (
	"net"
	"time"
)

// Client is a connection as the request-decoding server sees it: a sequence of reads,
// every one of which carries a complete request
type Client interface {
	Read() ([]byte, error)
	Write([]byte) (int, error)
	Remote() net.Addr
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	timeout time.Duration
}

// NewClient wraps the connection. The buffer size bounds a single request, so
// anything longer arrives split over multiple reads
func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		buff:    buff,
		conn:    conn,
		timeout: timeout,
	}
}

// Read fills the buffer once. The same buffer is reused, so the returned slice is
// overwritten by the next call. The read fails with os.ErrDeadlineExceeded if the
// peer stays quiet for longer than the timeout, and with net.ErrClosed if the
// listener closed the connection while stopping
func (c *client) Read() ([]byte, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)
	return c.buff[:n], err
}

func (c *client) Write(b []byte) (int, error) {
	return c.conn.Write(b)
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}
