package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/reqparse/transport"
)

var _ transport.Client = new(Client)

// Client returns the same data as it was initialised with on every read, unless set to
// shoot once. It also tracks all the written data, making it thereby a universal mock
// suitable for most of the tests.
type Client struct {
	closed     bool
	once       bool
	journaling bool
	pointer    int
	written    []byte
	data       [][]byte
	remote     net.Addr
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:       data,
		pointer:    0,
		journaling: true,
	}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if c.pointer >= len(c.data) {
		if c.once {
			c.closed = true
			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.journaling {
		c.written = append(c.written, p...)
	}

	return len(p), nil
}

func (c *Client) Remote() net.Addr {
	return c.remote
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// Closed reports whether Close was called or the data was exhausted in once mode
func (c *Client) Closed() bool {
	return c.closed
}

func (c *Client) Once() *Client {
	c.once = true
	return c
}

func (c *Client) WithRemote(addr net.Addr) *Client {
	c.remote = addr
	return c
}

func (c *Client) Journaling(flag bool) *Client {
	c.journaling = flag
	return c
}

func (c *Client) Written() string {
	if !c.journaling {
		panic("mock client: cannot access written data: journaling is disabled!")
	}

	return string(c.written)
}
