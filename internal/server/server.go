package server

import (
	"errors"
	"io"
	"net"
	"os"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/reqparse/config"
	"github.com/indigo-web/reqparse/http"
	"github.com/indigo-web/reqparse/internal/report"
	"github.com/indigo-web/reqparse/transport"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	"github.com/rs/zerolog"
)

const (
	replyOK         = "HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n"
	replyBadRequest = "HTTP/1.1 400 Bad Request\r\nContent-Length: 0\r\n\r\n"
	connIDLength    = 8
)

// Server drives a connection: every read is considered to be a single complete
// request, which is parsed and handed to the reporter
type Server struct {
	cfg      config.NET
	reporter report.Reporter
	logger   zerolog.Logger
}

func New(cfg config.NET, reporter report.Reporter, logger zerolog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		reporter: reporter,
		logger:   logger,
	}
}

// OnConn is the transport callback
func (s *Server) OnConn(conn net.Conn) {
	s.Run(transport.NewClient(conn, s.cfg.ReadTimeout, make([]byte, s.cfg.ReadBufferSize)))
}

func (s *Server) Run(client transport.Client) {
	var remote string
	if addr := client.Remote(); addr != nil {
		remote = addr.String()
	}

	log := s.logger.With().
		Str("conn", uniuri.NewLen(connIDLength)).
		Str("remote", remote).
		Logger()

	log.Debug().Msg("connection opened")

	for s.HandleRequest(client, remote, log) {
	}

	_ = client.Close()
	log.Debug().Msg("connection closed")
}

func (s *Server) HandleRequest(client transport.Client, remote string, log zerolog.Logger) (ok bool) {
	data, err := client.Read()
	if err != nil {
		if quietEnd(err) {
			log.Debug().Err(err).Msg("stop reading")
		} else {
			log.Error().Err(err).Msg("read failed")
		}

		return false
	}

	if len(data) == 0 {
		return true
	}

	// the data is valid only until the next read, but the decoded request owns
	// its own copy of everything it keeps
	request, err := http.Parse(uf.B2S(data))
	if err != nil {
		log.Warn().Err(err).Strs("chain", report.Chain(err)).Msg("malformed request")
	}

	if rerr := s.reporter.Report(report.Result{
		Remote:  remote,
		Request: request,
		Err:     err,
	}); rerr != nil {
		log.Error().Err(rerr).Msg("cannot report the result")
	}

	if s.cfg.Reply {
		if _, werr := client.Write(uf.S2B(reply(err))); werr != nil {
			log.Error().Err(werr).Msg("cannot write the reply")
			return false
		}
	}

	return err != nil || !closeRequested(request)
}

// quietEnd tells whether the connection ended the usual way: the peer went away,
// stayed idle for too long or the listener is being stopped
func quietEnd(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, os.ErrDeadlineExceeded) ||
		errors.Is(err, net.ErrClosed)
}

func reply(err error) string {
	if err != nil {
		return replyBadRequest
	}

	return replyOK
}

func closeRequested(request http.Request) bool {
	for _, header := range request.Headers {
		if strcomp.EqualFold(header.Name, "Connection") && strcomp.EqualFold(header.Value, "close") {
			return true
		}
	}

	return false
}
