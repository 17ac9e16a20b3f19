package inspect

import (
	"io"
	stdhttp "net/http"

	"github.com/gorilla/mux"
	"github.com/indigo-web/reqparse/config"
	"github.com/indigo-web/reqparse/http"
	"github.com/indigo-web/reqparse/internal/report"
	json "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

// New returns a handler decoding raw requests posted to /parse. The posted body is
// the whole request text, the response is its json view
func New(cfg config.Inspect, logger zerolog.Logger) stdhttp.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/parse", func(rw stdhttp.ResponseWriter, req *stdhttp.Request) {
		raw, err := io.ReadAll(stdhttp.MaxBytesReader(rw, req.Body, cfg.MaxBodySize))
		if err != nil {
			logger.Warn().Err(err).Msg("cannot read the request to inspect")
			writeJSON(rw, stdhttp.StatusRequestEntityTooLarge, report.ErrorView{Message: err.Error()}, logger)
			return
		}

		request, err := http.Parse(string(raw))
		if err != nil {
			writeJSON(rw, stdhttp.StatusBadRequest, report.NewErrorView(err), logger)
			return
		}

		writeJSON(rw, stdhttp.StatusOK, report.NewRequestView(request), logger)
	}).Methods(stdhttp.MethodPost)

	r.HandleFunc("/healthz", func(rw stdhttp.ResponseWriter, _ *stdhttp.Request) {
		rw.WriteHeader(stdhttp.StatusOK)
	}).Methods(stdhttp.MethodGet)

	return r
}

func writeJSON(rw stdhttp.ResponseWriter, code int, v any, logger zerolog.Logger) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error().Err(err).Msg("cannot marshal the inspection result")
		rw.WriteHeader(stdhttp.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_, _ = rw.Write(data)
}
