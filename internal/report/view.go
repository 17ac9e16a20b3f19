package report

import (
	"github.com/indigo-web/reqparse/http"
)

type (
	Pair struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	RequestView struct {
		Method    string `json:"method"`
		Extension bool   `json:"extension"`
		Path      string `json:"path"`
		Query     []Pair `json:"query"`
		Version   string `json:"version"`
		Headers   []Pair `json:"headers"`
		Body      string `json:"body"`
	}

	ErrorView struct {
		Message string   `json:"message"`
		Chain   []string `json:"chain"`
	}

	ResultView struct {
		Remote  string       `json:"remote,omitempty"`
		Request *RequestView `json:"request,omitempty"`
		Error   *ErrorView   `json:"error,omitempty"`
	}
)

func NewRequestView(request http.Request) RequestView {
	view := RequestView{
		Method:    request.Line.Method.String(),
		Extension: request.Line.Method.IsExtension(),
		Path:      request.Line.Path.Path,
		Query:     make([]Pair, 0, len(request.Line.Path.Query)),
		Version:   request.Line.Version.String(),
		Headers:   make([]Pair, 0, len(request.Headers)),
		Body:      request.Body,
	}

	for _, q := range request.Line.Path.Query {
		view.Query = append(view.Query, Pair{Name: q.Name, Value: q.Value})
	}

	for _, h := range request.Headers {
		view.Headers = append(view.Headers, Pair{Name: h.Name, Value: h.Value})
	}

	return view
}

func NewErrorView(err error) ErrorView {
	return ErrorView{
		Message: err.Error(),
		Chain:   Chain(err),
	}
}

func NewResultView(result Result) ResultView {
	view := ResultView{Remote: result.Remote}

	if result.Err != nil {
		errView := NewErrorView(result.Err)
		view.Error = &errView
	} else {
		reqView := NewRequestView(result.Request)
		view.Request = &reqView
	}

	return view
}
