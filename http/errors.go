package http

// Phase tells which part of the request failed to parse
type Phase uint8

const (
	PhaseRequestLine Phase = iota + 1
	PhaseHeaders
)

func (p Phase) String() string {
	switch p {
	case PhaseRequestLine:
		return "request line"
	case PhaseHeaders:
		return "headers"
	default:
		return "unknown"
	}
}

// RequestError is the only error type returned by Parse. The whole path down to
// the failed grammar element is available via errors.Is and errors.As
type RequestError struct {
	Phase Phase
	Err   error
}

func (r *RequestError) Error() string {
	return "error parsing http " + r.Phase.String() + ": " + r.Err.Error()
}

func (r *RequestError) Unwrap() error {
	return r.Err
}
