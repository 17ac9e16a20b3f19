package report

import (
	"io"
	"sync"

	json "github.com/json-iterator/go"
)

var _ Reporter = new(JSON)

// JSON writes every result as a single json line
type JSON struct {
	mu sync.Mutex
	w  io.Writer
}

func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

func (j *JSON) Report(result Result) error {
	data, err := json.Marshal(NewResultView(result))
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	_, err = j.w.Write(append(data, '\n'))
	return err
}
