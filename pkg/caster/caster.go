package caster

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Caster converts payloads to and from their wire representation and writes
// them straight to a response.
type Caster[T any] interface {
	From([]byte) (T, error)
	To(T) ([]byte, error)
	Write(io.Writer, T) error
	ContentType() string
}

type JSONCaster[T any] struct{}

func (jc JSONCaster[T]) From(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, errors.Wrap(err, "decoding json payload")
}

func (jc JSONCaster[T]) To(v T) ([]byte, error) {
	data, err := json.Marshal(v)
	return data, errors.Wrap(err, "encoding json payload")
}

// Write encodes v before touching w, so a failed encoding leaves w untouched.
func (jc JSONCaster[T]) Write(w io.Writer, v T) error {
	data, err := jc.To(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (jc JSONCaster[T]) ContentType() string {
	return "application/json"
}
