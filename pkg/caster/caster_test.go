package caster

import (
	"bytes"
	"testing"
)

type payload struct {
	Team  string    `json:"team"`
	Plays []float64 `json:"plays"`
}

func TestJSONCaster(t *testing.T) {
	var c Caster[payload] = JSONCaster[payload]{}
	data, err := c.To(payload{Team: "home", Plays: []float64{5, -2}})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"team":"home","plays":[5,-2]}` {
		t.Errorf("unexpected json %s", data)
	}
	back, err := c.From(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.Team != "home" || len(back.Plays) != 2 {
		t.Errorf("decoded %+v", back)
	}
	if _, err := c.From([]byte("{")); err == nil {
		t.Error("expected error for broken json")
	}
}

func TestJSONCasterWrite(t *testing.T) {
	var b bytes.Buffer
	c := JSONCaster[[]float64]{}
	if err := c.Write(&b, []float64{10, -2}); err != nil {
		t.Fatal(err)
	}
	if b.String() != "[10,-2]" {
		t.Errorf("wrote %q", b.String())
	}
	if c.ContentType() != "application/json" {
		t.Errorf("content type %q", c.ContentType())
	}
}

func TestJSONCasterWriteFailureLeavesWriterEmpty(t *testing.T) {
	var b bytes.Buffer
	c := JSONCaster[func()]{}
	if err := c.Write(&b, func() {}); err == nil {
		t.Fatal("expected an error for an unsupported type")
	}
	if b.Len() != 0 {
		t.Errorf("writer received %q", b.String())
	}
}
