package convert

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

type label string

func TestFrom(t *testing.T) {
	s := "  -42"
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string", "123", "123"},
		{"bytes", []byte("0x1f"), "0x1f"},
		{"string_ptr", &s, "  -42"},
		{"int", 42, "42"},
		{"negative_int64", int64(-9), "-9"},
		{"json_number", json.Number("77"), "77"},
		{"named_string", label("0777"), "0777"},
		{"stringer", time.Duration(0), "0s"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := From(c.in)
			if err != nil {
				t.Fatalf("From(%v) error: %v", c.in, err)
			}
			if string(b) != c.want {
				t.Fatalf("From(%v) = %q, want %q", c.in, b, c.want)
			}
		})
	}
}

func TestFrom_Errors(t *testing.T) {
	if _, err := From(nil); !errors.Is(err, ErrNilInput) {
		t.Fatalf("nil: %v", err)
	}
	var sp *string
	if _, err := From(sp); !errors.Is(err, ErrNilInput) {
		t.Fatalf("nil *string: %v", err)
	}

	old := MaxInputSize
	MaxInputSize = 8
	defer func() { MaxInputSize = old }()
	if _, err := From(strings.Repeat("1", 9)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("too large: %v", err)
	}
}

func BenchmarkFromString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = From("9223372036854775807")
	}
}
