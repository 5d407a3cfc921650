package iterator

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/icloudza/gcstrtol/parser"
)

func TestEachNumber(t *testing.T) {
	type hit struct {
		off int
		num string
		val int64
	}
	var got []hit
	ok := EachNumberBytes([]byte("id=42, delta -7;mask 0x1F end"), 0, func(off int, num []byte, r parser.Result) bool {
		got = append(got, hit{off, string(num), r.Value})
		return true
	})
	want := []hit{
		{3, "42", 42},
		{13, "-7", -7},
		{21, "0x1F", 31},
	}
	if !ok || !reflect.DeepEqual(got, want) {
		t.Fatalf("EachNumberBytes = %v (ok=%v), want %v", got, ok, want)
	}
}

func TestEachNumber_Stop(t *testing.T) {
	n := 0
	ok := EachNumber("1 2 3 4", 10, func(_ int, _ parser.Result) bool {
		n++
		return n < 2
	})
	if !ok || n != 2 {
		t.Fatalf("early stop: ok=%v n=%d", ok, n)
	}
}

func TestEachNumber_NoDigits(t *testing.T) {
	if EachNumber("no numbers here", 10, func(int, parser.Result) bool { return true }) {
		t.Fatal("expected no hit")
	}
	if EachNumber(nil, 10, func(int, parser.Result) bool { return true }) {
		t.Fatal("nil input must not hit")
	}
}

func TestCollect(t *testing.T) {
	got, err := Collect("1-2+3 99999999999999999999", 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, -2, 3, math.MaxInt64}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect = %v, want %v", got, want)
	}
}

func TestCollect_BareHexPrefix(t *testing.T) {
	cases := []struct {
		in   string
		base int
		want []int64
	}{
		{"0xg 5", 0, []int64{0, 5}},
		{"-0x", 16, []int64{0}},
		{"  +0Xz,12", 0, []int64{0, 12}},
		{"0xg 5", 10, []int64{0, 5}},
		{"0x 7", 8, []int64{0, 7}},
	}
	for _, c := range cases {
		got, err := Collect(c.in, c.base)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Collect(%q, %d) = %v, want %v", c.in, c.base, got, c.want)
		}
	}

	var offs []int
	var nums []string
	EachNumberBytes([]byte(" -0xq"), 0, func(off int, num []byte, r parser.Result) bool {
		offs = append(offs, off)
		nums = append(nums, string(num))
		return true
	})
	if !reflect.DeepEqual(offs, []int{1}) || !reflect.DeepEqual(nums, []string{"-0"}) {
		t.Fatalf("offsets %v nums %v", offs, nums)
	}
}

func TestEachNumber_LongWhitespace(t *testing.T) {
	in := strings.Repeat(" ", 1<<20-3) + "x 9"
	start := time.Now()
	got, err := Collect(in, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int64{9}) {
		t.Fatalf("Collect = %v", got)
	}
	if d := time.Since(start); d > 2*time.Second {
		t.Fatalf("whitespace run took %v", d)
	}

	var off int
	EachNumber(strings.Repeat("\t\n", 1000)+"42", 10, func(o int, r parser.Result) bool {
		off = o
		return false
	})
	if off != 2000 {
		t.Fatalf("offset = %d, want 2000", off)
	}
}

func BenchmarkEachNumberBytes(b *testing.B) {
	in := []byte("10 20 30 40 50 60 70 80 90 100")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		EachNumberBytes(in, 10, func(int, []byte, parser.Result) bool { return true })
	}
}
