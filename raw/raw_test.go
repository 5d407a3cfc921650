package raw_test

import (
	"fmt"
	"testing"

	"github.com/icloudza/gcstrtol/raw"
)

var sampleText = []byte("  -0x1fZ rest")

func TestGet(t *testing.T) {
	s, ok := raw.Get(sampleText, 0)
	fmt.Println("auto =", s, ok)
	if !ok || s != "-0x1f" {
		t.Fatalf("Get auto failed, got=%q, ok=%v", s, ok)
	}

	bs, ok := raw.GetBytes("0777 ", 8)
	fmt.Println("octal =", string(bs), ok)
	if !ok || string(bs) != "0777" {
		t.Fatalf("GetBytes octal failed, got=%q, ok=%v", string(bs), ok)
	}

	// 没有数字
	_, ok = raw.Get("0x", 0)
	fmt.Println("0x found?", ok)
	if ok {
		t.Fatalf("expected not found")
	}

	if _, ok = raw.Get(nil, 10); ok {
		t.Fatalf("nil input must not be found")
	}
}

func TestSplit(t *testing.T) {
	num, rest, ok := raw.Split(sampleText, 16)
	fmt.Println("Split =", string(num), string(rest), ok)
	if !ok || string(num) != "-0x1f" || string(rest) != "Z rest" {
		t.Fatalf("unexpected Split results: %q %q %v", num, rest, ok)
	}

	num, rest, ok = raw.SplitBytes([]byte("  + 1"), 10)
	if ok || num != nil || string(rest) != "  + 1" {
		t.Fatalf("no-digit Split must return whole input as rest: %q %q %v", num, rest, ok)
	}
}

// ===== 性能测试 =====

func BenchmarkGetBytes(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		raw.GetBytes(sampleText, 0)
	}
}

func BenchmarkSplitBytes(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		raw.SplitBytes(sampleText, 16)
	}
}
