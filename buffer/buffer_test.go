package buffer

import (
	"bytes"
	"testing"
)

func TestAppendAndBytes(t *testing.T) {
	b := New()
	b.AppendString("hello")
	b.AppendByte(' ')
	b.AppendSlice([]byte("world"))
	if got := string(b.Bytes()); got != "hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestInsertShiftsTail(t *testing.T) {
	b := New()
	b.AppendString("helloworld")
	b.Insert(5, []byte(" big "))
	if got := string(b.Bytes()); got != "hello big world" {
		t.Fatalf("got %q", got)
	}
}

func TestReplaceDelta(t *testing.T) {
	b := New()
	b.AppendString("http://example.com")
	delta := b.Replace(0, 4, []byte("ftp"))
	if delta != -1 {
		t.Fatalf("delta = %d, want -1", delta)
	}
	if got := string(b.Bytes()); got != "ftp://example.com" {
		t.Fatalf("got %q", got)
	}
}

func TestEraseAndSubstring(t *testing.T) {
	b := New()
	b.AppendString("user:pass@host")
	b.Erase(4, 9)
	if got := string(b.Bytes()); got != "user@host" {
		t.Fatalf("got %q", got)
	}
	if got := b.Substring(0, 4); !bytes.Equal(got, []byte("user")) {
		t.Fatalf("got %q", got)
	}
}

func TestSubstringClampsOutOfRange(t *testing.T) {
	b := New()
	b.AppendString("abc")
	if got := b.Substring(5, 10); got != nil {
		t.Fatalf("expected nil for out-of-range substring, got %q", got)
	}
	if got := b.Substring(2, 1); got != nil {
		t.Fatalf("expected nil for start>=end, got %q", got)
	}
}

func TestPoolRoundtrip(t *testing.T) {
	var p Pool
	b := p.Get()
	b.AppendString("reused")
	p.Put(b)
	b2 := p.Get()
	if b2.Len() != 0 {
		t.Fatalf("buffer from pool should be reset, got len %d", b2.Len())
	}
}
