package arena

import (
	"testing"

	"zkcc/diag"
)

type pair struct {
	A int64
	B int64
}

func TestAllocIsZeroedAndMonotonic(t *testing.T) {
	a := New(DefaultSize)

	p1 := Alloc[pair](a)
	off1 := a.Offset()
	if p1.A != 0 || p1.B != 0 {
		t.Errorf("Alloc() did not return a zero value: %+v", p1)
	}

	p2 := Alloc[pair](a)
	off2 := a.Offset()

	if off2 <= off1 {
		t.Errorf("arena offset did not increase: %d -> %d", off1, off2)
	}
	if p1 == p2 {
		t.Errorf("Alloc() returned the same pointer twice")
	}
}

func TestBytesReturnsRequestedLength(t *testing.T) {
	a := New(DefaultSize)
	b := a.Bytes(10, 1)
	if len(b) != 10 {
		t.Errorf("len(Bytes(10, 1)) = %d, want 10", len(b))
	}
}

func TestDupStringCopiesContent(t *testing.T) {
	a := New(DefaultSize)
	s := a.DupString("hello")
	if s != "hello" {
		t.Errorf("DupString() = %q, want %q", s, "hello")
	}
}

func TestExhaustionAborts(t *testing.T) {
	a := New(16)

	var err error
	func() {
		defer diag.Recover(&err)
		a.Bytes(1024, 1)
	}()

	if err == nil {
		t.Fatalf("expected arena exhaustion to abort")
	}
	de, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("error is %T, want *diag.Error", err)
	}
	if de.Kind != diag.Resource {
		t.Errorf("Kind = %v, want Resource", de.Kind)
	}
}

func TestOffsetNeverDecreases(t *testing.T) {
	a := New(DefaultSize)
	prev := a.Offset()
	for i := 0; i < 50; i++ {
		a.Bytes(i%7+1, 1)
		cur := a.Offset()
		if cur < prev {
			t.Fatalf("offset decreased: %d -> %d", prev, cur)
		}
		prev = cur
	}
}
