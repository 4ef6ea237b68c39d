// Package arena implements the compiler's bump allocator.
//
// Every type, AST node, symbol, and string-literal payload the compiler
// produces is charged against a single fixed-size byte pool. Tokens and
// identifier names are ordinary Go allocations and are not charged against
// the pool. Nothing is
// ever freed individually; the pool's offset only moves forward. This gives
// the pipeline two properties a zero-knowledge guest needs: allocation is
// bounded (the pool has a hard cap, so exhaustion is a detectable, fatal
// condition rather than unbounded heap growth) and allocation is
// deterministic (the same input program produces the same sequence of
// allocation sizes and offsets on every run).
//
// Go's garbage collector removes the original motivation for carving typed
// records directly out of the byte pool with pointer arithmetic: there are
// no ownership or borrow conflicts to avoid here, and doing that with
// unsafe would trade away type safety for a guarantee the GC already gives
// us for free. So Arena only owns the *budget* — every allocation, whether
// a typed record via Alloc or a raw byte span via Bytes, first reserves its
// rounded-up size from the same monotonic counter, and only then is backed
// by an ordinary Go allocation. The allocation *sequence* and *bound* are
// exactly as deterministic and bounded as the original design requires.
package arena

import (
	"unsafe"

	"zkcc/diag"
)

// DefaultSize is the pool size used when a caller does not need a custom
// budget. It matches the original guest's 128 KiB arena.
const DefaultSize = 128 * 1024

// Arena is a monotonic byte-budget allocator. The zero value is not usable;
// construct one with New.
type Arena struct {
	cap    int
	offset int
}

// New creates an Arena with the given byte budget.
func New(size int) *Arena {
	return &Arena{cap: size}
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

// reserve bumps the offset forward to the next multiple of align and
// reserves n bytes starting there, aborting with a Resource error if doing
// so would exceed the arena's capacity.
func (a *Arena) reserve(n, align int) int {
	aligned := alignUp(a.offset, align)
	if aligned+n > a.cap {
		diag.Abortf(diag.Resource, -1, "arena exhausted: need %d bytes, %d available", n, a.cap-aligned)
	}
	a.offset = aligned + n
	return aligned
}

// Bytes reserves n bytes aligned to align and returns a freshly allocated,
// zeroed slice of that length. It is the arena-accounted equivalent of
// xstrndup's backing allocation.
func (a *Arena) Bytes(n, align int) []byte {
	a.reserve(n, align)
	return make([]byte, n)
}

// DupString charges len(s)+1 bytes (the +1 mirrors xstrdup's trailing NUL)
// against the arena's budget and returns a copy of s. The returned string
// is a normal, GC-owned Go string; only its size is accounted for.
func (a *Arena) DupString(s string) string {
	a.reserve(len(s)+1, 1)
	b := make([]byte, len(s))
	copy(b, s)
	return string(b)
}

// Alloc reserves sizeof(T), 8-byte aligned (matching xcalloc's alignment
// choice for typed records), and returns a pointer to a freshly
// zero-valued T.
func Alloc[T any](a *Arena) *T {
	var zero T
	a.reserve(int(unsafe.Sizeof(zero)), 8)
	return new(T)
}

// Offset reports the arena's current bump offset, useful for tests that
// assert allocation is monotonic.
func (a *Arena) Offset() int {
	return a.offset
}

// Cap reports the arena's total byte budget.
func (a *Arena) Cap() int {
	return a.cap
}
