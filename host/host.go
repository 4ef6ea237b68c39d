// Package host models the boundary between the compiler and its zero-
// knowledge guest/host environment: reading the program source in, and
// committing the compiled assembly out as a journal. The zk proving
// machinery itself — how Read is backed, how Commit's hash is verified —
// is out of scope; Host is the seam this module owns on its side of that
// boundary.
package host

import "zkcc/compile"

// Buffer sizes fix the journal layout: a 256-byte input region and an
// output journal of at most 4096 bytes, of which the first 256 bytes echo
// the (possibly truncated) input and the rest hold as much of codegen's
// emitted assembly as fits in 3840 bytes. Only 256 plus the length of that
// assembly is committed.
const (
	InputBufferSize     = 256
	OutputBufferSize    = 256 * 16
	CodegenTailCapacity = OutputBufferSize - InputBufferSize
)

// Host is the narrow interface a guest environment must provide. Read
// supplies the program source; Commit publishes the journal bytes that
// make up the proven output; Exit signals guest termination with a status
// code.
type Host interface {
	Read(buf []byte) (int, error)
	Commit(journal []byte) error
	Exit(code int)
}

// Run drives one full guest invocation against h: read the source,
// compile it, and commit the journal. It returns the exit code passed to
// h.Exit.
func Run(h Host) int {
	inBuf := make([]byte, InputBufferSize)
	n, err := h.Read(inBuf)
	if err != nil {
		h.Exit(1)
		return 1
	}
	if n >= InputBufferSize {
		n = InputBufferSize - 1
	}
	// Zero-pad past the NUL terminator — the lexer and the journal's
	// echoed input region both depend on untouched bytes being zero, not
	// garbage.
	for i := n; i < InputBufferSize; i++ {
		inBuf[i] = 0
	}

	asm, compileErr := compile.Compile(inBuf[:n])
	if compileErr != nil {
		h.Exit(1)
		return 1
	}

	tail := asm
	if len(tail) > CodegenTailCapacity {
		tail = tail[:CodegenTailCapacity]
	}

	journal := make([]byte, InputBufferSize+len(tail))
	copy(journal, inBuf)
	copy(journal[InputBufferSize:], tail)

	if err := h.Commit(journal); err != nil {
		h.Exit(1)
		return 1
	}

	h.Exit(0)
	return 0
}

