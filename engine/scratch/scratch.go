// Package scratch is a per-frame byte arena for building short-lived strings
// such as widget labels without allocating each frame.
//
// Strings returned by Builder.View alias the arena: they are valid until the
// next Reset. Anything that keeps a label across frames must copy it.
package scratch

import (
	"log/slog"
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Package-level reusable buffer (single-threaded usage).
// Initialize once with Init(capacity). Reset() every frame.
var (
	buf []byte
	log *slog.Logger
)

// Init sets up the global scratch buffer. Call once at startup.
// When logs is set, growth past the initial capacity is reported.
func Init(capacity int, logs bool) {
	if capacity <= 0 {
		capacity = 1024
	}
	buf = make([]byte, 0, capacity)
	log = nil
	if logs {
		log = slog.Default().With("pkg", "scratch")
	}
}

// Reset clears the buffer length without freeing memory.
// Call this ONCE per frame, before building labels.
func Reset() { buf = buf[:0] }

func Cap() int { return cap(buf) }
func Len() int { return len(buf) }

// GrowTo increases capacity (and copies current contents) if needed. Views
// handed out earlier keep pointing at the old array and stay valid.
func GrowTo(minCapacity int) {
	if minCapacity <= cap(buf) {
		return
	}
	if log != nil {
		log.Warn("scratch buffer grown", "from", cap(buf), "to", minCapacity)
	}
	nb := make([]byte, len(buf), minCapacity)
	copy(nb, buf)
	buf = nb
}

// Ensure ensures there is room for at least n more bytes.
func Ensure(n int) {
	if len(buf)+n > cap(buf) {
		GrowTo(max(cap(buf)*2, len(buf)+n))
	}
}

// ----- Chainable builder over the global buffer -----

// Builder appends to the global buffer from the point F was called.
type Builder struct{ mark int }

// F starts a new string at the end of the buffer.
func F() Builder { return Builder{mark: len(buf)} }

func (b Builder) S(s string) Builder {
	Ensure(len(s))
	buf = append(buf, s...)
	return b
}

func (b Builder) C(c byte) Builder {
	Ensure(1)
	buf = append(buf, c)
	return b
}

func (b Builder) R(r rune) Builder {
	Ensure(utf8.UTFMax)
	buf = utf8.AppendRune(buf, r)
	return b
}

// I appends a base-10 integer.
func (b Builder) I(v int) Builder {
	Ensure(20)
	buf = strconv.AppendInt(buf, int64(v), 10)
	return b
}

// F64 appends a float with given precision (digits after decimal).
// Example: F64(3.14159, 2) -> "3.14"
func (b Builder) F64(v float64, prec int) Builder {
	Ensure(24 + max(prec, 0))
	buf = strconv.AppendFloat(buf, v, 'f', prec, 64)
	return b
}

// View returns a zero-copy string over the bytes produced since F. It is
// valid until the next Reset.
func (b Builder) View() string {
	s := buf[b.mark:]
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}

// String returns a copy of the bytes produced since F.
func (b Builder) String() string { return string(buf[b.mark:]) }
