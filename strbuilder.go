package kit

import (
	"fmt"
	"strings"
)

// StrBuilder accumulates bytes and produces an immutable Str.
// The zero value is ready to use.
type StrBuilder struct {
	buf strings.Builder
}

// NewStrBuilder returns an empty builder.
func NewStrBuilder() *StrBuilder {
	return &StrBuilder{}
}

// StrBuilderFrom returns a builder seeded with s.
func StrBuilderFrom(s string) *StrBuilder {
	b := &StrBuilder{}
	b.buf.WriteString(s)
	return b
}

// Len returns the number of accumulated bytes.
func (b *StrBuilder) Len() int { return b.buf.Len() }

// Append adds s.
func (b *StrBuilder) Append(s string) *StrBuilder {
	b.buf.WriteString(s)
	return b
}

// AppendByte adds a single byte.
func (b *StrBuilder) AppendByte(c byte) *StrBuilder {
	b.buf.WriteByte(c)
	return b
}

// AppendSub adds count bytes of src starting at start. It panics if the
// range does not fit in src.
func (b *StrBuilder) AppendSub(src string, start, count int) *StrBuilder {
	assertRange("string", start, count, len(src))
	b.buf.WriteString(src[start : start+count])
	return b
}

// Write implements io.Writer. It never fails.
func (b *StrBuilder) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// Appendf adds formatted text.
func (b *StrBuilder) Appendf(format string, args ...any) *StrBuilder {
	fmt.Fprintf(&b.buf, format, args...)
	return b
}

// Clone returns an independent builder with the same contents.
func (b *StrBuilder) Clone() *StrBuilder {
	return StrBuilderFrom(b.buf.String())
}

// Build returns the accumulated contents. The builder stays usable.
func (b *StrBuilder) Build() Str {
	return Str(b.buf.String())
}

// Reset discards the accumulated contents.
func (b *StrBuilder) Reset() {
	b.buf.Reset()
}
