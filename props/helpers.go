package props

// Bool, U16, U32 and Str are small pointer-taking helpers for building a
// Set literal without a temporary variable at each call site.
func Bool(b bool) *bool     { return &b }
func U16(v uint16) *uint16  { return &v }
func U32(v uint32) *uint32  { return &v }
func Str(s string) *string  { return &s }
func Byte(b byte) *byte     { return &b }
