package lencode

import (
	"github.com/sam0x17/lencode/errs"
	"github.com/sam0x17/lencode/internal/options"
)

// decodeConfig holds per-call decode configuration.
type decodeConfig struct {
	maxBytesLen int
	maxElems    int
}

// DecodeOption configures a single decode call, following the same
// functional-options shape used throughout this module's ambient stack.
type DecodeOption = options.Option[*decodeConfig]

// WithMaxBytesLen caps the payload_len a flagged byte/string header
// may declare; a header exceeding it fails with InvalidData before any
// allocation or decompression is attempted. 0 (the default) means
// unbounded; callers decoding untrusted input should set this.
func WithMaxBytesLen(n int) DecodeOption {
	return options.NoError(func(c *decodeConfig) { c.maxBytesLen = n })
}

// WithMaxElems caps the element count a sequence, set, or map header may
// declare; a length exceeding it fails with InvalidData before any
// allocation is attempted. A forged stream can declare a length near 2^62
// in a handful of bytes, so like WithMaxBytesLen this guard runs before
// the decoder sizes anything to the declared count. 0 (the default) means
// unbounded; callers decoding untrusted input should set this.
func WithMaxElems(n int) DecodeOption {
	return options.NoError(func(c *decodeConfig) { c.maxElems = n })
}

func buildDecodeConfig(opts []DecodeOption) (*decodeConfig, error) {
	c := &decodeConfig{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// checkElems validates a wire-declared element count against the
// configured cap before the caller allocates proportional to it.
func (c *decodeConfig) checkElems(kind string, n uint64) error {
	if c.maxElems > 0 && n > uint64(c.maxElems) {
		return errs.Invalid("lencode: %s length %d exceeds configured maximum %d", kind, n, c.maxElems)
	}

	return nil
}
