package formatter

import (
	"math/big"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/locale"
)

type integerFormatter struct {
	base
}

// NewInteger returns a formatter writing integers with locale digit grouping.
func NewInteger(opts ...Option) Formatter {
	return &integerFormatter{
		base: newBase(NameInteger, newConfig(opts),
			TypeOf[int](),
			TypeOf[int8](),
			TypeOf[int16](),
			TypeOf[int32](),
			TypeOf[int64](),
			TypeOf[uint](),
			TypeOf[uint8](),
			TypeOf[uint16](),
			TypeOf[uint32](),
			TypeOf[uint64](),
			TypeOf[*big.Int](),
			TypeOf[*atomic.Int32](),
			TypeOf[*atomic.Int64](),
			TypeOf[*atomic.Uint32](),
			TypeOf[*atomic.Uint64](),
		),
	}
}

func (f *integerFormatter) Format(tag language.Tag, zone *time.Location, value any) (string, error) {
	return f.format(tag, zone, value, func(sym *locale.Symbols, v any) (string, error) {
		digits, ok := integerDigits(v)
		if !ok {
			return "", f.typeError(v)
		}
		negative := strings.HasPrefix(digits, "-")
		return sym.Number(negative, strings.TrimPrefix(digits, "-"), ""), nil
	})
}

// integerDigits renders an integer value in base 10 with an optional leading
// minus.
func integerDigits(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case *big.Int:
		return n.String(), true
	case *atomic.Int32:
		return strconv.FormatInt(int64(n.Load()), 10), true
	case *atomic.Int64:
		return strconv.FormatInt(n.Load(), 10), true
	case *atomic.Uint32:
		return strconv.FormatUint(uint64(n.Load()), 10), true
	case *atomic.Uint64:
		return strconv.FormatUint(n.Load(), 10), true
	default:
		return "", false
	}
}
