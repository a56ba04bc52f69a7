package xml

import (
	"encoding/base64"
	"math"
	"math/big"
	"net/url"
	"strconv"
	"time"

	xmltime "github.com/xmlcoder/xmlcoder-go/time"
)

const (
	// maximum fraction digits for single and double precision values
	float32FractionDigits = 16
	float64FractionDigits = 128
)

// Conversions of leaf values to the strings used for attributes and text.
// None of them fail, and none of them depend on the host locale.

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatFloat(v float64, bits int) string {
	return string(encodeFloat(nil, v, bits))
}

// encodeFloat appends v in fixed-point notation. The shortest representation
// that round-trips is used unless it needs more fraction digits than the
// precision class allows, in which case v is rounded to that many digits and
// trailing zeros are dropped.
func encodeFloat(dst []byte, v float64, bits int) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "NaN"...)
	case math.IsInf(v, 1):
		return append(dst, "INF"...)
	case math.IsInf(v, -1):
		return append(dst, "-INF"...)
	}

	maxDigits := float64FractionDigits
	if bits == 32 {
		maxDigits = float32FractionDigits
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'f', -1, bits)

	if fractionDigits(dst[start:]) <= maxDigits {
		return dst
	}

	dst = strconv.AppendFloat(dst[:start], v, 'f', maxDigits, bits)

	// trim 0.1000 to 0.1, and 0.000 to 0
	n := len(dst)
	for n > start && dst[n-1] == '0' {
		n--
	}
	if n > start && dst[n-1] == '.' {
		n--
	}
	return dst[:n]
}

func fractionDigits(b []byte) int {
	for i, c := range b {
		if c == '.' {
			return len(b) - i - 1
		}
	}
	return 0
}

// encodeByteSlice base64 encodes v without line wrapping.
func encodeByteSlice(v []byte) string {
	return base64.StdEncoding.EncodeToString(v)
}

func formatBigInteger(v *big.Int) string {
	return v.Text(10)
}

func formatBigDecimal(v *big.Float) string {
	if v.IsInf() {
		if v.Sign() < 0 {
			return "-INF"
		}
		return "INF"
	}
	if i, accuracy := v.Int64(); accuracy == big.Exact {
		return formatInt(i)
	}
	return v.Text('f', -1)
}

func formatURL(v *url.URL) string {
	return v.String()
}

func formatTime(v time.Time, format TimestampFormat) string {
	if format == TimestampDateTime {
		return xmltime.FormatDateTime(v)
	}
	return xmltime.FormatLegacyDateTime(v)
}
