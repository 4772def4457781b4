package karl

import (
	"math"
	"strconv"
	"time"
)

const digits = "0123456789abcdef"
const minInt64Str = "-9223372036854775808"

// timestampLayout renders ISO-8601 with millisecond precision; events
// are normalized to UTC so the suffix is always "Z".
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	jsonTrue  = []byte("true")
	jsonFalse = []byte("false")
	jsonNull  = []byte("null")
)

func appendInt64(buf *buffer, v int64) {
	if v == 0 {
		buf.writeByte('0')
		return
	}
	if v < 0 {
		if v == -1<<63 {
			buf.writeString(minInt64Str)
			return
		}
		buf.writeByte('-')
		v = -v
	}
	appendUint64(buf, uint64(v))
}

func appendUint64(buf *buffer, v uint64) {
	if v == 0 {
		buf.writeByte('0')
		return
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	buf.writeBytes(tmp[i:])
}

func appendFloat64(buf *buffer, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if math.IsNaN(f) {
			buf.writeString("NaN")
		} else if math.IsInf(f, 1) {
			buf.writeString("+Inf")
		} else {
			buf.writeString("-Inf")
		}
		return
	}
	var tmp [32]byte
	b := strconv.AppendFloat(tmp[:0], f, 'g', -1, 64)
	buf.writeBytes(b)
}

func appendDuration(buf *buffer, d time.Duration) { buf.writeString(d.String()) }

func appendTimestamp(buf *buffer, t time.Time) {
	var tmp [40]byte
	b := t.UTC().AppendFormat(tmp[:0], timestampLayout)
	buf.writeBytes(b)
}
