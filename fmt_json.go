package karl

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// appendJSONEvent renders the event as a single-line JSON object with a
// fixed field order: timestamp, level, hostName, process, message, the
// four call-site fields, then any enrich extras. Absent location fields
// are emitted as null so the record shape stays stable.
func appendJSONEvent(buf *buffer, e *Event) {
	buf.writeString(`{"timestamp":"`)
	appendTimestamp(buf, e.Timestamp)
	buf.writeString(`","level":"`)
	buf.writeString(e.Level.String())
	buf.writeString(`","hostName":`)
	appendQuoted(buf, e.HostName)
	buf.writeString(`,"process":{"name":`)
	appendQuoted(buf, e.Process.Name)
	buf.writeString(`,"pid":`)
	appendInt64(buf, int64(e.Process.PID))
	buf.writeString(`},"message":`)
	appendQuoted(buf, e.Message)
	if e.located() {
		buf.writeString(`,"fileName":`)
		appendQuoted(buf, e.FileName)
		buf.writeString(`,"filePath":`)
		appendQuoted(buf, e.FilePath)
		buf.writeString(`,"lineNumber":`)
		appendInt64(buf, int64(e.LineNumber))
	} else {
		buf.writeString(`,"fileName":null,"filePath":null,"lineNumber":null`)
	}
	buf.writeString(`,"functionName":`)
	appendQuoted(buf, e.FunctionName)
	for i := range e.Extra {
		appendJSONField(buf, &e.Extra[i])
	}
	buf.writeByte('}')
}

func appendJSONField(buf *buffer, f *Field) {
	buf.writeByte(',')
	appendQuoted(buf, f.K)
	buf.writeByte(':')

	switch f.Kind {
	case KindString:
		appendQuoted(buf, f.Str)
	case KindInt64:
		appendInt64(buf, f.Int64)
	case KindUint64:
		appendUint64(buf, f.Uint64)
	case KindFloat64:
		if math.IsNaN(f.Float64) || math.IsInf(f.Float64, 0) {
			buf.writeBytes(jsonNull)
		} else {
			var tmp [32]byte
			b := strconv.AppendFloat(tmp[:0], f.Float64, 'g', -1, 64)
			buf.writeBytes(b)
		}
	case KindBool:
		if f.Bool {
			buf.writeBytes(jsonTrue)
		} else {
			buf.writeBytes(jsonFalse)
		}
	case KindDuration:
		appendQuoted(buf, f.Dur.String())
	case KindTime:
		buf.writeByte('"')
		appendTimestamp(buf, f.Time)
		buf.writeByte('"')
	case KindError:
		if f.Err != nil {
			appendQuoted(buf, f.Err.Error())
		} else {
			buf.writeBytes(jsonNull)
		}
	case KindAny:
		appendJSONAny(buf, f.Any)
	default:
		buf.writeBytes(jsonNull)
	}
}

func appendJSONAny(buf *buffer, v any) {
	switch vv := v.(type) {
	case nil:
		buf.writeBytes(jsonNull)
	case string:
		appendQuoted(buf, vv)
	case bool:
		if vv {
			buf.writeBytes(jsonTrue)
		} else {
			buf.writeBytes(jsonFalse)
		}
	case int:
		appendInt64(buf, int64(vv))
	case int64:
		appendInt64(buf, vv)
	case uint64:
		appendUint64(buf, vv)
	case float64:
		if math.IsNaN(vv) || math.IsInf(vv, 0) {
			buf.writeBytes(jsonNull)
		} else {
			var tmp [32]byte
			b := strconv.AppendFloat(tmp[:0], vv, 'g', -1, 64)
			buf.writeBytes(b)
		}
	case time.Time:
		buf.writeByte('"')
		appendTimestamp(buf, vv)
		buf.writeByte('"')
	case time.Duration:
		appendQuoted(buf, vv.String())
	default:
		if data, err := json.Marshal(vv); err == nil {
			buf.writeBytes(data)
		} else {
			buf.writeBytes(jsonNull)
		}
	}
}
