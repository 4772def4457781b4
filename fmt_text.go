package karl

// appendTextEvent renders the event as a human-readable line:
//
//	[LEVEL] timestamp - hostName - procName[function@filePath/fileName(line)]: message
//
// When location is absent the bracketed call-site block is dropped:
//
//	[LEVEL] timestamp - hostName - procName: message
//
// Enrich extras follow the message as space-separated key=value pairs.
func appendTextEvent(buf *buffer, e *Event) {
	buf.writeByte('[')
	buf.writeString(e.Level.String())
	buf.writeString("] ")
	appendTimestamp(buf, e.Timestamp)
	buf.writeString(" - ")
	buf.writeString(e.HostName)
	buf.writeString(" - ")
	buf.writeString(e.Process.Name)
	if e.located() {
		buf.writeByte('[')
		buf.writeString(e.FunctionName)
		buf.writeByte('@')
		buf.writeString(e.FilePath)
		buf.writeByte('/')
		buf.writeString(e.FileName)
		buf.writeByte('(')
		appendInt64(buf, int64(e.LineNumber))
		buf.writeString(")]")
	}
	buf.writeString(": ")
	buf.writeString(e.Message)
	for i := range e.Extra {
		appendTextField(buf, &e.Extra[i])
	}
}

func appendTextField(buf *buffer, f *Field) {
	buf.writeByte(' ')
	buf.writeString(f.K)
	buf.writeByte('=')
	switch f.Kind {
	case KindString:
		appendTextString(buf, f.Str)
	case KindInt64:
		appendInt64(buf, f.Int64)
	case KindUint64:
		appendUint64(buf, f.Uint64)
	case KindFloat64:
		appendFloat64(buf, f.Float64)
	case KindBool:
		if f.Bool {
			buf.writeString("true")
		} else {
			buf.writeString("false")
		}
	case KindDuration:
		appendDuration(buf, f.Dur)
	case KindTime:
		appendTimestamp(buf, f.Time)
	case KindError:
		if f.Err != nil {
			appendQuoted(buf, f.Err.Error())
		} else {
			buf.writeString("null")
		}
	case KindAny:
		appendTextString(buf, inspect(f.Any))
	default:
		buf.writeString("null")
	}
}
