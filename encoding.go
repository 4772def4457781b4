package karl

import "unicode/utf8"

func appendQuoted(buf *buffer, s string) {
	buf.writeByte('"')
	appendQuotedContent(buf, s)
	buf.writeByte('"')
}

func appendQuotedContent(buf *buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '\\' && c != '"' && c < 0x80 {
			i++
			continue
		}
		if start < i {
			buf.writeString(s[start:i])
		}
		if c < 0x80 {
			switch c {
			case '\\', '"':
				buf.writeByte('\\')
				buf.writeByte(c)
			case '\n':
				buf.writeString(`\n`)
			case '\r':
				buf.writeString(`\r`)
			case '\t':
				buf.writeString(`\t`)
			case '\b':
				buf.writeString(`\b`)
			case '\f':
				buf.writeString(`\f`)
			default:
				buf.writeString(`\u00`)
				buf.writeByte(digits[c>>4])
				buf.writeByte(digits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf.writeString("�")
			i++
			start = i
			continue
		}
		if r == ' ' || r == ' ' {
			// Legal in JSON, illegal in JavaScript string literals.
			buf.writeString(`\u202`)
			buf.writeByte(digits[r&0xF])
			i += size
			start = i
			continue
		}
		i += size
	}
	if start < len(s) {
		buf.writeString(s[start:])
	}
}

// appendTextString writes s bare when it is a single safe token and
// falls back to quoting when it contains spaces, quotes or controls.
func appendTextString(buf *buffer, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x1F || c == ' ' || c == '"' {
			appendQuoted(buf, s)
			return
		}
	}
	buf.writeString(s)
}
