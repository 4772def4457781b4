package karl

import "fmt"

// sprint builds the event message from a logging call's arguments.
// A leading string is treated as a printf template: arguments matched
// by a verb are substituted, surplus arguments are appended
// space-separated via inspect. A non-string first argument disables
// substitution and everything is rendered space-separated.
func sprint(args []any) string {
	if len(args) == 0 {
		return ""
	}
	format, ok := args[0].(string)
	if !ok {
		return sprintAll(args)
	}
	rest := args[1:]
	n := countVerbs(format)
	if n >= len(rest) {
		if n == 0 && len(rest) == 0 {
			return format
		}
		return fmt.Sprintf(format, rest...)
	}
	buf := getBuf()
	defer putBuf(buf)
	buf.writeString(fmt.Sprintf(format, rest[:n]...))
	for _, a := range rest[n:] {
		buf.writeByte(' ')
		buf.writeString(inspect(a))
	}
	return buf.String()
}

func sprintAll(args []any) string {
	buf := getBuf()
	defer putBuf(buf)
	for i, a := range args {
		if i > 0 {
			buf.writeByte(' ')
		}
		buf.writeString(inspect(a))
	}
	return buf.String()
}

// inspect renders a single value for humans: strings stay bare, errors
// report Error(), everything else goes through %+v.
func inspect(v any) string {
	switch vv := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return vv
	case error:
		return vv.Error()
	case fmt.Stringer:
		return vv.String()
	default:
		return fmt.Sprintf("%+v", vv)
	}
}

// countVerbs reports how many arguments the format template consumes.
// "%%" consumes none; a "*" width or precision consumes one extra.
func countVerbs(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i >= len(format) {
			break
		}
		if format[i] == '%' {
			continue
		}
		// flags, width, precision
		for i < len(format) {
			c := format[i]
			if c == '*' {
				n++
				i++
				continue
			}
			if c == '+' || c == '-' || c == '#' || c == ' ' || c == '0' ||
				c == '.' || (c >= '1' && c <= '9') {
				i++
				continue
			}
			break
		}
		if i < len(format) {
			n++
		}
	}
	return n
}
