package formatter

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// AppendArg renders one log argument into buf. Composite values (maps,
// structs, slices, arrays and pointers to them) are written as compact
// JSON; scalars, errors and Stringers use their plain string form. A
// composite value that cannot be encoded, or whose marshaller panics, is
// written as its type name.
func AppendArg(buf *bytebufferpool.ByteBuffer, arg any) {
	switch v := arg.(type) {
	case nil:
		buf.WriteString("null")
	case string:
		buf.WriteString(v)
	case []byte:
		buf.Write(v)
	case error:
		appendMethod(buf, arg, v.Error)
	case fmt.Stringer:
		appendMethod(buf, arg, v.String)
	case bool:
		buf.B = strconv.AppendBool(buf.B, v)
	case int:
		buf.B = strconv.AppendInt(buf.B, int64(v), 10)
	case int64:
		buf.B = strconv.AppendInt(buf.B, v, 10)
	case int32:
		buf.B = strconv.AppendInt(buf.B, int64(v), 10)
	case uint:
		buf.B = strconv.AppendUint(buf.B, uint64(v), 10)
	case uint64:
		buf.B = strconv.AppendUint(buf.B, v, 10)
	case float64:
		buf.B = strconv.AppendFloat(buf.B, v, 'f', -1, 64)
	case float32:
		buf.B = strconv.AppendFloat(buf.B, float64(v), 'f', -1, 32)
	default:
		if isComposite(arg) {
			appendJSON(buf, arg)
			return
		}
		buf.B = fmt.Append(buf.B, arg)
	}
}

// appendMethod writes the result of an Error or String method. A method
// that panics (typically on a nil receiver) falls back to fmt, which
// reports the panic inline instead of propagating it.
func appendMethod(buf *bytebufferpool.ByteBuffer, arg any, method func() string) {
	mark := len(buf.B)
	defer func() {
		if recover() != nil {
			buf.B = fmt.Append(buf.B[:mark], arg)
		}
	}()
	buf.WriteString(method())
}

// isComposite reports whether arg should be rendered as structured data.
func isComposite(arg any) bool {
	t := reflect.TypeOf(arg)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func appendJSON(buf *bytebufferpool.ByteBuffer, arg any) {
	mark := len(buf.B)
	defer func() {
		if recover() != nil {
			appendTypeName(buf, mark, arg)
		}
	}()

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(arg); err != nil {
		appendTypeName(buf, mark, arg)
		return
	}
	// Encode terminates every value with a newline
	if n := len(buf.B); n > mark && buf.B[n-1] == '\n' {
		buf.B = buf.B[:n-1]
	}
}

// appendTypeName replaces everything written since mark with the type of
// arg. fmt's %v walks values without cycle detection, so it is not safe
// for composites json already rejected.
func appendTypeName(buf *bytebufferpool.ByteBuffer, mark int, arg any) {
	buf.B = fmt.Appendf(buf.B[:mark], "%T", arg)
}
