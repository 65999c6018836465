package statepath

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Get resolves path against state. The boolean reports whether every segment
// of the path was found. A resolved nil value is reported as found.
func Get(state any, path string) (any, bool) {
	if state == nil || path == "" {
		return nil, false
	}

	// A key that exists verbatim on the root map wins over path splitting.
	if v, ok := field(reflect.ValueOf(state), path); ok {
		return v.Interface(), true
	}

	cur := reflect.ValueOf(state)
	for _, seg := range Split(path) {
		next, ok := field(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}

	if !cur.IsValid() {
		return nil, true
	}
	return cur.Interface(), true
}

// GetOr resolves path and returns def when the path cannot be resolved.
func GetOr(state any, path string, def any) any {
	if v, ok := Get(state, path); ok {
		return v
	}
	return def
}

// Split breaks a path into its segments: "a.b[0].c" becomes [a b 0 c].
// A quoted bracket segment is kept whole, so `a["b.c"]` becomes [a b.c].
func Split(path string) []string {
	segs := make([]string, 0, strings.Count(path, ".")+1)
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			segs = append(segs, b.String())
			b.Reset()
		}
	}
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch c {
		case '[':
			flush()
			if i+1 < len(path) && (path[i+1] == '"' || path[i+1] == '\'') {
				q := path[i+1]
				if end := strings.IndexByte(path[i+2:], q); end >= 0 {
					segs = append(segs, path[i+2:i+2+end])
					i += 2 + end
					if i+1 < len(path) && path[i+1] == ']' {
						i++
					}
				}
			}
		case '.', ']':
			flush()
		case '"', '\'':
		default:
			b.WriteByte(c)
		}
	}
	flush()
	return segs
}

// Truthy reports whether v counts as present: nil, false, the empty string,
// numeric zero, NaN and nil references are falsy, everything else is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

func field(v reflect.Value, seg string) (reflect.Value, bool) {
	v = indirect(v)
	if !v.IsValid() {
		return reflect.Value{}, false
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		val := v.MapIndex(reflect.ValueOf(seg).Convert(v.Type().Key()))
		if !val.IsValid() {
			return reflect.Value{}, false
		}
		return val, true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= v.Len() {
			return reflect.Value{}, false
		}
		return v.Index(i), true
	case reflect.Struct:
		return structField(v, seg)
	default:
		return reflect.Value{}, false
	}
}

func structField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(sf.Tag.Get("json"), ","); tag == name {
			return v.Field(i), true
		}
	}
	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		fv, err := v.FieldByIndexErr(sf.Index)
		if err != nil {
			return reflect.Value{}, false
		}
		return fv, true
	}
	return reflect.Value{}, false
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
