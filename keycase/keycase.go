package keycase

import (
	"encoding"
	"math/big"
	"net/url"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/erraggy/taxokit/casing"
	"github.com/erraggy/taxokit/taxerrors"
)

var (
	anyType       = reflect.TypeFor[any]()
	objectType    = reflect.TypeFor[map[string]any]()
	emptyStruct   = reflect.TypeFor[struct{}]()
	textMarshaler = reflect.TypeFor[encoding.TextMarshaler]()

	builtinOpaque = map[reflect.Type]bool{
		reflect.TypeFor[time.Time]():     true,
		reflect.TypeFor[regexp.Regexp](): true,
		reflect.TypeFor[url.URL]():       true,
		reflect.TypeFor[big.Int]():       true,
		reflect.TypeFor[big.Float]():     true,
		reflect.TypeFor[big.Rat]():       true,
	}
)

// Deep returns a copy of v with every property key rewritten by conv.
// See the package documentation for how each kind of value is treated.
// Keys that collide after conversion keep the value of the last source key
// in sorted order; struct fields are ordered by property name the same way.
// Pointer cycles produce a *taxerrors.ResourceLimitError.
func Deep(v any, conv casing.Converter, opts ...Option) (any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, nil
	}
	m := newMapper(conv, newConfig(opts))
	out, err := m.convert(rv, 0)
	if err != nil {
		return nil, err
	}
	return out.Interface(), nil
}

// Shallow returns a copy of v with only its top-level keys rewritten by conv.
// Maps keep their type; structs become map[string]any with their field values
// untouched. Any other value is returned unchanged.
func Shallow(v any, conv casing.Converter) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return v
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return v
	}

	m := newMapper(conv, newConfig(nil))
	switch {
	case m.isOpaque(rv.Type()):
		return v
	case rv.Kind() == reflect.Struct:
		out := reflect.MakeMap(objectType)
		for _, f := range m.fields(rv.Type()) {
			fv, err := rv.FieldByIndexErr(f.index)
			if err != nil {
				continue
			}
			out.SetMapIndex(reflect.ValueOf(conv(f.name)), fv)
		}
		return out.Interface()
	case isObject(rv.Type()):
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		for _, k := range sortedKeys(rv) {
			out.SetMapIndex(reflect.ValueOf(conv(k.String())).Convert(rv.Type().Key()), rv.MapIndex(k))
		}
		return out.Interface()
	}
	return v
}

type field struct {
	name  string
	index []int
}

// visit identifies a pointer being followed on the current path.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

type mapper struct {
	conv     casing.Converter
	cfg      *config
	types    map[reflect.Type]reflect.Type
	hasKeys  map[reflect.Type]bool
	fieldMap map[reflect.Type][]field
	active   map[visit]bool
}

func newMapper(conv casing.Converter, cfg *config) *mapper {
	return &mapper{
		conv:     conv,
		cfg:      cfg,
		types:    make(map[reflect.Type]reflect.Type),
		hasKeys:  make(map[reflect.Type]bool),
		fieldMap: make(map[reflect.Type][]field),
		active:   make(map[visit]bool),
	}
}

func (m *mapper) isOpaque(t reflect.Type) bool {
	if m.cfg.opaque[t] || builtinOpaque[t] {
		return true
	}
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	case reflect.Interface:
		return false
	}
	return t.Implements(textMarshaler) || reflect.PointerTo(t).Implements(textMarshaler)
}

// isObject reports whether t is a map whose keys are property names.
func isObject(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String && t.Elem() != emptyStruct
}

func isSet(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem() == emptyStruct
}

// containsKeys reports whether values of t can hold property keys.
func (m *mapper) containsKeys(t reflect.Type) bool {
	if known, ok := m.hasKeys[t]; ok {
		return known
	}
	m.hasKeys[t] = false

	var result bool
	switch {
	case m.isOpaque(t):
		result = false
	case t.Kind() == reflect.Interface, t.Kind() == reflect.Struct, isObject(t):
		result = true
	case isSet(t):
		result = false
	case t.Kind() == reflect.Map, t.Kind() == reflect.Slice, t.Kind() == reflect.Array, t.Kind() == reflect.Pointer:
		result = m.containsKeys(t.Elem())
	}
	m.hasKeys[t] = result
	return result
}

// outType returns the type Deep produces for values of type t.
func (m *mapper) outType(t reflect.Type) reflect.Type {
	if out, ok := m.types[t]; ok {
		return out
	}
	if !m.containsKeys(t) {
		m.types[t] = t
		return t
	}
	// Provisional entry for recursive types; any accepts every result.
	m.types[t] = anyType

	var out reflect.Type
	switch t.Kind() {
	case reflect.Struct:
		out = objectType
	case reflect.Map:
		out = reflect.MapOf(t.Key(), m.outType(t.Elem()))
	case reflect.Slice:
		out = reflect.SliceOf(m.outType(t.Elem()))
	case reflect.Array:
		out = reflect.ArrayOf(t.Len(), m.outType(t.Elem()))
	case reflect.Pointer:
		out = m.outType(t.Elem())
	default:
		out = anyType
	}
	m.types[t] = out
	return out
}

func (m *mapper) convert(v reflect.Value, depth int) (reflect.Value, error) {
	t := v.Type()
	if !m.containsKeys(t) {
		return v, nil
	}
	if depth > m.cfg.maxDepth {
		return reflect.Value{}, &taxerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(m.cfg.maxDepth),
			Actual:       int64(depth),
			Message:      "value nests too deeply",
		}
	}
	out := m.outType(t)

	switch t.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(out), nil
		}
		if t.Kind() == reflect.Pointer {
			key := visit{ptr: v.Pointer(), typ: t}
			if m.active[key] {
				return reflect.Value{}, &taxerrors.ResourceLimitError{
					ResourceType: "pointer_cycle",
					Message:      "value refers back to itself through " + t.String(),
				}
			}
			m.active[key] = true
			defer delete(m.active, key)
		}
		inner, err := m.convert(v.Elem(), depth)
		if err != nil {
			return reflect.Value{}, err
		}
		if t.Kind() == reflect.Pointer {
			return inner, nil
		}
		boxed := reflect.New(out).Elem()
		boxed.Set(inner)
		return boxed, nil

	case reflect.Struct:
		obj := reflect.MakeMap(objectType)
		for _, f := range m.fields(t) {
			fv, err := v.FieldByIndexErr(f.index)
			if err != nil {
				// nil embedded pointer
				continue
			}
			converted, err := m.convert(fv, depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			obj.SetMapIndex(reflect.ValueOf(m.conv(f.name)), converted)
		}
		return obj, nil

	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(out), nil
		}
		result := reflect.MakeMapWithSize(out, v.Len())
		object := isObject(t)
		for _, k := range sortedKeys(v) {
			converted, err := m.convert(v.MapIndex(k), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			key := k
			if object {
				key = reflect.ValueOf(m.conv(k.String())).Convert(t.Key())
			}
			result.SetMapIndex(key, converted)
		}
		return result, nil

	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(out), nil
		}
		result := reflect.MakeSlice(out, v.Len(), v.Len())
		for i := range v.Len() {
			converted, err := m.convert(v.Index(i), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			result.Index(i).Set(converted)
		}
		return result, nil

	case reflect.Array:
		result := reflect.New(out).Elem()
		for i := range v.Len() {
			converted, err := m.convert(v.Index(i), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			result.Index(i).Set(converted)
		}
		return result, nil
	}
	return v, nil
}

// fields lists the property names of struct type t the way encoding/json
// names them: the json tag name if present, otherwise the field name.
// Untagged embedded structs are flattened. Fields are sorted by name so that
// colliding names resolve like colliding map keys.
func (m *mapper) fields(t reflect.Type) []field {
	if fs, ok := m.fieldMap[t]; ok {
		return fs
	}
	var fs []field
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && !m.isOpaque(ft) {
				for _, sub := range m.fields(ft) {
					fs = append(fs, field{name: sub.name, index: append([]int{i}, sub.index...)})
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fs = append(fs, field{name: name, index: []int{i}})
	}
	slices.SortStableFunc(fs, func(a, b field) int { return strings.Compare(a.name, b.name) })
	m.fieldMap[t] = fs
	return fs
}

func sortedKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	if v.Type().Key().Kind() == reflect.String {
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	}
	return keys
}
