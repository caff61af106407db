// Package keycase rewrites the property keys of nested values with a casing
// converter.
//
// Deep walks any Go value and classifies each node:
//
//   - opaque leaves (scalars, funcs, channels, time.Time, regexp.Regexp,
//     url.URL, math/big numbers, encoding.TextMarshaler implementations and
//     types registered with WithOpaque) are returned unchanged;
//   - maps with string keys are objects: every key is converted and every
//     value is walked;
//   - maps with struct{} values are sets and are returned unchanged, since
//     set members must stay comparable;
//   - slices are walked element by element; Go arrays keep their length;
//   - structs are objects keyed by their json tag name (or field name) and
//     become map[string]any;
//   - pointers and interfaces are followed; a pointer that leads back to
//     itself is an error.
//
// When two keys or struct fields convert to the same name, the one that sorts
// last by source name wins.
//
// Shallow converts only the top-level keys. JSON and JSONShallow do the same
// for raw JSON documents and keep object members in their original order.
//
//	out, err := keycase.Deep(map[string]any{"user_id": 1}, casing.StyleCamel.Converter())
//	// out == map[string]any{"userId": 1}
package keycase
