// Package flex decodes JSON leaf values that an API encodes inconsistently.
//
// Ethplorer is not consistent about its wire types: a number may arrive as a
// JSON number or as a string holding one, a timestamp may be an epoch integer
// or a calendar string, and a nested object may be replaced by a placeholder
// such as false or "". The types in this package normalize those variants into
// fixed-shape Go values.
//
// # Decoding rules
//
// Every decoder first classifies the raw value with KindOf and then dispatches
// on the resulting Kind:
//
//   - Uint64, Int64, Float64 and Decimal accept numbers and numeric strings.
//     Anything that does not parse becomes zero.
//   - Timestamp accepts epoch seconds of any integer width or an ISO-8601
//     string. Anything that does not parse becomes the Unix epoch.
//   - Object[T] decodes a nested object into T and treats any scalar as
//     "no data", leaving the zero T.
//
// Leaf parse failures are absorbed so one malformed field never voids a whole
// response. A JSON array where a scalar or object was expected is the only
// input that fails, with a *KindError.
//
// # Usage
//
//	type Token struct {
//		Decimals flex.Uint64          `json:"decimals"`
//		Supply   flex.Decimal         `json:"totalSupply"`
//		Updated  flex.Timestamp       `json:"lastUpdated"`
//		Price    flex.Object[Price]   `json:"price"`
//	}
package flex
