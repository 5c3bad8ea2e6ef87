package flex

import (
	"bytes"
	"encoding/json"
)

// Kind classifies a raw JSON value before it is decoded.
type Kind int

const (
	// KindAbsent is an empty input, i.e. a field that was never present
	KindAbsent Kind = iota
	// KindNull is the JSON literal null
	KindNull
	// KindBool is true or false
	KindBool
	// KindNumber is a JSON number literal
	KindNumber
	// KindText is a JSON string
	KindText
	// KindStruct is a JSON object
	KindStruct
	// KindList is a JSON array
	KindList
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "string"
	case KindStruct:
		return "object"
	case KindList:
		return "array"
	default:
		return "unknown"
	}
}

// KindOf inspects the first significant byte of a raw JSON value.
// It does not validate the value; encoding/json has already done that by the
// time an UnmarshalJSON method sees it.
func KindOf(data []byte) Kind {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return KindAbsent
	}

	switch data[0] {
	case 'n':
		return KindNull
	case 't', 'f':
		return KindBool
	case '"':
		return KindText
	case '{':
		return KindStruct
	case '[':
		return KindList
	default:
		return KindNumber
	}
}

// scalarText returns the text a numeric decoder should parse: the literal for
// numbers, the unquoted contents for strings and "" for everything else.
func scalarText(data []byte) (string, Kind) {
	kind := KindOf(data)
	switch kind {
	case KindNumber:
		return string(bytes.TrimSpace(data)), kind
	case KindText:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", kind
		}
		return s, kind
	default:
		return "", kind
	}
}
