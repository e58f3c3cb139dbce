package indicator

import (
	"encoding/json"
	"strconv"
)

// Kind selects how a raw table value is coerced.
type Kind int

const (
	KindString Kind = iota
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// ParseKind maps the textual kind names used in query parameters.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "", "string":
		return KindString, true
	case "float", "number":
		return KindFloat, true
	default:
		return KindString, false
	}
}

// Value is a typed, display-safe indicator value. The zero Value is absent.
type Value struct {
	present bool
	kind    Kind
	str     string
	num     float64
}

// Absent returns the value used for missing, sentinel or malformed data.
func Absent() Value {
	return Value{}
}

func StringValue(s string) Value {
	return Value{present: true, kind: KindString, str: s}
}

func FloatValue(f float64) Value {
	return Value{present: true, kind: KindFloat, num: f}
}

func (v Value) IsAbsent() bool {
	return !v.present
}

func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the string payload and whether the value is a present string.
func (v Value) Str() (string, bool) {
	return v.str, v.present && v.kind == KindString
}

// Float returns the numeric payload and whether the value is a present float.
func (v Value) Float() (float64, bool) {
	return v.num, v.present && v.kind == KindFloat
}

// Text renders the value for display, substituting placeholder when absent.
func (v Value) Text(placeholder string) string {
	if !v.present {
		return placeholder
	}
	if v.kind == KindFloat {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// MarshalJSON encodes absent as null, strings as strings and floats as numbers.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	if v.kind == KindFloat {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

// UnmarshalJSON is the inverse of MarshalJSON; used by API clients and tests.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Absent()
	case float64:
		*v = FloatValue(t)
	case string:
		*v = StringValue(t)
	default:
		*v = Absent()
	}
	return nil
}

// Resolved pairs a record description with its coerced value.
type Resolved struct {
	Description string `json:"description"`
	Value       Value  `json:"value"`
}

// Share is one entry of a percentage breakdown, as a 0-1 fraction.
type Share struct {
	Label    string  `json:"label"`
	Fraction float64 `json:"fraction"`
}
