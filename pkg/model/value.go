package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the type held by a Value
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
	KindMap
)

// Value is a tagged property value. Properties are open-ended and
// heterogeneous, so the value set is fixed here instead of using
// unconstrained dynamic typing: string, int, float, bool, null,
// list and map.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	bit  bool
	list []Value
	dict map[string]Value
}

// Null returns the null Value
func Null() Value {
	return Value{kind: KindNull}
}

// String returns a Value holding the given string
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns a Value holding the given integer
func Int(i int64) Value {
	return Value{kind: KindInt, num: i}
}

// Float returns a Value holding the given float
func Float(f float64) Value {
	return Value{kind: KindFloat, flt: f}
}

// Bool returns a Value holding the given boolean
func Bool(b bool) Value {
	return Value{kind: KindBool, bit: b}
}

// List returns a Value holding the given sequence of values
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Map returns a Value holding the given key-value mapping
func Map(entries map[string]Value) Value {
	return Value{kind: KindMap, dict: entries}
}

// Kind returns the kind tag of the value
func (v Value) Kind() Kind {
	return v.kind
}

// AsString returns the string held by the value and whether it holds one
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsInt returns the integer held by the value and whether it holds one
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// AsFloat returns the float held by the value and whether it holds one
func (v Value) AsFloat() (float64, bool) {
	return v.flt, v.kind == KindFloat
}

// AsBool returns the boolean held by the value and whether it holds one
func (v Value) AsBool() (bool, bool) {
	return v.bit, v.kind == KindBool
}

// AsList returns the sequence held by the value and whether it holds one
func (v Value) AsList() ([]Value, bool) {
	return v.list, v.kind == KindList
}

// AsMap returns the mapping held by the value and whether it holds one
func (v Value) AsMap() (map[string]Value, bool) {
	return v.dict, v.kind == KindMap
}

// Equal reports whether two values have the same kind and contents.
// Filters match by this exact equality, never by partial match.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.num == other.num
	case KindFloat:
		return v.flt == other.flt
	case KindBool:
		return v.bit == other.bit
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.dict) != len(other.dict) {
			return false
		}
		for k, val := range v.dict {
			o, ok := other.dict[k]
			if !ok || !val.Equal(o) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface returns the value as a plain Go value (string, int64, float64,
// bool, nil, []interface{} or map[string]interface{})
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.bit
	case KindList:
		out := make([]interface{}, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]interface{}, len(v.dict))
		for k, item := range v.dict {
			out[k] = item.Interface()
		}
		return out
	}
	return nil
}

// Native returns the textual form of the value used when the property
// crosses the native boundary at element creation time. Scalars use their
// canonical text form, composites are JSON encoded.
func (v Value) Native() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.bit)
	case KindList, KindMap:
		encoded, err := json.Marshal(v.Interface())
		if err != nil {
			return fmt.Sprintf("%v", v.Interface())
		}
		return string(encoded)
	}
	return ""
}

// String returns a human-readable form of the value
func (v Value) String() string {
	if v.kind == KindNull {
		return "null"
	}
	return v.Native()
}
