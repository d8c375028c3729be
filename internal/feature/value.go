// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type valueType uint8

const (
	unset valueType = iota
	text
	flag
)

// Value is a raw entered form value: unset, a string, or a boolean. The empty
// string and unset are the same value.
type Value struct {
	typ valueType
	s   string
	b   bool
}

// StringValue returns a text value; the empty string yields an unset Value.
func StringValue(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{typ: text, s: s}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{typ: flag, b: b}
}

// ValueOf converts a decoded JSON/YAML scalar into a Value. Numbers are kept
// as their decimal text, as a form input would hold them.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case bool:
		return BoolValue(t)
	case string:
		return StringValue(t)
	}
	return StringValue(Stringify(v))
}

// IsEmpty reports whether no value has been entered.
func (v Value) IsEmpty() bool { return v.typ == unset }

// IsBool reports whether the value holds a boolean.
func (v Value) IsBool() bool { return v.typ == flag }

// Bool returns the boolean held by v and whether v holds one.
func (v Value) Bool() (bool, bool) { return v.b, v.typ == flag }

// String returns the textual form of v; unset renders as "".
func (v Value) String() string {
	switch v.typ {
	case text:
		return v.s
	case flag:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// Raw returns v as a plain Go value (string or bool) for encoding.
func (v Value) Raw() any {
	if v.typ == flag {
		return v.b
	}
	return v.String()
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("feature value: %w", err)
	}
	switch raw.(type) {
	case nil, bool, string, float64:
		*v = ValueOf(raw)
		return nil
	}
	return fmt.Errorf("feature value: unsupported JSON value %s", b)
}

// ValueStore maps feature names to entered values.
type ValueStore map[string]Value

// Raw returns the store as plain Go values.
func (s ValueStore) Raw() map[string]any {
	out := make(map[string]any, len(s))
	for k, v := range s {
		out[k] = v.Raw()
	}
	return out
}

// StoreOf converts decoded key/value pairs into a ValueStore.
func StoreOf(m map[string]any) ValueStore {
	s := make(ValueStore, len(m))
	for k, v := range m {
		s[k] = ValueOf(v)
	}
	return s
}

// Reconcile returns a store holding exactly one entry per descriptor name.
// Values for names present in prev are carried over, names that are new start
// unset, and entries for names no longer described are dropped. prev is not
// modified.
func Reconcile(descriptors []Descriptor, prev ValueStore) ValueStore {
	next := make(ValueStore, len(descriptors))
	for _, d := range descriptors {
		next[d.Name] = prev[d.Name]
	}
	return next
}
