package schema

import (
	"fmt"
	"sort"

	derrors "incstate/internal/core/errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every wire message in this package.
type Message interface {
	marshal(b []byte) []byte
	unmarshal(b []byte) error
}

// Marshal encodes m in the protobuf binary format.
func Marshal(m Message) []byte {
	return m.marshal(nil)
}

// Unmarshal decodes b into m. Unknown fields are skipped.
func Unmarshal(b []byte, m Message) error {
	if err := m.unmarshal(b); err != nil {
		return derrors.Wrap(err, derrors.CodeMalformedMessage, "decode wire bytes")
	}
	return nil
}

func UnmarshalAnalysisFile(b []byte) (*AnalysisFile, error) {
	m := &AnalysisFile{}
	if err := Unmarshal(b, m); err != nil {
		return nil, err
	}
	return m, nil
}

func UnmarshalAPIsFile(b []byte) (*APIsFile, error) {
	m := &APIsFile{}
	if err := Unmarshal(b, m); err != nil {
		return nil, err
	}
	return m, nil
}

// decoder walks the fields of one encoded message. The first failure is
// kept in err and stops iteration.
type decoder struct {
	b   []byte
	num protowire.Number
	typ protowire.Type
	err error
}

func newDecoder(b []byte) *decoder {
	return &decoder{b: b}
}

func (d *decoder) next() bool {
	if d.err != nil || len(d.b) == 0 {
		return false
	}
	num, typ, n := protowire.ConsumeTag(d.b)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return false
	}
	d.b = d.b[n:]
	d.num, d.typ = num, typ
	return true
}

func (d *decoder) expect(t protowire.Type) bool {
	if d.err != nil {
		return false
	}
	if d.typ != t {
		d.err = fmt.Errorf("field %d: wire type %d, want %d", d.num, d.typ, t)
		return false
	}
	return true
}

func (d *decoder) varint() uint64 {
	if !d.expect(protowire.VarintType) {
		return 0
	}
	v, n := protowire.ConsumeVarint(d.b)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return 0
	}
	d.b = d.b[n:]
	return v
}

func (d *decoder) int32() int32 { return int32(d.varint()) }
func (d *decoder) int64() int64 { return int64(d.varint()) }
func (d *decoder) bool() bool   { return protowire.DecodeBool(d.varint()) }

func (d *decoder) bytes() []byte {
	if !d.expect(protowire.BytesType) {
		return nil
	}
	v, n := protowire.ConsumeBytes(d.b)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return nil
	}
	d.b = d.b[n:]
	return v
}

func (d *decoder) string() string {
	return string(d.bytes())
}

func (d *decoder) message(m Message) {
	b := d.bytes()
	if d.err != nil {
		return
	}
	if err := m.unmarshal(b); err != nil {
		d.err = fmt.Errorf("field %d: %w", d.num, err)
	}
}

// enums reads a repeated enum in packed or unpacked form.
func (d *decoder) enums(fn func(int32)) {
	if d.typ != protowire.BytesType {
		v := d.int32()
		if d.err == nil {
			fn(v)
		}
		return
	}
	b := d.bytes()
	for len(b) > 0 && d.err == nil {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			d.err = protowire.ParseError(n)
			return
		}
		fn(int32(v))
		b = b[n:]
	}
}

// entry reads one map<string, Message> entry and returns the raw value.
func (d *decoder) entry() (string, []byte, bool) {
	b := d.bytes()
	if d.err != nil {
		return "", nil, false
	}
	var (
		key   string
		value []byte
	)
	sub := newDecoder(b)
	for sub.next() {
		switch sub.num {
		case 1:
			key = sub.string()
		case 2:
			value = sub.bytes()
		default:
			sub.skip()
		}
	}
	if sub.err != nil {
		d.err = fmt.Errorf("field %d map entry: %w", d.num, sub.err)
		return "", nil, false
	}
	return key, value, true
}

func (d *decoder) skip() {
	n := protowire.ConsumeFieldValue(d.num, d.typ, d.b)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return
	}
	d.b = d.b[n:]
}

type messagePtr[T any] interface {
	*T
	Message
}

func readMessage[T any, P messagePtr[T]](d *decoder) *T {
	m := P(new(T))
	d.message(m)
	return (*T)(m)
}

func readRepeated[T any, P messagePtr[T]](d *decoder, into *[]*T) {
	m := readMessage[T, P](d)
	if d.err == nil {
		*into = append(*into, m)
	}
}

// readEntry decodes a map entry; a missing value decodes as an empty message.
func readEntry[T any, P messagePtr[T]](d *decoder, into *map[string]*T) {
	key, raw, ok := d.entry()
	if !ok {
		return
	}
	m := P(new(T))
	if err := m.unmarshal(raw); err != nil {
		d.err = fmt.Errorf("field %d map value %q: %w", d.num, key, err)
		return
	}
	if *into == nil {
		*into = make(map[string]*T)
	}
	(*into)[key] = (*T)(m)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendStrings(b []byte, num protowire.Number, ss []string) []byte {
	for _, s := range ss {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	return b
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	return appendVarint(b, num, uint64(int64(v)))
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	return appendVarint(b, num, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	return appendVarint(b, num, protowire.EncodeBool(v))
}

func appendPackedEnums[E ~int32](b []byte, num protowire.Number, vs []E) []byte {
	if len(vs) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(int64(v)))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

// appendMessage writes m when it is present, even if it encodes to nothing.
func appendMessage[T any, P messagePtr[T]](b []byte, num protowire.Number, m P) []byte {
	if (*T)(m) == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.marshal(nil))
}

func appendRepeated[T any, P messagePtr[T]](b []byte, num protowire.Number, ms []P) []byte {
	for _, m := range ms {
		b = appendMessage[T, P](b, num, m)
	}
	return b
}

// appendEntries writes a map<string, Message> field in key order.
func appendEntries[T any, P messagePtr[T]](b []byte, num protowire.Number, m map[string]P) []byte {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var entry []byte
		entry = appendString(entry, 1, k)
		entry = appendMessage[T, P](entry, 2, m[k])
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}
