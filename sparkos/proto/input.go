package proto

import (
	"encoding/binary"

	"bigclock/hal"
)

// InputType classifies a key event after press-duration processing.
type InputType uint8

const (
	InputTypePress InputType = iota + 1
	InputTypeRelease
	InputTypeShort
	InputTypeLong
	InputTypeRepeat
)

func (t InputType) String() string {
	switch t {
	case InputTypePress:
		return "press"
	case InputTypeRelease:
		return "release"
	case InputTypeShort:
		return "short"
	case InputTypeLong:
		return "long"
	case InputTypeRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// InputEventPayload encodes a MsgInputEvent payload.
//
// Layout (little-endian):
//   - u16: key code
//   - u8: input type
func InputEventPayload(key hal.KeyCode, typ InputType) []byte {
	buf := make([]byte, 3)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(key))
	buf[2] = byte(typ)
	return buf
}

// DecodeInputEventPayload decodes an InputEventPayload.
func DecodeInputEventPayload(payload []byte) (key hal.KeyCode, typ InputType, ok bool) {
	if len(payload) < 3 {
		return 0, 0, false
	}
	key = hal.KeyCode(binary.LittleEndian.Uint16(payload[0:2]))
	typ = InputType(payload[2])
	if typ < InputTypePress || typ > InputTypeRepeat {
		return 0, 0, false
	}
	return key, typ, true
}
