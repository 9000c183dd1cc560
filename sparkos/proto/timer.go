package proto

import "encoding/binary"

// TimerStartPayload encodes a MsgTimerStart request payload.
// The reply endpoint travels as the message capability.
//
// Layout (little-endian):
//   - u32: timer ID
//   - u32: period ticks
func TimerStartPayload(id uint32, period uint32) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], id)
	binary.LittleEndian.PutUint32(buf[4:8], period)
	return buf
}

// DecodeTimerStartPayload decodes a TimerStartPayload.
func DecodeTimerStartPayload(payload []byte) (id uint32, period uint32, ok bool) {
	if len(payload) < 8 {
		return 0, 0, false
	}
	id = binary.LittleEndian.Uint32(payload[0:4])
	period = binary.LittleEndian.Uint32(payload[4:8])
	return id, period, true
}

// TimerStopPayload encodes a MsgTimerStop request payload.
//
// Layout (little-endian):
//   - u32: timer ID
func TimerStopPayload(id uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf[0:4], id)
	return buf
}

// DecodeTimerStopPayload decodes a TimerStopPayload.
func DecodeTimerStopPayload(payload []byte) (id uint32, ok bool) {
	if len(payload) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(payload[0:4]), true
}

// TimerFirePayload encodes a MsgTimerFire payload.
//
// Layout (little-endian):
//   - u32: timer ID
//   - u32: fire sequence number, starting at 1
func TimerFirePayload(id uint32, seq uint32) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], id)
	binary.LittleEndian.PutUint32(buf[4:8], seq)
	return buf
}

// DecodeTimerFirePayload decodes a TimerFirePayload.
func DecodeTimerFirePayload(payload []byte) (id uint32, seq uint32, ok bool) {
	if len(payload) < 8 {
		return 0, 0, false
	}
	id = binary.LittleEndian.Uint32(payload[0:4])
	seq = binary.LittleEndian.Uint32(payload[4:8])
	return id, seq, true
}
