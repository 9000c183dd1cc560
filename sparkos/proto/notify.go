package proto

// Sequence names a canned notification the notify service plays.
type Sequence uint8

const (
	SeqBacklightEnforceOn Sequence = iota + 1
	SeqBacklightEnforceAuto
	SeqResetDisplay
)

func (s Sequence) String() string {
	switch s {
	case SeqBacklightEnforceOn:
		return "backlight_enforce_on"
	case SeqBacklightEnforceAuto:
		return "backlight_enforce_auto"
	case SeqResetDisplay:
		return "reset_display"
	default:
		return "unknown"
	}
}

// NotifyPayload encodes a MsgNotify payload.
//
// Layout:
//   - u8: sequence
func NotifyPayload(seq Sequence) []byte {
	return []byte{byte(seq)}
}

// DecodeNotifyPayload decodes a NotifyPayload.
func DecodeNotifyPayload(payload []byte) (Sequence, bool) {
	if len(payload) < 1 {
		return 0, false
	}
	seq := Sequence(payload[0])
	if seq < SeqBacklightEnforceOn || seq > SeqResetDisplay {
		return 0, false
	}
	return seq, true
}
