package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgError
	MsgInputEvent
	MsgTimerStart
	MsgTimerStop
	MsgTimerFire
	MsgNotify
)

// ErrCode is a generic error category for MsgError responses.
type ErrCode uint16

const (
	ErrUnknown ErrCode = iota
	ErrBadMessage
	ErrUnauthorized
	ErrNotFound
	ErrBusy
	ErrOverflow
	ErrTooLarge
	ErrInternal
)

func (c ErrCode) String() string {
	switch c {
	case ErrUnknown:
		return "unknown"
	case ErrBadMessage:
		return "bad_message"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrNotFound:
		return "not_found"
	case ErrBusy:
		return "busy"
	case ErrOverflow:
		return "overflow"
	case ErrTooLarge:
		return "too_large"
	case ErrInternal:
		return "internal"
	default:
		return "unknown"
	}
}

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	case MsgError:
		return "error"
	case MsgInputEvent:
		return "input_event"
	case MsgTimerStart:
		return "timer_start"
	case MsgTimerStop:
		return "timer_stop"
	case MsgTimerFire:
		return "timer_fire"
	case MsgNotify:
		return "notify"
	default:
		return "unknown"
	}
}

// LogLinePayload encodes a MsgLogLine payload: UTF-8 bytes with any trailing
// newlines removed. Delivery is best-effort.
func LogLinePayload(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	if len(b) == 0 {
		return nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}
