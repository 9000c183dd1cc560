package timer

import (
	"fmt"

	"bigclock/sparkos/kernel"
	"bigclock/sparkos/proto"
)

// sendRetryTicks bounds how long a request waits for room in the timer queue.
const sendRetryTicks = 50

// Start asks the timer service to send MsgTimerFire to reply every period ticks.
func Start(ctx *kernel.Context, timerCap kernel.Capability, id uint32, period uint32, reply kernel.Capability) error {
	if ctx == nil {
		return fmt.Errorf("timer start: nil context")
	}
	if period == 0 {
		return fmt.Errorf("timer start: zero period")
	}
	if !reply.Valid() {
		return fmt.Errorf("timer start: invalid reply capability")
	}
	res := ctx.SendToCapRetry(timerCap, uint16(proto.MsgTimerStart), proto.TimerStartPayload(id, period), reply, sendRetryTicks)
	if res != kernel.SendOK {
		return fmt.Errorf("timer start send: %s", res)
	}
	return nil
}

// Stop cancels timer id. Fires already queued at the reply endpoint stay queued.
func Stop(ctx *kernel.Context, timerCap kernel.Capability, id uint32) error {
	if ctx == nil {
		return fmt.Errorf("timer stop: nil context")
	}
	res := ctx.SendToCapRetry(timerCap, uint16(proto.MsgTimerStop), proto.TimerStopPayload(id), kernel.Capability{}, sendRetryTicks)
	if res != kernel.SendOK {
		return fmt.Errorf("timer stop send: %s", res)
	}
	return nil
}

// DecodeFire decodes a MsgTimerFire message. ok is false for any other message.
func DecodeFire(msg kernel.Message) (id uint32, seq uint32, ok bool) {
	if proto.Kind(msg.Kind) != proto.MsgTimerFire {
		return 0, 0, false
	}
	return proto.DecodeTimerFirePayload(msg.Payload())
}

// DecodeError returns the timer service error carried by msg, or nil when msg
// is not a MsgError.
func DecodeError(msg kernel.Message) error {
	if proto.Kind(msg.Kind) != proto.MsgError {
		return nil
	}
	rerr, ok := proto.DecodeRemoteError(msg.Payload())
	if !ok {
		return fmt.Errorf("timer error: bad payload")
	}
	return fmt.Errorf("timer error: %w", rerr)
}
