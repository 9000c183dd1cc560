package notify

import (
	"fmt"

	"bigclock/sparkos/kernel"
	"bigclock/sparkos/proto"
)

// sendRetryTicks bounds how long Send waits for room in the notify queue.
const sendRetryTicks = 50

// Send asks the notify service to play seq. Fire-and-forget.
func Send(ctx *kernel.Context, notifyCap kernel.Capability, seq proto.Sequence) error {
	if ctx == nil {
		return fmt.Errorf("notify: nil context")
	}
	res := ctx.SendToCapRetry(notifyCap, uint16(proto.MsgNotify), proto.NotifyPayload(seq), kernel.Capability{}, sendRetryTicks)
	if res != kernel.SendOK {
		return fmt.Errorf("notify %s: %s", seq, res)
	}
	return nil
}
