package input

import (
	"bigclock/hal"
	"bigclock/sparkos/kernel"
	"bigclock/sparkos/proto"
)

const (
	// LongPressTicks is how long a key must be held before InputTypeLong.
	LongPressTicks = 300
	// RepeatTicks is the InputTypeRepeat interval after a long press.
	RepeatTicks = 150
)

type keyState struct {
	down       bool
	since      uint64
	long       bool
	nextRepeat uint64
}

// Service turns raw key transitions into classified input events and delivers
// them to a single subscriber. Events that do not fit in the subscriber queue
// are dropped.
type Service struct {
	keys  <-chan hal.KeyEvent
	ticks <-chan uint64
	out   kernel.Capability

	now   uint64
	state [hal.KeyBack + 1]keyState

	dropped uint32
}

// New returns an input service. kbd may be nil on targets without keys.
func New(kbd hal.Keyboard, ticks <-chan uint64, out kernel.Capability) *Service {
	s := &Service{ticks: ticks, out: out}
	if kbd != nil {
		s.keys = kbd.Events()
	}
	return s
}

// Dropped reports how many events were discarded on a full subscriber queue.
func (s *Service) Dropped() uint32 { return s.dropped }

func (s *Service) Run(ctx *kernel.Context) {
	for {
		select {
		case ev, ok := <-s.keys:
			if !ok {
				s.keys = nil
				continue
			}
			s.handleKey(ctx, ev)
		case seq, ok := <-s.ticks:
			if !ok {
				return
			}
			s.now = seq
			s.checkHeld(ctx)
		}
	}
}

func (s *Service) handleKey(ctx *kernel.Context, ev hal.KeyEvent) {
	if ev.Code == hal.KeyUnknown || int(ev.Code) >= len(s.state) {
		return
	}
	st := &s.state[ev.Code]
	if ev.Press {
		if st.down {
			return
		}
		*st = keyState{down: true, since: s.now}
		s.emit(ctx, ev.Code, proto.InputTypePress)
		return
	}
	if !st.down {
		return
	}
	if !st.long {
		s.emit(ctx, ev.Code, proto.InputTypeShort)
	}
	s.emit(ctx, ev.Code, proto.InputTypeRelease)
	*st = keyState{}
}

func (s *Service) checkHeld(ctx *kernel.Context) {
	for code := range s.state {
		st := &s.state[code]
		if !st.down {
			continue
		}
		if !st.long {
			if s.now-st.since < LongPressTicks {
				continue
			}
			st.long = true
			st.nextRepeat = st.since + LongPressTicks + RepeatTicks
			s.emit(ctx, hal.KeyCode(code), proto.InputTypeLong)
			continue
		}
		if s.now >= st.nextRepeat {
			s.emit(ctx, hal.KeyCode(code), proto.InputTypeRepeat)
			for st.nextRepeat <= s.now {
				st.nextRepeat += RepeatTicks
			}
		}
	}
}

func (s *Service) emit(ctx *kernel.Context, key hal.KeyCode, typ proto.InputType) {
	res := ctx.SendToCapResult(s.out, uint16(proto.MsgInputEvent), proto.InputEventPayload(key, typ), kernel.Capability{})
	if res != kernel.SendOK {
		s.dropped++
	}
}
