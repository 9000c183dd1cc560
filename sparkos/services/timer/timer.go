package timer

import (
	"bigclock/sparkos/kernel"
	"bigclock/sparkos/proto"
)

const maxTimers = 16

type timer struct {
	inUse  bool
	id     uint32
	period uint64
	due    uint64
	seq    uint32
	reply  kernel.Capability
}

// Service runs periodic timers against the kernel tick stream.
//
// A fire that cannot be queued at the reply endpoint is dropped; the next one
// is still scheduled a full period later.
type Service struct {
	ep    kernel.Capability
	ticks <-chan uint64

	now    uint64
	timers [maxTimers]timer
}

// New returns a timer service reading requests from ep and time from ticks.
func New(ep kernel.Capability, ticks <-chan uint64) *Service {
	return &Service{ep: ep, ticks: ticks}
}

func (s *Service) Run(ctx *kernel.Context) {
	reqs, ok := ctx.RecvChan(s.ep)
	if !ok {
		return
	}
	for {
		select {
		case msg, ok := <-reqs:
			if !ok {
				return
			}
			s.handle(ctx, msg)
		case seq, ok := <-s.ticks:
			if !ok {
				return
			}
			s.now = seq
			s.fireReady(ctx)
		}
	}
}

func (s *Service) handle(ctx *kernel.Context, msg kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgTimerStart:
		if !msg.Cap.Valid() {
			return
		}
		id, period, ok := proto.DecodeTimerStartPayload(msg.Payload())
		if !ok || period == 0 {
			s.replyErr(ctx, msg.Cap, proto.ErrBadMessage, proto.MsgTimerStart, id)
			return
		}
		if !s.start(id, uint64(period), msg.Cap) {
			s.replyErr(ctx, msg.Cap, proto.ErrOverflow, proto.MsgTimerStart, id)
		}

	case proto.MsgTimerStop:
		id, ok := proto.DecodeTimerStopPayload(msg.Payload())
		if !ok {
			if msg.Cap.Valid() {
				s.replyErr(ctx, msg.Cap, proto.ErrBadMessage, proto.MsgTimerStop, 0)
			}
			return
		}
		s.stop(id)
	}
}

func (s *Service) replyErr(ctx *kernel.Context, to kernel.Capability, code proto.ErrCode, ref proto.Kind, id uint32) {
	payload := proto.ErrorPayload(code, ref, proto.ErrorDetailWithRequestID(id, nil))
	_ = ctx.SendToCapResult(to, uint16(proto.MsgError), payload, kernel.Capability{})
}

// start (re)arms timer id. Restarting an active id replaces it.
func (s *Service) start(id uint32, period uint64, reply kernel.Capability) bool {
	slot := -1
	for i := range s.timers {
		if s.timers[i].inUse && s.timers[i].id == id {
			slot = i
			break
		}
		if slot < 0 && !s.timers[i].inUse {
			slot = i
		}
	}
	if slot < 0 {
		return false
	}
	s.timers[slot] = timer{inUse: true, id: id, period: period, due: s.now + period, reply: reply}
	return true
}

func (s *Service) stop(id uint32) {
	for i := range s.timers {
		if s.timers[i].inUse && s.timers[i].id == id {
			s.timers[i] = timer{}
		}
	}
}

func (s *Service) fireReady(ctx *kernel.Context) {
	for i := range s.timers {
		t := &s.timers[i]
		if !t.inUse || t.due > s.now {
			continue
		}
		t.seq++
		res := ctx.SendToCapResult(t.reply, uint16(proto.MsgTimerFire), proto.TimerFirePayload(t.id, t.seq), kernel.Capability{})
		if res == kernel.SendErrNoEndpoint {
			*t = timer{}
			continue
		}
		// Skip missed periods instead of bursting.
		for t.due <= s.now {
			t.due += t.period
		}
	}
}
