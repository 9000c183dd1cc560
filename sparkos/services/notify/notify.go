package notify

import (
	"bigclock/hal"
	"bigclock/sparkos/kernel"
	"bigclock/sparkos/proto"
)

// Service applies notification sequences to the display light.
type Service struct {
	bl hal.Backlight
	ep kernel.Capability
}

func New(bl hal.Backlight, ep kernel.Capability) *Service {
	return &Service{bl: bl, ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	for {
		msg, ok := ctx.Recv(s.ep)
		if !ok {
			return
		}
		if msg.Kind != uint16(proto.MsgNotify) {
			continue
		}
		seq, ok := proto.DecodeNotifyPayload(msg.Payload())
		if !ok {
			if msg.Cap.Valid() {
				payload := proto.ErrorPayload(proto.ErrBadMessage, proto.MsgNotify, nil)
				_ = ctx.SendToCapResult(msg.Cap, uint16(proto.MsgError), payload, kernel.Capability{})
			}
			continue
		}
		s.apply(seq)
	}
}

func (s *Service) apply(seq proto.Sequence) {
	if s.bl == nil {
		return
	}
	switch seq {
	case proto.SeqBacklightEnforceOn:
		s.bl.SetEnforced(true)
	case proto.SeqBacklightEnforceAuto:
		s.bl.SetEnforced(false)
	case proto.SeqResetDisplay:
		s.bl.ResetDisplay()
	}
}
