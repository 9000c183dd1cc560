package logger

import (
	"bigclock/hal"
	"bigclock/sparkos/kernel"
	"bigclock/sparkos/proto"
)

// Service copies MsgLogLine payloads to the HAL logger.
type Service struct {
	log hal.Logger
	ep  kernel.Capability
}

func New(log hal.Logger, ep kernel.Capability) *Service {
	return &Service{log: log, ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	for {
		msg, ok := ctx.Recv(s.ep)
		if !ok {
			return
		}
		if s.log == nil || msg.Kind != uint16(proto.MsgLogLine) {
			continue
		}
		s.log.WriteLineBytes(msg.Payload())
	}
}
