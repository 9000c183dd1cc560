package timer

import (
	"testing"
	"time"

	"bigclock/sparkos/kernel"
	"bigclock/sparkos/proto"
)

func startMsg(id, period uint32, reply kernel.Capability) kernel.Message {
	var msg kernel.Message
	msg.Kind = uint16(proto.MsgTimerStart)
	p := proto.TimerStartPayload(id, period)
	msg.Len = uint16(copy(msg.Data[:], p))
	msg.Cap = reply
	return msg
}

func TestTimerFiresEveryPeriod(t *testing.T) {
	k := kernel.New()
	reply := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := k.NewContext(0)
	s := New(kernel.Capability{}, nil)

	s.handle(ctx, startMsg(3, 1000, reply.Restrict(kernel.RightSend)))

	for _, now := range []uint64{999, 1000, 1500, 2000} {
		s.now = now
		s.fireReady(ctx)
	}

	var seqs []uint32
	for {
		msg, ok := ctx.TryRecv(reply)
		if !ok {
			break
		}
		id, seq, ok := proto.DecodeTimerFirePayload(msg.Payload())
		if !ok || id != 3 {
			t.Fatalf("unexpected fire id=%d ok=%v", id, ok)
		}
		seqs = append(seqs, seq)
	}
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 2 {
		t.Fatalf("expected fires [1 2], got %v", seqs)
	}
}

func TestTimerSkipsMissedPeriods(t *testing.T) {
	k := kernel.New()
	reply := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := k.NewContext(0)
	s := New(kernel.Capability{}, nil)

	s.handle(ctx, startMsg(1, 100, reply.Restrict(kernel.RightSend)))
	s.now = 1050
	s.fireReady(ctx)
	s.fireReady(ctx)

	n := 0
	for {
		if _, ok := ctx.TryRecv(reply); !ok {
			break
		}
		n++
	}
	if n != 1 {
		t.Fatalf("expected one fire after a long gap, got %d", n)
	}
	if due := s.timers[0].due; due != 1100 {
		t.Fatalf("expected next due 1100, got %d", due)
	}
}

func TestTimerDropsFireOnFullQueue(t *testing.T) {
	k := kernel.New()
	reply := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := k.NewContext(0)
	s := New(kernel.Capability{}, nil)

	s.handle(ctx, startMsg(1, 10, reply.Restrict(kernel.RightSend)))
	for now := uint64(10); now <= 200; now += 10 {
		s.now = now
		s.fireReady(ctx)
	}

	n := 0
	for {
		if _, ok := ctx.TryRecv(reply); !ok {
			break
		}
		n++
	}
	if n != 8 {
		t.Fatalf("expected the queue to cap fires at 8, got %d", n)
	}
	if !s.timers[0].inUse {
		t.Fatal("expected timer to stay armed")
	}
}

func TestTimerStop(t *testing.T) {
	k := kernel.New()
	reply := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := k.NewContext(0)
	s := New(kernel.Capability{}, nil)

	s.handle(ctx, startMsg(5, 10, reply.Restrict(kernel.RightSend)))

	var stop kernel.Message
	stop.Kind = uint16(proto.MsgTimerStop)
	stop.Len = uint16(copy(stop.Data[:], proto.TimerStopPayload(5)))
	s.handle(ctx, stop)

	s.now = 100
	s.fireReady(ctx)
	if _, ok := ctx.TryRecv(reply); ok {
		t.Fatal("expected no fire after stop")
	}
}

func TestTimerErrors(t *testing.T) {
	k := kernel.New()
	reply := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := k.NewContext(0)
	s := New(kernel.Capability{}, nil)
	to := reply.Restrict(kernel.RightSend)

	s.handle(ctx, startMsg(1, 0, to))
	msg, ok := ctx.TryRecv(reply)
	if !ok {
		t.Fatal("expected error reply")
	}
	code, ref, _, ok := proto.DecodeErrorPayload(msg.Payload())
	if !ok || code != proto.ErrBadMessage || ref != proto.MsgTimerStart {
		t.Fatalf("got code=%s ref=%s", code, ref)
	}

	for i := uint32(0); i < maxTimers; i++ {
		s.handle(ctx, startMsg(100+i, 10, to))
	}
	s.handle(ctx, startMsg(999, 10, to))
	msg, ok = ctx.TryRecv(reply)
	if !ok {
		t.Fatal("expected overflow reply")
	}
	code, _, detail, _ := proto.DecodeErrorPayload(msg.Payload())
	id, _, _ := proto.DecodeErrorDetailWithRequestID(detail)
	if code != proto.ErrOverflow || id != 999 {
		t.Fatalf("got code=%s id=%d", code, id)
	}
}

func TestServiceRun(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	reply := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ticks := make(chan uint64)
	if _, ok := k.AddTask(New(ep.Restrict(kernel.RightRecv), ticks)); !ok {
		t.Fatal("add task")
	}

	ctx := k.NewContext(0)
	res := ctx.SendToCapResult(ep.Restrict(kernel.RightSend), uint16(proto.MsgTimerStart), proto.TimerStartPayload(1, 10), reply.Restrict(kernel.RightSend))
	if res != kernel.SendOK {
		t.Fatalf("send: %s", res)
	}

	fires, _ := ctx.RecvChan(reply)
	deadline := time.After(time.Second)
	for now := uint64(10); ; now += 10 {
		select {
		case ticks <- now:
		case msg := <-fires:
			if proto.Kind(msg.Kind) != proto.MsgTimerFire {
				t.Fatalf("unexpected reply %s", proto.Kind(msg.Kind))
			}
			close(ticks)
			k.Wait()
			return
		case <-deadline:
			t.Fatal("timed out waiting for a fire")
		}
	}
}
