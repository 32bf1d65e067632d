package hub

import (
	"context"
	"sync"
	"time"

	pdebug "github.com/lestrrat-go/pdebug"
)

// NewPayload creates a new Payload with the given data and batch flag.
func NewPayload[T any](data T, batch bool) *Payload[T] {
	return &Payload[T]{
		data:  data,
		batch: batch,
	}
}

// Batch returns true if this payload is part of a batch operation.
func (p *Payload[T]) Batch() bool {
	return p.batch
}

// Data returns the underlying data.
func (p *Payload[T]) Data() T {
	return p.data
}

// Done marks the request as done. If Hub is operating in
// asynchronous mode (default), it's a no op. Otherwise it
// signals the reply channel to finish up the synchronous communication.
func (p *Payload[T]) Done() {
	if p.done == nil {
		return
	}
	p.done <- struct{}{}
}

// New creates a new Hub struct. bufsiz is the capacity of each
// underlying channel: senders block once a channel is full and its
// receiver has stopped draining.
func New(bufsiz int) *Hub {
	return &Hub{
		commandCh:   make(chan *Payload[Command], bufsiz),
		drawCh:      make(chan *Payload[*DrawOptions], bufsiz),
		statusMsgCh: make(chan *Payload[StatusMsg], bufsiz),
	}
}

type operationNameKey struct{}
type batchPayloadKey struct{}

// Batch allows you to synchronously send messages during the
// scope of f() being executed.
func (h *Hub) Batch(ctx context.Context, f func(ctx context.Context), shouldLock bool) {
	if pdebug.Enabled {
		g := pdebug.Marker("Batch (shouldLock=%t)", shouldLock)
		defer g.End()
	}

	if shouldLock {
		// lock during this operation
		h.mutex.Lock()
		defer h.mutex.Unlock()
	}

	// ignore panics
	defer func() { recover() }()

	f(context.WithValue(ctx, batchPayloadKey{}, true))
}

var doneChPool = sync.Pool{
	New: func() interface{} {
		return make(chan struct{})
	},
}

func (p *Payload[T]) waitDone() {
	<-p.done

	ch := p.done
	p.done = nil

	defer doneChPool.Put(ch)
}

func isBatchCtx(ctx context.Context) bool {
	var isBatchMode bool
	v := ctx.Value(batchPayloadKey{})
	if vv, ok := v.(bool); ok {
		isBatchMode = vv
	}
	return isBatchMode
}

// send is the low-level generic utility for sending typed payloads.
// A send that blocks on a full channel gives up when ctx is canceled,
// so a producer never deadlocks against a receiver that has already
// shut down.
func send[T any](ctx context.Context, ch chan *Payload[T], r *Payload[T]) {
	isBatchMode := isBatchCtx(ctx)
	if pdebug.Enabled {
		g := pdebug.Marker("hub.send (name=%s, isBatchMode=%t)", ctx.Value(operationNameKey{}), isBatchMode)
		defer g.End()
	}

	if isBatchMode {
		r.done = doneChPool.Get().(chan struct{})
	}

	select {
	case ch <- r:
		if isBatchMode {
			if pdebug.Enabled {
				pdebug.Printf("request is part of batch operation. waiting")
			}
			r.waitDone()
		}
	case <-ctx.Done():
		if isBatchMode {
			// the payload never reached a receiver, so nobody will
			// call Done on it
			done := r.done
			r.done = nil
			doneChPool.Put(done)
		}
	}
}

// CommandCh returns the underlying channel for resolved commands.
func (h *Hub) CommandCh() chan *Payload[Command] {
	return h.commandCh
}

// SendCommand sends a resolved command to be processed by the
// application loop.
func (h *Hub) SendCommand(ctx context.Context, c Command) {
	send(context.WithValue(ctx, operationNameKey{}, "send command"), h.CommandCh(), NewPayload(c, isBatchCtx(ctx)))
}

// DrawCh returns the channel to redraw the terminal display.
func (h *Hub) DrawCh() chan *Payload[*DrawOptions] {
	return h.drawCh
}

// SendDraw sends a request to redraw the terminal display.
func (h *Hub) SendDraw(ctx context.Context, options *DrawOptions) {
	if pdebug.Enabled {
		g := pdebug.Marker("Hub.SendDraw %v", options)
		defer g.End()
	}
	send(ctx, h.DrawCh(), NewPayload(options, isBatchCtx(ctx)))
}

// StatusMsgCh returns the channel to update the status message.
func (h *Hub) StatusMsgCh() chan *Payload[StatusMsg] {
	return h.statusMsgCh
}

// StatusMsg is an interface for status message requests.
type StatusMsg interface {
	Message() string
	Delay() time.Duration
}

type statusMsgReq struct {
	msg   string
	delay time.Duration
}

func (r statusMsgReq) Message() string {
	return r.msg
}

func (r statusMsgReq) Delay() time.Duration {
	return r.delay
}

func newStatusMsgReq(s string, d time.Duration) *statusMsgReq {
	return &statusMsgReq{
		msg:   s,
		delay: d,
	}
}

// SendStatusMsg sends a string to be displayed in the status message
// area, along with a delay until the message should be cleared. A zero
// delay means the message stays until replaced.
func (h *Hub) SendStatusMsg(ctx context.Context, q string, clearDelay time.Duration) {
	msg := newStatusMsgReq(q, clearDelay)
	send(ctx, h.StatusMsgCh(), NewPayload[StatusMsg](msg, isBatchCtx(ctx)))
}
