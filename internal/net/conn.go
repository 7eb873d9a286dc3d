package net

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/manago/client/internal/net/packet"
)

// Options tunes one connection.
type Options struct {
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	InQueueSize  int
	OutQueueSize int

	// Outbound chat rate; zero disables the throttle.
	ChatPerSec float64
	ChatBurst  int
}

func (o *Options) applyDefaults() {
	if o.DialTimeout <= 0 {
		o.DialTimeout = 10 * time.Second
	}
	if o.InQueueSize <= 0 {
		o.InQueueSize = 256
	}
	if o.OutQueueSize <= 0 {
		o.OutQueueSize = 64
	}
	if o.ChatBurst <= 0 {
		o.ChatBurst = 1
	}
}

// Conn is one connection to a game server. Network I/O runs in
// dedicated goroutines; game state is touched only from the game loop,
// which drains InQueue.
type Conn struct {
	conn   net.Conn
	framer Framer

	InQueue  chan []byte // game loop reads whole messages from here
	OutQueue chan []byte // writeLoop drains this

	readTimeout  time.Duration
	writeTimeout time.Duration
	chatLimit    *rate.Limiter

	closeCh   chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool

	log *zap.Logger
}

// Dial connects to addr and starts the reader and writer goroutines.
func Dial(ctx context.Context, addr string, framer Framer, opts Options, log *zap.Logger) (*Conn, error) {
	opts.applyDefaults()

	d := net.Dialer{Timeout: opts.DialTimeout}
	tcp, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	c := &Conn{
		conn:         tcp,
		framer:       framer,
		InQueue:      make(chan []byte, opts.InQueueSize),
		OutQueue:     make(chan []byte, opts.OutQueueSize),
		readTimeout:  opts.ReadTimeout,
		writeTimeout: opts.WriteTimeout,
		closeCh:      make(chan struct{}),
		log:          log.With(zap.String("server", addr)),
	}
	if opts.ChatPerSec > 0 {
		c.chatLimit = rate.NewLimiter(rate.Limit(opts.ChatPerSec), opts.ChatBurst)
	}

	go c.readLoop()
	go c.writeLoop()
	return c, nil
}

// Send queues a finished message for the writer goroutine.
// Non-blocking: a full OutQueue means the server stopped reading, so
// the connection is dropped rather than stalling the game loop.
func (c *Conn) Send(w *packet.Writer) {
	if c.closed.Load() {
		return
	}
	select {
	case c.OutQueue <- w.Bytes():
	default:
		c.log.Warn("output queue full, dropping connection")
		c.Close()
	}
}

// SendChat queues a chat message subject to the outbound throttle. It
// reports false when the message was suppressed.
func (c *Conn) SendChat(w *packet.Writer) bool {
	if c.chatLimit != nil && !c.chatLimit.Allow() {
		c.log.Debug("chat throttled", zap.Uint16("id", w.ID()))
		return false
	}
	c.Send(w)
	return true
}

// Close shuts the connection down. Pending queued messages are
// discarded with it.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.closeCh)
		c.conn.Close()
	})
}

func (c *Conn) IsClosed() bool { return c.closed.Load() }

// Done is closed when the connection dies, whichever side dropped it.
func (c *Conn) Done() <-chan struct{} { return c.closeCh }

// readLoop runs in its own goroutine. It reads whole messages from the
// TCP stream and pushes them onto InQueue for the game loop.
func (c *Conn) readLoop() {
	defer c.Close()

	for {
		select {
		case <-c.closeCh:
			return
		default:
		}

		if c.readTimeout > 0 {
			c.conn.SetReadDeadline(time.Now().Add(c.readTimeout))
		}
		data, err := c.framer.ReadFrame(c.conn)
		if err != nil {
			if !c.closed.Load() {
				c.log.Debug("read error", zap.Error(err))
			}
			return
		}

		// Block until the game loop catches up. The goroutine is
		// per-connection, so blocking here only stalls this server's
		// stream, never the loop itself.
		select {
		case c.InQueue <- data:
		case <-c.closeCh:
			return
		}
	}
}

// writeLoop runs in its own goroutine and drains OutQueue to TCP.
func (c *Conn) writeLoop() {
	defer c.Close()

	for {
		select {
		case data := <-c.OutQueue:
			if c.writeTimeout > 0 {
				c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			}
			if err := c.framer.WriteFrame(c.conn, data); err != nil {
				if !c.closed.Load() {
					c.log.Debug("write error", zap.Error(err))
				}
				return
			}
		case <-c.closeCh:
			return
		}
	}
}
