package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
)

var ErrNotReady = errors.New("local address is not ready yet")

type State int

const (
	StateIdle State = iota
	StateBinding
	StateResolving
	StateReady
	StateError
	StateHandedOff // Socket moved into a session
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBinding:
		return "binding"
	case StateResolving:
		return "resolving"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	case StateHandedOff:
		return "handed off"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ResolveFunc discovers the publicly reachable address of conn
type ResolveFunc func(ctx context.Context, conn net.PacketConn, server string) (string, error)

// Options configures a Rendezvous
type Options struct {
	BindAddress string
	STUNServer  string
	Timeout     time.Duration // Bound for bind + STUN; zero means no limit
	Resolve     ResolveFunc   // Defaults to QueryExternalAddress
}

// OptionsFromConfig returns Options filled from config.Network
func OptionsFromConfig() Options {
	return Options{
		BindAddress: cfg.Network.BindAddress,
		STUNServer:  cfg.Network.STUNServer,
		Timeout:     cfg.Network.STUNTimeout,
		Resolve:     QueryExternalAddress,
	}
}

// Rendezvous owns the local UDP endpoint while the operator exchanges
// addresses with the peer. Binding and the STUN query run on a background
// goroutine; the frame loop polls State and LocalAddress.
// All shared fields are protected by mu.
type Rendezvous struct {
	mu sync.RWMutex

	opts      Options
	state     State
	lastError error
	localAddr string
	conn      *net.UDPConn
	cancel    context.CancelFunc
	gen       int // Bumped on every Start so stale goroutines drop their result
}

func NewRendezvous(opts Options) *Rendezvous {
	if opts.Resolve == nil {
		opts.Resolve = QueryExternalAddress
	}
	return &Rendezvous{
		opts:  opts,
		state: StateIdle,
	}
}

// Start binds the local endpoint and, if useSTUN is set, asks the STUN server
// for the public address. Calling Start again releases the previous endpoint
// and starts over, which is how the UI retries after an error.
func (r *Rendezvous) Start(ctx context.Context, useSTUN bool) {
	r.mu.Lock()
	if r.state == StateHandedOff || r.state == StateClosed {
		r.mu.Unlock()
		return
	}
	r.releaseLocked()

	var cancel context.CancelFunc
	if r.opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	r.cancel = cancel
	r.gen++
	gen := r.gen
	r.state = StateBinding
	r.lastError = nil
	r.localAddr = ""
	r.mu.Unlock()

	go r.run(ctx, cancel, gen, useSTUN)
}

func (r *Rendezvous) run(ctx context.Context, cancel context.CancelFunc, gen int, useSTUN bool) {
	defer cancel()

	conn, addr, err := r.establish(ctx, gen, useSTUN)

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || r.state == StateClosed || r.state == StateHandedOff {
		if conn != nil {
			_ = conn.Close()
		}
		return
	}
	if err != nil {
		log.Printf("[rendezvous] %v", err)
		r.state = StateError
		r.lastError = err
		return
	}

	log.Printf("[rendezvous] local address %s (stun=%t)", addr, useSTUN)
	r.conn = conn
	r.localAddr = addr
	r.state = StateReady
}

func (r *Rendezvous) establish(ctx context.Context, gen int, useSTUN bool) (*net.UDPConn, string, error) {
	laddr, err := net.ResolveUDPAddr("udp4", r.opts.BindAddress)
	if err != nil {
		return nil, "", fmt.Errorf("bind address %s: %w", r.opts.BindAddress, err)
	}
	conn, err := net.ListenUDP("udp4", laddr)
	if err != nil {
		return nil, "", fmt.Errorf("bind %s: %w", r.opts.BindAddress, err)
	}

	if !useSTUN {
		// A wildcard bind gives 0.0.0.0:port, which is not reachable from outside
		return conn, conn.LocalAddr().String(), nil
	}

	r.setState(gen, StateResolving)
	addr, err := r.opts.Resolve(ctx, conn, r.opts.STUNServer)
	if err != nil {
		_ = conn.Close()
		return nil, "", fmt.Errorf("stun: %w", err)
	}
	return conn, addr, nil
}

func (r *Rendezvous) setState(gen int, s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen == r.gen && r.state != StateClosed && r.state != StateHandedOff {
		r.state = s
	}
}

// Connect turns the ready endpoint into a session with peer. On success the
// socket belongs to the returned session and the Rendezvous is done.
func (r *Rendezvous) Connect(peer string, input components.InputScheme) (*components.NetworkSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateReady {
		return nil, ErrNotReady
	}
	session, err := NewSession(r.localAddr, peer, input, r.conn)
	if err != nil {
		return nil, err
	}

	log.Printf("[rendezvous] session %s: local=%s peer=%s id=%d",
		session.ID, session.LocalAddress, session.PeerAddress, session.PeerID)
	r.conn = nil
	r.state = StateHandedOff
	return session, nil
}

// Close cancels any pending query and releases the socket unless it was
// already handed off.
func (r *Rendezvous) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked()
	if r.state != StateHandedOff {
		r.state = StateClosed
	}
}

func (r *Rendezvous) releaseLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if r.conn != nil {
		_ = r.conn.Close()
		r.conn = nil
	}
}

func (r *Rendezvous) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

func (r *Rendezvous) LastError() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastError
}

func (r *Rendezvous) LocalAddress() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.localAddr
}
