package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"os"
	"time"

	"github.com/pion/stun/v3"
)

var ErrNoMappedAddress = errors.New("stun response carries no mapped address")

// QueryExternalAddress sends a STUN Binding request to server from conn and
// returns the address the server saw, as ip:port text. The query is bounded
// by ctx; conn's deadline is cleared again before returning.
func QueryExternalAddress(ctx context.Context, conn net.PacketConn, server string) (string, error) {
	raddr, err := resolveUDP(ctx, server)
	if err != nil {
		return "", fmt.Errorf("resolve stun server %s: %w", server, err)
	}

	req, err := stun.Build(stun.TransactionID, stun.BindingRequest, stun.Fingerprint)
	if err != nil {
		return "", fmt.Errorf("build stun request: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Now())
	})
	defer func() {
		stop()
		_ = conn.SetReadDeadline(time.Time{})
	}()

	if _, err := conn.WriteTo(req.Raw, raddr); err != nil {
		return "", fmt.Errorf("send stun request: %w", err)
	}

	buf := make([]byte, 1500)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", fmt.Errorf("stun query to %s: %w", server, ctxErr)
			}
			// The socket deadline can fire just before ctx notices its own
			if errors.Is(err, os.ErrDeadlineExceeded) {
				return "", fmt.Errorf("stun query to %s: %w", server, context.DeadlineExceeded)
			}
			return "", fmt.Errorf("read stun response: %w", err)
		}

		res := &stun.Message{Raw: append([]byte(nil), buf[:n]...)}
		if err := res.Decode(); err != nil {
			continue // not a STUN packet
		}
		if res.TransactionID != req.TransactionID {
			continue
		}
		if res.Type != stun.BindingSuccess {
			var code stun.ErrorCodeAttribute
			if err := code.GetFrom(res); err == nil {
				return "", fmt.Errorf("stun server %s: %s", server, code)
			}
			return "", fmt.Errorf("stun server %s: unexpected %s", server, res.Type)
		}

		var xorAddr stun.XORMappedAddress
		if err := xorAddr.GetFrom(res); err == nil {
			return xorAddr.String(), nil
		}
		var mapped stun.MappedAddress
		if err := mapped.GetFrom(res); err == nil {
			return mapped.String(), nil
		}
		return "", ErrNoMappedAddress
	}
}

func resolveUDP(ctx context.Context, hostport string) (*net.UDPAddr, error) {
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		return nil, err
	}
	ips, err := net.DefaultResolver.LookupNetIP(ctx, "ip4", host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("no IPv4 address for %s", host)
	}
	p, err := net.LookupPort("udp", port)
	if err != nil {
		return nil, err
	}
	return net.UDPAddrFromAddrPort(netip.AddrPortFrom(ips[0].Unmap(), uint16(p))), nil
}
