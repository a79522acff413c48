package network

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/automoto/doomerang-duel/components"
	"github.com/google/uuid"
)

var (
	ErrEmptyPeerAddress   = errors.New("peer address is empty")
	ErrInvalidPeerAddress = errors.New("peer address must look like ip:port")
	ErrSameAddress        = errors.New("peer address equals the local address")
)

// PeerID returns 0 if local sorts after peer and 1 otherwise. Both sides of a
// rendezvous call it with the arguments swapped, so for distinct addresses they
// always end up with different ids.
func PeerID(local, peer string) int {
	if local > peer {
		return 0
	}
	return 1
}

// ValidatePeerAddress trims the pasted text and checks it is a usable ip:port
// different from local.
func ValidatePeerAddress(local, peer string) (string, error) {
	peer = strings.TrimSpace(peer)
	if peer == "" {
		return "", ErrEmptyPeerAddress
	}
	if _, err := netip.ParseAddrPort(peer); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeerAddress, peer)
	}
	if peer == strings.TrimSpace(local) {
		return "", ErrSameAddress
	}
	return peer, nil
}

// NewSession builds the session for an agreed pair of addresses. conn is
// owned by the session from here on.
func NewSession(local, peer string, input components.InputScheme, conn *net.UDPConn) (*components.NetworkSession, error) {
	local = strings.TrimSpace(local)
	peer, err := ValidatePeerAddress(local, peer)
	if err != nil {
		return nil, err
	}

	return &components.NetworkSession{
		ID:           uuid.New(),
		LocalAddress: local,
		PeerAddress:  peer,
		PeerID:       PeerID(local, peer),
		Input:        input,
		Conn:         conn,
	}, nil
}
