package main

import (
	"fmt"
	"net"
)

// User holds the server's record for one connected client.
//
// A User is created on ClientConnected and destroyed on ClientDisconnected
// or a successful QUIT. It is mutated only by the event loop.
type User struct {
	ClientID uint64

	// Host is the peer address as text, captured at connect time.
	Host string

	// Socket is the write handle the dispatcher uses for outbound messages.
	// The connection worker reads from the same net.Conn independently; Go's
	// net.Conn is safe for concurrent use by separate goroutines for reading
	// and writing.
	Socket net.Conn

	// Nickname, Username, and RealName are empty until set by NICK/USER.
	Nickname string
	Username string
	RealName string
}

func (u *User) String() string {
	return fmt.Sprintf("%d %s", u.ClientID, u.Host)
}

// Registered reports whether both NICK and USER have completed.
func (u *User) Registered() bool {
	return u.Nickname != "" && u.Username != ""
}

