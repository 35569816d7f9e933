package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
)

// ClientWorker drives one accepted socket's read side. It never touches
// the user or channel tables directly; it only emits events onto the
// server's shared channel, per spec.md §4.1.
type ClientWorker struct {
	Conn     Conn
	ID       uint64
	Events   chan<- Event
	peerHost string
}

// NewClientWorker wraps conn for client id, ready to Run.
func NewClientWorker(id uint64, conn net.Conn, events chan<- Event) *ClientWorker {
	host := conn.RemoteAddr().String()
	if tcpAddr, ok := conn.RemoteAddr().(*net.TCPAddr); ok {
		host = tcpAddr.IP.String()
	}

	return &ClientWorker{
		Conn:     NewConn(conn),
		ID:       id,
		Events:   events,
		peerHost: host,
	}
}

func (w *ClientWorker) String() string {
	return fmt.Sprintf("%d %s", w.ID, w.Conn.RemoteAddr())
}

// Run emits ClientConnected, then reads lines until EOF or error, emitting
// an IrcCommand per line and finally a ClientDisconnected.
func (w *ClientWorker) Run() {
	w.Events <- ClientConnected{
		ClientID: w.ID,
		Socket:   w.Conn.conn,
		Host:     w.peerHost,
	}

	for {
		line, dropped, err := w.Conn.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("client %s: %s", w, err)
			}
			break
		}

		if dropped {
			logDroppedLine(w.ID)
			continue
		}

		w.Events <- IrcCommand{ClientID: w.ID, RawLine: line}
	}

	if err := w.Conn.Close(); err != nil {
		log.Printf("client %s: closing connection: %s", w, err)
	}

	w.Events <- ClientDisconnected{ClientID: w.ID}
}
