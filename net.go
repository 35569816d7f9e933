package main

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"strings"

	"github.com/horgh/irc"
)

// maxLineLength bounds a single incoming protocol line, per spec.md §4.1.
// Lines longer than this are dropped rather than causing a disconnect.
const maxLineLength = 512

// Conn is a connection to a client, wrapping the TCP socket with a
// buffered line reader on the read side. Writes go straight to the
// underlying net.Conn: each dispatched reply is a single already-framed
// line, so no write buffering is useful.
type Conn struct {
	conn net.Conn
	r    *bufio.Reader
}

// NewConn wraps conn for line-based IRC I/O. The reader's buffer is
// capped at maxLineLength so an adversarial line with no terminator
// can't grow memory unboundedly before ReadLine ever gets a chance to
// enforce the cap.
func NewConn(conn net.Conn) Conn {
	return Conn{
		conn: conn,
		r:    bufio.NewReaderSize(conn, maxLineLength),
	}
}

// Close closes the underlying connection in both directions.
func (c Conn) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the remote network address.
func (c Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// ReadLine reads one CRLF- or LF-terminated line, with trailing CR/LF
// stripped. If the line exceeds maxLineLength, it reports dropped=true
// instead of an error, and the caller should log a warning and continue
// reading rather than disconnect the client.
//
// The reader's buffer is sized to maxLineLength (see NewConn), so
// ReadSlice hits bufio.ErrBufferFull as soon as a line runs past the cap
// with no newline in sight yet, rather than after buffering the whole
// (potentially unbounded) line. Once over cap, we keep discarding
// ReadSlice's returned chunks until a newline finally surfaces, so an
// adversarial line with no terminator at all is bounded to maxLineLength
// bytes in flight at any time, not accumulated.
func (c Conn) ReadLine() (line string, dropped bool, err error) {
	buf, err := c.r.ReadSlice('\n')
	if err == nil {
		return strings.TrimRight(string(buf), "\r\n"), false, nil
	}
	if err != bufio.ErrBufferFull {
		return "", false, err
	}

	for {
		_, err := c.r.ReadSlice('\n')
		if err == nil {
			return "", true, nil
		}
		if err != bufio.ErrBufferFull {
			return "", false, err
		}
	}
}

// writeMessage encodes m and writes it to conn. It is the dispatcher's
// sole path for outbound writes: the dispatcher holds a raw net.Conn (the
// User record's Socket) rather than a Conn wrapper, since only the
// connection worker needs the buffered read side.
func writeMessage(conn net.Conn, m irc.Message) error {
	buf, err := m.Encode()
	if err != nil && err != irc.ErrTruncated {
		return fmt.Errorf("unable to encode message: %s", err)
	}

	n, err := conn.Write([]byte(buf))
	if err != nil {
		return err
	}
	if n != len(buf) {
		return fmt.Errorf("short write")
	}

	return nil
}

func logDroppedLine(clientID uint64) {
	log.Printf("client %d: dropped over-long line", clientID)
}
