package main

import "time"

// Server owns every piece of shared state: the user table, the channel
// table, the static configuration, and the process startup time. It is
// mutated only by the event loop goroutine, where the parser and
// dispatcher reach it through a ServerQuery; other goroutines only send
// events on its channel.
type Server struct {
	Config ServerConfig

	// StartupTime is captured once at construction and formatted for
	// RPL_CREATED.
	StartupTime string

	Users    map[uint64]*User
	Channels map[string]*Channel

	events chan Event
}

// NewServer constructs an empty Server bound to cfg.
func NewServer(cfg ServerConfig) *Server {
	return &Server{
		Config:       cfg,
		StartupTime:  time.Now().Format(time.RFC1123),
		Users:        map[uint64]*User{},
		Channels:     map[string]*Channel{},
		events:       make(chan Event, 256),
	}
}

// Events returns the single shared MPSC channel connection workers send
// events on and the event loop drains.
func (s *Server) Events() chan<- Event {
	return s.events
}

// Run is the event loop: the sole consumer of s.events and the sole
// mutator of Users/Channels. It returns when the channel is closed.
func (s *Server) Run() {
	for ev := range s.events {
		s.handleEvent(ev)
	}
}

func (s *Server) handleEvent(ev Event) {
	switch e := ev.(type) {
	case ClientConnected:
		s.Users[e.ClientID] = &User{
			ClientID: e.ClientID,
			Host:     e.Host,
			Socket:   e.Socket,
		}

	case ClientDisconnected:
		delete(s.Users, e.ClientID)
		s.removeFromAllChannels(e.ClientID)

	case IrcCommand:
		q := ServerQuery{server: s, clientID: e.ClientID}
		action, err := parseAction(q, e.RawLine)
		if err != nil {
			logParseError(e.ClientID, err)
			return
		}
		if action == nil {
			return
		}
		dispatch(q, action)

	default:
		logUnknownEvent(ev)
	}
}

// removeFromAllChannels drops clientID from every channel's member list,
// destroying any channel left with no members.
func (s *Server) removeFromAllChannels(clientID uint64) {
	for name, ch := range s.Channels {
		ch.RemoveClient(clientID)
		if ch.Empty() {
			delete(s.Channels, name)
		}
	}
}
