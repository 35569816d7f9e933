package main

// ChannelMode is a tagged channel mode entry. Reserved for future use:
// nothing in this package emits one yet.
type ChannelMode interface {
	isChannelMode()
}

// OpMode marks a nickname as a channel operator.
type OpMode struct {
	Nickname string
}

func (OpMode) isChannelMode() {}

// HalfOpMode marks a nickname as a channel half-operator.
type HalfOpMode struct {
	Nickname string
}

func (HalfOpMode) isChannelMode() {}

// Channel holds everything to do with a channel. It is created lazily by
// the first JOIN naming it and lives for the process's lifetime, or until
// its last member leaves.
type Channel struct {
	// Name includes the leading '#' or '&'. It is not canonicalized; we key
	// the server's channel table by the canonical form instead.
	Name string

	Topic string

	// Clients is the ordered (join order) list of member client IDs. No
	// duplicates.
	Clients []uint64

	// Modes is reserved; this package never populates or emits it.
	Modes []ChannelMode
}

// NewChannel creates an empty channel with the given name.
func NewChannel(name string) *Channel {
	return &Channel{Name: name}
}

// HasClient reports whether the given client is a member.
func (c *Channel) HasClient(clientID uint64) bool {
	for _, id := range c.Clients {
		if id == clientID {
			return true
		}
	}
	return false
}

// AddClient appends the client to the member list if it is not already a
// member. It reports whether the client was added.
func (c *Channel) AddClient(clientID uint64) bool {
	if c.HasClient(clientID) {
		return false
	}
	c.Clients = append(c.Clients, clientID)
	return true
}

// RemoveClient removes the client from the member list, if present.
func (c *Channel) RemoveClient(clientID uint64) {
	for i, id := range c.Clients {
		if id == clientID {
			c.Clients = append(c.Clients[:i], c.Clients[i+1:]...)
			return
		}
	}
}

// Empty reports whether the channel has no members left.
func (c *Channel) Empty() bool {
	return len(c.Clients) == 0
}

// ChannelRef is a transient value parsed from a JOIN argument: one
// channel's intended name and optional key.
type ChannelRef struct {
	Name string
	Key  *string
}
