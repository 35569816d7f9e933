package main

// ServerQuery is the sole vehicle by which the parser and dispatcher
// touch the Server. It bundles an exclusive reference to the Server with
// the client_id currently acting — the "bound" client. It is never
// retained past one event-loop iteration.
//
// To execute an Action under another client's identity (JOIN notices,
// channel PRIVMSG fan-out), construct a fresh handle with Rebind rather
// than mutating this one; this keeps every handle's lifetime tied to a
// single acting client.
type ServerQuery struct {
	server   *Server
	clientID uint64
}

// Rebind returns a new handle over the same Server bound to clientID.
func (q ServerQuery) Rebind(clientID uint64) ServerQuery {
	return ServerQuery{server: q.server, clientID: clientID}
}

// ClientID is the currently bound client.
func (q ServerQuery) ClientID() uint64 {
	return q.clientID
}

// User returns the bound client's User record. It is an internal
// invariant violation for it to be missing; callers may assume non-nil
// for any handle constructed from a live event.
func (q ServerQuery) User() *User {
	return q.server.Users[q.clientID]
}

// UserFindByClientID looks up any user by id.
func (q ServerQuery) UserFindByClientID(id uint64) (*User, bool) {
	u, ok := q.server.Users[id]
	return u, ok
}

// UserFindByNickname looks up a user by nickname, folded per the
// configured casemap profile.
func (q ServerQuery) UserFindByNickname(nickname string) (*User, bool) {
	target := canonicalizeNick(nickname, q.server.Config.FeatCasemap)
	for _, u := range q.server.Users {
		if u.Nickname == "" {
			continue
		}
		if canonicalizeNick(u.Nickname, q.server.Config.FeatCasemap) == target {
			return u, true
		}
	}
	return nil, false
}

// UserCount is the number of currently connected (not necessarily
// registered) clients.
func (q ServerQuery) UserCount() int {
	return len(q.server.Users)
}

// ServerName is the operator-configured advertised server name.
func (q ServerQuery) ServerName() string {
	return q.server.Config.Name
}

// ServerHost is the operator-configured host, used in error prefixes.
func (q ServerQuery) ServerHost() string {
	return q.server.Config.Host
}

// ServerConfig is the full read-only configuration.
func (q ServerQuery) ServerConfig() ServerConfig {
	return q.server.Config
}

// ServerStartupTime is the human-readable process start time.
func (q ServerQuery) ServerStartupTime() string {
	return q.server.StartupTime
}

// ChannelFind looks up a channel by its already-canonical name.
func (q ServerQuery) ChannelFind(name string) (*Channel, bool) {
	c, ok := q.server.Channels[name]
	return c, ok
}

// ChannelGetOrCreate returns the channel for canonicalName, creating it
// (with display name) if this is the first reference to it.
func (q ServerQuery) ChannelGetOrCreate(canonicalName, displayName string) *Channel {
	if c, ok := q.server.Channels[canonicalName]; ok {
		return c
	}
	c := NewChannel(displayName)
	q.server.Channels[canonicalName] = c
	return c
}

// ChannelDelete drops a channel from the table, used once its member list
// becomes empty.
func (q ServerQuery) ChannelDelete(canonicalName string) {
	delete(q.server.Channels, canonicalName)
}

// UserRemove deletes a user record and cascades the removal out of every
// channel's member list, destroying any channel left empty as a result.
func (q ServerQuery) UserRemove(id uint64) {
	delete(q.server.Users, id)
	q.server.removeFromAllChannels(id)
}

// ChannelUsers resolves a channel's member client IDs to User records,
// skipping any id whose User has already been removed.
func (q ServerQuery) ChannelUsers(c *Channel) []*User {
	users := make([]*User, 0, len(c.Clients))
	for _, id := range c.Clients {
		if u, ok := q.server.Users[id]; ok {
			users = append(users, u)
		}
	}
	return users
}
