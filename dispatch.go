package main

import (
	"fmt"
	"log"
	"net"

	"github.com/horgh/irc"
)

// dispatch executes action against q's Server, mutating state as needed
// and writing reply lines directly to the affected sockets. It is always
// called from the single event-loop goroutine.
func dispatch(q ServerQuery, action Action) {
	switch a := action.(type) {
	case Pong:
		dispatchPong(q, a)
	case SetNick:
		q.User().Nickname = a.Nickname
	case ChangeNick:
		q.User().Nickname = a.Nickname
	case SetUserAndRealName:
		dispatchSetUserAndRealName(q, a)
	case SendWelcomeSequence:
		dispatchWelcomeSequence(q)
	case Motd:
		dispatchMotd(q)
	case Join:
		dispatchJoin(q, a)
	case JoinInform:
		dispatchJoinInform(q, a)
	case Part:
		dispatchPart(q, a)
	case PartInform:
		dispatchPartInform(q, a)
	case PrivateMessage:
		dispatchPrivateMessage(q, a)
	case PrivateMessageUser:
		dispatchPrivateMessageUser(q, a)
	case PrivateMessageChannel:
		dispatchPrivateMessageChannel(q, a)
	case Quit:
		dispatchQuit(q, a)
	case QuitInform:
		dispatchQuitInform(q, a)
	case ErrorAction:
		dispatchError(q, a)
	default:
		log.Printf("dispatch: unhandled action type %T", action)
	}
}

// send writes m to conn, logging and dropping the line on failure rather
// than propagating, per spec.md §7's write-error policy.
func send(conn net.Conn, m irc.Message) {
	if err := writeMessage(conn, m); err != nil {
		log.Printf("write error: %s", err)
	}
}

func sendTo(q ServerQuery, m irc.Message) {
	send(q.User().Socket, m)
}

// numeric builds a server-prefixed numeric reply targeted at nickname.
func numeric(serverName, code, nickname string, rest ...string) irc.Message {
	return irc.Message{
		Prefix:  serverName,
		Command: code,
		Params:  append([]string{nickname}, rest...),
	}
}

func dispatchPong(q ServerQuery, a Pong) {
	var params []string
	if a.Challenge != nil {
		params = []string{*a.Challenge}
	}
	sendTo(q, irc.Message{Command: "PONG", Params: params})
}

func dispatchSetUserAndRealName(q ServerQuery, a SetUserAndRealName) {
	user := q.User()
	user.Username = a.Username
	user.RealName = a.RealName
	dispatch(q, SendWelcomeSequence{})
}

func dispatchWelcomeSequence(q ServerQuery) {
	nick := q.User().Nickname
	serverName := q.ServerName()
	cfg := q.ServerConfig()

	sendTo(q, numeric(serverName, ReplyWelcome, nick,
		fmt.Sprintf("Welcome to %s, %s", serverName, nick)))

	sendTo(q, numeric(serverName, ReplyYourHost, nick,
		fmt.Sprintf("Your host is %s, running version %s", softwareName,
			softwareVersion)))

	sendTo(q, numeric(serverName, ReplyCreated, nick,
		fmt.Sprintf("This server was created %s", q.ServerStartupTime())))

	sendTo(q, numeric(serverName, ReplyISupport, nick,
		fmt.Sprintf("AWAYLEN=%d", cfg.FeatAwayLen),
		fmt.Sprintf("CASEMAPPING=%s", isupportCasemapToken(cfg.FeatCasemap)),
		"are supported by this server"))

	sendTo(q, numeric(serverName, ReplyLuserClient, nick,
		fmt.Sprintf("There are %d users and 0 invisible on 1 server",
			q.UserCount())))

	dispatch(q, Motd{})
}

func dispatchMotd(q ServerQuery) {
	nick := q.User().Nickname
	serverName := q.ServerName()
	motd := q.ServerConfig().MOTD

	sendTo(q, numeric(serverName, ReplyMotdStart, nick,
		fmt.Sprintf("- %s Message of the day -", serverName)))
	sendTo(q, numeric(serverName, ReplyMotd, nick, motd))
	sendTo(q, numeric(serverName, ReplyEndOfMotd, nick, "End of MOTD command"))
}

func dispatchJoin(q ServerQuery, a Join) {
	profile := q.ServerConfig().FeatCasemap

	for _, ref := range a.Channels {
		if !isValidChannel(ref.Name) {
			dispatch(q, ErrorAction{Code: ErrNoSuchChannel})
			continue
		}

		canonicalName := canonicalizeChannel(ref.Name, profile)
		channel := q.ChannelGetOrCreate(canonicalName, ref.Name)
		channel.AddClient(q.ClientID())

		if channel.Topic != "" {
			sendTo(q, numeric(q.ServerName(), ReplyTopic, q.User().Nickname,
				channel.Name, channel.Topic))
		}

		for _, member := range q.ChannelUsers(channel) {
			dispatch(q.Rebind(member.ClientID), JoinInform{
				Channel: channel.Name,
				Nick:    q.User().Nickname,
			})
		}
	}
}

func dispatchJoinInform(q ServerQuery, a JoinInform) {
	sendTo(q, irc.Message{
		Prefix:  a.Nick,
		Command: "JOIN",
		Params:  []string{a.Channel},
	})
}

func dispatchPart(q ServerQuery, a Part) {
	profile := q.ServerConfig().FeatCasemap
	canonicalName := canonicalizeChannel(a.Channel, profile)

	channel, ok := q.ChannelFind(canonicalName)
	if !ok {
		dispatch(q, ErrorAction{Code: ErrNoSuchChannel})
		return
	}
	if !channel.HasClient(q.ClientID()) {
		dispatch(q, ErrorAction{Code: ErrNotOnChannel})
		return
	}

	nick := q.User().Nickname
	for _, member := range q.ChannelUsers(channel) {
		dispatch(q.Rebind(member.ClientID), PartInform{
			Channel: channel.Name,
			Message: a.Message,
			Nick:    nick,
		})
	}

	channel.RemoveClient(q.ClientID())
	if channel.Empty() {
		q.ChannelDelete(canonicalName)
	}
}

func dispatchPartInform(q ServerQuery, a PartInform) {
	params := []string{a.Channel}
	if a.Message != nil {
		params = append(params, *a.Message)
	}
	sendTo(q, irc.Message{
		Prefix:  a.Nick,
		Command: "PART",
		Params:  params,
	})
}

func dispatchPrivateMessage(q ServerQuery, a PrivateMessage) {
	fromNickname := q.User().Nickname

	for _, target := range a.Users {
		recipient, ok := q.UserFindByNickname(target)
		if !ok {
			// Per spec.md §8 scenario S6, an unknown nickname target is
			// silently dropped rather than answered with an error.
			continue
		}
		dispatch(q.Rebind(recipient.ClientID), PrivateMessageUser{
			Message:      a.Message,
			FromNickname: fromNickname,
			ToNickname:   recipient.Nickname,
		})
	}

	profile := q.ServerConfig().FeatCasemap
	for _, target := range a.Channels {
		channel, ok := q.ChannelFind(canonicalizeChannel(target, profile))
		if !ok {
			continue
		}
		for _, member := range q.ChannelUsers(channel) {
			if member.ClientID == q.ClientID() {
				continue
			}
			dispatch(q.Rebind(member.ClientID), PrivateMessageChannel{
				Message:      a.Message,
				Channel:      channel.Name,
				FromNickname: fromNickname,
			})
		}
	}
}

func dispatchPrivateMessageUser(q ServerQuery, a PrivateMessageUser) {
	sendTo(q, irc.Message{
		Prefix:  a.FromNickname,
		Command: "PRIVMSG",
		Params:  []string{a.ToNickname, a.Message},
	})
}

func dispatchPrivateMessageChannel(q ServerQuery, a PrivateMessageChannel) {
	sendTo(q, irc.Message{
		Prefix:  a.FromNickname,
		Command: "PRIVMSG",
		Params:  []string{a.Channel, a.Message},
	})
}

func dispatchQuit(q ServerQuery, a Quit) {
	reason := "Client Quit"
	if a.Reason != nil {
		reason = *a.Reason
	}

	nick := q.User().Nickname
	informed := map[uint64]bool{q.ClientID(): true}
	for _, channel := range q.server.Channels {
		if !channel.HasClient(q.ClientID()) {
			continue
		}
		for _, member := range q.ChannelUsers(channel) {
			if informed[member.ClientID] {
				continue
			}
			informed[member.ClientID] = true
			dispatch(q.Rebind(member.ClientID), QuitInform{Nick: nick, Reason: reason})
		}
	}

	sock := q.User().Socket
	if err := sock.Close(); err != nil {
		log.Printf("client %d: closing connection on quit: %s", q.ClientID(), err)
	}

	q.UserRemove(q.ClientID())
}

func dispatchQuitInform(q ServerQuery, a QuitInform) {
	sendTo(q, irc.Message{
		Prefix:  a.Nick,
		Command: "QUIT",
		Params:  []string{a.Reason},
	})
}

func dispatchError(q ServerQuery, a ErrorAction) {
	user := q.User()
	send(user.Socket, irc.Message{
		Prefix:  q.ServerHost(),
		Command: a.Code,
		Params:  []string{"*", user.Host},
	})
}
