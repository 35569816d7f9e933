package main

import (
	"log"
	"strings"

	"github.com/horgh/irc"
)

// parseAction turns one raw protocol line into an Action. It is a pure
// function of the parsed message and the acting user's current
// registration state; it never touches Server state directly (that's the
// dispatcher's job), only reading it through q.
//
// A nil, nil return means the command was recognized but produces no
// action (e.g. an unimplemented verb); parse/framing failures return an
// error instead, which the caller logs and otherwise ignores.
func parseAction(q ServerQuery, rawLine string) (Action, error) {
	// rawLine arrives with its CR/LF already stripped (net.go's ReadLine
	// does that for logging/framing purposes), but irc.ParseMessage
	// requires a properly terminated line, so put it back.
	msg, err := irc.ParseMessage(rawLine + "\r\n")
	if err != nil {
		return nil, err
	}

	user := q.User()
	command := strings.ToUpper(msg.Command)

	if !user.Registered() && !isPreRegistrationCommand(command) {
		return ErrorAction{Code: ErrNotRegistered}, nil
	}

	switch command {
	case "PING":
		return parsePing(msg), nil
	case "NICK":
		return parseNick(q, user, msg), nil
	case "USER":
		return parseUser(user, msg), nil
	case "MOTD":
		return Motd{}, nil
	case "JOIN":
		return parseJoin(msg)
	case "PART":
		return parsePart(msg)
	case "PRIVMSG":
		return parsePrivmsg(msg)
	case "QUIT":
		return parseQuit(msg), nil
	default:
		log.Printf("client %d: unimplemented command %s", q.ClientID(), command)
		return nil, nil
	}
}

// isPreRegistrationCommand reports whether command is allowed before the
// user has completed registration; spec.md §4.4 names NICK/USER/PING/QUIT.
func isPreRegistrationCommand(command string) bool {
	switch command {
	case "NICK", "USER", "PING", "QUIT":
		return true
	default:
		return false
	}
}

func parsePing(msg irc.Message) Action {
	if len(msg.Params) == 0 {
		return Pong{}
	}
	challenge := msg.Params[0]
	return Pong{Challenge: &challenge}
}

func parseNick(q ServerQuery, user *User, msg irc.Message) Action {
	if len(msg.Params) == 0 {
		return ErrorAction{Code: ErrNoNicknameGiven}
	}

	nickname := msg.Params[0]

	if other, ok := q.UserFindByNickname(nickname); ok &&
		other.ClientID != q.ClientID() {
		return ErrorAction{Code: ErrNicknameInUse}
	}

	if user.Nickname == "" {
		return SetNick{Nickname: nickname}
	}

	profile := q.ServerConfig().FeatCasemap
	if canonicalizeNick(user.Nickname, profile) == canonicalizeNick(nickname, profile) {
		return ErrorAction{Code: ErrNicknameInUse}
	}

	return ChangeNick{PrevNickname: user.Nickname, Nickname: nickname}
}

func parseUser(user *User, msg irc.Message) Action {
	if len(msg.Params) < 3 {
		return ErrorAction{Code: ErrNeedMoreParams}
	}

	username := msg.Params[0]

	if msg.Params[1] != "0" || msg.Params[2] != "*" {
		log.Printf("USER: unexpected mode/unused params: %v", msg.Params[1:3])
	}

	var realName string
	if len(msg.Params) >= 4 {
		realName = msg.Params[3]
	} else {
		return ErrorAction{Code: ErrNeedMoreParams}
	}

	if user.Username != "" {
		return ErrorAction{Code: ErrAlreadyRegistred}
	}

	return SetUserAndRealName{Username: "~" + username, RealName: realName}
}

func parseJoin(msg irc.Message) (Action, error) {
	if len(msg.Params) == 0 {
		return ErrorAction{Code: ErrNeedMoreParams}, nil
	}

	var keysArg string
	if len(msg.Params) > 1 {
		keysArg = msg.Params[1]
	}

	refs, ok := splitChannelsAndKeys(msg.Params[0], keysArg)
	if !ok {
		return ErrorAction{Code: ErrNeedMoreParams}, nil
	}

	return Join{Channels: refs}, nil
}

func parsePart(msg irc.Message) (Action, error) {
	if len(msg.Params) == 0 {
		return ErrorAction{Code: ErrNeedMoreParams}, nil
	}

	part := Part{Channel: msg.Params[0]}
	if len(msg.Params) > 1 {
		reason := msg.Params[1]
		part.Message = &reason
	}
	return part, nil
}

func parsePrivmsg(msg irc.Message) (Action, error) {
	if len(msg.Params) < 2 {
		return ErrorAction{Code: ErrNeedMoreParams}, nil
	}

	targets := strings.Split(msg.Params[0], ",")
	text := msg.Params[1]

	var users, channels []string
	for _, t := range targets {
		if t == "" {
			continue
		}
		if t[0] == '#' || t[0] == '&' {
			channels = append(channels, t)
		} else {
			users = append(users, t)
		}
	}

	if len(users) == 0 && len(channels) == 0 {
		return ErrorAction{Code: ErrNeedMoreParams}, nil
	}

	return PrivateMessage{Message: text, Users: users, Channels: channels}, nil
}

func parseQuit(msg irc.Message) Action {
	if len(msg.Params) == 0 {
		return Quit{}
	}
	reason := msg.Params[0]
	return Quit{Reason: &reason}
}
