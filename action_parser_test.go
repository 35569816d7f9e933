package main

import "testing"

func newTestQuery(u *User) ServerQuery {
	s := NewServer(DefaultConfig())
	s.Users[u.ClientID] = u
	return ServerQuery{server: s, clientID: u.ClientID}
}

func TestParseActionPing(t *testing.T) {
	q := newTestQuery(&User{ClientID: 1, Nickname: "alice", Username: "alice"})

	action, err := parseAction(q, "PING")
	if err != nil {
		t.Fatalf("parseAction(PING) error: %s", err)
	}
	pong, ok := action.(Pong)
	if !ok {
		t.Fatalf("parseAction(PING) = %T, wanted Pong", action)
	}
	if pong.Challenge != nil {
		t.Errorf("Challenge = %v, wanted nil", *pong.Challenge)
	}

	action, err = parseAction(q, "PING :hello")
	if err != nil {
		t.Fatalf("parseAction(PING :hello) error: %s", err)
	}
	pong, ok = action.(Pong)
	if !ok || pong.Challenge == nil || *pong.Challenge != "hello" {
		t.Fatalf("parseAction(PING :hello) = %#v", action)
	}
}

func TestParseActionNick(t *testing.T) {
	u := &User{ClientID: 1}
	q := newTestQuery(u)

	action, err := parseAction(q, "NICK")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if e, ok := action.(ErrorAction); !ok || e.Code != ErrNoNicknameGiven {
		t.Fatalf("NICK with no params = %#v, wanted ErrNoNicknameGiven", action)
	}

	action, err = parseAction(q, "NICK alice")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if s, ok := action.(SetNick); !ok || s.Nickname != "alice" {
		t.Fatalf("NICK alice = %#v, wanted SetNick{alice}", action)
	}

	u.Nickname = "alice"
	u.Username = "alice" // registered, so non-pre-registration gating doesn't apply here anyway

	action, err = parseAction(q, "NICK alice")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if e, ok := action.(ErrorAction); !ok || e.Code != ErrNicknameInUse {
		t.Fatalf("re-sending own nick = %#v, wanted ErrNicknameInUse", action)
	}

	action, err = parseAction(q, "NICK bob")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	change, ok := action.(ChangeNick)
	if !ok || change.PrevNickname != "alice" || change.Nickname != "bob" {
		t.Fatalf("NICK bob = %#v, wanted ChangeNick{alice, bob}", action)
	}
}

func TestParseActionUser(t *testing.T) {
	u := &User{ClientID: 1, Nickname: "alice"}
	q := newTestQuery(u)

	action, err := parseAction(q, "USER alice 0 *")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if e, ok := action.(ErrorAction); !ok || e.Code != ErrNeedMoreParams {
		t.Fatalf("USER with no realname = %#v, wanted ErrNeedMoreParams", action)
	}

	action, err = parseAction(q, "USER alice 0 * :Alice A")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	set, ok := action.(SetUserAndRealName)
	if !ok || set.Username != "~alice" || set.RealName != "Alice A" {
		t.Fatalf("USER alice 0 * :Alice A = %#v", action)
	}

	u.Username = "~alice"
	action, err = parseAction(q, "USER alice 0 * :Alice A")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if e, ok := action.(ErrorAction); !ok || e.Code != ErrAlreadyRegistred {
		t.Fatalf("second USER = %#v, wanted ErrAlreadyRegistred", action)
	}
}

func TestParseActionNotRegistered(t *testing.T) {
	q := newTestQuery(&User{ClientID: 1})

	action, err := parseAction(q, "JOIN #foo")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if e, ok := action.(ErrorAction); !ok || e.Code != ErrNotRegistered {
		t.Fatalf("JOIN before registration = %#v, wanted ErrNotRegistered", action)
	}
}

func TestParseActionJoin(t *testing.T) {
	u := &User{ClientID: 1, Nickname: "alice", Username: "alice"}
	q := newTestQuery(u)

	action, err := parseAction(q, "JOIN #foo,#bar")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	join, ok := action.(Join)
	if !ok || len(join.Channels) != 2 {
		t.Fatalf("JOIN #foo,#bar = %#v", action)
	}
	if join.Channels[0].Name != "#foo" || join.Channels[1].Name != "#bar" {
		t.Fatalf("JOIN channel names = %#v", join.Channels)
	}
}

func TestParseActionPrivmsg(t *testing.T) {
	u := &User{ClientID: 1, Nickname: "alice", Username: "alice"}
	q := newTestQuery(u)

	action, err := parseAction(q, "PRIVMSG bob,#foo :hello there")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	pm, ok := action.(PrivateMessage)
	if !ok {
		t.Fatalf("PRIVMSG = %#v, wanted PrivateMessage", action)
	}
	if len(pm.Users) != 1 || pm.Users[0] != "bob" {
		t.Errorf("Users = %#v", pm.Users)
	}
	if len(pm.Channels) != 1 || pm.Channels[0] != "#foo" {
		t.Errorf("Channels = %#v", pm.Channels)
	}
	if pm.Message != "hello there" {
		t.Errorf("Message = %q, wanted %q", pm.Message, "hello there")
	}
}

func TestParseActionQuit(t *testing.T) {
	u := &User{ClientID: 1, Nickname: "alice", Username: "alice"}
	q := newTestQuery(u)

	action, err := parseAction(q, "QUIT")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if quit, ok := action.(Quit); !ok || quit.Reason != nil {
		t.Fatalf("QUIT = %#v, wanted Quit{nil}", action)
	}

	action, err = parseAction(q, "QUIT :goodbye")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	quit, ok := action.(Quit)
	if !ok || quit.Reason == nil || *quit.Reason != "goodbye" {
		t.Fatalf("QUIT :goodbye = %#v", action)
	}
}
