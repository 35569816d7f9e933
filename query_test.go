package main

import "testing"

func TestServerQueryUserFindByNicknameCasemap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FeatCasemap = CasemapASCII
	s := NewServer(cfg)
	s.Users[1] = &User{ClientID: 1, Nickname: "Alice"}

	q := ServerQuery{server: s, clientID: 1}

	found, ok := q.UserFindByNickname("alice")
	if !ok || found.ClientID != 1 {
		t.Fatalf("UserFindByNickname(alice) = %v, %v, wanted user 1", found, ok)
	}

	_, ok = q.UserFindByNickname("bob")
	if ok {
		t.Fatalf("UserFindByNickname(bob) found a user, wanted none")
	}
}

func TestServerQueryChannelGetOrCreate(t *testing.T) {
	s := NewServer(DefaultConfig())
	q := ServerQuery{server: s, clientID: 1}

	c1 := q.ChannelGetOrCreate("#foo", "#foo")
	c2 := q.ChannelGetOrCreate("#foo", "#foo")

	if c1 != c2 {
		t.Fatalf("ChannelGetOrCreate returned two different channels for the same name")
	}
}

func TestServerQueryRebind(t *testing.T) {
	s := NewServer(DefaultConfig())
	s.Users[1] = &User{ClientID: 1, Nickname: "alice"}
	s.Users[2] = &User{ClientID: 2, Nickname: "bob"}

	q := ServerQuery{server: s, clientID: 1}
	if q.User().Nickname != "alice" {
		t.Fatalf("initial bound user = %s, wanted alice", q.User().Nickname)
	}

	rebound := q.Rebind(2)
	if rebound.User().Nickname != "bob" {
		t.Fatalf("rebound user = %s, wanted bob", rebound.User().Nickname)
	}
	if q.User().Nickname != "alice" {
		t.Fatalf("original handle mutated by Rebind")
	}
}

func TestServerQueryUserRemoveCascade(t *testing.T) {
	s := NewServer(DefaultConfig())
	s.Users[1] = &User{ClientID: 1, Nickname: "alice"}
	s.Users[2] = &User{ClientID: 2, Nickname: "bob"}
	ch := NewChannel("#foo")
	ch.AddClient(1)
	ch.AddClient(2)
	s.Channels["#foo"] = ch

	q := ServerQuery{server: s, clientID: 1}
	q.UserRemove(1)

	if _, ok := s.Users[1]; ok {
		t.Fatalf("user 1 still present after UserRemove")
	}
	if ch.HasClient(1) {
		t.Fatalf("channel still lists client 1 after UserRemove")
	}
	if !ch.HasClient(2) {
		t.Fatalf("channel lost unrelated client 2")
	}
}

func TestServerQueryUserRemoveEmptiesChannel(t *testing.T) {
	s := NewServer(DefaultConfig())
	s.Users[1] = &User{ClientID: 1, Nickname: "alice"}
	ch := NewChannel("#foo")
	ch.AddClient(1)
	s.Channels["#foo"] = ch

	q := ServerQuery{server: s, clientID: 1}
	q.UserRemove(1)

	if _, ok := s.Channels["#foo"]; ok {
		t.Fatalf("empty channel was not removed from the table")
	}
}
