package main

import "testing"

func TestChannelAddClient(t *testing.T) {
	c := NewChannel("#foo")

	if !c.AddClient(1) {
		t.Fatalf("AddClient(1) = false, wanted true")
	}
	if c.AddClient(1) {
		t.Fatalf("AddClient(1) again = true, wanted false (duplicate)")
	}
	if len(c.Clients) != 1 {
		t.Fatalf("len(Clients) = %d, wanted 1", len(c.Clients))
	}
}

func TestChannelRemoveClient(t *testing.T) {
	c := NewChannel("#foo")
	c.AddClient(1)
	c.AddClient(2)

	c.RemoveClient(1)

	if c.HasClient(1) {
		t.Errorf("HasClient(1) = true after removal")
	}
	if !c.HasClient(2) {
		t.Errorf("HasClient(2) = false, wanted true")
	}
}

func TestChannelEmpty(t *testing.T) {
	c := NewChannel("#foo")
	if !c.Empty() {
		t.Fatalf("new channel Empty() = false, wanted true")
	}

	c.AddClient(1)
	if c.Empty() {
		t.Fatalf("Empty() = true after AddClient, wanted false")
	}

	c.RemoveClient(1)
	if !c.Empty() {
		t.Fatalf("Empty() = false after last member removed, wanted true")
	}
}
