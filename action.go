package main

// Action is the closed set of intents the parser can produce from one
// IrcCommand. The dispatcher switches on the concrete type; there is no
// open extension point, per spec.md §9.
type Action interface {
	isAction()
}

// Pong answers a PING. Challenge is nil if the client sent none.
type Pong struct {
	Challenge *string
}

func (Pong) isAction() {}

// SetNick assigns a nickname to a not-yet-nicknamed user.
type SetNick struct {
	Nickname string
}

func (SetNick) isAction() {}

// ChangeNick replaces an already-set nickname. No broadcast in this
// spec.
type ChangeNick struct {
	PrevNickname string
	Nickname     string
}

func (ChangeNick) isAction() {}

// SetUserAndRealName completes the USER half of registration.
type SetUserAndRealName struct {
	Username string
	RealName string
}

func (SetUserAndRealName) isAction() {}

// SendWelcomeSequence emits the post-registration numeric burst, then
// the MOTD.
type SendWelcomeSequence struct{}

func (SendWelcomeSequence) isAction() {}

// Motd emits the MOTD numerics alone (also reachable directly via the
// MOTD command).
type Motd struct{}

func (Motd) isAction() {}

// Join processes one or more channel joins.
type Join struct {
	Channels []ChannelRef
}

func (Join) isAction() {}

// JoinInform is dispatched once per existing member (rebound to that
// member's identity) so each observes the JOIN notice. Nick is the
// joining client's nickname.
type JoinInform struct {
	Channel string
	Nick    string
}

func (JoinInform) isAction() {}

// Part removes the acting client from one channel.
type Part struct {
	Channel string
	Message *string
}

func (Part) isAction() {}

// PartInform is dispatched once per remaining member (rebound) so each
// observes the PART notice; it is also dispatched to the leaving client
// themselves before their removal.
type PartInform struct {
	Channel string
	Message *string
	Nick    string
}

func (PartInform) isAction() {}

// PrivateMessage fans a message out to user and channel targets.
type PrivateMessage struct {
	Message  string
	Users    []string
	Channels []string
}

func (PrivateMessage) isAction() {}

// PrivateMessageUser is dispatched bound to the recipient.
type PrivateMessageUser struct {
	Message      string
	FromNickname string
	ToNickname   string
}

func (PrivateMessageUser) isAction() {}

// PrivateMessageChannel is dispatched bound to each channel member other
// than the sender.
type PrivateMessageChannel struct {
	Message      string
	Channel      string
	FromNickname string
}

func (PrivateMessageChannel) isAction() {}

// Quit shuts down the acting client's connection and removes them.
type Quit struct {
	Reason *string
}

func (Quit) isAction() {}

// QuitInform is dispatched once per channel co-member (rebound, each
// nickname only once even if shared across multiple channels) before the
// quitting client is removed.
type QuitInform struct {
	Nick   string
	Reason string
}

func (QuitInform) isAction() {}

// ErrorAction emits a generic numeric error to the acting client.
type ErrorAction struct {
	Code string
}

func (ErrorAction) isAction() {}
