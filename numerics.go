package main

// Numeric reply/error codes. Named per RFC 1459/2812; see spec.md §6 for
// the core table and SPEC_FULL.md for the additions.
const (
	ReplyWelcome     = "001"
	ReplyYourHost    = "002"
	ReplyCreated     = "003"
	ReplyMyInfo      = "004" // reserved, never emitted
	ReplyISupport    = "005"
	ReplyLuserClient = "251"
	ReplyLuserOp     = "252" // reserved, never emitted
	ReplyTopic       = "332"
	ReplyNamReply    = "353" // reserved, never emitted
	ReplyMotd        = "372"
	ReplyMotdStart   = "375"
	ReplyEndOfMotd   = "376"

	ErrNoSuchNick       = "401"
	ErrNoSuchChannel    = "403"
	ErrNoNicknameGiven  = "431"
	ErrNicknameInUse    = "433"
	ErrNotOnChannel     = "442"
	ErrNeedMoreParams   = "461"
	ErrAlreadyRegistred = "462"
	ErrNotRegistered    = "451"
)

// softwareName and softwareVersion identify this daemon in RPL_YOURHOST,
// independent of the operator-configured server name.
const (
	softwareName    = "Myriad"
	softwareVersion = "0.3.0"
)
