package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/secure/precis"
)

// canonicalizeNick folds a nickname according to the configured
// feat_casemap profile, so that nickname lookups and uniqueness checks
// are case-insensitive in whatever sense that profile defines.
func canonicalizeNick(nick, profile string) string {
	return canonicalizeToken(nick, profile)
}

// canonicalizeChannel folds a channel name the same way, leaving the
// leading sigil ('#' or '&') untouched.
func canonicalizeChannel(channel, profile string) string {
	if channel == "" {
		return channel
	}
	return channel[:1] + canonicalizeToken(channel[1:], profile)
}

func canonicalizeToken(s, profile string) string {
	switch profile {
	case CasemapRFC7613:
		// RFC 7613 defines the PRECIS nickname/username profiles this
		// casemap value is named after; fall back to plain lower-casing
		// if the input doesn't satisfy the profile rather than reject it, since
		// canonicalization must never fail a lookup.
		folded, err := precis.NicknameCaseMapped.String(s)
		if err != nil {
			return strings.ToLower(s)
		}
		return folded
	case CasemapRFC1459, CasemapRFC1459Strict:
		lowered := cases.Fold().String(s)
		return rfc1459Fold(lowered, profile == CasemapRFC1459)
	case CasemapASCII:
		fallthrough
	default:
		return cases.Fold().String(asciiOnly(s))
	}
}

// rfc1459Fold applies the RFC 1459 Scandinavian bracket mapping on top of
// an already lower-cased string. extended also folds '~' to '^', which
// "rfc1459-strict" omits.
func rfc1459Fold(s string, extended bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '[':
			r = '{'
		case ']':
			r = '}'
		case '\\':
			r = '|'
		case '~':
			if extended {
				r = '^'
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func asciiOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isupportCasemapToken is the CASEMAPPING token sent in RPL_ISUPPORT.
func isupportCasemapToken(profile string) string {
	switch profile {
	case CasemapRFC1459:
		return "rfc1459"
	case CasemapRFC1459Strict:
		return "rfc1459-strict"
	case CasemapRFC7613:
		return "rfc7613"
	default:
		return "ascii"
	}
}
