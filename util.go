package main

import "strings"

// 50 from RFC 2812.
const maxChannelLength = 50

// isValidChannel checks a channel name for validity.
//
// You should canonicalize it before using this function.
func isValidChannel(c string) bool {
	if len(c) == 0 || len(c) > maxChannelLength {
		return false
	}

	first := c[0]
	if first != '#' && first != '&' {
		return false
	}

	for i := 1; i < len(c); i++ {
		switch c[i] {
		case ' ', ',', '\x07', '\r', '\n', '\x00':
			return false
		}
	}

	return true
}

// splitChannelsAndKeys parses JOIN's comma separated channel and key lists
// into ChannelRef values, pairing them in order.
//
// A channel without a matching key is still valid. A key given without any
// channel name is not: we report that with ok=false rather than follow the
// original implementation's panic.
func splitChannelsAndKeys(channelsArg, keysArg string) ([]ChannelRef, bool) {
	var channelNames []string
	for _, c := range strings.Split(channelsArg, ",") {
		if c != "" {
			channelNames = append(channelNames, c)
		}
	}

	var keys []string
	if keysArg != "" {
		keys = strings.Split(keysArg, ",")
	}

	if len(channelNames) == 0 && len(keys) > 0 {
		return nil, false
	}

	refs := make([]ChannelRef, 0, len(channelNames))
	for i, name := range channelNames {
		ref := ChannelRef{Name: name}
		if i < len(keys) && keys[i] != "" {
			key := keys[i]
			ref.Key = &key
		}
		refs = append(refs, ref)
	}

	return refs, true
}
