package chat

// DefaultMaxTurns caps how many user/assistant exchanges a conversation keeps.
const DefaultMaxTurns = 20

// Trim caps a conversation at maxTurns exchanges. The leading system message,
// if present, is always kept and stays first; of the remaining messages the
// most recent maxTurns*2 are kept in their original order, older ones dropped
// from the front. Trim is pure and idempotent.
func Trim(msgs []Message, maxTurns int) []Message {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	var lead []Message
	rest := msgs
	if len(msgs) > 0 && msgs[0].Role == RoleSystem {
		lead = msgs[:1]
		rest = msgs[1:]
	}

	if limit := maxTurns * 2; len(rest) > limit {
		rest = rest[len(rest)-limit:]
	}

	out := make([]Message, 0, len(lead)+len(rest))
	out = append(out, lead...)
	return append(out, rest...)
}
