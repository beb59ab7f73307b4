// Package notify holds the deduplicated notification queue surfaced to
// operators. Rule alerts, disconnection notices, and internally raised
// system notifications all land here; identity is the message's full field
// content, so re-raising an identical message is a no-op.
package notify
