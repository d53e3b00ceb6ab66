// Package webhook receives inbound Business Messages deliveries, drops
// duplicates, classifies the payload shape, and dispatches to the bot or
// the representative transfer flows.
package webhook
