// Package bizmsg contains the Business Messages v1 wire types and the
// REST client used to send messages, events, and surveys to a conversation.
package bizmsg
