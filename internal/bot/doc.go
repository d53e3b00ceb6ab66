// Package bot implements the conversational agent: command classification,
// response construction, rich card and carousel samples, translation, and
// the representative transfer flows.
package bot
