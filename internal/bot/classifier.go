// ABOUTME: Maps normalized inbound text to a symbolic command.
// ABOUTME: Ordered rule list, first match wins, falling back to echo.

package bot

import (
	"regexp"
	"strings"
)

// Command is the symbolic tag a piece of inbound text classifies to.
type Command string

const (
	CommandLoremIpsum Command = "lorem_ipsum"
	CommandMediumText Command = "medium_text"
	CommandLongText   Command = "long_text"
	CommandSpeak      Command = "speak"
	CommandLink       Command = "link"
	CommandDial       Command = "dial"
	CommandCard       Command = "card"
	CommandCarousel   Command = "carousel"
	CommandWho        Command = "who"
	CommandCSAT       Command = "csat"
	CommandHelp       Command = "help"
	CommandLiveAgent  Command = "live_agent"
	CommandChips      Command = "chips"
	CommandBackToBot  Command = "back_to_bot"
	CommandBold       Command = "bold"
	CommandItalics    Command = "italics"
	CommandHyperlink  Command = "hyperlink"
	CommandEcho       Command = "echo"
)

type rule struct {
	match   func(string) bool
	command Command
}

func exact(phrase string) func(string) bool {
	return func(s string) bool { return s == phrase }
}

func pattern(expr string) func(string) bool {
	// Patterns match the whole input, like Java's String.matches.
	re := regexp.MustCompile(`^(?:` + expr + `)$`)
	return re.MatchString
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{exact("lorem ipsum"), CommandLoremIpsum},
	{exact("medium text"), CommandMediumText},
	{exact("long text"), CommandLongText},
	{pattern(`speak.*`), CommandSpeak},
	{exact("link"), CommandLink},
	{exact("dial"), CommandDial},
	{exact("card"), CommandCard},
	{exact("carousel"), CommandCarousel},
	{pattern(`who.*`), CommandWho},
	{pattern(`csat.*`), CommandCSAT},
	{pattern(`help.*|commands\s.*|see the help menu`), CommandHelp},
	{exact("live agent"), CommandLiveAgent},
	{exact("chips"), CommandChips},
	{exact("back_to_bot"), CommandBackToBot},
	{exact("bold"), CommandBold},
	{exact("italics"), CommandItalics},
	{exact("hyperlink"), CommandHyperlink},
}

// Normalize lowercases and trims inbound text before matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Classify maps inbound text to a Command. Unrecognized text classifies
// to CommandEcho; the caller echoes the original text back verbatim.
func Classify(text string) Command {
	normalized := Normalize(text)
	for _, r := range rules {
		if r.match(normalized) {
			return r.command
		}
	}
	return CommandEcho
}

// SpeakLanguage extracts the language name token from a speak command:
// the "speak " prefix is stripped and the remainder truncated at the first
// space, so "speak french now" yields "french".
func SpeakLanguage(normalized string) string {
	language := strings.TrimSpace(strings.Replace(normalized, "speak ", "", 1))
	if i := strings.Index(language, " "); i > 0 {
		language = language[:i]
	}
	return language
}
