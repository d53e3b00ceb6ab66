// ABOUTME: Supported translation languages, name to ISO code.
// ABOUTME: Held as an ordered slice so the help listing is deterministic.

package bot

import "strings"

// Language maps a spoken language name to its translation API code.
type Language struct {
	Name string
	Code string
}

// languages is the supported language table. A few names are aliases for
// the same code (filipino/tagalog, scottish/scots gaelic, chichewa/nyanja).
var languages = []Language{
	{"afrikaans", "af"},
	{"albanian", "sq"},
	{"amharic", "am"},
	{"arabic", "ar"},
	{"armenian", "hy"},
	{"azerbaijani", "az"},
	{"basque", "eu"},
	{"belarusian", "be"},
	{"bengali", "bn"},
	{"bosnian", "bs"},
	{"bulgarian", "bg"},
	{"catalan", "ca"},
	{"cebuano", "ceb"},
	{"chinese", "zh-CN"},
	{"corsican", "co"},
	{"croatian", "hr"},
	{"czech", "cs"},
	{"danish", "da"},
	{"dutch", "nl"},
	{"english", "en"},
	{"esperanto", "eo"},
	{"estonian", "et"},
	{"finnish", "fi"},
	{"french", "fr"},
	{"frisian", "fy"},
	{"galician", "gl"},
	{"georgian", "ka"},
	{"german", "de"},
	{"greek", "el"},
	{"gujarati", "gu"},
	{"haitian", "ht"},
	{"hausa", "ha"},
	{"hawaiian", "haw"},
	{"hebrew", "he"},
	{"hindi", "hi"},
	{"hmong", "hmn"},
	{"hungarian", "hu"},
	{"icelandic", "is"},
	{"igbo", "ig"},
	{"indonesian", "id"},
	{"irish", "ga"},
	{"italian", "it"},
	{"japanese", "ja"},
	{"javanese", "jw"},
	{"kannada", "kn"},
	{"kazakh", "kk"},
	{"khmer", "km"},
	{"korean", "ko"},
	{"kurdish", "ku"},
	{"kyrgyz", "ky"},
	{"lao", "lo"},
	{"latin", "la"},
	{"latvian", "lv"},
	{"lithuanian", "lt"},
	{"luxembourgish", "lb"},
	{"macedonian", "mk"},
	{"malagasy", "mg"},
	{"malay", "ms"},
	{"malayalam", "ml"},
	{"maltese", "mt"},
	{"maori", "mi"},
	{"marathi", "mr"},
	{"mongolian", "mn"},
	{"myanmar", "my"},
	{"burmemes", "my"},
	{"nepali", "ne"},
	{"norwegian", "no"},
	{"nyanja", "ny"},
	{"chichewa", "ny"},
	{"pashto", "ps"},
	{"persian", "fa"},
	{"polish", "pl"},
	{"portuguese", "pt"},
	{"punjabi", "pa"},
	{"romanian", "ro"},
	{"russian", "ru"},
	{"samoan", "sm"},
	{"scots gaelic", "gd"},
	{"scottish", "gd"},
	{"serbian", "sr"},
	{"sesotho", "st"},
	{"shona", "sn"},
	{"sindhi", "sd"},
	{"sinhala", "si"},
	{"sinhalese", "si"},
	{"slovak", "sk"},
	{"slovenian", "sl"},
	{"somali", "so"},
	{"spanish", "es"},
	{"sundanese", "su"},
	{"swahili", "sw"},
	{"swedish", "sv"},
	{"tagalog", "tl"},
	{"filipino", "tl"},
	{"tajik", "tg"},
	{"tamil", "ta"},
	{"telugu", "te"},
	{"thai", "th"},
	{"turkish", "tr"},
	{"ukrainian", "uk"},
	{"urdu", "ur"},
	{"uzbek", "uz"},
	{"vietnamese", "vi"},
	{"welsh", "cy"},
	{"xhosa", "xh"},
	{"yiddish", "yi"},
	{"yoruba", "yo"},
	{"zulu", "zu"},
}

var languageCodes = func() map[string]string {
	m := make(map[string]string, len(languages))
	for _, l := range languages {
		m[l.Name] = l.Code
	}
	return m
}()

// LanguageCode resolves a language name (case-insensitive) to its code.
func LanguageCode(name string) (string, bool) {
	code, ok := languageCodes[strings.ToLower(name)]
	return code, ok
}

// SupportedLanguages lists every supported language name, capitalized on the
// first character and joined by ", ", in table order.
func SupportedLanguages() string {
	var sb strings.Builder
	for i, l := range languages {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strings.ToUpper(l.Name[:1]))
		sb.WriteString(l.Name[1:])
	}
	return sb.String()
}
