// ABOUTME: Canned response texts, sample media, and default representative profiles.
// ABOUTME: Response wording matters to tests; edit with care.

package bot

// Default representative profiles. Overridable via config.
const (
	DefaultLiveAgentName = "Sally"
	DefaultBotName       = "BM Welcome Bot"

	DefaultLiveAgentAvatar = "https://storage.googleapis.com/sample-avatars-for-bm/live-avatar.jpg"
	DefaultBotAvatar       = "https://storage.googleapis.com/sample-avatars-for-bm/bot-avatar.jpg"
)

// Canned responses.
const (
	respLoremIpsum = "Lorem ipsum dolor sit amet, consectetur " +
		"adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut " +
		"enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea " +
		"commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse " +
		"cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, " +
		"sunt in culpa qui officia deserunt mollit anim id est laborum."

	respMediumText = "Google was founded in September 1998 by Larry " +
		"Page and Sergey Brin while they were Ph.D. students at Stanford University in " +
		"California. They incorporated Google as a California publicly held company on " +
		"September 4, 1998, in California. Google was then reincorporated in Delaware on October " +
		"22, 2002. An initial public offering (IPO) took place on August 19, 2004, and Google " +
		"moved to its headquarters in Mountain View, California, nicknamed the Googleplex. In " +
		"August 2015, Google announced plans to reorganize its various interests as a " +
		"conglomerate called Alphabet Inc. Google is Alphabet's leading subsidiary and will " +
		"continue to be the umbrella company for Alphabet's Internet interests. Sundar Pichai " +
		"was appointed CEO of Google, replacing Larry Page who became the CEO of Alphabet."

	respLongText = respMediumText + "\n\n" +
		"The company's rapid growth since incorporation has triggered a chain of products, " +
		"acquisitions, and partnerships beyond Google's core search engine (Google Search). " +
		"It offers services designed for work and productivity (Google Docs, Google Sheets, " +
		"and Google Slides), email (Gmail), scheduling and time management (Google Calendar), " +
		"cloud storage (Google Drive), instant messaging and video chat (Duo, Hangouts," +
		" Messages!!!!!!!), language translation (Google Translate), mapping and navigation " +
		"(Google Maps, Waze, Google Earth, Street View), video sharing (YouTube), " +
		"note-taking (Google Keep), and photo organizing and editing (Google Photos). The " +
		"company leads the development of the Android mobile operating system, the Google " +
		"Chrome web browser, and Chrome OS, a lightweight operating system based on the " +
		"Chrome browser. Google has moved increasingly into hardware; from 2010 to 2015, it " +
		"partnered with major electronics manufacturers in the production of its Nexus " +
		"devices, and it released multiple hardware products in October 2016, including the " +
		"Google Pixel smartphone, Google Home smart speaker, Google Wifi mesh wireless " +
		"router, and Google Daydream virtual reality headset. Google has also experimented " +
		"with becoming an Internet carrier (Google Fiber, Google Fi, and Google Station).\n\n" +
		"Google.com is the most visited website in the world.[14] Several other Google " +
		"services also figure in the top 100 most visited websites, including YouTube and " +
		"Blogger. Google's mission statement is \"to organize the world's information and " +
		"make it universally accessible and useful\". The company's unofficial slogan " +
		"\"Don't be evil\" was removed from the company's code of conduct around May 2018, " +
		"but reinstated by July 31, 2018."

	respToTranslate = "Hello there. How are you doing? I hope you " +
		"are having a great day!"

	respLinkText = "Go to Google!"

	respChipText = "Example suggested replies"

	respLiveAgentText = "Example a live agent request action"

	respDialText = "Give me a call!"

	respWhoText = "This program was created to help demonstrate the capabilities of " +
		"the Business Messages platform."

	respHelpText = "Welcome to the help :-). This program will echo " +
		"any text that you enter that is not part of a supported command. The supported " +
		"commands are: \n\n" +
		"Help - Shows the list of supported commands and functions\n\n" +
		"Lorem ipsum - Will respond with Lorem Ipsum text\n\n" +
		"Medium text - Will respond with a medium length paragraph\n\n" +
		"Long text - Will create a long multi-paragraph response\n\n" +
		"Speak XYZ - Will respond in the language of choice where XYZ corresponds " +
		"to a recognized language\n\n" +
		"Who - Shows a description this product\n\n" +
		"CSAT - Triggers the CSAT survey\n\n" +
		"Link - Shows an open url action to https://www.google.com\n\n" +
		"Dial - Shows a dial action to +12223334444\n\n" +
		"Live agent - Shows an Request a live agent chip\n\n" +
		"Chips - Shows an example chip list\n\n" +
		"Card - Shows a sample rich card\n\n" +
		"Carousel - Shows a sample carousel rich card"

	respHyperlinkText = "Here is a link to [Google](https://www.google.com) rendered inline."

	respLiveAgentTransfer = "Hey there, you are now chatting with a live agent " +
		"(not really, but let's pretend)."

	respBotTransfer = "Hey there, you are now chatting with a bot."
)

// carouselDivider separates card blocks in the carousel fallback text.
const carouselDivider = "---------------------------------------------"

// sampleImages are used by the rich card and carousel examples.
var sampleImages = []string{
	"https://storage.googleapis.com/kitchen-sink-sample-images/cute-dog.jpg",
	"https://storage.googleapis.com/kitchen-sink-sample-images/elephant.jpg",
	"https://storage.googleapis.com/kitchen-sink-sample-images/adventure-cliff.jpg",
	"https://storage.googleapis.com/kitchen-sink-sample-images/sheep.jpg",
	"https://storage.googleapis.com/kitchen-sink-sample-images/golden-gate-bridge.jpg",
}
