package providers

// Static page copy served when no AI provider is configured or the
// provider call fails. Keyed by page type.
var fallbackTemplates = map[string]string{
	"about": "Welcome to the car audio community. We bring together SPL competitors, " +
		"sound quality enthusiasts, and show-and-shine builders from across the region. " +
		"Browse upcoming events, follow competition results, and connect with local teams.",
	"events": "Our events calendar covers SPL battles, sound quality judging, and " +
		"show-and-shine meets. Each listing includes the venue, entry fee, and " +
		"registration deadline. Register early to lock in your class.",
	"teams": "Teams are the backbone of the competition scene. Join an existing team to " +
		"compete under a shared banner, or start your own and recruit members from " +
		"the community.",
	"directory": "The business directory lists shops, installers, and manufacturers " +
		"serving the car audio community. Listings include contact details and the " +
		"categories each business serves.",
	"support": "Need help with your account, a registration, or a payment? Open a " +
		"support ticket and a member of the team will get back to you.",
}

// FallbackContent returns the static copy for a page type, if one exists.
func FallbackContent(pageType string) (string, bool) {
	text, ok := fallbackTemplates[pageType]
	return text, ok
}
