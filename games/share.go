package games

import "net/url"

const (
	shareEndpoint  = "https://www.linkedin.com/messaging/compose"
	shareRecipient = "geet-h17"
)

// KonamiMessage is shared when the easter egg fires
const KonamiMessage = "I am OOG! I typed the Konami code on your site!"

// ShareURL builds the compose link carrying message
func ShareURL(message string) string {
	return shareEndpoint + "?recipient=" + url.QueryEscape(shareRecipient) + "&body=" + url.QueryEscape(message)
}
