package models

import "strings"

// ClientKind tags the requesting client so the response format can be chosen
// explicitly instead of keeping ambient per-request state.
type ClientKind int

const (
	// ClientBrowser gets JSON responses.
	ClientBrowser ClientKind = iota
	// ClientConsole gets a bare short URL, one line, ready to pipe.
	ClientConsole
)

var consoleAgents = []string{"curl", "wget", "httpie"}

// DetectClient classifies a request by its User-Agent header.
func DetectClient(userAgent string) ClientKind {
	ua := strings.ToLower(userAgent)
	for _, agent := range consoleAgents {
		if strings.Contains(ua, agent) {
			return ClientConsole
		}
	}

	return ClientBrowser
}
