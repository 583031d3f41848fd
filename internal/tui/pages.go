package tui

import "strings"

// Page identifies a screen of the client app.
type Page string

const (
	PageHome     Page = "home"
	PageProfile  Page = "profile"
	PageNotFound Page = "not_found"
)

// navLink is an entry in the header navigation.
type navLink struct {
	Name string
	Path string
	Key  string
}

// navLinks lists the header entries in display order. "My Pets" has no
// page yet and resolves to PageNotFound.
var navLinks = []navLink{
	{Name: "Home", Path: "/home", Key: "h"},
	{Name: "My Pets", Path: "/pets", Key: "m"},
	{Name: "Profile", Path: "/profile", Key: "p"},
}

// Route resolves a path to a page. Unknown paths resolve to PageNotFound.
func Route(path string) Page {
	switch strings.ToLower(strings.Trim(path, "/ ")) {
	case "", "home":
		return PageHome
	case "profile":
		return PageProfile
	default:
		return PageNotFound
	}
}
