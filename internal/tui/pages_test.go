package tui

import "testing"

func TestRoute(t *testing.T) {
	tests := []struct {
		path string
		want Page
	}{
		{path: "", want: PageHome},
		{path: "/", want: PageHome},
		{path: "/home", want: PageHome},
		{path: "home", want: PageHome},
		{path: "/Profile", want: PageProfile},
		{path: "/profile/", want: PageProfile},
		{path: "/pets", want: PageNotFound},
		{path: "/billing", want: PageNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Route(tt.path); got != tt.want {
				t.Errorf("Route(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNavLinks_KeysMatchBindings(t *testing.T) {
	keys := NavKeyMap()
	bindings := map[string][]string{
		"Home":    keys.Home.Keys(),
		"My Pets": keys.Pets.Keys(),
		"Profile": keys.Profile.Keys(),
	}
	for _, link := range navLinks {
		got := bindings[link.Name]
		if len(got) == 0 || got[0] != link.Key {
			t.Errorf("nav link %q key = %q, binding keys = %v", link.Name, link.Key, got)
		}
	}
}
