package access

// NavState is everything the navigation bar depends on. It is rebuilt from
// scratch on every evaluation.
type NavState struct {
	LoggedIn    bool `json:"logged_in"`
	Role        Role `json:"role"`
	CurrentPage Page `json:"current_page"`
}

// AuthControl is the single login/logout control of the navigation bar.
// Exactly one of Href or Action is set.
type AuthControl struct {
	Label  string `json:"label"`
	Href   string `json:"href,omitempty"`
	Action string `json:"action,omitempty"`
	Method string `json:"method,omitempty"`
}

type NavLink struct {
	Page   Page   `json:"page"`
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type NavView struct {
	Links []NavLink     `json:"links"`
	Auth  AuthControl   `json:"auth"`
	Flags NavVisibility `json:"flags"`
}

type NavVisibility struct {
	Profile   bool `json:"profile"`
	Dashboard bool `json:"dashboard"`
}

// Render is a pure function of the state.
func Render(s NavState) NavView {
	vis := NavVisibility{
		Profile:   s.LoggedIn,
		Dashboard: s.LoggedIn && s.Role.Privileged(),
	}

	links := []NavLink{
		link(PageIndex, "Home", s.CurrentPage),
		link(PageServices, "Services", s.CurrentPage),
		link(PageGallery, "Gallery", s.CurrentPage),
		link(PageBooking, "Book Now", s.CurrentPage),
	}
	if vis.Profile {
		links = append(links, link(PageProfile, "My Profile", s.CurrentPage))
	}
	if vis.Dashboard {
		links = append(links, link(PageAdmin, "Dashboard", s.CurrentPage))
	}

	auth := AuthControl{Label: "Login", Href: PageLogin.Path()}
	if s.LoggedIn {
		auth = AuthControl{Label: "Logout", Action: "/logout", Method: "POST"}
	}

	return NavView{Links: links, Auth: auth, Flags: vis}
}

func link(p Page, label string, current Page) NavLink {
	return NavLink{Page: p, Label: label, Href: p.Path(), Active: p == current}
}
