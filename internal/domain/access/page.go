package access

import "strings"

type Page string

const (
	PageIndex    Page = "index"
	PageServices Page = "services"
	PageGallery  Page = "gallery"
	PageLogin    Page = "login"
	PageBooking  Page = "booking"
	PageProfile  Page = "profile"
	PageAdmin    Page = "admin"
)

var pagePaths = map[Page]string{
	PageIndex:    "/",
	PageServices: "/services",
	PageGallery:  "/gallery",
	PageLogin:    "/login",
	PageBooking:  "/booking",
	PageProfile:  "/profile",
	PageAdmin:    "/admin",
}

// ParsePage accepts a page name with or without a trailing ".html".
// Unknown names resolve to the index page.
func ParsePage(name string) Page {
	if p, ok := LookupPage(name); ok {
		return p
	}
	return PageIndex
}

// LookupPage is ParsePage without the fallback. ok is false for empty or
// unknown names.
func LookupPage(name string) (Page, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, ".html")
	p := Page(name)
	if _, ok := pagePaths[p]; !ok {
		return "", false
	}
	return p, true
}

func (p Page) Path() string {
	if path, ok := pagePaths[p]; ok {
		return path
	}
	return "/"
}
