package access

import "fmt"

// Policy is the single authorization decision used by every guarded page.
type Policy struct {
	protected map[Page]struct{}
}

// NewPolicy fails on names that are not pages, so a misspelt entry can
// neither drop a protection nor lock the home page.
func NewPolicy(protectedPages []string) (Policy, error) {
	p := Policy{protected: make(map[Page]struct{}, len(protectedPages))}
	for _, name := range protectedPages {
		page, ok := LookupPage(name)
		if !ok {
			return Policy{}, fmt.Errorf("access: unknown protected page %q", name)
		}
		p.protected[page] = struct{}{}
	}
	return p, nil
}

func DefaultPolicy() Policy {
	return Policy{protected: map[Page]struct{}{
		PageBooking: {},
		PageAdmin:   {},
		PageProfile: {},
	}}
}

func (p Policy) IsProtected(page Page) bool {
	_, ok := p.protected[page]
	return ok
}

// CanAccess reports whether role may render page.
// The dashboard requires a privileged role whether or not it is listed as
// protected.
func (p Policy) CanAccess(role Role, page Page) bool {
	if page == PageAdmin {
		return role.Privileged()
	}
	if !p.IsProtected(page) {
		return true
	}
	return role != RoleAnonymous
}
