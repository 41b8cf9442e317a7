package services

import "github.com/ShakirChaya0/IPP-Prototype/models"

// RoleView describes what a role may look at and where it lands by default.
type RoleView interface {
	Allows(page models.Page) bool
	Landing() models.Page
	Pages() []models.Page
}

type pageSet struct {
	landing models.Page
	pages   []models.Page
}

func (v pageSet) Allows(page models.Page) bool {
	for _, p := range v.pages {
		if p == page {
			return true
		}
	}
	return false
}

func (v pageSet) Landing() models.Page { return v.landing }

func (v pageSet) Pages() []models.Page {
	return append([]models.Page(nil), v.pages...)
}

type clientView struct{ pageSet }
type staffView struct{ pageSet }
type adminView struct{ pageSet }
type guestView struct{ pageSet }

var (
	clientPages = clientView{pageSet{models.PageMenu, []models.Page{models.PageMenu, models.PageCart, models.PageHistory}}}
	staffPages  = staffView{pageSet{models.PageStaffQueue, []models.Page{models.PageStaffQueue}}}
	adminPages  = adminView{pageSet{models.PageAdminDashboard, []models.Page{models.PageAdminDashboard, models.PageAdminProducts}}}
	guestPages  = guestView{pageSet{models.PageLogin, []models.Page{models.PageLogin, models.PageRegister}}}
)

// ViewFor returns the view of a role. Anything that is not a known role,
// including the empty role of a signed-out visitor, gets the guest view.
func ViewFor(role models.Role) RoleView {
	switch role {
	case models.RoleClient:
		return clientPages
	case models.RoleStaff:
		return staffPages
	case models.RoleAdmin:
		return adminPages
	default:
		return guestPages
	}
}

// Navigate returns the requested page when the role may see it and the
// role's landing page otherwise. It never fails.
func Navigate(page models.Page, role models.Role) models.Page {
	view := ViewFor(role)
	if view.Allows(page) {
		return page
	}
	return view.Landing()
}
