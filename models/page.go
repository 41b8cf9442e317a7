package models

type Page string

const (
	PageLogin          Page = "login"
	PageRegister       Page = "register"
	PageMenu           Page = "menu"
	PageCart           Page = "cart"
	PageHistory        Page = "history"
	PageStaffQueue     Page = "staff-queue"
	PageAdminDashboard Page = "admin-dashboard"
	PageAdminProducts  Page = "admin-products"
)
