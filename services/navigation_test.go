package services_test

import (
	"testing"

	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/stretchr/testify/assert"
)

func TestNavigate(t *testing.T) {
	tests := []struct {
		role models.Role
		page models.Page
		want models.Page
	}{
		{models.RoleClient, models.PageCart, models.PageCart},
		{models.RoleClient, models.PageHistory, models.PageHistory},
		{models.RoleClient, models.PageStaffQueue, models.PageMenu},
		{models.RoleClient, models.PageAdminProducts, models.PageMenu},
		{models.RoleStaff, models.PageStaffQueue, models.PageStaffQueue},
		{models.RoleStaff, models.PageCart, models.PageStaffQueue},
		{models.RoleAdmin, models.PageAdminProducts, models.PageAdminProducts},
		{models.RoleAdmin, models.PageStaffQueue, models.PageAdminDashboard},
		{models.RoleAdmin, models.Page("nowhere"), models.PageAdminDashboard},
		{models.Role(""), models.PageMenu, models.PageLogin},
		{models.Role(""), models.PageRegister, models.PageRegister},
		{models.Role("chef"), models.PageCart, models.PageLogin},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+"_"+string(tt.page), func(t *testing.T) {
			assert.Equal(t, tt.want, services.Navigate(tt.page, tt.role))
		})
	}
}

func TestRoleViewsAreDisjoint(t *testing.T) {
	roles := []models.Role{models.RoleClient, models.RoleStaff, models.RoleAdmin, ""}
	owner := make(map[models.Page]models.Role)

	for _, role := range roles {
		view := services.ViewFor(role)
		assert.True(t, view.Allows(view.Landing()), "landing of %q must be allowed", role)
		for _, page := range view.Pages() {
			prev, taken := owner[page]
			assert.False(t, taken, "page %s shared by %q and %q", page, prev, role)
			owner[page] = role
		}
	}
}
