// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

// TestUserCanAccess verifies the tier rule: free categories are open to
// everyone, premium ones need a subscription or admin rights.
func TestUserCanAccess(t *testing.T) {
	free := &Category{Name: "Speed Insights", IsFree: true}
	premium := &Category{Name: "Observability", IsFree: false}

	tests := []struct {
		name     string
		user     User
		category *Category
		want     bool
	}{
		{name: "plain user, free", user: User{}, category: free, want: true},
		{name: "plain user, premium", user: User{}, category: premium, want: false},
		{name: "subscriber, premium", user: User{IsSubscribed: true}, category: premium, want: true},
		{name: "admin, premium", user: User{IsAdmin: true}, category: premium, want: true},
		{name: "admin and subscriber, free", user: User{IsAdmin: true, IsSubscribed: true}, category: free, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.user.CanAccess(tt.category)
			if got != tt.want {
				t.Errorf("User{IsAdmin: %v, IsSubscribed: %v}.CanAccess(%q) = %v, want %v",
					tt.user.IsAdmin, tt.user.IsSubscribed, tt.category.Name, got, tt.want)
			}
		})
	}
}

func TestCategoryIsPremium(t *testing.T) {
	if (&Category{IsFree: true}).IsPremium() {
		t.Error("free category reported as premium")
	}
	if !(&Category{IsFree: false}).IsPremium() {
		t.Error("non-free category should be premium")
	}
}

func TestDefaultHomePage(t *testing.T) {
	p := DefaultHomePage()
	if p.PageName != PageHome {
		t.Errorf("PageName: got %q, want %q", p.PageName, PageHome)
	}
	if p.AccentColor != DefaultAccentColor {
		t.Errorf("AccentColor: got %q, want %q", p.AccentColor, DefaultAccentColor)
	}
	if p.Title == "" {
		t.Error("default home page should have a title")
	}
}
