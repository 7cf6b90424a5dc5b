package model

import (
	"testing"
)

func sampleProfile() UsageProfile {
	return UsageProfile{
		Vehicles: []Vehicle{
			{Make: "Honda", Model: "Civic", Year: "2020", Length: 182, Width: 71, MustFitInside: true},
		},
		StorageCategories: []StorageCategory{{Name: "Tools", NeedsAccessibility: AccessDaily}},
		Priorities:        map[string]int{PriorityWorkspace: 4},
		Preferences:       map[string]bool{PreferenceOverheadStorage: true},
	}
}

func TestNewProfileTemplate(t *testing.T) {
	tmpl := NewProfileTemplate("Commuter", "One car and some tools", sampleProfile())

	if tmpl.Name != "Commuter" {
		t.Errorf("expected name 'Commuter', got %q", tmpl.Name)
	}
	if tmpl.ID == "" {
		t.Error("expected non-empty ID")
	}
	if tmpl.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if len(tmpl.Profile.Vehicles) != 1 {
		t.Errorf("expected 1 vehicle, got %d", len(tmpl.Profile.Vehicles))
	}
}

func TestProfileTemplate_ToProfileIsIndependent(t *testing.T) {
	tmpl := NewProfileTemplate("Commuter", "", sampleProfile())

	p := tmpl.ToProfile()
	p.Priorities[PriorityWorkspace] = 1
	p.Vehicles[0].Make = "Ford"

	if tmpl.Profile.Priorities[PriorityWorkspace] != 4 {
		t.Error("changing the profile copy must not change the template")
	}
	if tmpl.Profile.Vehicles[0].Make != "Honda" {
		t.Error("vehicle slice must be copied")
	}
}

func TestTemplateStore_AddRemoveFind(t *testing.T) {
	store := NewTemplateStore()

	t1 := NewProfileTemplate("T1", "", UsageProfile{})
	t2 := NewProfileTemplate("T2", "", UsageProfile{})
	store.Add(t1)
	store.Add(t2)

	if len(store.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(store.Templates))
	}
	if store.FindByName("T2") == nil {
		t.Error("expected to find T2 by name")
	}
	if store.FindByID(t1.ID) == nil {
		t.Error("expected to find T1 by ID")
	}
	if !store.Remove(t1.ID) {
		t.Error("expected Remove to succeed")
	}
	if store.Remove("missing") {
		t.Error("expected Remove of unknown ID to fail")
	}
	names := store.Names()
	if len(names) != 1 || names[0] != "T2" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestTemplateStore_AddReplacesByName(t *testing.T) {
	store := NewTemplateStore()
	first := NewProfileTemplate("Shop", "v1", UsageProfile{})
	store.Add(first)
	store.Add(NewProfileTemplate("Shop", "v2", UsageProfile{}))

	if len(store.Templates) != 1 {
		t.Fatalf("expected replacement, got %d templates", len(store.Templates))
	}
	if store.Templates[0].Description != "v2" {
		t.Errorf("expected updated description, got %q", store.Templates[0].Description)
	}
	if store.Templates[0].ID != first.ID {
		t.Error("replacement should keep the original ID")
	}
}
