package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileTemplate is a reusable usage profile, e.g. "Two cars + woodshop".
type ProfileTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Profile     UsageProfile `json:"profile"`
}

// NewProfileTemplate creates a template holding a deep copy of profile.
func NewProfileTemplate(name, description string, profile UsageProfile) ProfileTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ProfileTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Profile:     copyProfile(profile),
	}
}

// ToProfile returns an independent copy of the template's profile.
func (t ProfileTemplate) ToProfile() UsageProfile {
	return copyProfile(t.Profile)
}

// TemplateStore holds a collection of profile templates.
type TemplateStore struct {
	Templates []ProfileTemplate `json:"templates"`
}

func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []ProfileTemplate{},
	}
}

// Add stores t, replacing any existing template with the same name.
func (ts *TemplateStore) Add(t ProfileTemplate) {
	for i := range ts.Templates {
		if ts.Templates[i].Name == t.Name {
			t.ID = ts.Templates[i].ID
			t.CreatedAt = ts.Templates[i].CreatedAt
			ts.Templates[i] = t
			return
		}
	}
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *ProfileTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *ProfileTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// copyProfile creates a deep copy of a usage profile.
func copyProfile(p UsageProfile) UsageProfile {
	out := UsageProfile{Notes: p.Notes}
	out.Vehicles = append([]Vehicle{}, p.Vehicles...)
	out.StorageCategories = append([]StorageCategory{}, p.StorageCategories...)
	out.WorkActivities = append([]WorkActivity{}, p.WorkActivities...)
	out.Priorities = make(map[string]int, len(p.Priorities))
	for k, v := range p.Priorities {
		out.Priorities[k] = v
	}
	out.Preferences = make(map[string]bool, len(p.Preferences))
	for k, v := range p.Preferences {
		out.Preferences[k] = v
	}
	return out
}
