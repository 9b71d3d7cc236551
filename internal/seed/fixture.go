// Package seed loads demo churches from a YAML fixture into a store.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

//go:embed demo.yaml
var demo []byte

// namespace derives stable ids from fixture keys.
var namespace = uuid.MustParse("6f1c8f55-3c1e-4f0b-9a55-0c6c3b8e2a17")

// Fixture is the parsed seed file.
type Fixture struct {
	Password string   `yaml:"password"`
	Churches []Church `yaml:"churches"`
}

// Church is one church with everything that belongs to it.
type Church struct {
	Key           string         `yaml:"key"`
	Name          string         `yaml:"name"`
	Created       string         `yaml:"created"`
	Units         []Unit         `yaml:"units"`
	Users         []User         `yaml:"users"`
	ActionItems   []ActionItem   `yaml:"action_items"`
	Reports       []Report       `yaml:"reports"`
	FirstTimers   []FirstTimer   `yaml:"first_timers"`
	Announcements []Announcement `yaml:"announcements"`
}

type Unit struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
	Head string `yaml:"head"`
}

type User struct {
	Key      string   `yaml:"key"`
	Name     string   `yaml:"name"`
	Email    string   `yaml:"email"`
	Phone    string   `yaml:"phone"`
	Role     string   `yaml:"role"`
	MemberOf []string `yaml:"member_of"`
}

type ActionItem struct {
	Unit        string `yaml:"unit"`
	Description string `yaml:"description"`
	Executioner string `yaml:"executioner"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	Status      string `yaml:"status"`
	Priority    string `yaml:"priority"`
}

type Report struct {
	Unit       string `yaml:"unit"`
	Content    string `yaml:"content"`
	WeekEnding string `yaml:"week_ending"`
	Submitted  string `yaml:"submitted"`
	Reply      string `yaml:"reply"`
}

type FirstTimer struct {
	Name          string `yaml:"name"`
	Phone         string `yaml:"phone"`
	Logged        string `yaml:"logged"`
	Status        string `yaml:"status"`
	FollowUpDate  string `yaml:"follow_up_date"`
	FollowUpNotes string `yaml:"follow_up_notes"`
}

type Announcement struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Created string `yaml:"created"`
}

// Default returns the fixture embedded in the binary.
func Default() (*Fixture, error) {
	return Parse(demo)
}

// ReadFile parses the fixture at path. An empty path yields Default.
func ReadFile(path string) (*Fixture, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and checks a fixture. Unknown fields are rejected.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	if err := f.check(); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return &f, nil
}

func (f *Fixture) check() error {
	if f.Password == "" {
		return fmt.Errorf("password is required")
	}
	seen := make(map[string]bool)
	for _, c := range f.Churches {
		if c.Key == "" || c.Name == "" {
			return fmt.Errorf("church needs key and name")
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate church key %q", c.Key)
		}
		seen[c.Key] = true
		if err := c.check(); err != nil {
			return fmt.Errorf("church %q: %w", c.Key, err)
		}
	}
	return nil
}

func (c *Church) check() error {
	units := make(map[string]bool, len(c.Units))
	for _, u := range c.Units {
		if units[u.Key] {
			return fmt.Errorf("duplicate unit key %q", u.Key)
		}
		units[u.Key] = true
	}

	users := make(map[string]domain.UserRole, len(c.Users))
	for _, u := range c.Users {
		role := domain.UserRole(u.Role)
		if !role.IsValid() {
			return fmt.Errorf("user %q: unknown role %q", u.Key, u.Role)
		}
		if _, dup := users[u.Key]; dup {
			return fmt.Errorf("duplicate user key %q", u.Key)
		}
		users[u.Key] = role
		for _, m := range u.MemberOf {
			if !units[m] {
				return fmt.Errorf("user %q: unknown unit %q", u.Key, m)
			}
		}
	}

	heads := make(map[string]string)
	for _, u := range c.Units {
		if u.Head == "" {
			continue
		}
		if users[u.Head] != domain.RoleUnitHead {
			return fmt.Errorf("unit %q: head %q is not a unit head", u.Key, u.Head)
		}
		if other, ok := heads[u.Head]; ok {
			return fmt.Errorf("user %q heads both %q and %q", u.Head, other, u.Key)
		}
		heads[u.Head] = u.Key
	}
	for key, role := range users {
		if role == domain.RoleUnitHead && heads[key] == "" {
			return fmt.Errorf("unit head %q heads no unit", key)
		}
	}

	for _, a := range c.ActionItems {
		if !units[a.Unit] {
			return fmt.Errorf("action item: unknown unit %q", a.Unit)
		}
		if !domain.ActionStatus(a.Status).IsValid() || !domain.Priority(a.Priority).IsValid() {
			return fmt.Errorf("action item %q: bad status or priority", a.Description)
		}
	}
	for _, r := range c.Reports {
		if !units[r.Unit] {
			return fmt.Errorf("report: unknown unit %q", r.Unit)
		}
	}
	for _, ft := range c.FirstTimers {
		if !domain.FollowUpStatus(ft.Status).IsValid() {
			return fmt.Errorf("first-timer %q: unknown status %q", ft.Name, ft.Status)
		}
	}
	return nil
}

// id derives the stable id of a keyed fixture record.
func id(parts ...string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(strings.Join(parts, "/")))
}
