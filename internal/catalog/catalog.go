// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package catalog serves the read-only storefront data: single washes,
// unlimited plans, wash locations and the membership requests a member can
// file. The data ships embedded in the binary as YAML.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultData []byte

// Wash is a single wash package.
type Wash struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	PriceCents int      `yaml:"price_cents"`
	Features   []string `yaml:"features"`
}

// Plan is an unlimited monthly subscription.
type Plan struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	PriceCents  int      `yaml:"price_cents"`
	Features    []string `yaml:"features"`
	Recommended bool     `yaml:"recommended"`
}

// Location is a wash site.
type Location struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Address   string  `yaml:"address"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// MembershipOption is a request a member can file about their membership.
// Phrase completes "Your request to ...".
type MembershipOption struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Phrase string `yaml:"phrase"`
}

// Provider exposes catalog data.
type Provider interface {
	Washes() []Wash
	Plans() []Plan
	Locations() []Location
	MembershipOptions() []MembershipOption
}

// Catalog is a Provider over parsed YAML data.
type Catalog struct {
	WashList     []Wash             `yaml:"washes"`
	PlanList     []Plan             `yaml:"plans"`
	LocationList []Location         `yaml:"locations"`
	OptionList   []MembershipOption `yaml:"membership_options"`
}

var _ Provider = (*Catalog)(nil)

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultData)
	})
	return defaultCatalog, defaultErr
}

func (c *Catalog) validate() error {
	seen := map[string]bool{}
	check := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("catalog: %s without id", kind)
		}
		key := kind + "/" + id
		if seen[key] {
			return fmt.Errorf("catalog: duplicate %s id %q", kind, id)
		}
		seen[key] = true
		return nil
	}
	for _, w := range c.WashList {
		if err := check("wash", w.ID); err != nil {
			return err
		}
	}
	for _, p := range c.PlanList {
		if err := check("plan", p.ID); err != nil {
			return err
		}
	}
	for _, l := range c.LocationList {
		if err := check("location", l.ID); err != nil {
			return err
		}
	}
	for _, o := range c.OptionList {
		if err := check("membership option", o.ID); err != nil {
			return err
		}
		if o.Phrase == "" {
			return fmt.Errorf("catalog: membership option %q has no phrase", o.ID)
		}
	}
	return nil
}

func (c *Catalog) Washes() []Wash                        { return c.WashList }
func (c *Catalog) Plans() []Plan                         { return c.PlanList }
func (c *Catalog) Locations() []Location                 { return c.LocationList }
func (c *Catalog) MembershipOptions() []MembershipOption { return c.OptionList }

// Wash looks up a single wash by id.
func (c *Catalog) Wash(id string) (Wash, bool) {
	for _, w := range c.WashList {
		if w.ID == id {
			return w, true
		}
	}
	return Wash{}, false
}

// Plan looks up an unlimited plan by id.
func (c *Catalog) Plan(id string) (Plan, bool) {
	for _, p := range c.PlanList {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// Recommended returns the first plan flagged as recommended.
func (c *Catalog) Recommended() (Plan, bool) {
	for _, p := range c.PlanList {
		if p.Recommended {
			return p, true
		}
	}
	return Plan{}, false
}

// Option looks up a membership request option by id.
func (c *Catalog) Option(id string) (MembershipOption, bool) {
	for _, o := range c.OptionList {
		if o.ID == id {
			return o, true
		}
	}
	return MembershipOption{}, false
}

// FormatPrice renders cents as dollars, dropping ".00" like the storefront does.
func FormatPrice(cents int) string {
	if cents%100 == 0 {
		return fmt.Sprintf("$%d", cents/100)
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
