// Package catalog holds the IP records shown in Mission Control and the
// filtered views the orbit layout is built from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/talgya/mission-control/internal/orbit"
)

// ErrUnknownFilter indicates a filter name outside all|sdk|investment.
var ErrUnknownFilter = errors.New("catalog: unknown filter")

// Category splits the catalog into shipped SDKs and pitches.
type Category string

const (
	CategorySDK        Category = "sdk"
	CategoryInvestment Category = "investment"
)

// Status is the release status of an IP.
type Status string

const (
	StatusAvailable         Status = "available"
	StatusBeta              Status = "beta"
	StatusAlpha             Status = "alpha"
	StatusConcept           Status = "concept"
	StatusSeekingInvestment Status = "seeking-investment"
)

// IP is one catalog entry.
type IP struct {
	ID          string   `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Tagline     string   `json:"tagline" db:"tagline"`
	Category    Category `json:"category" db:"category"`
	Status      Status   `json:"status" db:"status"`
	OrbitRadius float64  `json:"orbit_radius" db:"orbit_radius"`
	OrbitSpeed  float64  `json:"orbit_speed" db:"orbit_speed"`
	Color       string   `json:"color" db:"color"`
}

// Filter selects a view of the catalog.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterSDK        Filter = "sdk"
	FilterInvestment Filter = "investment"
)

// ParseFilter accepts a filter name; the empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterSDK:
		return FilterSDK, nil
	case FilterInvestment:
		return FilterInvestment, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Match reports whether ip belongs in the filtered view.
func (f Filter) Match(ip IP) bool {
	switch f {
	case FilterSDK:
		return ip.Category == CategorySDK
	case FilterInvestment:
		return ip.Category == CategoryInvestment
	default:
		return true
	}
}

// Catalog is an ordered, read-only list of IPs.
type Catalog struct {
	items []IP
	index map[string]int
}

// New builds a catalog from items, keeping their order.
func New(items []IP) *Catalog {
	c := &Catalog{
		items: append([]IP(nil), items...),
		index: make(map[string]int, len(items)),
	}
	for i, ip := range c.items {
		c.index[ip.ID] = i
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultIPs)
}

// All returns a copy of every IP in catalog order.
func (c *Catalog) All() []IP {
	return append([]IP(nil), c.items...)
}

// Len returns the number of IPs.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get returns the IP with the given id.
func (c *Catalog) Get(id string) (IP, bool) {
	i, ok := c.index[id]
	if !ok {
		return IP{}, false
	}
	return c.items[i], true
}

// View returns the IPs matching f, in catalog order.
func (c *Catalog) View(f Filter) []IP {
	var out []IP
	for _, ip := range c.items {
		if f.Match(ip) {
			out = append(out, ip)
		}
	}
	return out
}

// Count returns how many IPs match f.
func (c *Catalog) Count(f Filter) int {
	n := 0
	for _, ip := range c.items {
		if f.Match(ip) {
			n++
		}
	}
	return n
}

// Records converts IPs to the records the orbit layout consumes.
func Records(ips []IP) []orbit.Record {
	out := make([]orbit.Record, len(ips))
	for i, ip := range ips {
		out[i] = orbit.Record{
			ID:     ip.ID,
			Radius: ip.OrbitRadius,
			Speed:  ip.OrbitSpeed,
			Color:  ip.Color,
		}
	}
	return out
}

// Status indicator colours.
const (
	colorAvailable = "#00F5FF"
	colorBeta      = "#A855F7"
	colorOther     = "#10B981"
	colorInvest    = "#FF006E"
)

// StatusColor returns the indicator colour drawn on an IP's satellite.
func StatusColor(ip IP) string {
	if ip.Category != CategorySDK {
		return colorInvest
	}
	switch ip.Status {
	case StatusAvailable:
		return colorAvailable
	case StatusBeta:
		return colorBeta
	default:
		return colorOther
	}
}

// StatusLabel returns the short label shown in a satellite's tooltip.
func StatusLabel(ip IP) string {
	if ip.Category == CategorySDK {
		return "SDK " + strings.ToUpper(string(ip.Status))
	}
	return "SEEKING INVESTMENT"
}
