package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mission-control/internal/orbit"
	"github.com/talgya/mission-control/internal/theme"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, 10, c.Len())
	assert.Equal(t, 6, c.Count(FilterSDK))
	assert.Equal(t, 4, c.Count(FilterInvestment))
	assert.Equal(t, 10, c.Count(FilterAll))

	ip, ok := c.Get("darwins-ark")
	require.True(t, ok)
	assert.Equal(t, 2.8, ip.OrbitRadius)
	assert.Equal(t, 0.35, ip.OrbitSpeed)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestDefaultCatalogLaysOut(t *testing.T) {
	for _, f := range []Filter{FilterAll, FilterSDK, FilterInvestment} {
		ents, err := orbit.Layout(Records(Default().View(f)))
		require.NoError(t, err, "filter %s", f)
		for _, e := range ents {
			assert.GreaterOrEqual(t, e.Radius, orbit.DomainMin)
			assert.LessOrEqual(t, e.Radius, orbit.DomainMax)
		}
	}
}

func TestEveryIPHasTheme(t *testing.T) {
	for _, ip := range Default().All() {
		_, ok := theme.Lookup(ip.ID)
		assert.True(t, ok, ip.ID)
	}
}

func TestViewKeepsOrder(t *testing.T) {
	v := Default().View(FilterInvestment)
	ids := make([]string, len(v))
	for i, ip := range v {
		ids[i] = ip.ID
	}
	assert.Equal(t, []string{"darwins-ark", "dignity", "masquerade-online", "smash-the-police-state"}, ids)
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]Filter{"": FilterAll, "all": FilterAll, "SDK": FilterSDK, " investment ": FilterInvestment} {
		got, err := ParseFilter(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFilter("games")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestStatusColor(t *testing.T) {
	c := Default()
	get := func(id string) IP {
		ip, ok := c.Get(id)
		require.True(t, ok)
		return ip
	}
	assert.Equal(t, "#00F5FF", StatusColor(get("incharacter")))
	assert.Equal(t, "#A855F7", StatusColor(get("proximus")))
	assert.Equal(t, "#10B981", StatusColor(get("rewarding")))
	assert.Equal(t, "#FF006E", StatusColor(get("dignity")))

	assert.Equal(t, "SDK BETA", StatusLabel(get("and-chill")))
	assert.Equal(t, "SEEKING INVESTMENT", StatusLabel(get("dignity")))
}

func TestNewCopiesInput(t *testing.T) {
	items := []IP{{ID: "a", OrbitRadius: 1, OrbitSpeed: 1}}
	c := New(items)
	items[0].ID = "b"
	_, ok := c.Get("a")
	assert.True(t, ok)
}
