package palette

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"Real-Time Intelligence", "real-time-intelligence"},
		{"Data Engineering", "data-engineering"},
		{"  Platform   Monitoring  ", "platform-monitoring"},
		{"Power BI", "power-bi"},
		{"already-slugged", "already-slugged"},
		{"___", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Slug(tc.tag), "tag %q", tc.tag)
	}
}

func TestExtractColorsFiltersStructuralStrokes(t *testing.T) {
	svg := `<svg>
		<path fill="#0078D4" d="M0 0"/>
		<path fill="#111111" d="M1 1"/>
		<stop stop-color="#E8F4FD"/>
		<path fill="#808080" d="M2 2"/>
		<path fill="#0078D4" d="M3 3"/>
	</svg>`

	colors := ExtractColors(svg)
	// Near-black and pure grey fills are dropped, duplicates collapse,
	// first-seen order is kept.
	require.Equal(t, []string{"#0078D4", "#E8F4FD"}, colors)
}

func TestExtractColorsIgnoresShortHexAndOtherAttributes(t *testing.T) {
	svg := `<svg><path fill="#08D"/><path stroke="#0078D4"/><rect fill="#FACC14"/></svg>`
	require.Equal(t, []string{"#FACC14"}, ExtractColors(svg))
}

func TestPickColorsDeterministic(t *testing.T) {
	colors := []string{"#0078D4", "#E8F4FD"}

	first := PickColors(colors)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, PickColors(colors))
	}

	require.Equal(t, "#E8F4FD", first.Light)
	require.Equal(t, "#0078D4", first.Accent)
}

func TestPickColorsDefaultPaletteOnEmpty(t *testing.T) {
	picked := PickColors(nil)
	require.Equal(t, DefaultLight, picked.Light)
	require.Equal(t, DefaultAccent, picked.Accent)
	require.Equal(t, DefaultMid, picked.Mid)
}

func TestPickColorsGreyOnlySvgFallsBack(t *testing.T) {
	svg := `<svg><path fill="#141414"/><path fill="#0A0A0A"/></svg>`
	picked := PickColors(ExtractColors(svg))
	require.Equal(t, DefaultLight, picked.Light)
	require.Equal(t, DefaultAccent, picked.Accent)
	require.Equal(t, DefaultMid, picked.Mid)
}

func TestPickColorsMidPrefersHueNearLight(t *testing.T) {
	// Light blue wins light, saturated dark blue wins accent; between a
	// mid-lightness blue and a mid-lightness red the blue sits closer to
	// the light tone's hue.
	colors := []string{"#5CB8E6", "#D46A6A", "#0078D4", "#E8F4FD"}

	picked := PickColors(colors)
	require.Equal(t, "#E8F4FD", picked.Light)
	require.Equal(t, "#0078D4", picked.Accent)
	require.Equal(t, "#5CB8E6", picked.Mid)
}

func TestPickColorsAccentFallsBackToDarkest(t *testing.T) {
	// No candidate is both dark and saturated, so accent falls back to
	// the minimum lightness.
	colors := []string{"#F0F0F0", "#FAFAFA"}

	picked := PickColors(colors)
	require.Equal(t, "#FAFAFA", picked.Light)
	require.Equal(t, "#F0F0F0", picked.Accent)
}

func TestHexToHSL(t *testing.T) {
	h, s, l := hexToHSL("#FF0000")
	require.InDelta(t, 0, h, 0.01)
	require.InDelta(t, 1, s, 0.01)
	require.InDelta(t, 0.5, l, 0.01)

	h, s, l = hexToHSL("#FFFFFF")
	require.Equal(t, float64(0), h)
	require.Equal(t, float64(0), s)
	require.Equal(t, float64(1), l)

	h, _, _ = hexToHSL("#0000FF")
	require.InDelta(t, 240, h, 0.01)
}

func TestHueDistanceIsCircular(t *testing.T) {
	require.Equal(t, float64(20), hueDistance(350, 10))
	require.Equal(t, float64(180), hueDistance(0, 180))
	require.Equal(t, float64(0), hueDistance(120, 120))
}
