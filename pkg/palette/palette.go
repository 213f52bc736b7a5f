package palette

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fabric-jumpstart/jumpgen/pkg/data"
)

// Fixed fallback palette used when an icon yields no usable colors.
const (
	DefaultLight  = "#E8F4FD"
	DefaultAccent = "#0078D4"
	DefaultMid    = "#5CB8E6"
)

// IconExtensions is the lookup priority for workload tag icons.
var IconExtensions = []string{".svg", ".png", ".jpg", ".jpeg", ".webp"}

var (
	slugPattern  = regexp.MustCompile(`[^a-z0-9]+`)
	colorPattern = regexp.MustCompile(`(fill|stop-color)="(#[0-9a-fA-F]{6})"`)
)

// Slug converts a workload tag into its filesystem-safe icon name:
// lowercased, non-alphanumeric runs collapsed to single hyphens, leading
// and trailing hyphens trimmed.
func Slug(tag string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(tag), "-"), "-")
}

type hslColor struct {
	hex string
	h   float64
	s   float64
	l   float64
}

func hexToHSL(hex string) (h, s, l float64) {
	r := float64(parseHexByte(hex[1:3])) / 255
	g := float64(parseHexByte(hex[3:5])) / 255
	b := float64(parseHexByte(hex[5:7])) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return h / 6 * 360, s, l
}

func parseHexByte(s string) int64 {
	v, _ := strconv.ParseInt(s, 16, 64)
	return v
}

// ExtractColors collects the distinct fill and stop-color values of an SVG
// document, keeping first-seen order. Near-black and grey structural
// strokes are filtered out: a color qualifies when it is moderately
// saturated (s > 0.05) or bright (l > 0.6).
func ExtractColors(svg string) []string {
	var colors []string
	seen := map[string]bool{}
	for _, match := range colorPattern.FindAllStringSubmatch(svg, -1) {
		hex := strings.ToUpper(match[2])
		if seen[hex] {
			continue
		}
		seen[hex] = true
		_, s, l := hexToHSL(hex)
		if s > 0.05 || l > 0.6 {
			colors = append(colors, hex)
		}
	}
	return colors
}

// PickColors selects the representative light, accent and mid tones from
// extracted candidates. The selection is a pure function of the input:
//
//	light  – maximum lightness
//	accent – maximum saturation among candidates with l < 0.6 and s > 0.3,
//	         or minimum lightness when none qualify
//	mid    – hue circularly closest to light among the remaining candidates
//	         with 0.3 < l < 0.75, or the middle of the lightness-sorted
//	         list when none qualify
//
// An empty candidate list yields the fixed default palette.
func PickColors(colors []string) data.WorkloadColor {
	if len(colors) == 0 {
		return data.WorkloadColor{Light: DefaultLight, Accent: DefaultAccent, Mid: DefaultMid}
	}

	candidates := make([]hslColor, 0, len(colors))
	for _, hex := range colors {
		h, s, l := hexToHSL(hex)
		candidates = append(candidates, hslColor{hex: hex, h: h, s: s, l: l})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].l > candidates[j].l
	})

	light := candidates[0]

	var accentCandidates []hslColor
	for _, c := range candidates {
		if c.l < 0.6 && c.s > 0.3 {
			accentCandidates = append(accentCandidates, c)
		}
	}
	accent := candidates[len(candidates)-1]
	if len(accentCandidates) > 0 {
		sort.SliceStable(accentCandidates, func(i, j int) bool {
			return accentCandidates[i].s > accentCandidates[j].s
		})
		accent = accentCandidates[0]
	}

	var midCandidates []hslColor
	for _, c := range candidates {
		if c.l > 0.3 && c.l < 0.75 && c.hex != light.hex && c.hex != accent.hex {
			midCandidates = append(midCandidates, c)
		}
	}
	mid := candidates[len(candidates)/2]
	if len(midCandidates) > 0 {
		sort.SliceStable(midCandidates, func(i, j int) bool {
			return hueDistance(midCandidates[i].h, light.h) < hueDistance(midCandidates[j].h, light.h)
		})
		mid = midCandidates[0]
	}

	return data.WorkloadColor{Light: light.hex, Accent: accent.hex, Mid: mid.hex}
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}
