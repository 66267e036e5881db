// Package theme maps catalog ids to the presentation tokens a renderer
// applies when an entity is hovered. Unknown ids get the default bundle.
package theme

// DefaultID is the theme returned for ids missing from the table.
const DefaultID = "incharacter"

// TextTransform is a CSS text-transform value.
type TextTransform string

const (
	TransformNone       TextTransform = "none"
	TransformUppercase  TextTransform = "uppercase"
	TransformLowercase  TextTransform = "lowercase"
	TransformCapitalize TextTransform = "capitalize"
)

// BorderStyle is a CSS border-style value.
type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDouble BorderStyle = "double"
	BorderNone   BorderStyle = "none"
)

// Transition names an easing curve, see Timing.
type Transition string

const (
	TransitionSmooth   Transition = "smooth"
	TransitionSnappy   Transition = "snappy"
	TransitionBouncy   Transition = "bouncy"
	TransitionDramatic Transition = "dramatic"
)

// Effect tags a special overlay effect.
type Effect string

const (
	EffectNone      Effect = "none"
	EffectParticles Effect = "particles"
	EffectScanlines Effect = "scanlines"
	EffectNoise     Effect = "noise"
	EffectVignette  Effect = "vignette"
	EffectSpotlight Effect = "spotlight"
)

// Theme is one bundle of presentation tokens.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Gradient   string `json:"gradient"`

	FontFamily    string        `json:"font_family"`
	FontWeight    int           `json:"font_weight"`
	LetterSpacing string        `json:"letter_spacing"`
	TextTransform TextTransform `json:"text_transform"`

	BorderStyle   BorderStyle `json:"border_style"`
	BorderWidth   string      `json:"border_width"`
	BorderRadius  string      `json:"border_radius"`
	GlowColor     string      `json:"glow_color"`
	GlowIntensity float64     `json:"glow_intensity"` // 0–1
	BackdropBlur  string      `json:"backdrop_blur"`

	PatternOverlay string  `json:"pattern_overlay,omitempty"`
	TextureOpacity float64 `json:"texture_opacity"`

	HoverScale  float64    `json:"hover_scale"`
	HoverRotate float64    `json:"hover_rotate"` // degrees
	Transition  Transition `json:"transition"`
	Effect      Effect     `json:"effect"`
}

// Lookup returns the theme for id and whether it was in the table.
func Lookup(id string) (Theme, bool) {
	t, ok := themes[id]
	return t, ok
}

// For returns the theme for id, falling back to the default bundle.
func For(id string) Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[DefaultID]
}

// Count returns the number of themed ids.
func Count() int {
	return len(themes)
}

// Timing returns the cubic-bezier control points for a transition style.
// Unknown styles use the smooth curve.
func Timing(style Transition) [4]float64 {
	switch style {
	case TransitionSnappy:
		return [4]float64{0.2, 0, 0, 1}
	case TransitionBouncy:
		return [4]float64{0.34, 1.56, 0.64, 1}
	case TransitionDramatic:
		return [4]float64{0.7, 0, 0.3, 1}
	default:
		return [4]float64{0.4, 0, 0.2, 1}
	}
}
