package theme

var themes = map[string]Theme{
	"incharacter": {
		Primary:        "#E8A87C",
		Secondary:      "#D4796A",
		Accent:         "#4A4A4A",
		Background:     "rgba(26, 22, 20, 0.95)",
		Text:           "#F5E6D3",
		Gradient:       "linear-gradient(135deg, #E8A87C 0%, #D4796A 50%, #4A4A4A 100%)",
		FontFamily:     "var(--font-playfair), Georgia, serif",
		FontWeight:     600,
		LetterSpacing:  "0.02em",
		TextTransform:  TransformNone,
		BorderStyle:    BorderDouble,
		BorderWidth:    "3px",
		BorderRadius:   "8px",
		GlowColor:      "#E8A87C",
		GlowIntensity:  0.4,
		BackdropBlur:   "8px",
		PatternOverlay: "radial-gradient(circle at 50% 50%, rgba(232, 168, 124, 0.1) 0%, transparent 50%)",
		TextureOpacity: 0.15,
		HoverScale:     1.02,
		HoverRotate:    0,
		Transition:     TransitionSmooth,
		Effect:         EffectSpotlight,
	},
	"proximus": {
		Primary:        "#14555A",
		Secondary:      "#FF6B5B",
		Accent:         "#88E5E0",
		Background:     "rgba(10, 30, 35, 0.95)",
		Text:           "#E0FFFF",
		Gradient:       "linear-gradient(135deg, #14555A 0%, #88E5E0 50%, #FF6B5B 100%)",
		FontFamily:     "var(--font-space-mono), 'Courier New', monospace",
		FontWeight:     500,
		LetterSpacing:  "0.05em",
		TextTransform:  TransformUppercase,
		BorderStyle:    BorderSolid,
		BorderWidth:    "1px",
		BorderRadius:   "50px",
		GlowColor:      "#88E5E0",
		GlowIntensity:  0.6,
		BackdropBlur:   "12px",
		PatternOverlay: "repeating-radial-gradient(circle at center, transparent 0, transparent 10px, rgba(136, 229, 224, 0.03) 10px, rgba(136, 229, 224, 0.03) 20px)",
		TextureOpacity: 0.2,
		HoverScale:     1.03,
		HoverRotate:    0.5,
		Transition:     TransitionSnappy,
		Effect:         EffectParticles,
	},
	"paper-beats-rock": {
		Primary:        "#FF4444",
		Secondary:      "#4444FF",
		Accent:         "#FFDD00",
		Background:     "rgba(255, 255, 255, 0.95)",
		Text:           "#1A1A1A",
		Gradient:       "linear-gradient(135deg, #FF4444 0%, #FFDD00 50%, #4444FF 100%)",
		FontFamily:     "var(--font-bangers), 'Comic Sans MS', cursive",
		FontWeight:     400,
		LetterSpacing:  "0.08em",
		TextTransform:  TransformUppercase,
		BorderStyle:    BorderSolid,
		BorderWidth:    "4px",
		BorderRadius:   "0px",
		GlowColor:      "#FFDD00",
		GlowIntensity:  0.5,
		BackdropBlur:   "0px",
		PatternOverlay: "repeating-linear-gradient(45deg, transparent, transparent 10px, rgba(0,0,0,0.03) 10px, rgba(0,0,0,0.03) 20px)",
		TextureOpacity: 0.1,
		HoverScale:     1.05,
		HoverRotate:    -2,
		Transition:     TransitionBouncy,
		Effect:         EffectNone,
	},
	"and-chill": {
		Primary:        "#9B6B9E",
		Secondary:      "#FF8B7E",
		Accent:         "#FFE4B5",
		Background:     "rgba(25, 20, 35, 0.95)",
		Text:           "#F5E6F0",
		Gradient:       "linear-gradient(135deg, #9B6B9E 0%, #FF8B7E 50%, #FFE4B5 100%)",
		FontFamily:     "var(--font-quicksand), 'Helvetica Neue', sans-serif",
		FontWeight:     500,
		LetterSpacing:  "0.01em",
		TextTransform:  TransformNone,
		BorderStyle:    BorderSolid,
		BorderWidth:    "1px",
		BorderRadius:   "24px",
		GlowColor:      "#FF8B7E",
		GlowIntensity:  0.35,
		BackdropBlur:   "20px",
		PatternOverlay: "radial-gradient(ellipse at 80% 20%, rgba(255, 139, 126, 0.15) 0%, transparent 50%)",
		TextureOpacity: 0.2,
		HoverScale:     1.01,
		HoverRotate:    0,
		Transition:     TransitionSmooth,
		Effect:         EffectVignette,
	},
	"rewarding": {
		Primary:        "#FFD700",
		Secondary:      "#50C878",
		Accent:         "#FFFFFF",
		Background:     "rgba(15, 25, 20, 0.95)",
		Text:           "#FFFFFF",
		Gradient:       "linear-gradient(135deg, #FFD700 0%, #50C878 100%)",
		FontFamily:     "var(--font-rubik), 'Arial Black', sans-serif",
		FontWeight:     700,
		LetterSpacing:  "0.03em",
		TextTransform:  TransformUppercase,
		BorderStyle:    BorderSolid,
		BorderWidth:    "2px",
		BorderRadius:   "12px",
		GlowColor:      "#FFD700",
		GlowIntensity:  0.7,
		BackdropBlur:   "8px",
		PatternOverlay: "url(\"data:image/svg+xml,%3Csvg width='20' height='20' viewBox='0 0 20 20' xmlns='http://www.w3.org/2000/svg'%3E%3Ccircle cx='10' cy='10' r='1' fill='%23FFD700' fill-opacity='0.1'/%3E%3C/svg%3E\")",
		TextureOpacity: 0.3,
		HoverScale:     1.04,
		HoverRotate:    0,
		Transition:     TransitionBouncy,
		Effect:         EffectParticles,
	},
	"space-surfing": {
		Primary:        "#6B21A8",
		Secondary:      "#22D3EE",
		Accent:         "#F97316",
		Background:     "rgba(5, 5, 20, 0.98)",
		Text:           "#E0E7FF",
		Gradient:       "linear-gradient(135deg, #6B21A8 0%, #22D3EE 50%, #F97316 100%)",
		FontFamily:     "var(--font-orbitron), 'Eurostile', sans-serif",
		FontWeight:     600,
		LetterSpacing:  "0.1em",
		TextTransform:  TransformUppercase,
		BorderStyle:    BorderSolid,
		BorderWidth:    "1px",
		BorderRadius:   "4px",
		GlowColor:      "#22D3EE",
		GlowIntensity:  0.8,
		BackdropBlur:   "16px",
		PatternOverlay: "radial-gradient(ellipse at 30% 70%, rgba(107, 33, 168, 0.3) 0%, transparent 50%), radial-gradient(ellipse at 70% 30%, rgba(34, 211, 238, 0.2) 0%, transparent 40%)",
		TextureOpacity: 0.25,
		HoverScale:     1.03,
		HoverRotate:    0,
		Transition:     TransitionSnappy,
		Effect:         EffectScanlines,
	},
	"darwins-ark": {
		Primary:        "#228B22",
		Secondary:      "#8B7355",
		Accent:         "#87CEEB",
		Background:     "rgba(20, 25, 15, 0.95)",
		Text:           "#E8E4D9",
		Gradient:       "linear-gradient(135deg, #228B22 0%, #8B7355 50%, #87CEEB 100%)",
		FontFamily:     "var(--font-bitter), 'Georgia', serif",
		FontWeight:     500,
		LetterSpacing:  "0.02em",
		TextTransform:  TransformNone,
		BorderStyle:    BorderSolid,
		BorderWidth:    "2px",
		BorderRadius:   "4px",
		GlowColor:      "#228B22",
		GlowIntensity:  0.3,
		BackdropBlur:   "4px",
		PatternOverlay: "url(\"data:image/svg+xml,%3Csvg width='60' height='60' viewBox='0 0 60 60' xmlns='http://www.w3.org/2000/svg'%3E%3Cpath d='M30 5 Q35 15 30 25 Q25 15 30 5' fill='none' stroke='%23228B22' stroke-opacity='0.1'/%3E%3C/svg%3E\")",
		TextureOpacity: 0.15,
		HoverScale:     1.02,
		HoverRotate:    0,
		Transition:     TransitionSmooth,
		Effect:         EffectVignette,
	},
	"dignity": {
		Primary:        "#2D1B4E",
		Secondary:      "#8B0000",
		Accent:         "#C0A080",
		Background:     "rgba(15, 10, 20, 0.98)",
		Text:           "#E8DFD0",
		Gradient:       "linear-gradient(135deg, #2D1B4E 0%, #8B0000 50%, #C0A080 100%)",
		FontFamily:     "var(--font-cinzel), 'Times New Roman', serif",
		FontWeight:     600,
		LetterSpacing:  "0.15em",
		TextTransform:  TransformUppercase,
		BorderStyle:    BorderDouble,
		BorderWidth:    "4px",
		BorderRadius:   "2px",
		GlowColor:      "#8B0000",
		GlowIntensity:  0.4,
		BackdropBlur:   "6px",
		PatternOverlay: "linear-gradient(45deg, rgba(192, 160, 128, 0.05) 25%, transparent 25%, transparent 75%, rgba(192, 160, 128, 0.05) 75%)",
		TextureOpacity: 0.2,
		HoverScale:     1.01,
		HoverRotate:    0,
		Transition:     TransitionDramatic,
		Effect:         EffectVignette,
	},
	"masquerade-online": {
		Primary:        "#722F37",
		Secondary:      "#D4AF37",
		Accent:         "#1A1A2E",
		Background:     "rgba(20, 10, 15, 0.98)",
		Text:           "#F5F0E1",
		Gradient:       "linear-gradient(135deg, #722F37 0%, #D4AF37 50%, #1A1A2E 100%)",
		FontFamily:     "var(--font-cormorant), 'Didot', serif",
		FontWeight:     500,
		LetterSpacing:  "0.08em",
		TextTransform:  TransformNone,
		BorderStyle:    BorderSolid,
		BorderWidth:    "1px",
		BorderRadius:   "0px",
		GlowColor:      "#D4AF37",
		GlowIntensity:  0.5,
		BackdropBlur:   "10px",
		PatternOverlay: "repeating-linear-gradient(90deg, rgba(212, 175, 55, 0.03) 0px, rgba(212, 175, 55, 0.03) 1px, transparent 1px, transparent 40px)",
		TextureOpacity: 0.25,
		HoverScale:     1.02,
		HoverRotate:    0,
		Transition:     TransitionSmooth,
		Effect:         EffectSpotlight,
	},
	"smash-the-police-state": {
		Primary:        "#1A1A1A",
		Secondary:      "#FF6B00",
		Accent:         "#FFFFFF",
		Background:     "rgba(10, 10, 10, 0.98)",
		Text:           "#FFFFFF",
		Gradient:       "linear-gradient(135deg, #1A1A1A 0%, #FF6B00 50%, #FFFFFF 100%)",
		FontFamily:     "var(--font-anton), 'Impact', sans-serif",
		FontWeight:     400,
		LetterSpacing:  "0.05em",
		TextTransform:  TransformUppercase,
		BorderStyle:    BorderSolid,
		BorderWidth:    "3px",
		BorderRadius:   "0px",
		GlowColor:      "#FF6B00",
		GlowIntensity:  0.6,
		BackdropBlur:   "0px",
		PatternOverlay: "repeating-linear-gradient(45deg, rgba(255, 107, 0, 0.05) 0px, rgba(255, 107, 0, 0.05) 2px, transparent 2px, transparent 8px)",
		TextureOpacity: 0.3,
		HoverScale:     1.04,
		HoverRotate:    -1,
		Transition:     TransitionSnappy,
		Effect:         EffectNoise,
	},
}
