package catalog

// defaultIPs are ordered inner orbit to outer orbit.
var defaultIPs = []IP{
	{
		ID:          "incharacter",
		Title:       "InCharacter",
		Tagline:     "AI-Powered Character Conversations",
		Category:    CategorySDK,
		Status:      StatusAvailable,
		OrbitRadius: 1.2,
		OrbitSpeed:  1,
		Color:       "#00F5FF",
	},
	{
		ID:          "proximus",
		Title:       "Proximus",
		Tagline:     "Location-Aware Social Gaming",
		Category:    CategorySDK,
		Status:      StatusBeta,
		OrbitRadius: 1.5,
		OrbitSpeed:  0.85,
		Color:       "#A855F7",
	},
	{
		ID:          "paper-beats-rock",
		Title:       "Paper Beats Rock",
		Tagline:     "Strategic Twist on a Classic",
		Category:    CategorySDK,
		Status:      StatusAvailable,
		OrbitRadius: 1.3,
		OrbitSpeed:  1.1,
		Color:       "#FFD700",
	},
	{
		ID:          "and-chill",
		Title:       "&chill",
		Tagline:     "Watch Together, Anywhere",
		Category:    CategorySDK,
		Status:      StatusBeta,
		OrbitRadius: 1.6,
		OrbitSpeed:  0.75,
		Color:       "#FF006E",
	},
	{
		ID:          "rewarding",
		Title:       "RewarDING!",
		Tagline:     "Gamification That Actually Works",
		Category:    CategorySDK,
		Status:      StatusAlpha,
		OrbitRadius: 1.8,
		OrbitSpeed:  0.65,
		Color:       "#10B981",
	},
	{
		ID:          "space-surfing",
		Title:       "Space Surfing",
		Tagline:     "Physics-Based Multiplayer Framework",
		Category:    CategorySDK,
		Status:      StatusAlpha,
		OrbitRadius: 2,
		OrbitSpeed:  0.55,
		Color:       "#06B6D4",
	},
	{
		ID:          "darwins-ark",
		Title:       "Darwin's Ark",
		Tagline:     "Evolution Strategy MMO",
		Category:    CategoryInvestment,
		Status:      StatusSeekingInvestment,
		OrbitRadius: 2.8,
		OrbitSpeed:  0.35,
		Color:       "#22C55E",
	},
	{
		ID:          "dignity",
		Title:       "Dignity",
		Tagline:     "Narrative RPG About Human Rights",
		Category:    CategoryInvestment,
		Status:      StatusSeekingInvestment,
		OrbitRadius: 3.2,
		OrbitSpeed:  0.3,
		Color:       "#F59E0B",
	},
	{
		ID:          "masquerade-online",
		Title:       "Masquerade Online",
		Tagline:     "Social Deduction MMO",
		Category:    CategoryInvestment,
		Status:      StatusSeekingInvestment,
		OrbitRadius: 3.5,
		OrbitSpeed:  0.25,
		Color:       "#8B5CF6",
	},
	{
		ID:          "smash-the-police-state",
		Title:       "Smash the Police State",
		Tagline:     "Tactical Resistance Strategy",
		Category:    CategoryInvestment,
		Status:      StatusSeekingInvestment,
		OrbitRadius: 3.8,
		OrbitSpeed:  0.2,
		Color:       "#EF4444",
	},
}
