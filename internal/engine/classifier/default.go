package classifier

// DefaultRules returns the built-in event-type rule table. Priorities run
// in steps of 10 so operators can splice overrides between existing rules.
func DefaultRules() []Rule {
	return []Rule{
		// Weather disasters
		{Type: "hurricane", Priority: 10, Keywords: []string{"hurricane", "cyclone", "typhoon", "storm"}},
		{Type: "flood", Priority: 20, Keywords: []string{"flood", "flooding"}},
		{Type: "tornado", Priority: 30, Keywords: []string{"tornado"}},
		{Type: "wildfire", Priority: 40, Keywords: []string{"wildfire", "fire", "bushfire", "forestfire", "wildland"}},
		{Type: "haze", Priority: 50, Keywords: []string{"haze"}},

		// Geological disasters
		{Type: "earthquake", Priority: 60, Keywords: []string{"earthquake", "quake", "tremor"}},
		{Type: "tsunami", Priority: 70, Keywords: []string{"tsunami"}},
		{Type: "landslide", Priority: 80, Keywords: []string{"landslide", "mudslide"}},
		{Type: "avalanche", Priority: 90, Keywords: []string{"avalanche"}},

		// Violence and attacks
		{Type: "shooting", Priority: 100, Keywords: []string{"shooting", "shoot", "gunfire"}},
		{Type: "bombing", Priority: 110, Keywords: []string{"bombing", "bomb", "explosion", "blast"}},
		{Type: "attack", Priority: 120, Keywords: []string{"attack", "assault", "terror"}},

		// Civil unrest
		{Type: "protest", Priority: 130, Keywords: []string{"protest", "riot", "demonstration", "unrest"}},

		// Accidents
		{Type: "accident", Priority: 140, Keywords: []string{"accident", "crash", "collision", "derailment", "refinery", "collapse", "building-collapse"}},

		// Disease outbreaks
		{Type: "disease_outbreak", Priority: 150, Keywords: []string{"covid", "corona", "virus", "pandemic", "epidemic", "outbreak", "ebola", "zika", "flu", "disease"}},

		// Other hazards
		{Type: "drought", Priority: 160, Keywords: []string{"drought"}},
		{Type: "heatwave", Priority: 170, Keywords: []string{"heatwave", "heat wave"}},
		{Type: "sinkhole", Priority: 180, Keywords: []string{"sinkhole"}},
	}
}
