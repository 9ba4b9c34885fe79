package site

// NavLink is one entry of the top navigation.
type NavLink struct {
	Name string
	Href string
}

// Service is one advisory offering.
type Service struct {
	Title string
	Desc  string
}

// Phase is one stage of the Eye-R-Tus methodology.
type Phase struct {
	Numeral string
	Title   string
	Desc    string
}

// Member is one team member.
type Member struct {
	Name string
	Role string
	Area string
}

// Metric is one figure on the hero showcase card.
type Metric struct {
	Label string
	Value string
}

// Content is the static marketing copy rendered around the tool.
type Content struct {
	Brand       string
	Tagline     string
	Headline    string
	Highlight   string
	Intro       string
	Nav         []NavLink
	Showcase    []Metric
	Services    []Service
	Phases      []Phase
	Team        []Member
	PromoTitle  string
	PromoText   string
	ContactText string
	Footer      string
}

// DefaultContent returns the Irtus Business site copy.
func DefaultContent() Content {
	return Content{
		Brand:     "Irtus Business",
		Tagline:   "Based in Ikeja, Nigeria • Serving 4 Continents",
		Headline:  "Elevating Ideas into",
		Highlight: "Profitable Ventures.",
		Intro: "Specialized strategic advisory for the African venture landscape. " +
			"We provide high-level financial engineering and structural scaffolding.",
		Nav: []NavLink{
			{Name: "Services", Href: "#services"},
			{Name: "Methodology", Href: "#methodology"},
			{Name: "AI Tools", Href: "#ai-tools"},
			{Name: "Team", Href: "#team"},
			{Name: "Contact", Href: "#contact"},
		},
		Showcase: []Metric{
			{Label: "Projected EBITDA (Y3)", Value: "$2.4M"},
			{Label: "Customer Acquisition Cost", Value: "$12.50"},
			{Label: "Market Penetration", Value: "18.5%"},
			{Label: "Growth Index", Value: "+312%"},
			{Label: "Runway", Value: "24 Mo."},
		},
		Services: []Service{
			{Title: "Financial Engineering", Desc: "Dynamic simulations of burn rates, runway, and valuation using rigorous DCF analysis."},
			{Title: "Strategic Documentation", Desc: "Development of investor-ready narratives including comprehensive Business Plans and Pitch Decks."},
			{Title: "CAC Formalization", Desc: "Navigating the Corporate Affairs Commission (CRP) to transition ventures to legally recognized entities."},
			{Title: "AI Pitch Deck Tool", Desc: "Democratizing access to high-level strategic tools through our automated narrative synthesis platform."},
			{Title: "Startup Due Diligence", Desc: "Assisting founders and investors in the rigorous verification of claims and financial health."},
			{Title: "Ecosystem Liaison", Desc: "Connecting high-potential startups with the African unicorn pipeline and diaspora capital."},
		},
		Phases: []Phase{
			{Numeral: "I", Title: "The Clarity Engine", Desc: "Focusing on 'Clarity of Offer' and identifying a core value proposition before customer acquisition."},
			{Numeral: "II", Title: "Structural Scaffolding", Desc: "Formalization through CAC registration, corporate governance, and dynamic financial modeling."},
			{Numeral: "III", Title: "The Growth Multiplier", Desc: "Scaling through digital marketing and fundraise brokerage to 2x to 10x business sales."},
		},
		Team: []Member{
			{Name: "Tamara Posibi", Role: "Chief Consultant", Area: "Strategy"},
			{Name: "Olaide Okedele", Role: "Associate Consultant", Area: "Relations"},
			{Name: "Hammed Olagoke", Role: "Tech Consultant", Area: "Research"},
			{Name: "Hasanat Rabiu", Role: "Business Analyst", Area: "Modeling"},
			{Name: "Aishat Shuaib", Role: "Executive Assistant", Area: "Admin"},
		},
		PromoTitle: "AI-Powered Pitch Decks",
		PromoText: "Democratizing high-level strategy. Our tool automates the narrative synthesis " +
			"of your business idea, delivering investor-ready decks in minutes.",
		ContactText: "Ready to take your business from $1,000/mo to $50,000/mo? Let's build your scaffolding.",
		Footer:      "© 2026 Irtus Business. Ikeja, Lagos. All Rights Reserved.",
	}
}
