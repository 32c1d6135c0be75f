package main

// Bundled content. The studio never writes this file; promoting edits means
// pasting an exported snapshot over these values.

var DefaultWorkItems = []WorkItem{
	{
		ID:          "01",
		Title:       "AHMED_BIN_BAKHIT",
		Category:    "LANDING PAGE",
		Description: "A luxury landing page focused on heritage, craftsmanship, and premium retail storytelling.",
		Tech:        []string{"Tailwind CSS", "Google Fonts", "Intersection Observer API", "Native JavaScript"},
		Year:        "2023",
		ImageURL:    "/projects/Ahmed_bin_Bakhit_bin_Mohammed_Sfrar_Trading_Est/cover.webp",
		Link:        "#",
		DemoURL:     "/projects/Ahmed_bin_Bakhit_bin_Mohammed_Sfrar_Trading_Est/index.html",
		Color:       "bg-brutal-cyan-deep",
	},
	{
		ID:          "02",
		Title:       "AL-HAYTHAM",
		Category:    "IT AGENCY",
		Description: "An enterprise IT website showcasing secure network infrastructure and digital solutions.",
		Tech:        []string{"Bootstrap", "AOS", "GLightbox", "Swiper", "PHP", "Google Fonts", "Bootstrap Icons"},
		Year:        "2025",
		ImageURL:    "/projects/Al-Haytham_for_Trade_and_Investment/cover.webp",
		Link:        "#",
		DemoURL:     "/projects/Al-Haytham_for_Trade_and_Investment/index.html",
		Color:       "bg-brutal-blue-electric",
	},
	{
		ID:          "03",
		Title:       "EMAAR_AL_SAHARA",
		Category:    "CONSTRUCTION",
		Description: "A construction company website focused on structural integrity and commercial projects.",
		Tech:        []string{"Bootstrap", "AOS", "GLightbox", "Swiper", "Google Fonts", "PureCounter"},
		Year:        "2024",
		ImageURL:    "/projects/Emaar_Al_Sahara_Trading_&_Contracting_LLC/cover.webp",
		Link:        "#",
		DemoURL:     "/projects/Emaar_Al_Sahara_Trading_&_Contracting_LLC/index.html",
		Color:       "bg-brutal-orange-hot",
	},
	{
		ID:          "04",
		Title:       "IRTIQA_DIGITAL",
		Category:    "SOCIAL MEDIA AGENCY",
		Description: "A social media agency website designed for high-impact marketing campaigns.",
		Tech:        []string{"Bootstrap", "Animate.css", "Owl Carousel", "Lightbox", "FontAwesome", "Google Fonts", "WOW.js"},
		Year:        "2024",
		ImageURL:    "/projects/Irtiqa_services_and_investment/cover.webp",
		Link:        "#",
		DemoURL:     "/projects/Irtiqa_services_and_investment/index.html",
		Color:       "bg-brutal-magenta-dark",
	},
	{
		ID:          "05",
		Title:       "MAJID_ELECTRICAL_SOLUTIONS",
		Category:    "ELECTRICAL SERVICES",
		Description: "An industrial website for large-scale electrical supply and contracting services.",
		Tech:        []string{"Bootstrap", "Owl Carousel", "WOW.js", "Animate.css", "Google Fonts", "Font Awesome", "Bootstrap Icons", "Lightbox", "Counter-Up"},
		Year:        "2024",
		ImageURL:    "/projects/Majid_Al-Shami_Trading_and_Contracting_Company/cover.webp",
		Link:        "#",
		DemoURL:     "/projects/Majid_Al-Shami_Trading_and_Contracting_Company/index.html",
		Color:       "bg-brutal-yellow",
	},
	{
		ID:          "06",
		Title:       "MIHRAB",
		Category:    "E-COMMERCE",
		Description: "An e-commerce website for household products and retail solutions.",
		Tech:        []string{"Bootstrap", "Font Awesome", "Owl Carousel", "Lightbox", "jQuery", "Google Fonts Poppins"},
		Year:        "2024",
		ImageURL:    "/projects/Mihrab_Trading_and_Investment/cover.webp",
		Link:        "#",
		DemoURL:     "/projects/Mihrab_Trading_and_Investment/index.html",
		Color:       "bg-brutal-cyan-deep",
	},
	{
		ID:          "07",
		Title:       "MODERN_PILLARS",
		Category:    "CONSTRUCTION MATERIALS",
		Description: "A corporate website for a premium construction materials supplier.",
		Tech:        []string{"Bootstrap", "Owl Carousel", "WOW.js", "Animate.css", "Font Awesome", "Google Fonts", "jQuery"},
		Year:        "2024",
		ImageURL:    "/projects/Modern_Pillars/cover.webp",
		Link:        "#",
		DemoURL:     "/projects/Modern_Pillars/index.html",
		Color:       "bg-brutal-orange-hot",
	},
	{
		ID:          "08",
		Title:       "MOHAMED_BELLA_RETAIL",
		Category:    "RETAIL & INVESTMENT",
		Description: "A retail and investment website focused on trust and modern consumer engagement.",
		Tech:        []string{"Bootstrap", "AOS", "GLightbox", "Swiper", "PureCounter", "Google Fonts"},
		Year:        "2024",
		ImageURL:    "/projects/Mohamed_Bella_Trading_and_Investment/cover.webp",
		Link:        "#",
		DemoURL:     "/projects/Mohamed_Bella_Trading_and_Investment/index.html",
		Color:       "bg-brutal-blue-electric",
	},
	{
		ID:          "09",
		Title:       "THE_WIDE_HORIZON",
		Category:    "TRAVEL AGENCY",
		Description: "A travel agency website promoting tourism experiences across Oman.",
		Tech:        []string{"Bootstrap", "Owl Carousel", "AOS", "Magnific Popup", "Animate.css", "Ionicons", "Google Fonts", "jQuery", "Bootstrap Datepicker"},
		Year:        "2024",
		ImageURL:    "/projects/The_wide_horizon_of_trade_and_investment/cover.webp",
		Link:        "#",
		DemoURL:     "/projects/The_wide_horizon_of_trade_and_investment/index.html",
		Color:       "bg-brutal-blue-electric",
	},
	{
		ID:          "10",
		Title:       "ZAHRET_AL_BUSTAN",
		Category:    "IT AGENCY",
		Description: "An IT services website focused on networking, security, and digital infrastructure.",
		Tech:        []string{"Bootstrap", "Bootstrap Icons", "AOS (Animate On Scroll)", "Swiper", "Google Fonts"},
		Year:        "2024",
		ImageURL:    "/projects/Zahret_Al_Bustan_Modern_Business_LLC/cover.webp",
		Link:        "#",
		DemoURL:     "/projects/Zahret_Al_Bustan_Modern_Business_LLC/index.html",
		Color:       "bg-brutal-blue-electric",
	},
}

var DefaultSkills = []SkillEntry{
	{Name: "HTML5", Level: "SEMANTIC"},
	{Name: "CSS3", Level: "VISUAL"},
	{Name: "JavaScript", Level: "INTERACTIVE"},
	{Name: "Bootstrap", Level: "FRAMEWORK"},
	{Name: "Tailwind", Level: "UTILITY"},
	{Name: "Responsive", Level: "ADAPTIVE"},
}

// TestimonialSafelist is the trusted fallback shown whenever the live feed
// is unreachable or empty.
var TestimonialSafelist = []Testimonial{
	{
		ID:      "x9k2m5p8z1",
		Name:    "SARAH_CONNOR",
		Role:    "TECH_LEAD @ SKYNET",
		Message: "The efficiency of the landing pages built here is unmatched. Clean, aggressive code that just works.",
		Color:   "bg-brutal-yellow",
		Rating:  5,
		Visible: boolPtr(true),
	},
	{
		ID:      "r4v7n2q9w5",
		Name:    "VICTOR_NASH",
		Role:    "FOUNDER @ TURBO_UI",
		Message: "Finally a developer who understands that speed and aesthetics aren't mutually exclusive. High impact delivery.",
		Color:   "bg-brutal-cyan-deep",
		Rating:  4,
		Visible: boolPtr(true),
	},
}

func boolPtr(b bool) *bool { return &b }
