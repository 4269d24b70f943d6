package catalog

import "time"

// Default returns the bundled catalog. This is the sole content source
// when no store is configured, and the fallback when the store is empty
// or unreachable.
func Default() *Catalog {
	return New(bundledProperties, bundledNews, bundledTestimonials, bundledTeam)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var bundledProperties = []Property{
	{
		ID:          "1",
		Title:       "Green Valley Residence",
		Slug:        "green-valley-residence",
		Type:        TypeHouse,
		Price:       1250000000,
		Location:    "Bandung, Jawa Barat",
		Bedrooms:    3,
		Bathrooms:   2,
		Area:        120,
		Image:       "/static/img/green-valley.jpg",
		Images:      []string{"/static/img/green-valley.jpg", "/static/img/green-valley-2.jpg"},
		Featured:    true,
		Description: "A modern family home in the cool hills of north Bandung, minutes from the Lembang highlands. Open-plan living with a private garden and double carport.",
		Amenities:   []string{"Private Garden", "Carport", "Smart Home", "24/7 Security"},
		CreatedAt:   date(2025, time.November, 5),
	},
	{
		ID:          "2",
		Title:       "Blue Horizon Villa",
		Slug:        "blue-horizon-villa",
		Type:        TypeVilla,
		Price:       4800000000,
		Location:    "Canggu, Bali",
		Bedrooms:    4,
		Bathrooms:   4,
		Area:        350,
		Image:       "/static/img/blue-horizon.jpg",
		Images:      []string{"/static/img/blue-horizon.jpg", "/static/img/blue-horizon-2.jpg", "/static/img/blue-horizon-3.jpg"},
		Featured:    true,
		Description: "An ocean-view villa five minutes from Echo Beach. Infinity pool, tropical courtyard, and full furnishing by a Balinese design studio.",
		Amenities:   []string{"Infinity Pool", "Ocean View", "Furnished", "Staff Quarters"},
		CreatedAt:   date(2025, time.September, 28),
	},
	{
		ID:          "3",
		Title:       "Sudirman Sky Suites",
		Slug:        "sudirman-sky-suites",
		Type:        TypeApartment,
		Price:       2100000000,
		Location:    "Jakarta Selatan, DKI Jakarta",
		Bedrooms:    2,
		Bathrooms:   2,
		Area:        88,
		Image:       "/static/img/sudirman-sky.jpg",
		Featured:    true,
		Description: "High-rise living on the Sudirman corridor with direct skybridge access to the MRT. Facilities floor with lap pool, gym, and co-working lounge.",
		Amenities:   []string{"Lap Pool", "Gym", "Co-working Lounge", "MRT Access"},
		CreatedAt:   date(2025, time.July, 14),
	},
	{
		ID:          "4",
		Title:       "Taman Anggrek Cluster",
		Slug:        "taman-anggrek-cluster",
		Type:        TypeHouse,
		Price:       980000000,
		Location:    "Tangerang Selatan, Banten",
		Bedrooms:    2,
		Bathrooms:   1,
		Area:        72,
		Image:       "/static/img/taman-anggrek.jpg",
		Featured:    false,
		Description: "A starter home in a gated cluster near BSD City. Walking distance to schools and the AEON lifestyle mall.",
		Amenities:   []string{"Gated Cluster", "Playground", "One Gate System"},
		CreatedAt:   date(2025, time.May, 30),
	},
	{
		ID:          "5",
		Title:       "Ubud Terrace Villa",
		Slug:        "ubud-terrace-villa",
		Type:        TypeVilla,
		Price:       3600000000,
		Location:    "Ubud, Bali",
		Bedrooms:    3,
		Bathrooms:   3,
		Area:        280,
		Image:       "/static/img/ubud-terrace.jpg",
		Featured:    false,
		Description: "A riverside villa overlooking the Tegallalang rice terraces. Alang-alang roofing, open joglo pavilion, and a natural stone pool.",
		Amenities:   []string{"River View", "Pool", "Joglo Pavilion"},
		CreatedAt:   date(2025, time.March, 12),
	},
	{
		ID:          "6",
		Title:       "Menteng Park Apartment",
		Slug:        "menteng-park-apartment",
		Type:        TypeApartment,
		Price:       1750000000,
		Location:    "Jakarta Pusat, DKI Jakarta",
		Bedrooms:    1,
		Bathrooms:   1,
		Area:        54,
		Image:       "/static/img/menteng-park.jpg",
		Featured:    false,
		Description: "A compact suite across from Taman Menteng, in the heart of old Jakarta. Ideal as a pied-à-terre or rental investment.",
		Amenities:   []string{"City View", "Concierge", "Rooftop Garden"},
		CreatedAt:   date(2025, time.January, 8),
	},
}

var bundledNews = []NewsArticle{
	{
		ID:          "1",
		Title:       "Blue Horizon Villa Wins Best Coastal Development 2025",
		Slug:        "blue-horizon-wins-best-coastal-development",
		Excerpt:     "Our Canggu flagship took home the top prize at this year's Indonesia Property Awards.",
		Content:     "Blue Horizon Villa was named Best Coastal Development at the 2025 Indonesia Property Awards in Jakarta. The jury highlighted the project's restrained footprint on the Canggu shoreline and its use of reclaimed teak throughout the interiors.\n\nHandover for the final phase begins next quarter.",
		Image:       "/static/img/news-award.jpg",
		Author:      "Dewi Lestari",
		PublishedAt: date(2025, time.November, 18),
		Category:    "Awards",
	},
	{
		ID:          "2",
		Title:       "Green Valley Residence Phase 2 Now Open",
		Slug:        "green-valley-phase-2-now-open",
		Excerpt:     "Forty new units released in the Bandung hills, starting from Rp 1.1 Miliar.",
		Content:     "Following the sell-out of Phase 1, we are opening bookings for forty new homes at Green Valley Residence. Phase 2 adds a neighbourhood park and a dedicated shuttle to Bandung city centre.\n\nEarly-bird pricing applies until the end of the year.",
		Image:       "/static/img/news-phase2.jpg",
		Author:      "Raka Pratama",
		PublishedAt: date(2025, time.October, 2),
		Category:    "Launches",
	},
	{
		ID:          "3",
		Title:       "How to Choose Between a House and an Apartment",
		Slug:        "choosing-between-house-and-apartment",
		Excerpt:     "Location, maintenance, and growth — a practical guide for first-time buyers.",
		Content:     "First-time buyers in greater Jakarta face a real trade-off: landed houses appreciate with the land they sit on, while apartments put you closer to work. We walk through running costs, financing differences, and resale patterns from the last decade.",
		Image:       "/static/img/news-guide.jpg",
		Author:      "Dewi Lestari",
		PublishedAt: date(2025, time.August, 21),
		Category:    "Guides",
	},
	{
		ID:          "4",
		Title:       "AsriDev Breaks Ground in Ubud",
		Slug:        "asridev-breaks-ground-in-ubud",
		Excerpt:     "Construction begins on Ubud Terrace Villa, our first project outside Java.",
		Content:     "We held the groundbreaking ceremony for Ubud Terrace Villa this week, attended by the village council and our Bali design partners. The project keeps the existing river tree line intact and sources stone from quarries within the regency.",
		Image:       "/static/img/news-ubud.jpg",
		Author:      "Raka Pratama",
		PublishedAt: date(2025, time.June, 9),
		Category:    "Company",
	},
}

var bundledTestimonials = []Testimonial{
	{
		ID:      "1",
		Name:    "Andi Wijaya",
		Role:    "Homeowner",
		Company: "Green Valley Residence",
		Content: "The handover was on schedule and the build quality matched the show unit exactly. Two years in, the estate management is still responsive.",
		Avatar:  "/static/img/avatar-andi.jpg",
		Rating:  5,
	},
	{
		ID:      "2",
		Name:    "Sarah Tanuwidjaja",
		Role:    "Investor",
		Content: "I bought two units at Sudirman Sky Suites off-plan. Rental yield has beaten every projection the sales team gave me.",
		Avatar:  "/static/img/avatar-sarah.jpg",
		Rating:  5,
	},
	{
		ID:      "3",
		Name:    "Budi Santoso",
		Role:    "Homeowner",
		Company: "Taman Anggrek Cluster",
		Content: "As a first-time buyer the financing help made all the difference. The team walked me through KPR approval step by step.",
		Avatar:  "/static/img/avatar-budi.jpg",
		Rating:  4,
	},
	{
		ID:      "4",
		Name:    "Maya Kusuma",
		Role:    "Villa Owner",
		Company: "Blue Horizon Villa",
		Content: "We live abroad most of the year and the villa management programme keeps everything ready for when we land in Bali.",
		Avatar:  "/static/img/avatar-maya.jpg",
		Rating:  5,
	},
}

var bundledTeam = []TeamMember{
	{
		ID:    "1",
		Name:  "Hendra Gunawan",
		Role:  "Chief Executive Officer",
		Image: "/static/img/team-hendra.jpg",
		Bio:   "Founded AsriDev in 2009 after fifteen years in commercial construction. Leads land acquisition and project strategy.",
		Social: SocialLinks{
			LinkedIn: "https://linkedin.com/in/hendragunawan",
			Email:    "hendra@asridev.com",
		},
	},
	{
		ID:    "2",
		Name:  "Dewi Lestari",
		Role:  "Head of Marketing",
		Image: "/static/img/team-dewi.jpg",
		Bio:   "Runs brand, sales galleries, and the customer journey from first visit to handover.",
		Social: SocialLinks{
			LinkedIn: "https://linkedin.com/in/dewilestari",
			Twitter:  "https://twitter.com/dewilestari",
		},
	},
	{
		ID:    "3",
		Name:  "Raka Pratama",
		Role:  "Principal Architect",
		Image: "/static/img/team-raka.jpg",
		Bio:   "Leads the in-house design studio. Previously with an award-winning practice in Singapore.",
		Social: SocialLinks{
			LinkedIn: "https://linkedin.com/in/rakapratama",
		},
	},
	{
		ID:    "4",
		Name:  "Siti Rahayu",
		Role:  "Head of Estate Management",
		Image: "/static/img/team-siti.jpg",
		Bio:   "Oversees after-sales service and estate operations across all completed projects.",
		Social: SocialLinks{
			Email: "siti@asridev.com",
		},
	},
}
