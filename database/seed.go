package database

import "akshara/models"

// Built-in site content. A fresh deployment upserts these records into MongoDB
// at startup so the content API serves data without a separate import step.

var SeedFounders = []models.Founder{
	{
		ID:             "f1",
		Name:           "Dr. Rajesh Kumar",
		Role:           "President & Founder",
		Specialization: "Educational Policy",
		Quote:          "Education is the movement from darkness to light.",
		Bio:            "Dr. Kumar has spent over 20 years in rural education development. He holds a PhD in Social Work and has spearheaded initiatives that reached over 50,000 students across Andhra Pradesh.",
		Experience:     "22 Years",
		Tags:           []string{"Policy", "Leadership"},
		Image:          "https://images.unsplash.com/photo-1566492031773-4f4e44671857?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:             "f2",
		Name:           "Lakshmi Devi",
		Role:           "Director of Operations",
		Specialization: "Community Outreach",
		Quote:          "Empowering a child empowers a generation.",
		Bio:            "Lakshmi brings operational excellence to the team, managing over 200 volunteers and ensuring resources reach the most remote schools effectively.",
		Experience:     "15 Years",
		Tags:           []string{"Operations", "Community"},
		Image:          "https://images.unsplash.com/photo-1595273670150-bd0c3c392e46?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:             "f3",
		Name:           "Vikram Singh",
		Role:           "Head of Tech Initiatives",
		Specialization: "Digital Literacy",
		Quote:          "Bridging the digital divide one tablet at a time.",
		Bio:            "A former tech executive, Vikram now dedicates his time to setting up computer labs and digital curriculum for underprivileged schools.",
		Experience:     "12 Years",
		Tags:           []string{"Tech", "Innovation"},
		Image:          "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:             "f4",
		Name:           "Anjali Rao",
		Role:           "Program Coordinator",
		Specialization: "Teacher Training",
		Quote:          "Teachers are the architects of society.",
		Bio:            "Anjali focuses on upskilling rural teachers with modern pedagogical techniques.",
		Experience:     "8 Years",
		Tags:           []string{"Training", "Pedagogy"},
		Image:          "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:             "f5",
		Name:           "Suresh Babu",
		Role:           "Field Manager",
		Specialization: "Logistics",
		Quote:          "Execution is everything.",
		Bio:            "Suresh ensures that books, food, and infrastructure materials reach the right place at the right time.",
		Experience:     "10 Years",
		Tags:           []string{"Field Work", "Logistics"},
		Image:          "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=800",
	},
}

var SeedPrograms = []models.Program{
	{
		ID:          "p1",
		Title:       "After-school Tutoring",
		Category:    "Education",
		Description: "Providing remedial classes for students lagging behind in core subjects like Math and Science.",
		Impact:      "1,200+ Students",
		Image:       "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:          "p2",
		Title:       "Digital Literacy Drive",
		Category:    "Technology",
		Description: "Setting up computer labs and providing basic coding training to rural high school students.",
		Impact:      "15 Labs Built",
		Image:       "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:          "p3",
		Title:       "Scholarship Grants",
		Category:    "Financial Aid",
		Description: "Merit-based financial support for higher education to deserving students from low-income families.",
		Impact:      "500+ Scholarships",
		Image:       "https://images.unsplash.com/photo-1523240795612-9a054b0db644?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:          "p4",
		Title:       "School Infrastructure",
		Category:    "Infrastructure",
		Description: "Renovating dilapidated school buildings and providing clean drinking water facilities.",
		Impact:      "30 Schools Renovated",
		Image:       "https://images.unsplash.com/photo-1580582932707-520aed937b7b?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:          "p5",
		Title:       "Girl Child Education",
		Category:    "Education",
		Description: "Special initiatives to ensure girl students stay in school and complete their secondary education.",
		Impact:      "2,000+ Girls Supported",
		Image:       "https://images.unsplash.com/photo-1509062522246-3755977927d7?auto=format&fit=crop&q=80&w=800",
	},
}

var SeedEvents = []models.Event{
	{
		ID:          "e1",
		Title:       "Annual Charity Gala Night",
		Date:        "Dec 15, 2024",
		Location:    "Visakhapatnam Convention Center",
		Description: "Join us for an evening of inspiration, performances by our students, and fundraising to support our scholarship programs.",
		Image:       "https://images.unsplash.com/photo-1511632765486-a01980e01a18?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:          "e2",
		Title:       "Rural Science Fair 2024",
		Date:        "Jan 20, 2025",
		Location:    "ZPHS Rambilli School Grounds",
		Description: "Showcasing innovative science projects created by students from 10 neighboring villages.",
		Image:       "https://images.unsplash.com/photo-1564951434112-64d74cc2a2d7?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:          "e3",
		Title:       "Volunteer Orientation Drive",
		Date:        "Feb 05, 2025",
		Location:    "ABS Main Office, Rambilli",
		Description: "A workshop for new volunteers interested in teaching and field work. Includes training and lunch.",
		Image:       "https://images.unsplash.com/photo-1559027615-cd4628902d4a?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:          "e4",
		Title:       "Book Donation Camp",
		Date:        "March 10, 2025",
		Location:    "City Library, Visakhapatnam",
		Description: "Donate your old books and stationery to help build libraries in rural schools.",
		Image:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?auto=format&fit=crop&q=80&w=800",
	},
}

var SeedBlogPosts = []models.BlogPost{
	{
		ID:      "b1",
		Title:   "The State of Rural Education in 2024",
		Excerpt: "Exploring the challenges and triumphs of bringing digital tools to remote villages.",
		Date:    "March 15, 2024",
		Image:   "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:      "b2",
		Title:   "Volunteer Spotlight: Sarah's Journey",
		Excerpt: "How one volunteer helped set up 5 libraries in a single summer.",
		Date:    "February 28, 2024",
		Image:   "https://images.unsplash.com/photo-1529070538774-1843cb3265df?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:      "b3",
		Title:   "Annual Charity Gala Success",
		Excerpt: "We raised over ₹50 Lakhs for our scholarship fund thanks to your generosity.",
		Date:    "January 10, 2024",
		Image:   "https://images.unsplash.com/photo-1511632765486-a01980e01a18?auto=format&fit=crop&q=80&w=800",
	},
}
