package seed

import "mentorsetu/models"

// mentorCatalog is the published mentor directory. Profiles are demo data;
// the service layer treats them as immutable.
var mentorCatalog = []models.Mentor{
	{
		ID:           "1",
		Name:         "Sarah Chen",
		Expertise:    []string{"Product Management", "Startup Strategy", "User Research"},
		Bio:          "Ex-Google PM with 8+ years helping startups scale from 0 to 100M users.",
		AboutFull:    "I'm a seasoned Product Manager with over 8 years of experience at companies like Google, Stripe, and various early-stage startups. I've led product teams through hypergrowth phases, launched products used by millions, and helped numerous entrepreneurs validate and scale their ideas.\n\nMy expertise spans across product strategy, user research, go-to-market planning, and team building. I'm passionate about helping the next generation of product leaders navigate the challenges of building products people love.",
		Rating:       4.9,
		ReviewCount:  127,
		Price:        150,
		Experience:   "8 years",
		Avatar:       "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=400&h=400&fit=crop&crop=face",
		Company:      "Ex-Google, Current Startup Advisor",
		Location:     "San Francisco, CA",
		Sessions:     245,
		ResponseTime: "2 hours",
		Languages:    []string{"English", "Mandarin"},
		Education:    "MBA Stanford, BS Computer Science",
	},
	{
		ID:           "2",
		Name:         "Marcus Rodriguez",
		Expertise:    []string{"Software Engineering", "System Design", "Career Growth"},
		Bio:          "Senior Software Engineer at Netflix with expertise in distributed systems and mentoring junior developers.",
		AboutFull:    "I'm a Senior Software Engineer at Netflix with 10+ years of experience building scalable systems that serve millions of users globally. I've worked across the full stack, from frontend React applications to backend microservices and distributed systems.\n\nI'm passionate about mentoring developers at all stages of their careers, from bootcamp graduates to senior engineers looking to level up to staff+ roles. I can help with technical skills, system design, career planning, and navigating the tech industry.",
		Rating:       4.8,
		ReviewCount:  89,
		Price:        120,
		Experience:   "10 years",
		Avatar:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
		Company:      "Netflix",
		Location:     "Los Angeles, CA",
		Sessions:     156,
		ResponseTime: "4 hours",
		Languages:    []string{"English", "Spanish"},
		Education:    "MS Computer Science, BS Software Engineering",
	},
	{
		ID:           "3",
		Name:         "Dr. Priya Patel",
		Expertise:    []string{"Data Science", "Machine Learning", "AI Strategy"},
		Bio:          "Data Science Director at Uber with PhD in Machine Learning. Specializes in ML strategy and team leadership.",
		AboutFull:    "I'm a Data Science Director at Uber with a PhD in Machine Learning from MIT. I lead a team of 20+ data scientists and ML engineers working on recommendation systems, demand forecasting, and autonomous vehicle algorithms.\n\nI love helping aspiring data scientists break into the field and supporting experienced practitioners transition into leadership roles. My mentoring covers technical skills, career strategy, and the business side of ML.",
		Rating:       4.9,
		ReviewCount:  203,
		Price:        180,
		Experience:   "12 years",
		Avatar:       "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=400&h=400&fit=crop&crop=face",
		Company:      "Uber",
		Location:     "Seattle, WA",
		Sessions:     189,
		ResponseTime: "6 hours",
		Languages:    []string{"English", "Hindi", "Gujarati"},
		Education:    "PhD Machine Learning MIT, MS Statistics",
	},
	{
		ID:           "4",
		Name:         "James Thompson",
		Expertise:    []string{"UX Design", "Design Systems", "Design Leadership"},
		Bio:          "Head of Design at Airbnb, leading design for core product experiences with 15+ years in design.",
		AboutFull:    "I'm the Head of Design at Airbnb where I lead design for our core host and guest experiences. With 15+ years in design, I've worked at companies like Apple, IDEO, and several successful startups.\n\nI'm passionate about helping designers at all levels improve their craft, from junior designers learning the fundamentals to senior designers transitioning into leadership roles. I can help with portfolio reviews, design strategy, user research, and design team management.",
		Rating:       4.7,
		ReviewCount:  156,
		Price:        160,
		Experience:   "15 years",
		Avatar:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face",
		Company:      "Airbnb",
		Location:     "San Francisco, CA",
		Sessions:     234,
		ResponseTime: "3 hours",
		Languages:    []string{"English"},
		Education:    "MFA Design Stanford, BA Fine Arts",
	},
	{
		ID:           "5",
		Name:         "Angela Kim",
		Expertise:    []string{"Marketing", "Growth Hacking", "Content Strategy"},
		Bio:          "VP of Growth at Shopify, expert in performance marketing and scaling e-commerce brands.",
		AboutFull:    "I'm the VP of Growth at Shopify where I lead our global marketing efforts and growth initiatives. I've helped scale multiple e-commerce companies from startup to IPO, with expertise in performance marketing, content strategy, and conversion optimization.\n\nI mentor marketing professionals, entrepreneurs, and business owners on growth strategies, digital marketing, brand building, and team scaling. Whether you're launching your first campaign or optimizing existing funnels, I can help accelerate your growth.",
		Rating:       4.8,
		ReviewCount:  142,
		Price:        140,
		Experience:   "9 years",
		Avatar:       "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop&crop=face",
		Company:      "Shopify",
		Location:     "Toronto, Canada",
		Sessions:     187,
		ResponseTime: "5 hours",
		Languages:    []string{"English", "Korean"},
		Education:    "MBA Marketing, BS Business Administration",
	},
	{
		ID:           "6",
		Name:         "David Wilson",
		Expertise:    []string{"DevOps", "Cloud Architecture", "Infrastructure"},
		Bio:          "Principal DevOps Engineer at AWS, specializing in cloud infrastructure and automation at scale.",
		AboutFull:    "I'm a Principal DevOps Engineer at AWS with 12+ years of experience building and managing cloud infrastructure at massive scale. I've helped hundreds of companies migrate to the cloud and optimize their infrastructure for performance, security, and cost.\n\nI mentor engineers looking to break into DevOps, cloud architecture, and site reliability engineering. I can help with AWS/Azure/GCP certifications, infrastructure as code, monitoring and observability, and DevOps culture transformation.",
		Rating:       4.9,
		ReviewCount:  98,
		Price:        170,
		Experience:   "12 years",
		Avatar:       "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=400&h=400&fit=crop&crop=face",
		Company:      "Amazon Web Services",
		Location:     "Austin, TX",
		Sessions:     123,
		ResponseTime: "4 hours",
		Languages:    []string{"English"},
		Education:    "MS Computer Engineering, BS Electrical Engineering",
	},
}

// Mentors returns a fresh copy of the mentor catalog.
func Mentors() []models.Mentor {
	out := make([]models.Mentor, len(mentorCatalog))
	copy(out, mentorCatalog)
	return out
}
