package domain

// PersonalInfo is the static profile served by the portfolio endpoints. It is
// not persisted; DefaultPersonalInfo builds it fresh per request.
type PersonalInfo struct {
	Name         string            `json:"name"`
	Title        string            `json:"title"`
	Bio          string            `json:"bio"`
	Skills       []string          `json:"skills"`
	Experience   []ExperienceEntry `json:"experience"`
	Contact      map[string]string `json:"contact"`
	SocialLinks  map[string]string `json:"social_links"`
	ProfileImage string            `json:"profile_image"`
}

// ExperienceEntry is a single work-history item on the profile.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// DefaultPersonalInfo returns the profile record.
func DefaultPersonalInfo() PersonalInfo {
	return PersonalInfo{
		Name:  "Shoraj Tomer",
		Title: "Full Stack Developer & Tech Educator",
		Bio:   "Passionate full-stack developer with 5+ years of experience building scalable web applications. I specialize in React, Node.js, Python, and cloud technologies. I love sharing knowledge and helping others learn to code.",
		Skills: []string{
			"JavaScript/TypeScript", "React/Next.js", "Node.js", "Python",
			"MongoDB", "PostgreSQL", "AWS", "Docker", "Git", "REST APIs",
		},
		Experience: []ExperienceEntry{
			{
				Title:       "Senior Full Stack Developer",
				Company:     "TechCorp Inc.",
				Duration:    "2022 - Present",
				Description: "Lead development of microservices architecture serving 100K+ users",
			},
			{
				Title:       "Full Stack Developer",
				Company:     "StartupXYZ",
				Duration:    "2020 - 2022",
				Description: "Built and maintained React/Node.js applications, reduced loading times by 40%",
			},
			{
				Title:       "Frontend Developer",
				Company:     "WebSolutions",
				Duration:    "2019 - 2020",
				Description: "Developed responsive web applications using React and modern CSS frameworks",
			},
		},
		Contact: map[string]string{
			"email":    "shoraj@shorajtomer.me",
			"phone":    "+1 (555) 123-4567",
			"location": "San Francisco, CA",
		},
		SocialLinks: map[string]string{
			"github":   "https://github.com/shorajtomer",
			"linkedin": "https://linkedin.com/in/shorajtomer",
			"twitter":  "https://twitter.com/shorajtomer",
			"youtube":  "https://youtube.com/shorajtomer",
		},
		ProfileImage: "https://images.unsplash.com/photo-1590086782957-93c06ef21604?crop=entropy&cs=srgb&fm=jpg&q=85",
	}
}
