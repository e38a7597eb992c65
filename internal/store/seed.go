package store

import (
	"context"
	"fmt"

	"github.com/Jnyanu18/portfolio/internal/api/dto/v1/portfolio"
)

var seedPersonal = portfolio.Personal{
	Name:     "Alex Chen",
	Title:    "Full Stack Developer & Designer",
	Email:    "alex.chen@example.com",
	Phone:    "+1 (555) 123-4567",
	Location: "San Francisco, CA",
	Bio:      "Passionate full stack developer with expertise in modern web technologies. I love creating beautiful, functional, and user-friendly applications.",
	Avatar:   "/images/avatar.jpg",
}

var seedProjects = []portfolio.Project{
	{
		Title:        "E-commerce Platform",
		Description:  "A full-stack e-commerce solution built with React, Node.js, and MongoDB. Features include user authentication, payment processing, inventory management, and real-time order tracking.",
		Image:        "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=600&h=400&fit=crop",
		Technologies: []string{"React", "Node.js", "MongoDB", "Stripe API", "AWS"},
		Category:     "Full-Stack Development",
		DemoURL:      "https://demo-ecommerce.example.com",
		GithubURL:    "https://github.com/alexchen/ecommerce-platform",
		Featured:     true,
	},
	{
		Title:        "Task Management App",
		Description:  "A collaborative project management tool with real-time updates, drag-and-drop functionality, and team collaboration features. Built with modern design principles and intuitive UX.",
		Image:        "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=600&h=400&fit=crop",
		Technologies: []string{"React", "TypeScript", "Firebase", "Material-UI", "Socket.io"},
		Category:     "Web Application",
		DemoURL:      "https://taskflow-demo.example.com",
		GithubURL:    "https://github.com/alexchen/taskflow",
		Featured:     true,
	},
	{
		Title:        "Mobile Banking App Design",
		Description:  "Complete UI/UX design for a modern mobile banking application. Focused on security, accessibility, and user experience with comprehensive design system and prototyping.",
		Image:        "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=600&h=400&fit=crop",
		Technologies: []string{"Figma", "Adobe XD", "Principle", "InVision", "User Research"},
		Category:     "UI/UX Design",
		DemoURL:      "https://bankapp-prototype.example.com",
		Featured:     true,
	},
	{
		Title:        "Data Visualization Dashboard",
		Description:  "Interactive dashboard for business analytics with real-time data processing, customizable charts, and export functionality. Built for handling large datasets efficiently.",
		Image:        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=600&h=400&fit=crop",
		Technologies: []string{"React", "D3.js", "Python", "FastAPI", "PostgreSQL"},
		Category:     "Data Visualization",
		DemoURL:      "https://analytics-dashboard.example.com",
		GithubURL:    "https://github.com/alexchen/analytics-dashboard",
	},
	{
		Title:        "Restaurant Brand Identity",
		Description:  "Complete brand identity design for a modern restaurant chain including logo design, menu layouts, packaging, and digital presence across all touchpoints.",
		Image:        "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=600&h=400&fit=crop",
		Technologies: []string{"Adobe Illustrator", "Photoshop", "InDesign", "Brand Strategy"},
		Category:     "Brand Design",
		DemoURL:      "https://restaurant-brand.example.com",
	},
	{
		Title:        "Real-time Chat Application",
		Description:  "Scalable chat application with features like group chats, file sharing, emoji reactions, and message encryption. Supports thousands of concurrent users.",
		Image:        "https://images.unsplash.com/photo-1577563908411-5077b6dc7624?w=600&h=400&fit=crop",
		Technologies: []string{"React", "Node.js", "Socket.io", "Redis", "JWT"},
		Category:     "Real-time Application",
		DemoURL:      "https://chatapp-demo.example.com",
		GithubURL:    "https://github.com/alexchen/realtime-chat",
	},
}

var seedSkills = []portfolio.Skill{
	{Name: "React", Level: 95, Years: 4, Category: "frontend"},
	{Name: "TypeScript", Level: 90, Years: 3, Category: "frontend"},
	{Name: "JavaScript", Level: 95, Years: 5, Category: "frontend"},
	{Name: "HTML/CSS", Level: 95, Years: 5, Category: "frontend"},
	{Name: "Tailwind CSS", Level: 85, Years: 2, Category: "frontend"},
	{Name: "Next.js", Level: 85, Years: 2, Category: "frontend"},

	{Name: "Node.js", Level: 90, Years: 4, Category: "backend"},
	{Name: "Python", Level: 85, Years: 3, Category: "backend"},
	{Name: "FastAPI", Level: 80, Years: 2, Category: "backend"},
	{Name: "Express.js", Level: 90, Years: 4, Category: "backend"},
	{Name: "PostgreSQL", Level: 85, Years: 3, Category: "backend"},
	{Name: "MongoDB", Level: 80, Years: 3, Category: "backend"},

	{Name: "Figma", Level: 90, Years: 3, Category: "design"},
	{Name: "Adobe XD", Level: 85, Years: 4, Category: "design"},
	{Name: "Photoshop", Level: 80, Years: 5, Category: "design"},
	{Name: "Illustrator", Level: 75, Years: 3, Category: "design"},
	{Name: "UI/UX Design", Level: 90, Years: 4, Category: "design"},
	{Name: "Prototyping", Level: 85, Years: 4, Category: "design"},

	{Name: "Git", Level: 95, Years: 5, Category: "tools"},
	{Name: "Docker", Level: 80, Years: 2, Category: "tools"},
	{Name: "AWS", Level: 75, Years: 2, Category: "tools"},
	{Name: "Firebase", Level: 85, Years: 3, Category: "tools"},
	{Name: "Vercel", Level: 90, Years: 2, Category: "tools"},
	{Name: "VS Code", Level: 95, Years: 5, Category: "tools"},
}

var seedExperience = []portfolio.Experience{
	{
		Company:     "Tech Company Inc.",
		Position:    "Senior Full Stack Developer",
		Duration:    "2022 - Present",
		Description: "Lead development of web applications using React and Node.js",
	},
	{
		Company:     "Startup Co.",
		Position:    "Full Stack Developer",
		Duration:    "2020 - 2022",
		Description: "Built scalable web applications and APIs for growing startup",
	},
}

var seedEducation = []portfolio.Education{
	{
		Institution: "University Name",
		Degree:      "Bachelor of Science in Computer Science",
		Duration:    "2016 - 2020",
		GPA:         "3.8/4.0",
	},
}

var seedContactInfo = portfolio.ContactInfo{
	Email:        "alex.chen@example.com",
	Phone:        "+1 (555) 123-4567",
	Location:     "San Francisco, CA",
	Availability: "Available for new opportunities",
	ResponseTime: "Usually responds within 24 hours",
}

// seed inserts the initial content into every empty table.
func (s *Store) seed(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM personal`).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect personal table: %w", err)
	}
	if count == 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO personal (id, name, title, email, phone, location, bio, avatar)
			 VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
			seedPersonal.Name, seedPersonal.Title, seedPersonal.Email, seedPersonal.Phone,
			seedPersonal.Location, seedPersonal.Bio, seedPersonal.Avatar)
		if err != nil {
			return fmt.Errorf("failed to seed personal info: %w", err)
		}
	}

	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect projects table: %w", err)
	}
	if count == 0 {
		for _, p := range seedProjects {
			featured := 0
			if p.Featured {
				featured = 1
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO projects (title, description, image, technologies, category, demo_url, github_url, featured)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				p.Title, p.Description, p.Image, joinCSV(p.Technologies), p.Category,
				p.DemoURL, p.GithubURL, featured)
			if err != nil {
				return fmt.Errorf("failed to seed project %q: %w", p.Title, err)
			}
		}
	}

	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM skills`).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect skills table: %w", err)
	}
	if count == 0 {
		for _, sk := range seedSkills {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO skills (name, level, years, category) VALUES (?, ?, ?, ?)`,
				sk.Name, sk.Level, sk.Years, sk.Category)
			if err != nil {
				return fmt.Errorf("failed to seed skill %q: %w", sk.Name, err)
			}
		}
	}

	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM experience`).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect experience table: %w", err)
	}
	if count == 0 {
		for _, e := range seedExperience {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO experience (company, position, duration, description) VALUES (?, ?, ?, ?)`,
				e.Company, e.Position, e.Duration, e.Description)
			if err != nil {
				return fmt.Errorf("failed to seed experience %q: %w", e.Company, err)
			}
		}
	}

	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM education`).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect education table: %w", err)
	}
	if count == 0 {
		for _, e := range seedEducation {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO education (institution, degree, duration, gpa) VALUES (?, ?, ?, ?)`,
				e.Institution, e.Degree, e.Duration, e.GPA)
			if err != nil {
				return fmt.Errorf("failed to seed education %q: %w", e.Institution, err)
			}
		}
	}

	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_info`).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect contact_info table: %w", err)
	}
	if count == 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO contact_info (id, email, phone, location, availability, response_time)
			 VALUES (1, ?, ?, ?, ?, ?)`,
			seedContactInfo.Email, seedContactInfo.Phone, seedContactInfo.Location,
			seedContactInfo.Availability, seedContactInfo.ResponseTime)
		if err != nil {
			return fmt.Errorf("failed to seed contact info: %w", err)
		}
	}

	return tx.Commit()
}
