package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Jnyanu18/portfolio/internal/api/dto/v1/portfolio"

	_ "modernc.org/sqlite"
)

// Store serves portfolio content from a sqlite database. It is the data
// source behind the read-only portfolio endpoints; contact submissions
// are never written here.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the sqlite database at path.
// Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS personal (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	name          TEXT NOT NULL,
	title         TEXT NOT NULL,
	email         TEXT NOT NULL,
	phone         TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL DEFAULT '',
	bio           TEXT NOT NULL DEFAULT '',
	avatar        TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS projects (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL,
	image         TEXT NOT NULL,
	technologies  TEXT NOT NULL,
	category      TEXT NOT NULL,
	demo_url      TEXT NOT NULL DEFAULT '',
	github_url    TEXT NOT NULL DEFAULT '',
	featured      INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS skills (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT NOT NULL,
	level         INTEGER NOT NULL,
	years         INTEGER NOT NULL,
	category      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS experience (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	company       TEXT NOT NULL,
	position      TEXT NOT NULL,
	duration      TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS education (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	institution   TEXT NOT NULL,
	degree        TEXT NOT NULL,
	duration      TEXT NOT NULL,
	gpa           TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS contact_info (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	email         TEXT NOT NULL,
	phone         TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL DEFAULT '',
	availability  TEXT NOT NULL DEFAULT '',
	response_time TEXT NOT NULL DEFAULT ''
);
`

// Init creates the schema and seeds initial content when the store is
// empty. Seeding is idempotent: existing content is never overwritten.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return s.seed(ctx)
}

// Personal returns the biographical header row.
func (s *Store) Personal(ctx context.Context) (portfolio.Personal, error) {
	var p portfolio.Personal
	row := s.db.QueryRowContext(ctx,
		`SELECT name, title, email, phone, location, bio, avatar FROM personal WHERE id = 1`)
	err := row.Scan(&p.Name, &p.Title, &p.Email, &p.Phone, &p.Location, &p.Bio, &p.Avatar)
	if err != nil {
		return portfolio.Personal{}, fmt.Errorf("failed to load personal info: %w", err)
	}
	return p, nil
}

// Projects returns all projects in insertion order.
func (s *Store) Projects(ctx context.Context) ([]portfolio.Project, error) {
	return s.queryProjects(ctx,
		`SELECT id, title, description, image, technologies, category, demo_url, github_url, featured
		 FROM projects ORDER BY id`)
}

// FeaturedProjects returns only the projects flagged as featured.
func (s *Store) FeaturedProjects(ctx context.Context) ([]portfolio.Project, error) {
	return s.queryProjects(ctx,
		`SELECT id, title, description, image, technologies, category, demo_url, github_url, featured
		 FROM projects WHERE featured = 1 ORDER BY id`)
}

func (s *Store) queryProjects(ctx context.Context, query string) ([]portfolio.Project, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []portfolio.Project{}
	for rows.Next() {
		var p portfolio.Project
		var technologies string
		var featured int
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &technologies,
			&p.Category, &p.DemoURL, &p.GithubURL, &featured); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.Technologies = splitCSV(technologies)
		p.Featured = featured != 0
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Skills returns all skills grouped by category.
func (s *Store) Skills(ctx context.Context) (portfolio.SkillsResponse, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, level, years, category FROM skills ORDER BY id`)
	if err != nil {
		return portfolio.SkillsResponse{}, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	grouped := portfolio.SkillsResponse{
		Frontend: []portfolio.Skill{},
		Backend:  []portfolio.Skill{},
		Design:   []portfolio.Skill{},
		Tools:    []portfolio.Skill{},
	}
	for rows.Next() {
		var sk portfolio.Skill
		if err := rows.Scan(&sk.Name, &sk.Level, &sk.Years, &sk.Category); err != nil {
			return portfolio.SkillsResponse{}, fmt.Errorf("failed to scan skill: %w", err)
		}
		switch sk.Category {
		case "frontend":
			grouped.Frontend = append(grouped.Frontend, sk)
		case "backend":
			grouped.Backend = append(grouped.Backend, sk)
		case "design":
			grouped.Design = append(grouped.Design, sk)
		case "tools":
			grouped.Tools = append(grouped.Tools, sk)
		}
	}
	return grouped, rows.Err()
}

// Experience returns the work history in insertion order.
func (s *Store) Experience(ctx context.Context) ([]portfolio.Experience, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company, position, duration, description FROM experience ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query experience: %w", err)
	}
	defer rows.Close()

	entries := []portfolio.Experience{}
	for rows.Next() {
		var e portfolio.Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Position, &e.Duration, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Education returns the education history in insertion order.
func (s *Store) Education(ctx context.Context) ([]portfolio.Education, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, institution, degree, duration, gpa FROM education ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query education: %w", err)
	}
	defer rows.Close()

	entries := []portfolio.Education{}
	for rows.Next() {
		var e portfolio.Education
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.Duration, &e.GPA); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ContactInfo returns how and when the owner can be reached.
func (s *Store) ContactInfo(ctx context.Context) (portfolio.ContactInfo, error) {
	var ci portfolio.ContactInfo
	row := s.db.QueryRowContext(ctx,
		`SELECT email, phone, location, availability, response_time FROM contact_info WHERE id = 1`)
	err := row.Scan(&ci.Email, &ci.Phone, &ci.Location, &ci.Availability, &ci.ResponseTime)
	if err != nil {
		return portfolio.ContactInfo{}, fmt.Errorf("failed to load contact info: %w", err)
	}
	return ci, nil
}

// Document assembles the full portfolio document.
func (s *Store) Document(ctx context.Context) (*portfolio.Document, error) {
	personal, err := s.Personal(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := s.Skills(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.Projects(ctx)
	if err != nil {
		return nil, err
	}
	experience, err := s.Experience(ctx)
	if err != nil {
		return nil, err
	}
	education, err := s.Education(ctx)
	if err != nil {
		return nil, err
	}

	return &portfolio.Document{
		Personal:   personal,
		Skills:     skills,
		Projects:   projects,
		Experience: experience,
		Education:  education,
	}, nil
}

func splitCSV(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinCSV(parts []string) string {
	return strings.Join(parts, ",")
}
