package portfolio

// Personal is the biographical header of the portfolio document
type Personal struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

// Project is one portfolio project entry
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	DemoURL      string   `json:"demo_url,omitempty"`
	GithubURL    string   `json:"github_url,omitempty"`
	Featured     bool     `json:"featured"`
}

// Skill is one skill entry with proficiency metadata
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Years    int    `json:"years"`
	Category string `json:"category"`
}

// SkillsResponse groups skills by category
type SkillsResponse struct {
	Frontend []Skill `json:"frontend"`
	Backend  []Skill `json:"backend"`
	Design   []Skill `json:"design"`
	Tools    []Skill `json:"tools"`
}

// Experience is one work history entry
type Experience struct {
	ID          int    `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is one education history entry
type Education struct {
	ID          int    `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Duration    string `json:"duration"`
	GPA         string `json:"gpa,omitempty"`
}

// ContactInfo describes how and when the owner can be reached
type ContactInfo struct {
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	Availability string `json:"availability,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
}

// Document is the full portfolio document served by GET /api/portfolio
type Document struct {
	Personal   Personal       `json:"personal"`
	Skills     SkillsResponse `json:"skills"`
	Projects   []Project      `json:"projects"`
	Experience []Experience   `json:"experience"`
	Education  []Education    `json:"education"`
}
