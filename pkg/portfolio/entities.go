// Package portfolio defines the site's domain entities and the view
// projections derived from them. Entities mirror what the backend stores;
// identity is the server-assigned "_id" and is the only key used when
// reconciling lists.
package portfolio

// Entity is anything with a server-assigned identity.
type Entity interface {
	EntityID() string
}

// About is the singleton biography section.
type About struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Resume      string `json:"resume,omitempty"`
}

func (a About) EntityID() string { return a.ID }

// Education is one timeline entry on the education page.
type Education struct {
	ID               string `json:"_id,omitempty"`
	Qualification    string `json:"qualification,omitempty"`
	Name             string `json:"name,omitempty"`
	Address          string `json:"address,omitempty"`
	GradeOrPercent   string `json:"gradeOrPercentage,omitempty"`
	YearOfCompletion string `json:"yearOfCompletion,omitempty"`
	Description      string `json:"description,omitempty"`
}

func (e Education) EntityID() string { return e.ID }

// Experience is one work-history entry.
type Experience struct {
	ID          string `json:"_id,omitempty"`
	Role        string `json:"role,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

func (e Experience) EntityID() string { return e.ID }

// Skill is a single named skill within a tech stack category.
type Skill struct {
	Name  string `json:"name,omitempty"`
	Level string `json:"level,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// TechStack groups skills under a category ("Frontend", "Databases", ...).
type TechStack struct {
	ID       string  `json:"_id,omitempty"`
	Category string  `json:"category,omitempty"`
	Skills   []Skill `json:"skills,omitempty"`
}

func (t TechStack) EntityID() string { return t.ID }

// Project is one portfolio project card.
type Project struct {
	ID               string          `json:"_id,omitempty"`
	Title            string          `json:"title,omitempty"`
	Description      string          `json:"description,omitempty"`
	Category         string          `json:"category,omitempty"`
	TechnologiesUsed []TechnologyRef `json:"technologiesUsed,omitempty"`
	LiveDemoLink     string          `json:"liveDemoLink,omitempty"`
	SourceCodeLink   string          `json:"sourceCodeLink,omitempty"`
	Image            string          `json:"image,omitempty"`
}

func (p Project) EntityID() string { return p.ID }

// Contact is the singleton contact-details record.
type Contact struct {
	ID       string `json:"_id,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

func (c Contact) EntityID() string { return c.ID }

// Message is one entry in the contact-form inbox.
type Message struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
	SentAt  string `json:"createdAt,omitempty"`
}

func (m Message) EntityID() string { return m.ID }

// Award is one award or achievement card.
type Award struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Image       string `json:"image,omitempty"`
}

func (a Award) EntityID() string { return a.ID }

// Testimonial is one quote shown on the testimonials page.
type Testimonial struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role,omitempty"`
	Message string `json:"message,omitempty"`
	Rating  int    `json:"rating,omitempty"`
	Image   string `json:"image,omitempty"`
}

func (t Testimonial) EntityID() string { return t.ID }

// User is the admin account behind the dashboard. Token is only populated on
// login responses.
type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Token string `json:"token,omitempty"`
}

func (u User) EntityID() string { return u.ID }
