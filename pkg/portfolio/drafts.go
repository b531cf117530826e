package portfolio

// Drafts are the client-side payloads for create and update calls. They carry
// only the fields an admin can set; identity and storage URLs stay
// server-assigned. Image-bearing drafts hold raw file content that the
// request gateway encodes as a multipart part.

// ImageFile is binary image content attached to a draft.
type ImageFile struct {
	Name string // original filename, sent as the part's filename
	Data []byte
}

// AboutDraft updates the singleton about section.
type AboutDraft struct {
	Title       string
	Description string
	Image       *ImageFile
	Resume      *ImageFile
}

// EducationDraft creates or updates a timeline entry.
type EducationDraft struct {
	Qualification    string
	Name             string
	Address          string
	GradeOrPercent   string
	YearOfCompletion string
	Description      string
}

// ExperienceDraft creates or updates a work-history entry.
type ExperienceDraft struct {
	Role        string
	Company     string
	Duration    string
	Description string
}

// TechStackDraft creates or updates a skills category.
type TechStackDraft struct {
	Category string
	Skills   []Skill
}

// ProjectDraft creates or updates a project card.
type ProjectDraft struct {
	Title            string
	Description      string
	Category         string
	TechnologiesUsed []TechnologyRef
	LiveDemoLink     string
	SourceCodeLink   string
	Image            *ImageFile
}

// ContactDraft creates or updates the contact-details record.
type ContactDraft struct {
	Email    string
	Phone    string
	Address  string
	GitHub   string
	LinkedIn string
}

// MessageDraft is a contact-form submission.
type MessageDraft struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// AwardDraft creates or updates an award card.
type AwardDraft struct {
	Title       string
	Description string
	Date        string
	Image       *ImageFile
}

// TestimonialDraft creates or updates a testimonial.
type TestimonialDraft struct {
	Name    string
	Role    string
	Message string
	Rating  int
	Image   *ImageFile
}
