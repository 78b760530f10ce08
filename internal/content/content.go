package content

import "strings"

// Person is the site owner's identity record. Authored once in source and
// never mutated at runtime.
type Person struct {
	FirstName string
	LastName  string
	Role      string
	Avatar    string
	Email     string
	Location  string // IANA timezone, e.g. "America/Los_Angeles"
	Languages []string
}

// Name derives the display name from first and last name.
func (p Person) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// SocialLink is a single entry of the contact/social list.
// An empty Link means the handle exists but has no public URL yet; such
// entries are kept in the registry and filtered out of rendering.
type SocialLink struct {
	Platform string
	Icon     string
	Link     string
}

// PageMeta describes one site section for navigation and <head> metadata.
type PageMeta struct {
	Path        string
	Label       string
	Title       string
	Description string
	Display     bool
}

// WorkExperience is one entry of the reverse-chronological work history.
// Order in the slice is author-maintained and significant.
type WorkExperience struct {
	Company      string
	Timeframe    string
	Role         string
	Achievements []string
	Images       []string
}

// EducationEntry is a school/program record on the about page.
type EducationEntry struct {
	Name        string
	Description string
}

// SkillEntry is a technical-skill record on the about page.
type SkillEntry struct {
	Title       string
	Description string
}

// GalleryImage references a photo under web/static with its declared
// orientation ("horizontal" or "vertical").
type GalleryImage struct {
	Src         string
	Alt         string
	Orientation string
}

// Registry is the full static content structure consumed by the templates.
type Registry struct {
	Person   Person
	Social   []SocialLink
	Pages    map[string]PageMeta
	Work     []WorkExperience
	Studies  []EducationEntry
	Skills   []SkillEntry
	Gallery  []GalleryImage
	Headline string
	Subline  string
	Intro    string
}

// VisibleSocial returns the social links that carry a target URL.
// Entries with an empty Link stay in the registry but are hidden from
// rendering.
func (r *Registry) VisibleSocial() []SocialLink {
	visible := make([]SocialLink, 0, len(r.Social))
	for _, link := range r.Social {
		if strings.TrimSpace(link.Link) != "" {
			visible = append(visible, link)
		}
	}
	return visible
}

// Page looks up a section's metadata by key, e.g. "blog".
func (r *Registry) Page(key string) (PageMeta, bool) {
	meta, ok := r.Pages[key]
	return meta, ok
}

// navOrder fixes the section order for navigation; Pages is a map.
var navOrder = []string{"home", "about", "work", "blog", "gallery"}

// Nav returns the displayable sections in navigation order.
func (r *Registry) Nav() []PageMeta {
	nav := make([]PageMeta, 0, len(navOrder))
	for _, key := range navOrder {
		if meta, ok := r.Pages[key]; ok && meta.Display {
			nav = append(nav, meta)
		}
	}
	return nav
}

var registry = Registry{
	Person: Person{
		FirstName: "Kevin",
		LastName:  "Okinedo",
		Role:      "AI Engineer",
		Avatar:    "/static/images/avatar.jpg",
		Email:     "kevin.okinedo@gmail.com",
		Location:  "America/Los_Angeles",
		Languages: []string{"English", "Igbo"},
	},
	Social: []SocialLink{
		{Platform: "GitHub", Icon: "github", Link: "https://github.com/kokinedo"},
		{Platform: "LinkedIn", Icon: "linkedin", Link: "https://www.linkedin.com/in/kevin-okinedo"},
		{Platform: "X", Icon: "x", Link: ""},
		{Platform: "Email", Icon: "email", Link: "mailto:kevin.okinedo@gmail.com"},
	},
	Pages: map[string]PageMeta{
		"home": {
			Path:        "/",
			Label:       "Home",
			Title:       "Kevin Okinedo — AI Engineer",
			Description: "Portfolio website showcasing my work as an AI engineer",
			Display:     true,
		},
		"about": {
			Path:        "/about",
			Label:       "About",
			Title:       "About — Kevin Okinedo",
			Description: "Meet Kevin Okinedo, AI engineer",
			Display:     true,
		},
		"work": {
			Path:        "/work",
			Label:       "Work",
			Title:       "Work — Kevin Okinedo",
			Description: "Design and engineering projects by Kevin Okinedo",
			Display:     true,
		},
		"blog": {
			Path:        "/blog",
			Label:       "Blog",
			Title:       "Blog — Kevin Okinedo",
			Description: "Writing about AI, machine learning and engineering",
			Display:     true,
		},
		"gallery": {
			Path:        "/gallery",
			Label:       "Gallery",
			Title:       "Gallery — Kevin Okinedo",
			Description: "A photo collection",
			Display:     true,
		},
	},
	Work: []WorkExperience{
		{
			Company:   "Ryzlink Corp",
			Timeframe: "2023 - Present",
			Role:      "AI Engineer",
			Achievements: []string{
				"Built retrieval-augmented generation pipelines that ground LLM answers in internal documentation, cutting unsupported responses by a measured margin in evaluation.",
				"Fine-tuned and deployed transformer models for document classification, serving predictions behind a low-latency inference API.",
			},
			Images: []string{},
		},
		{
			Company:   "Accenture",
			Timeframe: "2020 - 2023",
			Role:      "Machine Learning Engineer",
			Achievements: []string{
				"Designed feature pipelines and training workflows for forecasting models used by client supply-chain teams.",
				"Led the migration of batch scoring jobs to a streaming architecture, reducing prediction staleness from hours to minutes.",
			},
			Images: []string{},
		},
	},
	Studies: []EducationEntry{
		{Name: "University of Houston", Description: "B.Sc. in Computer Science."},
		{Name: "DeepLearning.AI", Description: "Deep Learning and NLP specializations."},
	},
	Skills: []SkillEntry{
		{Title: "PyTorch", Description: "Model development, custom training loops and optimizer tuning."},
		{Title: "LLM systems", Description: "RAG pipelines, evaluation harnesses and prompt tooling."},
		{Title: "Python & Go", Description: "Services and data plumbing around the models."},
	},
	Gallery: []GalleryImage{
		{Src: "/static/images/gallery/img-01.jpg", Alt: "lighthouse at dusk", Orientation: "vertical"},
		{Src: "/static/images/gallery/img-02.jpg", Alt: "city skyline", Orientation: "horizontal"},
		{Src: "/static/images/gallery/img-03.jpg", Alt: "mountain trail", Orientation: "horizontal"},
		{Src: "/static/images/gallery/img-04.jpg", Alt: "street market", Orientation: "vertical"},
	},
	Headline: "AI engineer and builder",
	Subline:  "I'm Kevin, an AI engineer focused on language models and the systems around them. After hours, I build my own projects.",
	Intro:    "Kevin is a US-based AI engineer with a passion for turning research into dependable products. His work spans retrieval-augmented generation, model fine-tuning and the unglamorous plumbing that keeps both running.",
}

// Get returns the site's content registry. The returned value is shared and
// must be treated as read-only.
func Get() *Registry {
	return &registry
}
