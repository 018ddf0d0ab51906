// Package site holds the static content document the page is rendered from.
package site

// CTA is a hero call-to-action. Target is a section id ("#about" or "about") or
// an external URL.
type CTA struct {
	Label  string `json:"label" yaml:"label" toml:"label"`
	Target string `json:"target" yaml:"target" toml:"target"`
}

type Hero struct {
	Badge       string `json:"badge" yaml:"badge" toml:"badge"`
	Title       string `json:"title" yaml:"title" toml:"title"`
	Subtitle    string `json:"subtitle" yaml:"subtitle" toml:"subtitle"`
	Description string `json:"description" yaml:"description" toml:"description"`
	ImageURL    string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty" toml:"imageUrl,omitempty"`
	CTAs        CTAs   `json:"ctas" yaml:"ctas" toml:"ctas"`
}

type CTAs struct {
	Primary   CTA `json:"primary" yaml:"primary" toml:"primary"`
	Secondary CTA `json:"secondary" yaml:"secondary" toml:"secondary"`
}

type About struct {
	Title           string   `json:"title" yaml:"title" toml:"title"`
	StoryTitle      string   `json:"storyTitle" yaml:"storyTitle" toml:"storyTitle"`
	StoryParagraphs []string `json:"storyParagraphs" yaml:"storyParagraphs" toml:"storyParagraphs"`
	WorkTitle       string   `json:"workTitle" yaml:"workTitle" toml:"workTitle"`
	WorkParagraphs  []string `json:"workParagraphs" yaml:"workParagraphs" toml:"workParagraphs"`
}

type Skills struct {
	Software []string `json:"software" yaml:"software" toml:"software"`
	Other    []string `json:"other" yaml:"other" toml:"other"`
}

type Project struct {
	ID           string   `json:"id" yaml:"id" toml:"id"`
	Title        string   `json:"title" yaml:"title" toml:"title"`
	Description  string   `json:"description" yaml:"description" toml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies" toml:"technologies"`
	ImageURL     string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty" toml:"imageUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty" yaml:"githubUrl,omitempty" toml:"githubUrl,omitempty"`
	DemoURL      string   `json:"demoUrl,omitempty" yaml:"demoUrl,omitempty" toml:"demoUrl,omitempty"`
}

type Projects struct {
	Title string    `json:"title" yaml:"title" toml:"title"`
	Intro string    `json:"intro" yaml:"intro" toml:"intro"`
	Items []Project `json:"items" yaml:"items" toml:"items"`
}

type Interest struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	Title       string `json:"title" yaml:"title" toml:"title"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Icon        string `json:"icon" yaml:"icon" toml:"icon"`
	ImageURL    string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty" toml:"imageUrl,omitempty"`
	LinkURL     string `json:"linkUrl,omitempty" yaml:"linkUrl,omitempty" toml:"linkUrl,omitempty"`
	LinkLabel   string `json:"linkLabel,omitempty" yaml:"linkLabel,omitempty" toml:"linkLabel,omitempty"`
}

type Interests struct {
	Title string     `json:"title" yaml:"title" toml:"title"`
	Intro string     `json:"intro" yaml:"intro" toml:"intro"`
	Items []Interest `json:"items" yaml:"items" toml:"items"`
}

type Contact struct {
	Title       string `json:"title" yaml:"title" toml:"title"`
	Intro       string `json:"intro" yaml:"intro" toml:"intro"`
	FormTitle   string `json:"formTitle" yaml:"formTitle" toml:"formTitle"`
	Email       string `json:"email" yaml:"email" toml:"email"`
	Phone       string `json:"phone" yaml:"phone" toml:"phone"`
	Location    string `json:"location" yaml:"location" toml:"location"`
	LocationURL string `json:"locationUrl,omitempty" yaml:"locationUrl,omitempty" toml:"locationUrl,omitempty"`
}

type Socials struct {
	LinkedIn     string `json:"linkedin" yaml:"linkedin" toml:"linkedin"`
	GitHub       string `json:"github" yaml:"github" toml:"github"`
	Kofi         string `json:"kofi,omitempty" yaml:"kofi,omitempty" toml:"kofi,omitempty"`
	BuyMeACoffee string `json:"buymeacoffee,omitempty" yaml:"buymeacoffee,omitempty" toml:"buymeacoffee,omitempty"`
}

// Role is a job the author is targeting, shown under About.
type Role struct {
	ID      string   `json:"id" yaml:"id" toml:"id"`
	Title   string   `json:"title" yaml:"title" toml:"title"`
	Bullets []string `json:"bullets" yaml:"bullets" toml:"bullets"`
}

type Targets struct {
	Title string `json:"title" yaml:"title" toml:"title"`
	Items []Role `json:"items" yaml:"items" toml:"items"`
}

type Highlight struct {
	ID      string   `json:"id" yaml:"id" toml:"id"`
	Title   string   `json:"title" yaml:"title" toml:"title"`
	Bullets []string `json:"bullets" yaml:"bullets" toml:"bullets"`
}

type Highlights struct {
	Title string      `json:"title" yaml:"title" toml:"title"`
	Items []Highlight `json:"items" yaml:"items" toml:"items"`
}

type Job struct {
	Company string   `json:"company" yaml:"company" toml:"company"`
	Role    string   `json:"role" yaml:"role" toml:"role"`
	Dates   string   `json:"dates" yaml:"dates" toml:"dates"`
	Logo    string   `json:"logo,omitempty" yaml:"logo,omitempty" toml:"logo,omitempty"`
	Bullets []string `json:"bullets" yaml:"bullets" toml:"bullets"`
}

type Experience struct {
	Title string `json:"title" yaml:"title" toml:"title"`
	Items []Job  `json:"items" yaml:"items" toml:"items"`
}

type School struct {
	School     string   `json:"school" yaml:"school" toml:"school"`
	Program    string   `json:"program" yaml:"program" toml:"program"`
	Dates      string   `json:"dates" yaml:"dates" toml:"dates"`
	Logo       string   `json:"logo,omitempty" yaml:"logo,omitempty" toml:"logo,omitempty"`
	Highlights []string `json:"highlights" yaml:"highlights" toml:"highlights"`
}

type Education struct {
	Title string   `json:"title" yaml:"title" toml:"title"`
	Items []School `json:"items" yaml:"items" toml:"items"`
}

type License struct {
	Title         string `json:"title" yaml:"title" toml:"title"`
	Issuer        string `json:"issuer" yaml:"issuer" toml:"issuer"`
	Issued        string `json:"issued,omitempty" yaml:"issued,omitempty" toml:"issued,omitempty"`
	CredentialID  string `json:"credentialId,omitempty" yaml:"credentialId,omitempty" toml:"credentialId,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty" yaml:"credentialUrl,omitempty" toml:"credentialUrl,omitempty"`
}

type Licenses struct {
	Title string    `json:"title" yaml:"title" toml:"title"`
	Intro string    `json:"intro,omitempty" yaml:"intro,omitempty" toml:"intro,omitempty"`
	Items []License `json:"items" yaml:"items" toml:"items"`
}

// Site is the whole content document. Nil optional sections are omitted from the
// page and the navigation.
type Site struct {
	Hero      Hero      `json:"hero" yaml:"hero" toml:"hero"`
	About     About     `json:"about" yaml:"about" toml:"about"`
	Skills    Skills    `json:"skills" yaml:"skills" toml:"skills"`
	Projects  Projects  `json:"projects" yaml:"projects" toml:"projects"`
	Interests Interests `json:"interests" yaml:"interests" toml:"interests"`
	Contact   Contact   `json:"contact" yaml:"contact" toml:"contact"`
	Socials   Socials   `json:"socials" yaml:"socials" toml:"socials"`

	Targets    *Targets    `json:"targets,omitempty" yaml:"targets,omitempty" toml:"targets,omitempty"`
	Experience *Experience `json:"experience,omitempty" yaml:"experience,omitempty" toml:"experience,omitempty"`
	Education  *Education  `json:"education,omitempty" yaml:"education,omitempty" toml:"education,omitempty"`
	Licenses   *Licenses   `json:"licenses,omitempty" yaml:"licenses,omitempty" toml:"licenses,omitempty"`
	Highlights *Highlights `json:"highlights,omitempty" yaml:"highlights,omitempty" toml:"highlights,omitempty"`
}
