package model

// Socials holds the café's social media profile URLs.
type Socials struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
}

// BusinessInfo is the singleton record describing the café itself.
type BusinessInfo struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	OpeningHours string  `json:"openingHours"`
	Tagline      string  `json:"tagline"`
	Socials      Socials `json:"socials"`
}

// Hero configures the homepage hero banner. Headline is raw markup and is
// served verbatim; only trusted operators set it through the admin surface.
type Hero struct {
	Badge       string `json:"badge"`
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	Image       string `json:"image"`
}

// Sections toggles which homepage sections render.
type Sections struct {
	Features     bool `json:"features"`
	Popular      bool `json:"popular"`
	Promo        bool `json:"promo"`
	Testimonials bool `json:"testimonials"`
	CTA          bool `json:"cta"`
}

// Promo configures the homepage promotional banner. Title is raw markup,
// served verbatim under the same operator trust boundary as Hero.Headline.
type Promo struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

// HomepageConfig is the singleton record driving the public homepage.
type HomepageConfig struct {
	Hero     Hero     `json:"hero"`
	Sections Sections `json:"sections"`
	Promo    Promo    `json:"promo"`
}

// ContactRequest represents the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// NewsletterRequest represents a newsletter signup.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// ResetRequest gates the destructive reset-all action behind an explicit
// confirmation.
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}
