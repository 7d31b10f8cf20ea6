package model

// Testimonial represents a customer quote shown on the homepage. Testimonials
// are seed data only; no mutation operations exist for them.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image"`
}
