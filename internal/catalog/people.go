package catalog

// Testimonial is a customer quote shown on the home page.
// Rating is conventionally 1-5 stars.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
	Content string `json:"content"`
	Avatar  string `json:"avatar"`
	Rating  int    `json:"rating"`
}

// SocialLinks holds optional contact references for a team member.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Email    string `json:"email,omitempty"`
}

// TeamMember is shown on the about page.
type TeamMember struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Role   string      `json:"role"`
	Image  string      `json:"image"`
	Bio    string      `json:"bio"`
	Social SocialLinks `json:"social,omitempty"`
}
