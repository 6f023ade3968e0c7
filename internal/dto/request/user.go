package request

// UpdateProfileRequest carries full-overwrite profile semantics: empty
// fields persist as NULL rather than keeping their stored values.
type UpdateProfileRequest struct {
	Name             string `json:"name"`
	ProfileImage     string `json:"profile_image"`
	ContactFacebook  string `json:"contact_facebook"`
	ContactLine      string `json:"contact_line"`
	ContactInstagram string `json:"contact_instagram"`
}
