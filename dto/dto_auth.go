package dto

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// NewRequestResponse is returned after a successful submission. Redirect is
// the client-side path to navigate to.
type NewRequestResponse struct {
	ID       string `json:"id"`
	Redirect string `json:"redirect"`
}
