package models

// Profile is the role and short biography produced by enrichment.
type Profile struct {
	Role string `json:"role"`
	Bio  string `json:"bio"`
}
