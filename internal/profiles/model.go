package profiles

import "time"

// Profile is the stored profile record. Fields are optional at the edge:
// anything the user has not filled in stays empty here and is defaulted by
// Normalize before rendering or prompting.
type Profile struct {
	UserID         string    `json:"userId"`
	DisplayName    string    `json:"displayName"`
	Email          string    `json:"email"`
	PhotoURL       string    `json:"photoUrl"`
	Location       string    `json:"location"`
	Bio            string    `json:"bio"`
	Position       string    `json:"position"`
	Institution    string    `json:"institution"`
	GraduationYear string    `json:"graduationYear"`
	LinkedInURL    string    `json:"linkedinUrl"`
	Skills         []string  `json:"skills"`
	Experience     []string  `json:"experience"`
	Education      []string  `json:"education"`
	Languages      []string  `json:"languages"`
	Interests      []string  `json:"interests"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
