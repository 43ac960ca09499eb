package faq

import "time"

// Entry is a question/answer pair shown on the help page.
type Entry struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}
