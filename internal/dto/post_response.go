package dto

type PostResponse struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Author    string   `json:"author"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"created_at"`
	EditedAt  *int64   `json:"edited_at,omitempty"`
}
