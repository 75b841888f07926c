package domain

import "time"

// Render is a still-image gallery entry. JSON field names match what the
// frontend consumes, regardless of the column names used by the store.
type Render struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	ImageURL     string    `json:"imageUrl"`
	CloudinaryID string    `json:"cloudinaryId"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Model is a 3D asset gallery entry. The thumbnail fields are either both
// set or both nil.
type Model struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	FileURL               string    `json:"fileUrl"`
	CloudinaryID          string    `json:"cloudinaryId"`
	Type                  string    `json:"type"`
	ThumbnailURL          *string   `json:"thumbnailUrl"`
	ThumbnailCloudinaryID *string   `json:"thumbnailCloudinaryId"`
	CreatedAt             time.Time `json:"createdAt"`
}

// Message is a contact form submission. IsRead has no toggle endpoint yet.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
