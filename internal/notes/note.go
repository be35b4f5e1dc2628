package notes

import (
	"encoding/json"
	"time"
)

// Note is a server-persisted title/content record. ID, CreatedAt and
// UpdatedAt are assigned by the API and never generated here.
type Note struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

type noteWire struct {
	MongoID   string    `json:"_id"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UnmarshalJSON accepts the identifier as either "_id" or "id".
func (n *Note) UnmarshalJSON(data []byte) error {
	var w noteWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	id := w.MongoID
	if id == "" {
		id = w.ID
	}
	*n = Note{
		ID:        id,
		Title:     w.Title,
		Content:   w.Content,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	return nil
}

// Draft is the body of a create request.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
