package model

import "time"

// Message is a contact message a visitor sent to the site owner, optionally
// about one project.
type Message struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Message     string    `json:"message"`
	ProjectName string    `json:"projectName,omitempty"`
	ProjectID   string    `json:"projectId,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read"`
}

func (m Message) Identity() (string, time.Time) {
	return m.ID, m.Timestamp
}

func (m Message) WithIdentity(id string, createdAt time.Time) Message {
	m.ID = id
	m.Timestamp = createdAt
	return m
}

// SiteFeedback is general feedback about the site left by a visitor.
type SiteFeedback struct {
	ID          string    `json:"id"`
	UserName    string    `json:"userName"`
	Feedback    string    `json:"feedback"`
	ProjectName string    `json:"projectName,omitempty"`
	ProjectID   string    `json:"projectId,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read"`
}

func (f SiteFeedback) Identity() (string, time.Time) {
	return f.ID, f.Timestamp
}

func (f SiteFeedback) WithIdentity(id string, createdAt time.Time) SiteFeedback {
	f.ID = id
	f.Timestamp = createdAt
	return f
}
