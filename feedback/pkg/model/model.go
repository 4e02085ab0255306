package model

import "time"

// VisitorID is the client-issued identifier of a visitor.
type VisitorID string

// ItemType defines the type of a portfolio item. Together with ItemID
// identifies a unique item across all types.
type ItemType string

// Existing item types.
const (
	ItemTypeProject     = ItemType("project")
	ItemTypeAchievement = ItemType("achievement")
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == ItemTypeProject || t == ItemTypeAchievement
}

type ItemID string

// ItemKey is the composite key of a portfolio item.
type ItemKey struct {
	Type ItemType
	ID   ItemID
}

func (k ItemKey) Valid() bool {
	return k.Type.Valid() && k.ID != ""
}

func (k ItemKey) String() string {
	return string(k.Type) + "_" + string(k.ID)
}

// Kind is the record namespace inside the store.
type Kind string

// Record kinds.
const (
	KindComment      = Kind("comments")
	KindRating       = Kind("ratings")
	KindMessage      = Kind("messages")
	KindSiteFeedback = Kind("feedback")
)

// Session carries the identity of the visitor performing an operation.
type Session struct {
	VisitorID VisitorID
}

// Comment is a free-text note left by a visitor on an item.
type Comment struct {
	ID        string     `json:"id"`
	ItemID    ItemID     `json:"itemId"`
	ItemType  ItemType   `json:"itemType"`
	VisitorID VisitorID  `json:"userId"`
	Author    string     `json:"author"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (c Comment) Identity() (string, time.Time) {
	return c.ID, c.CreatedAt
}

func (c Comment) WithIdentity(id string, createdAt time.Time) Comment {
	c.ID = id
	c.CreatedAt = createdAt
	return c
}

// OwnedBy reports whether the comment was posted by the visitor.
func (c Comment) OwnedBy(v VisitorID) bool {
	return v != "" && c.VisitorID == v
}

// RatingValue defines a value of a rating record.
type RatingValue int

// Rating bounds.
const (
	MinRating = RatingValue(1)
	MaxRating = RatingValue(5)
)

// Valid reports whether v is within [MinRating, MaxRating].
func (v RatingValue) Valid() bool {
	return v >= MinRating && v <= MaxRating
}

// Rating is a visitor's star rating of an item. There is at most one rating
// per item and visitor.
type Rating struct {
	ID        string      `json:"id"`
	ItemID    ItemID      `json:"itemId"`
	ItemType  ItemType    `json:"itemType"`
	VisitorID VisitorID   `json:"userId"`
	Value     RatingValue `json:"rating"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (r Rating) Identity() (string, time.Time) {
	return r.ID, r.CreatedAt
}

// A new rating is last updated when it is created.
func (r Rating) WithIdentity(id string, createdAt time.Time) Rating {
	r.ID = id
	r.CreatedAt = createdAt
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = createdAt
	}
	return r
}
