package model

// Request and response bodies of the feedback REST API.

// SubmitRatingRequest is the body of POST /ratings.
type SubmitRatingRequest struct {
	ItemID   ItemID      `json:"itemId" validate:"required"`
	ItemType ItemType    `json:"itemType" validate:"required,oneof=project achievement"`
	UserID   VisitorID   `json:"userId" validate:"required"`
	Rating   RatingValue `json:"rating" validate:"required,gte=1,lte=5"`
}

// SubmitRatingResponse is the upserted rating together with the item's
// fresh aggregate.
type SubmitRatingResponse struct {
	Rating
	Aggregate Aggregate `json:"aggregate"`
}

// AddCommentRequest is the body of POST /comments.
type AddCommentRequest struct {
	ItemID   ItemID    `json:"itemId" validate:"required"`
	ItemType ItemType  `json:"itemType" validate:"required,oneof=project achievement"`
	UserID   VisitorID `json:"userId" validate:"required"`
	Author   string    `json:"author" validate:"required,max=100"`
	Text     string    `json:"text" validate:"required,max=2000"`
}

// EditCommentRequest is the body of PUT /comments/{id}.
type EditCommentRequest struct {
	ItemID   ItemID    `json:"itemId" validate:"required"`
	ItemType ItemType  `json:"itemType" validate:"required,oneof=project achievement"`
	UserID   VisitorID `json:"userId" validate:"required"`
	Text     string    `json:"text" validate:"required,max=2000"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendMessageRequest is the body of POST /messages.
type SendMessageRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Message     string `json:"message" validate:"required,max=2000"`
	ProjectName string `json:"projectName" validate:"max=200"`
	ProjectID   string `json:"projectId" validate:"max=100"`
}

// SubmitSiteFeedbackRequest is the body of POST /feedback.
type SubmitSiteFeedbackRequest struct {
	UserName    string `json:"userName" validate:"required,max=100"`
	Feedback    string `json:"feedback" validate:"required,max=2000"`
	ProjectName string `json:"projectName" validate:"max=200"`
	ProjectID   string `json:"projectId" validate:"max=100"`
}
