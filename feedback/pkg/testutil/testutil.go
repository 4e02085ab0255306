package testutil

import (
	"net/http"

	"github.com/abhishek622/portfolioapp/feedback/internal/controller/feedback"
	httphandler "github.com/abhishek622/portfolioapp/feedback/internal/handler/http"
	"github.com/abhishek622/portfolioapp/feedback/internal/repository"
	"github.com/abhishek622/portfolioapp/pkg/kv"
	"github.com/abhishek622/portfolioapp/pkg/kv/memory"
	"go.uber.org/zap"
)

// APIPrefix is the path prefix the test server mounts the feedback API on.
const APIPrefix = "/api"

// NewTestFeedbackHTTPServer creates a feedback HTTP handler over an in-memory
// backend to be used in tests.
func NewTestFeedbackHTTPServer() http.Handler {
	return NewTestFeedbackHTTPServerWithBackend(memory.New())
}

// NewTestFeedbackHTTPServerWithBackend creates a feedback HTTP handler over
// backend to be used in tests.
func NewTestFeedbackHTTPServerWithBackend(backend kv.Backend) http.Handler {
	logger := zap.NewNop()
	ctrl := feedback.New(repository.NewComments(backend, logger), repository.NewRatings(backend, logger), nil, logger)
	inbox := feedback.NewInbox(repository.NewMessages(backend, logger), repository.NewSiteFeedback(backend, logger), logger, nil)
	mux := http.NewServeMux()
	httphandler.New(ctrl, logger).WithInbox(inbox).Register(mux, APIPrefix)
	return mux
}
