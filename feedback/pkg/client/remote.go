package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/opentracing/opentracing-go"
)

// Remote talks to the feedback REST API.
type Remote struct {
	baseURL string
	http    *http.Client
}

// NewRemote creates a client of the API rooted at baseURL (e.g.
// "http://localhost:3001/api"). A zero timeout leaves requests bounded only
// by their context.
func NewRemote(baseURL string, timeout time.Duration) *Remote {
	c := cleanhttp.DefaultClient()
	c.Timeout = timeout
	return &Remote{baseURL: strings.TrimSuffix(baseURL, "/"), http: c}
}

func (r *Remote) Ratings(ctx context.Context, item model.ItemKey) ([]model.Rating, model.Aggregate, error) {
	var ratings []model.Rating
	if err := r.do(ctx, "list ratings", http.MethodGet, "/ratings", itemQuery(item), nil, &ratings); err != nil {
		return nil, model.Aggregate{}, err
	}
	if ratings == nil {
		ratings = []model.Rating{}
	}
	return ratings, model.ComputeAggregate(ratings), nil
}

func (r *Remote) SubmitRating(ctx context.Context, sess model.Session, item model.ItemKey, value model.RatingValue) (model.Rating, model.Aggregate, error) {
	body := model.SubmitRatingRequest{ItemID: item.ID, ItemType: item.Type, UserID: sess.VisitorID, Rating: value}
	var resp model.SubmitRatingResponse
	if err := r.do(ctx, "submit rating", http.MethodPost, "/ratings", nil, body, &resp); err != nil {
		return model.Rating{}, model.Aggregate{}, err
	}
	return resp.Rating, resp.Aggregate, nil
}

func (r *Remote) Comments(ctx context.Context, item model.ItemKey) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.do(ctx, "list comments", http.MethodGet, "/comments", itemQuery(item), nil, &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}

func (r *Remote) AddComment(ctx context.Context, sess model.Session, item model.ItemKey, author, text string) (model.Comment, error) {
	body := model.AddCommentRequest{ItemID: item.ID, ItemType: item.Type, UserID: sess.VisitorID, Author: author, Text: text}
	var comment model.Comment
	if err := r.do(ctx, "add comment", http.MethodPost, "/comments", nil, body, &comment); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *Remote) EditComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID, text string) (model.Comment, error) {
	body := model.EditCommentRequest{ItemID: item.ID, ItemType: item.Type, UserID: sess.VisitorID, Text: text}
	var comment model.Comment
	if err := r.do(ctx, "edit comment", http.MethodPut, "/comments/"+url.PathEscape(commentID), nil, body, &comment); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *Remote) DeleteComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID string) error {
	q := itemQuery(item)
	q.Set("userId", string(sess.VisitorID))
	return r.do(ctx, "delete comment", http.MethodDelete, "/comments/"+url.PathEscape(commentID), q, nil, nil)
}

func itemQuery(item model.ItemKey) url.Values {
	return url.Values{"itemId": {string(item.ID)}, "itemType": {string(item.Type)}}
}

func (r *Remote) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	u := r.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if span := opentracing.SpanFromContext(ctx); span != nil {
		_ = opentracing.GlobalTracer().Inject(span.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func statusError(op string, resp *http.Response) error {
	var body model.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err != nil || body.Error == "" {
		// Not an answer of the feedback API, e.g. a proxy or a wrong base URL.
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}
	msg := body.Error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%s: %w", op, remoteError(ErrInvalidInput, msg))
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", op, remoteError(ErrNotOwner, msg))
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, remoteError(ErrNotFound, msg))
	default:
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}
}

// remoteError keeps the server's message while matching the sentinel.
func remoteError(sentinel error, msg string) error {
	prefix := sentinel.Error() + ": "
	msg = strings.TrimPrefix(msg, prefix)
	if msg == sentinel.Error() {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}
