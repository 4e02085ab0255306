package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Keys of the single-object browser layout, where every item's list lives
// in one JSON object keyed by "<itemType>_<itemId>".
const (
	LegacyRatingsKey  = "portfolio_ratings"
	LegacyCommentsKey = "portfolio_comments"
)

// ImportReport summarises a legacy import.
type ImportReport struct {
	Items    int
	Imported int
	Skipped  int
}

type legacyRecord struct {
	ID        string      `json:"id"`
	MongoID   string      `json:"_id"`
	ItemID    string      `json:"itemId"`
	ItemType  string      `json:"itemType"`
	UserID    string      `json:"userId"`
	Author    string      `json:"author"`
	Text      string      `json:"text"`
	Rating    float64     `json:"rating"`
	CreatedAt legacyTime  `json:"createdAt"`
	Timestamp legacyTime  `json:"timestamp"`
	UpdatedAt *legacyTime `json:"updatedAt"`
}

func (r legacyRecord) id() string {
	if r.ID != "" {
		return r.ID
	}
	return r.MongoID
}

func (r legacyRecord) created() time.Time {
	if !r.CreatedAt.IsZero() {
		return r.CreatedAt.Time
	}
	return r.Timestamp.Time
}

// legacyTime accepts ISO-8601 strings and Unix milliseconds.
type legacyTime struct {
	time.Time
}

func (t *legacyTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	}
	var ms float64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	t.Time = time.UnixMilli(int64(ms)).UTC()
	return nil
}

// ImportLegacyRatings rewrites the single-object ratings layout into per-item
// lists. A visitor keeps one rating per item; a later entry wins.
func ImportLegacyRatings(ctx context.Context, store *Store[model.Rating], raw []byte, logger *zap.Logger) (ImportReport, error) {
	return importLegacy(ctx, raw, logger, func(ctx context.Context, item model.ItemKey, recs []legacyRecord) (int, int, error) {
		ratings := make([]model.Rating, 0, len(recs))
		skipped := 0
		for _, r := range recs {
			value := model.RatingValue(r.Rating)
			if float64(value) != r.Rating || !value.Valid() || r.UserID == "" {
				skipped++
				continue
			}
			rating := model.Rating{
				ID:        r.id(),
				ItemID:    item.ID,
				ItemType:  item.Type,
				VisitorID: model.VisitorID(r.UserID),
				Value:     value,
				CreatedAt: r.created(),
			}
			rating.UpdatedAt = rating.CreatedAt
			if r.UpdatedAt != nil && !r.UpdatedAt.IsZero() {
				rating.UpdatedAt = r.UpdatedAt.Time
			}
			ratings = append(ratings, rating)
		}
		added, err := store.Merge(ctx, item, ratings, func(existing, incoming model.Rating) bool {
			return existing.VisitorID == incoming.VisitorID
		})
		return added, skipped, err
	})
}

// ImportLegacyComments rewrites the single-object comments layout into
// per-item lists. Comments already present with the same id are replaced.
// Comments without an id get one derived from their content, so importing
// them again does not duplicate them.
func ImportLegacyComments(ctx context.Context, store *Store[model.Comment], raw []byte, logger *zap.Logger) (ImportReport, error) {
	return importLegacy(ctx, raw, logger, func(ctx context.Context, item model.ItemKey, recs []legacyRecord) (int, int, error) {
		comments := make([]model.Comment, 0, len(recs))
		skipped := 0
		for _, r := range recs {
			text := strings.TrimSpace(r.Text)
			if text == "" {
				skipped++
				continue
			}
			comment := model.Comment{
				ID:        legacyCommentID(item, r, text),
				ItemID:    item.ID,
				ItemType:  item.Type,
				VisitorID: model.VisitorID(r.UserID),
				Author:    strings.TrimSpace(r.Author),
				Text:      text,
				CreatedAt: r.created(),
			}
			if r.UpdatedAt != nil && !r.UpdatedAt.IsZero() {
				updated := r.UpdatedAt.Time
				comment.UpdatedAt = &updated
			}
			comments = append(comments, comment)
		}
		added, err := store.Merge(ctx, item, comments, func(existing, incoming model.Comment) bool {
			return incoming.ID != "" && existing.ID == incoming.ID
		})
		return added, skipped, err
	})
}

func legacyCommentID(item model.ItemKey, r legacyRecord, text string) string {
	if id := r.id(); id != "" {
		return id
	}
	created := ""
	if t := r.created(); !t.IsZero() {
		created = strconv.FormatInt(t.UnixMilli(), 10)
	}
	name := strings.Join([]string{item.String(), r.UserID, created, text}, "\x00")
	return "legacy-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

type importFunc func(ctx context.Context, item model.ItemKey, recs []legacyRecord) (added, skipped int, err error)

func importLegacy(ctx context.Context, raw []byte, logger *zap.Logger, apply importFunc) (ImportReport, error) {
	var report ImportReport
	var layout map[string][]json.RawMessage
	if err := json.Unmarshal(raw, &layout); err != nil {
		return report, fmt.Errorf("decode legacy layout: %w", err)
	}

	keys := make([]string, 0, len(layout))
	for k := range layout {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		item, ok := ParseLegacyKey(k)
		if !ok {
			logger.Warn("Skipping unknown legacy key", zap.String("key", k))
			report.Skipped += len(layout[k])
			continue
		}
		recs := make([]legacyRecord, 0, len(layout[k]))
		for _, entry := range layout[k] {
			var r legacyRecord
			if err := json.Unmarshal(entry, &r); err != nil {
				logger.Warn("Skipping corrupt legacy record", zap.String("key", k), zap.Error(err))
				report.Skipped++
				continue
			}
			recs = append(recs, r)
		}
		added, skipped, err := apply(ctx, item, recs)
		if err != nil {
			return report, err
		}
		report.Items++
		report.Imported += added
		report.Skipped += skipped
	}
	return report, nil
}

// ParseLegacyKey splits a "<itemType>_<itemId>" key.
func ParseLegacyKey(k string) (model.ItemKey, bool) {
	t, id, ok := strings.Cut(k, "_")
	if !ok {
		return model.ItemKey{}, false
	}
	item := model.ItemKey{Type: model.ItemType(t), ID: model.ItemID(id)}
	return item, item.Valid()
}
