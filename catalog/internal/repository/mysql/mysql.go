package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhishek622/portfolioapp/catalog/internal/repository"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"

	_ "github.com/go-sql-driver/mysql"
)

const tracerID = "catalog-repository-mysql"

const schema = `CREATE TABLE IF NOT EXISTS catalog_items (
	item_type    VARCHAR(32)  NOT NULL,
	id           VARCHAR(128) NOT NULL,
	category     VARCHAR(32)  NOT NULL,
	title        VARCHAR(255) NOT NULL DEFAULT '',
	name         VARCHAR(255) NOT NULL DEFAULT '',
	description  TEXT         NOT NULL,
	date         VARCHAR(32)  NOT NULL DEFAULT '',
	year         VARCHAR(32)  NOT NULL DEFAULT '',
	platform     VARCHAR(255) NOT NULL DEFAULT '',
	position     VARCHAR(255) NOT NULL DEFAULT '',
	skill        VARCHAR(255) NOT NULL DEFAULT '',
	site_url     TEXT         NOT NULL,
	github_url   TEXT         NOT NULL,
	linkedin_url TEXT         NOT NULL,
	thumbnail    TEXT         NOT NULL,
	images       JSON         NOT NULL,
	technologies JSON         NOT NULL,
	PRIMARY KEY (item_type, id)
)`

const columns = `item_type, id, category, title, name, description, date, year, platform,
	position, skill, site_url, github_url, linkedin_url, thumbnail, images, technologies`

// Repository defines a MySQL-based catalog repository.
type Repository struct {
	db *sqlx.DB
}

// New creates a new MySQL-based repository and makes sure the catalog table
// exists.
func New(ctx context.Context, dsn string) (*Repository, error) {
	db, err := sqlx.ConnectContext(ctx, "mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create catalog table: %w", err)
	}
	return &Repository{db}, nil
}

// Close closes the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

type row struct {
	ItemType     string `db:"item_type"`
	ID           string `db:"id"`
	Category     string `db:"category"`
	Title        string `db:"title"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	Date         string `db:"date"`
	Year         string `db:"year"`
	Platform     string `db:"platform"`
	Position     string `db:"position"`
	Skill        string `db:"skill"`
	SiteURL      string `db:"site_url"`
	GithubURL    string `db:"github_url"`
	LinkedinURL  string `db:"linkedin_url"`
	Thumbnail    string `db:"thumbnail"`
	Images       []byte `db:"images"`
	Technologies []byte `db:"technologies"`
}

func (r row) item() (*model.Item, error) {
	item := &model.Item{
		ID:          feedbackmodel.ItemID(r.ID),
		Type:        feedbackmodel.ItemType(r.ItemType),
		Category:    model.Category(r.Category),
		Title:       r.Title,
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date,
		Year:        r.Year,
		Platform:    r.Platform,
		Position:    r.Position,
		Skill:       r.Skill,
		SiteURL:     r.SiteURL,
		GithubURL:   r.GithubURL,
		LinkedinURL: r.LinkedinURL,
		Thumbnail:   r.Thumbnail,
	}
	if err := json.Unmarshal(r.Images, &item.Images); err != nil {
		return nil, fmt.Errorf("decode images of %s: %w", item.Key(), err)
	}
	if err := json.Unmarshal(r.Technologies, &item.Technologies); err != nil {
		return nil, fmt.Errorf("decode technologies of %s: %w", item.Key(), err)
	}
	return item, nil
}

// Get retrieves a catalog item by its key.
func (r *Repository) Get(ctx context.Context, key feedbackmodel.ItemKey) (*model.Item, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	var res row
	err := r.db.GetContext(ctx, &res, "SELECT "+columns+" FROM catalog_items WHERE item_type = ? AND id = ?", key.Type, key.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res.item()
}

// List returns every stored item of the given type. An empty type matches
// all items.
func (r *Repository) List(ctx context.Context, itemType feedbackmodel.ItemType) ([]*model.Item, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/List")
	defer span.End()

	var rows []row
	var err error
	if itemType == "" {
		err = r.db.SelectContext(ctx, &rows, "SELECT "+columns+" FROM catalog_items")
	} else {
		err = r.db.SelectContext(ctx, &rows, "SELECT "+columns+" FROM catalog_items WHERE item_type = ?", itemType)
	}
	if err != nil {
		return nil, err
	}
	items := make([]*model.Item, 0, len(rows))
	for _, res := range rows {
		item, err := res.item()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Put adds or replaces a catalog item.
func (r *Repository) Put(ctx context.Context, item *model.Item) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()

	images, err := json.Marshal(nonNil(item.Images))
	if err != nil {
		return err
	}
	technologies, err := json.Marshal(nonNil(item.Technologies))
	if err != nil {
		return err
	}
	_, err = r.db.NamedExecContext(ctx, `INSERT INTO catalog_items (`+columns+`) VALUES (
		:item_type, :id, :category, :title, :name, :description, :date, :year, :platform,
		:position, :skill, :site_url, :github_url, :linkedin_url, :thumbnail, :images, :technologies)
		ON DUPLICATE KEY UPDATE
		category = VALUES(category), title = VALUES(title), name = VALUES(name),
		description = VALUES(description), date = VALUES(date), year = VALUES(year),
		platform = VALUES(platform), position = VALUES(position), skill = VALUES(skill),
		site_url = VALUES(site_url), github_url = VALUES(github_url),
		linkedin_url = VALUES(linkedin_url), thumbnail = VALUES(thumbnail),
		images = VALUES(images), technologies = VALUES(technologies)`,
		row{
			ItemType:     string(item.Type),
			ID:           string(item.ID),
			Category:     string(item.Category),
			Title:        item.Title,
			Name:         item.Name,
			Description:  item.Description,
			Date:         item.Date,
			Year:         item.Year,
			Platform:     item.Platform,
			Position:     item.Position,
			Skill:        item.Skill,
			SiteURL:      item.SiteURL,
			GithubURL:    item.GithubURL,
			LinkedinURL:  item.LinkedinURL,
			Thumbnail:    item.Thumbnail,
			Images:       images,
			Technologies: technologies,
		})
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
