package model

import (
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
)

// Category tells which side of the portfolio an item belongs to.
type Category string

// Existing categories.
const (
	CategoryDeveloper = Category("developer")
	CategoryEditor    = Category("editor")
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryDeveloper || c == CategoryEditor
}

// Item defines a portfolio item: a project or an achievement. Fields that do
// not apply to the item's type are left empty.
type Item struct {
	ID           feedbackmodel.ItemID   `json:"id" yaml:"id"`
	Type         feedbackmodel.ItemType `json:"itemType" yaml:"itemType"`
	Category     Category               `json:"type" yaml:"type"`
	Title        string                 `json:"title,omitempty" yaml:"title"`
	Name         string                 `json:"name,omitempty" yaml:"name"`
	Description  string                 `json:"description" yaml:"description"`
	Date         string                 `json:"date,omitempty" yaml:"date"`
	Year         string                 `json:"year,omitempty" yaml:"year"`
	Platform     string                 `json:"platform,omitempty" yaml:"platform"`
	Position     string                 `json:"position,omitempty" yaml:"position"`
	Skill        string                 `json:"skill,omitempty" yaml:"skill"`
	SiteURL      string                 `json:"siteUrl,omitempty" yaml:"siteUrl"`
	GithubURL    string                 `json:"githubUrl,omitempty" yaml:"githubUrl"`
	LinkedinURL  string                 `json:"linkedinUrl,omitempty" yaml:"linkedinUrl"`
	Thumbnail    string                 `json:"thumbnail,omitempty" yaml:"thumbnail"`
	Images       []string               `json:"images,omitempty" yaml:"images"`
	Technologies []string               `json:"technologies,omitempty" yaml:"technologies"`
}

// Key returns the item's composite key.
func (i *Item) Key() feedbackmodel.ItemKey {
	return feedbackmodel.ItemKey{Type: i.Type, ID: i.ID}
}

// DisplayName is the title of a project or the name of an achievement.
func (i *Item) DisplayName() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Name
}

// SortDate is the date items are ordered by, newest first. Achievements
// without a date fall back to their year.
func (i *Item) SortDate() string {
	if i.Date != "" {
		return i.Date
	}
	return i.Year
}

// Catalog is the seed file layout.
type Catalog struct {
	Projects     []*Item `yaml:"projects"`
	Achievements []*Item `yaml:"achievements"`
}

// Items returns all catalog entries with their item type set.
func (c *Catalog) Items() []*Item {
	items := make([]*Item, 0, len(c.Projects)+len(c.Achievements))
	for _, p := range c.Projects {
		p.Type = feedbackmodel.ItemTypeProject
		items = append(items, p)
	}
	for _, a := range c.Achievements {
		a.Type = feedbackmodel.ItemTypeAchievement
		items = append(items, a)
	}
	return items
}
