package model

import (
	catalogmodel "github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
)

// ItemDetails includes a catalog item, its rating aggregate and its
// comments, newest first.
type ItemDetails struct {
	Item     *catalogmodel.Item      `json:"item"`
	Rating   feedbackmodel.Aggregate `json:"rating"`
	Comments []feedbackmodel.Comment `json:"comments"`
}

// ItemSummary is a catalog item with its rating aggregate.
type ItemSummary struct {
	Item   *catalogmodel.Item      `json:"item"`
	Rating feedbackmodel.Aggregate `json:"rating"`
}
