package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/spf13/cobra"
)

// NewIDCommand creates the id command.
func NewIDCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "id",
		Short: "Print the visitor id, creating it on first use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.env(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			return e.out.Print(map[string]string{"userId": string(e.session.VisitorID)}, func(w io.Writer) {
				printf(w, "%s\n", e.session.VisitorID)
			})
		},
	}
}

// NewRateCommand creates the rate command.
func NewRateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <itemType> <itemId> <rating>",
		Short: "Rate an item from 1 to 5, replacing your previous rating",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := itemArgs(args)
			if err != nil {
				return err
			}
			value, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid rating %q: %w", args[2], err)
			}
			e, err := rootOpts.env(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			rating, agg, err := e.feedback.SubmitRating(cmd.Context(), e.session, item, model.RatingValue(value))
			if err != nil {
				return err
			}
			return e.out.Print(model.SubmitRatingResponse{Rating: rating, Aggregate: agg}, func(w io.Writer) {
				printf(w, "Rated %s: %d (average %s from %d ratings)\n", item, rating.Value, agg, agg.Count)
			})
		},
	}
}

// NewRatingsCommand creates the ratings command.
func NewRatingsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ratings <itemType> <itemId>",
		Short: "Show the ratings of an item and their average",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := itemArgs(args)
			if err != nil {
				return err
			}
			e, err := rootOpts.env(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			ratings, agg, err := e.feedback.Ratings(cmd.Context(), item)
			if err != nil {
				return err
			}
			result := struct {
				Ratings   []model.Rating  `json:"ratings"`
				Aggregate model.Aggregate `json:"aggregate"`
			}{ratings, agg}
			return e.out.Print(result, func(w io.Writer) {
				if agg.Count == 0 {
					printf(w, "No ratings yet\n")
					return
				}
				printf(w, "Average %s from %d ratings\n", agg, agg.Count)
				for _, r := range ratings {
					mine := ""
					if r.VisitorID == e.session.VisitorID {
						mine = " (you)"
					}
					printf(w, "  %d  %s%s\n", r.Value, r.CreatedAt.Format("2006-01-02"), mine)
				}
			})
		},
	}
}
