package cli

import (
	"errors"
	"io"

	"github.com/abhishek622/portfolioapp/feedback/pkg/client"
	"github.com/spf13/cobra"
)

// CommentOptions holds flags for the comment and edit commands.
type CommentOptions struct {
	*RootOptions
	Author string
	Text   string
}

// NewCommentCommand creates the comment command.
func NewCommentCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CommentOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "comment <itemType> <itemId>",
		Short: "Leave a comment on an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := itemArgs(args)
			if err != nil {
				return err
			}
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			c, err := e.feedback.AddComment(cmd.Context(), e.session, item, opts.Author, opts.Text)
			if err != nil {
				return err
			}
			return e.out.Print(c, func(w io.Writer) {
				printf(w, "Added comment %s on %s\n", c.ID, item)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Author, "author", "", "display name")
	cmd.Flags().StringVar(&opts.Text, "text", "", "comment text")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

// NewCommentsCommand creates the comments command.
func NewCommentsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <itemType> <itemId>",
		Short: "List the comments of an item, newest first",
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
			comments, err := e.feedback.Comments(cmd.Context(), item)
			if err != nil {
				return err
			}
			return e.out.Print(comments, func(w io.Writer) {
				if len(comments) == 0 {
					printf(w, "No comments yet\n")
					return
				}
				for _, c := range comments {
					edited := ""
					if c.UpdatedAt != nil {
						edited = " (edited)"
					}
					mine := ""
					if c.OwnedBy(e.session.VisitorID) {
						mine = " [yours]"
					}
					printf(w, "%s  %s  %s%s%s\n    %s\n", c.ID, c.Author, c.CreatedAt.Format("2006-01-02 15:04"), edited, mine, c.Text)
				}
			})
		},
	}
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CommentOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <itemType> <itemId> <commentId>",
		Short: "Change the text of one of your comments",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := itemArgs(args)
			if err != nil {
				return err
			}
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			c, err := e.feedback.EditComment(cmd.Context(), e.session, item, args[2], opts.Text)
			if err != nil {
				return ownershipHint(err)
			}
			return e.out.Print(c, func(w io.Writer) {
				printf(w, "Updated comment %s\n", c.ID)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Text, "text", "", "new comment text")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <itemType> <itemId> <commentId>",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(3),
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
			if err := e.feedback.DeleteComment(cmd.Context(), e.session, item, args[2]); err != nil {
				return ownershipHint(err)
			}
			return e.out.Print(map[string]string{"deleted": args[2]}, func(w io.Writer) {
				printf(w, "Deleted comment %s\n", args[2])
			})
		},
	}
}

var errNotYours = errors.New("you can only change your own comments")

func ownershipHint(err error) error {
	if errors.Is(err, client.ErrNotOwner) {
		return errors.Join(errNotYours, err)
	}
	return err
}
