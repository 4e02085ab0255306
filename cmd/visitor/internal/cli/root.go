// Package cli implements the visitor command line: it rates and comments on
// portfolio items as a stable visitor, through the feedback API when it is
// reachable and through a local store otherwise.
package cli

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/pkg/client"
	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/pkg/identity"
	"github.com/abhishek622/portfolioapp/pkg/kv"
	"github.com/abhishek622/portfolioapp/pkg/kv/sqlkv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Mode    string
	API     string
	Data    string
	Timeout time.Duration
	Format  string
	Verbose bool

	open backendOpener
}

// backendOpener opens the visitor's local store. The returned function
// releases it.
type backendOpener func(ctx context.Context, path string) (kv.Backend, func(), error)

func openSQLite(ctx context.Context, path string) (kv.Backend, func(), error) {
	b, err := sqlkv.Open(ctx, sqlkv.DriverSQLite, "file:"+path+"?_busy_timeout=5000")
	if err != nil {
		return nil, nil, err
	}
	return b, func() { _ = b.Close() }, nil
}

// NewRootCommand creates the root command of the visitor CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(openSQLite)
}

func newRootCommand(open backendOpener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "visitor",
		Short: "Rate and comment on portfolio items",
		Long: `Rate and comment on portfolio items as a stable visitor.

Requests go to the feedback API. When it cannot be reached, feedback is
kept in a local store instead, so nothing is lost while offline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			_, err := client.ParseMode(opts.Mode)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Mode, "mode", string(client.ModeRemote), "storage mode (remote|local)")
	cmd.PersistentFlags().StringVar(&opts.API, "api", "http://localhost:3001/api", "feedback API base URL")
	cmd.PersistentFlags().StringVar(&opts.Data, "data", "visitor.db", "local store file")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 3*time.Second, "feedback API request timeout")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewIDCommand(opts))
	cmd.AddCommand(NewRateCommand(opts))
	cmd.AddCommand(NewRatingsCommand(opts))
	cmd.AddCommand(NewCommentCommand(opts))
	cmd.AddCommand(NewCommentsCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))

	return cmd
}

// env is what a command needs to talk to feedback as the current visitor.
type env struct {
	session  model.Session
	feedback *client.Facade
	backend  kv.Backend
	logger   *zap.Logger
	out      *OutputFormatter
	close    func()
}

func (o *RootOptions) logger(cmd *cobra.Command) *zap.Logger {
	level := zapcore.WarnLevel
	if o.Verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(cmd.ErrOrStderr()), level))
}

func (o *RootOptions) env(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()
	logger := o.logger(cmd)
	backend, closeBackend, err := o.open(ctx, o.Data)
	if err != nil {
		return nil, fmt.Errorf("open local store %s: %w", o.Data, err)
	}
	mode, err := client.ParseMode(o.Mode)
	if err != nil {
		closeBackend()
		return nil, err
	}
	visitor := identity.New(backend, logger).GetOrCreate(ctx)
	logger.Debug("Using visitor identity", zap.String("visitorId", string(visitor)))
	return &env{
		session:  model.Session{VisitorID: visitor},
		feedback: client.NewFacade(mode, client.NewRemote(o.API, o.Timeout), client.NewLocal(backend, logger), logger, nil),
		backend:  backend,
		logger:   logger,
		out:      NewOutputFormatter(o.Format, cmd.OutOrStdout()),
		close: func() {
			_ = logger.Sync()
			closeBackend()
		},
	}, nil
}

// itemArgs parses "<itemType> <itemId>".
func itemArgs(args []string) (model.ItemKey, error) {
	item := model.ItemKey{Type: model.ItemType(args[0]), ID: model.ItemID(args[1])}
	if !item.Valid() {
		return item, fmt.Errorf("%w: unknown item %s %q", client.ErrInvalidInput, args[0], args[1])
	}
	return item, nil
}
