package app

import (
	"context"
	"fmt"

	"github.com/vk/regbuild/internal/report"
)

// Run executes the configured command. The build command merges and
// persists; the query commands merge in memory and never write.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	res, err := a.Build(ctx, a.config.Command == CommandBuild)
	if err != nil {
		return err
	}

	switch a.config.Command {
	case CommandBuild:
		err = report.Build(a.outW, res.Stats, report.Options{
			Format:  a.config.ReportFormat,
			Outputs: res.Written,
		})
	case CommandShow:
		name := a.config.Args[0]
		def, findErr := res.Document.Find(name)
		if findErr != nil {
			return findErr
		}
		err = report.Definition(a.outW, def, a.config.ReportFormat)
	case CommandSearch:
		err = report.Definitions(a.outW, res.Document.Search(a.config.Args[0]), a.config.ReportFormat)
	case CommandList:
		err = report.Definitions(a.outW, res.Document.ByCategory(a.config.Args[0]), a.config.ReportFormat)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
