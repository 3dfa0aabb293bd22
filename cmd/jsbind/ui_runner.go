package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jsbind/internal/driver"
	"jsbind/internal/source"
	"jsbind/internal/ui"
)

type analyzeOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

// runAnalyzeWithUI runs AnalyzeFiles while a Bubble Tea program renders its
// progress events. The program ends when the analysis closes the channel.
func runAnalyzeWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan analyzeOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.AnalyzeFiles(ctx, files, opts)
		outcomeCh <- analyzeOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// если UI закрыли раньше времени, воркеры не должны блокироваться на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
