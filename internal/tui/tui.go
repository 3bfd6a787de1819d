package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/internal/service"
)

type TUI struct {
	services    *service.ClientServices
	downloadDir string
	log         *logger.Logger
}

func New(services *service.ClientServices, downloadDir string, log *logger.Logger) (*TUI, error) {
	if downloadDir == "" {
		downloadDir = "."
	}
	return &TUI{services: services, downloadDir: downloadDir, log: log}, nil
}

// Run drives the portal workflow until the user quits. A quit initiated
// by the user is not an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.downloadDir, t.log)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && result.err != ErrUserQuit {
		return result.err
	}
	return nil
}
