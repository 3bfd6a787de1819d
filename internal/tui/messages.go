package tui

import (
	"github.com/wanpc3/Data-Privacy-Protector/internal/service"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// Async results carry the token of the context they were issued for; the
// orchestrator drops any result whose token no longer matches the current
// state, so a response arriving after cancel is safely ignored.

type registryLoadedMsg struct {
	err error
}

type uploadDoneMsg struct {
	token   string
	session *service.ReviewSession
	err     error
}

type proceedDoneMsg struct {
	token    string
	filename string
	err      error
}

type toggleDoneMsg struct {
	fileID string
	err    error
}

type auditLoadedMsg struct {
	fileID string
	entry  models.AuditLogEntry
	err    error
}

type partnerSavedMsg struct {
	err error
}

type partnerDeletedMsg struct {
	err error
}

type downloadDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
