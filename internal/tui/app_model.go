package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/internal/service"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

var ErrUserQuit = errors.New("user quit")

type phase int

const (
	phaseLoading phase = iota
	phaseError
	phaseReady
)

// modal is a tagged enum: at most one overlay workflow is active at a
// time, so a new modal cannot open while another is in progress.
type modal int

const (
	modalNone modal = iota
	modalUpload
	modalReview
	modalAudit
	modalAddPartner
	modalEditPartner
	modalViewPartner
)

type appModel struct {
	ctx         context.Context
	services    *service.ClientServices
	downloadDir string
	log         *logger.Logger

	phase    phase
	modal    modal
	loadErr  error
	snapshot service.Snapshot

	dashboard dashboardModel
	upload    uploadModel
	review    reviewModel
	audit     auditModel
	form      partnerFormModel
	detail    partnerDetailModel

	// pendingUpload identifies the upload whose result is still awaited;
	// results stamped with any other token are stale and dropped.
	pendingUpload string

	err          error
	showError    bool
	errorMessage string
	showConfirm  bool
	confirmName  string
	pendingDel   string
}

func newAppModel(ctx context.Context, services *service.ClientServices, downloadDir string, log *logger.Logger) appModel {
	return appModel{
		ctx:         ctx,
		services:    services,
		downloadDir: downloadDir,
		log:         log,
		phase:       phaseLoading,
		dashboard:   newDashboardModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.dashboard.spinner.Tick, m.cmdRefresh())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorMessage = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDel == "" {
					return m, nil
				}
				return m, m.cmdDeletePartner(m.pendingDel)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDel = ""
			}
			return m, nil
		}
	case registryLoadedMsg:
		m.dashboard.refreshing = false
		m.snapshot = m.services.Registry.Snapshot()
		m.dashboard.clampFileIdx(m.snapshot)
		if msg.err != nil {
			if !m.services.Registry.Loaded() {
				m.phase = phaseError
				m.loadErr = msg.err
				return m, nil
			}
			m.showErrorf("Refresh failed, showing last known data: %s", msg.err)
			return m, nil
		}
		m.phase = phaseReady
		m.loadErr = nil
		return m, nil
	case uploadDoneMsg:
		if msg.token != m.pendingUpload {
			return m, nil
		}
		m.pendingUpload = ""
		m.upload.analyzing = false
		if msg.err != nil {
			m.showErrorf("Upload failed: %s", msg.err)
			return m, nil
		}
		m.snapshot = m.services.Registry.Snapshot()
		m.review = newReviewModel(msg.session)
		m.modal = modalReview
		return m, nil
	case proceedDoneMsg:
		if m.review.session == nil || m.review.session.Token != msg.token {
			return m, nil
		}
		m.review.submitting = false
		if msg.err != nil {
			m.showErrorf("Anonymization failed: %s", msg.err)
			return m, nil
		}
		m.review.session = nil
		m.modal = modalNone
		m.snapshot = m.services.Registry.Snapshot()
		m.dashboard.clampFileIdx(m.snapshot)
		m.dashboard.status = msg.filename + " anonymized"
		return m, cmdClearStatus()
	case toggleDoneMsg:
		m.snapshot = m.services.Registry.Snapshot()
		m.dashboard.clampFileIdx(m.snapshot)
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrToggleInFlight) {
				m.dashboard.status = "State change already in progress"
				return m, cmdClearStatus()
			}
			m.showErrorf("State change failed: %s", msg.err)
		}
		return m, nil
	case auditLoadedMsg:
		if m.modal != modalAudit || m.audit.fileID != msg.fileID {
			return m, nil
		}
		m.audit.loading = false
		if msg.err != nil {
			m.modal = modalNone
			m.showErrorf("Audit log unavailable: %s", msg.err)
			return m, nil
		}
		m.audit.entry = msg.entry
		return m, nil
	case partnerSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf("Save failed: %s", msg.err)
			return m, nil
		}
		m.modal = modalNone
		m.snapshot = m.services.Registry.Snapshot()
		m.dashboard.clampFileIdx(m.snapshot)
		return m, nil
	case partnerDeletedMsg:
		m.pendingDel = ""
		m.snapshot = m.services.Registry.Snapshot()
		m.dashboard.clampFileIdx(m.snapshot)
		if msg.err != nil {
			m.showErrorf("Delete failed: %s", msg.err)
		}
		return m, nil
	case downloadDoneMsg:
		if msg.err != nil {
			m.showErrorf("Download failed: %s", msg.err)
			return m, nil
		}
		m.dashboard.status = "Saved " + msg.path
		return m, cmdClearStatus()
	case copiedMsg:
		m.dashboard.status = "Link copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.dashboard.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.phase == phaseLoading || m.dashboard.refreshing || m.upload.analyzing {
			var cmd tea.Cmd
			m.dashboard.spinner, cmd = m.dashboard.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.phase {
	case phaseLoading:
		return m, nil
	case phaseError:
		return m.updateLoadError(msg)
	}

	switch m.modal {
	case modalNone:
		return m.updateDashboard(msg)
	case modalUpload:
		return m.updateUpload(msg)
	case modalReview:
		return m.updateReview(msg)
	case modalAudit:
		return m.updateAudit(msg)
	case modalAddPartner, modalEditPartner:
		return m.updateForm(msg)
	case modalViewPartner:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch {
	case m.phase == phaseLoading:
		body = renderPage("Data Privacy Protector", m.dashboard.spinner.View()+" Loading partners...", "")
	case m.phase == phaseError:
		body = renderPage("Data Privacy Protector",
			errorStyle.Render("Could not reach the portal")+"\n\n"+m.loadErr.Error(),
			"r retry  q quit")
	default:
		switch m.modal {
		case modalUpload:
			body = m.upload.View()
		case modalReview:
			body = m.review.View()
		case modalAudit:
			body = m.audit.View()
		case modalAddPartner, modalEditPartner:
			body = m.form.View()
		case modalViewPartner:
			body = m.detail.View()
		default:
			body = appStyle.Render(m.dashboard.view(m.snapshot))
		}
	}

	if m.showConfirm {
		body += "\n\n" + renderOverlay("Delete partner",
			"Delete \""+m.confirmName+"\" and all of its files?", "y yes    n no")
	}
	if m.showError {
		body += "\n\n" + renderOverlay(errorStyle.Render("Error"), m.errorMessage, "enter / esc close")
	}

	return body
}

func (m *appModel) showErrorf(format string, args ...any) {
	m.showError = true
	m.errorMessage = fmt.Sprintf(format, args...)
}

func (m appModel) updateLoadError(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.refresh):
		m.phase = phaseLoading
		return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdRefresh())
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.fileIdx > 0 {
			m.dashboard.fileIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if p, ok := m.snapshot.Selected(); ok && m.dashboard.fileIdx < len(p.Files)-1 {
			m.dashboard.fileIdx++
		}
	case key.Matches(keyMsg, keys.prevPartner):
		m.selectPartnerOffset(-1)
	case key.Matches(keyMsg, keys.nextPartner):
		m.selectPartnerOffset(1)
	case key.Matches(keyMsg, keys.upload):
		if _, ok := m.snapshot.Selected(); !ok {
			m.showErrorf("Select a partner before uploading")
			return m, nil
		}
		m.upload = newUploadModel()
		m.modal = modalUpload
	case key.Matches(keyMsg, keys.toggle):
		file, ok := m.dashboard.currentFile(m.snapshot)
		if !ok {
			return m, nil
		}
		return m, m.cmdToggle(m.snapshot.SelectedID, file.ID)
	case key.Matches(keyMsg, keys.auditLog):
		file, ok := m.dashboard.currentFile(m.snapshot)
		if !ok {
			return m, nil
		}
		m.audit = auditModel{fileID: file.ID, loading: true}
		m.modal = modalAudit
		return m, m.cmdLoadAudit(file.ID)
	case key.Matches(keyMsg, keys.copyLink):
		file, ok := m.dashboard.currentFile(m.snapshot)
		if !ok || file.Download == "" {
			m.dashboard.status = "No download link for this file"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(file.Download)
	case key.Matches(keyMsg, keys.addPartner):
		m.form = newPartnerFormModel(nil)
		m.modal = modalAddPartner
	case key.Matches(keyMsg, keys.viewPartner):
		p, ok := m.snapshot.Selected()
		if !ok {
			return m, nil
		}
		m.detail = partnerDetailModel{partner: p}
		m.modal = modalViewPartner
	case key.Matches(keyMsg, keys.deleteItem):
		p, ok := m.snapshot.Selected()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirmName = p.Name
		m.pendingDel = p.ID
	case key.Matches(keyMsg, keys.download):
		if _, ok := m.snapshot.Selected(); !ok {
			return m, nil
		}
		return m, m.cmdDownloadAll()
	case key.Matches(keyMsg, keys.refresh):
		if m.dashboard.refreshing {
			return m, nil
		}
		m.dashboard.refreshing = true
		return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdRefresh())
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *appModel) selectPartnerOffset(offset int) {
	if len(m.snapshot.Partners) == 0 {
		return
	}
	idx := 0
	for i, p := range m.snapshot.Partners {
		if p.ID == m.snapshot.SelectedID {
			idx = i
			break
		}
	}
	n := len(m.snapshot.Partners)
	idx = (idx + offset + n) % n
	m.services.Registry.Select(m.snapshot.Partners[idx].ID)
	m.snapshot = m.services.Registry.Snapshot()
	m.dashboard.fileIdx = 0
}

func (m appModel) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			// a response for a cancelled upload is dropped by token
			m.pendingUpload = ""
			m.upload.analyzing = false
			m.modal = modalNone
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.upload.analyzing {
				return m, nil
			}
			path := strings.TrimSpace(m.upload.input.Value())
			if path == "" {
				m.showErrorf("File path is required")
				return m, nil
			}
			m.upload.analyzing = true
			m.pendingUpload = uuid.NewString()
			return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdUpload(m.pendingUpload, path))
		}
	}

	var cmd tea.Cmd
	m.upload.input, cmd = m.upload.input.Update(msg)
	return m, cmd
}

func (m appModel) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.review.session == nil {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.review.session = nil
		m.modal = modalNone
		m.dashboard.status = "Review cancelled, file left pending"
		return m, cmdClearStatus()
	case key.Matches(keyMsg, keys.up):
		if m.review.idx > 0 {
			m.review.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.review.idx < m.review.session.Len()-1 {
			m.review.idx++
		}
	case key.Matches(keyMsg, keys.space):
		m.review.session.ToggleIgnore(m.review.idx)
	case key.Matches(keyMsg, keys.enter):
		if m.review.submitting {
			return m, nil
		}
		m.review.submitting = true
		return m, m.cmdProceed(m.review.session)
	}

	return m, nil
}

func (m appModel) updateAudit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
		m.modal = modalNone
		m.audit = auditModel{}
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.modal = modalNone
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextFormField(m.form, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusNextFormField(m.form, -1)
			return m, nil
		case key.Matches(keyMsg, keys.space):
			if m.form.onCheckbox() {
				code := m.form.focusedCode()
				m.form.detections[code] = !m.form.detections[code]
				return m, nil
			}
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			if strings.TrimSpace(m.form.inputs[0].Value()) == "" {
				m.showErrorf("Partner name is required")
				return m, nil
			}
			m.form.submitting = true
			if m.modal == modalEditPartner {
				return m, m.cmdUpdatePartner(m.form.partnerID, m.form.toUpdateRequest())
			}
			return m, m.cmdCreatePartner(m.form.toCreateRequest())
		}
	}

	if m.form.onCheckbox() {
		return m, nil
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.modal = modalNone
	case keyMsg.String() == "e":
		p := m.detail.partner
		m.form = newPartnerFormModel(&p)
		m.modal = modalEditPartner
	}
	return m, nil
}

func focusNextFormField(m partnerFormModel, offset int) partnerFormModel {
	if !m.onCheckbox() {
		m.inputs[m.focus].Blur()
	}
	n := m.fieldCount()
	m.focus = (m.focus + offset + n) % n
	if !m.onCheckbox() {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	registry := m.services.Registry
	return func() tea.Msg {
		_, err := registry.Refresh(ctx)
		return registryLoadedMsg{err: err}
	}
}

func (m appModel) cmdUpload(token, path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Upload
	return func() tea.Msg {
		session, err := svc.UploadForReview(ctx, path)
		return uploadDoneMsg{token: token, session: session, err: err}
	}
}

func (m appModel) cmdProceed(session *service.ReviewSession) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Anonymize
	token := session.Token
	return func() tea.Msg {
		resp, err := svc.Proceed(ctx, session)
		return proceedDoneMsg{token: token, filename: resp.Filename, err: err}
	}
}

func (m appModel) cmdToggle(partnerID, fileID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Toggle
	return func() tea.Msg {
		err := svc.Toggle(ctx, partnerID, fileID)
		return toggleDoneMsg{fileID: fileID, err: err}
	}
}

func (m appModel) cmdLoadAudit(fileID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Audit
	return func() tea.Msg {
		entry, err := svc.Fetch(ctx, fileID)
		return auditLoadedMsg{fileID: fileID, entry: entry, err: err}
	}
}

func (m appModel) cmdCreatePartner(req models.CreatePartnerRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Partners
	return func() tea.Msg {
		_, err := svc.Create(ctx, req)
		return partnerSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdatePartner(partnerID string, req models.UpdatePartnerRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Partners
	return func() tea.Msg {
		_, err := svc.Update(ctx, partnerID, req)
		return partnerSavedMsg{err: err}
	}
}

func (m appModel) cmdDeletePartner(partnerID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Partners
	return func() tea.Msg {
		err := svc.Delete(ctx, partnerID)
		return partnerDeletedMsg{err: err}
	}
}

func (m appModel) cmdDownloadAll() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Partners
	destDir := m.downloadDir
	return func() tea.Msg {
		path, err := svc.DownloadAll(ctx, destDir)
		return downloadDoneMsg{path: path, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return downloadDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
