package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/splanner/internal/cli/formatter"
	"github.com/alexanderramin/splanner/internal/generation"
	"github.com/alexanderramin/splanner/internal/planfile"
	"github.com/alexanderramin/splanner/internal/render"
	"github.com/alexanderramin/splanner/internal/service"
)

type composeTab int

const (
	tabEdit composeTab = iota
	tabPreview
)

type generationDoneMsg struct {
	outcome *service.GenerateOutcome
	err     error
}

type keySelectedMsg struct {
	err error
}

// planChangedMsg wakes the program after the plan changed outside Update.
type planChangedMsg struct{}

type exportDoneMsg struct {
	path string
	err  error
}

// composeModel is the bubbletea Model of the interactive editor. It holds
// one lesson session, the credential gate and at most one open form.
type composeModel struct {
	ctx    context.Context
	cancel context.CancelFunc

	lessons    service.LessonService
	creds      service.CredentialService
	planPath   string
	exportPath string

	keys   composeKeyMap
	tab    composeTab
	width  int
	height int

	topic    textinput.Model
	keyInput textinput.Model
	spinner  spinner.Model
	preview  viewport.Model

	// previewRev is the plan revision the preview was rendered from.
	previewRev uint64

	hasKey     bool
	generating bool

	edit *composeEdit

	// alert is shown once and cleared by the next key press.
	alert  string
	status string

	quitting bool
	saveErr  error
}

// composeEdit is a form open over the editor. When next is set the form is
// a picker and next builds the form that follows it.
type composeEdit struct {
	title string
	*planEdit
	next func() (*composeEdit, error)
}

func newComposeModel(ctx context.Context, lessons service.LessonService, creds service.CredentialService, planPath string) composeModel {
	ctx, cancel := context.WithCancel(ctx)

	topic := textinput.New()
	topic.Placeholder = topicPlaceholder
	topic.Prompt = "Chủ đề: "
	topic.CharLimit = 200

	keyInput := textinput.New()
	keyInput.Prompt = "API Key: "
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '•'

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(formatter.StyleIndigo))

	exportPath := "lesson.html"
	if planPath != "" {
		exportPath = strings.TrimSuffix(planPath, filepath.Ext(planPath)) + ".html"
	}

	m := composeModel{
		ctx:        ctx,
		cancel:     cancel,
		lessons:    lessons,
		creds:      creds,
		planPath:   planPath,
		exportPath: exportPath,
		keys:       defaultComposeKeys(),
		topic:      topic,
		keyInput:   keyInput,
		spinner:    sp,
		preview:    viewport.New(80, 20),
		hasKey:     !lessons.NeedsCredential() || creds.HasCredential(ctx),
	}
	if m.hasKey {
		m.topic.Focus()
	} else {
		m.keyInput.Focus()
	}
	m.refreshPreview()
	return m
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m composeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles msg and re-renders the preview whenever the plan revision
// moved, whoever changed it.
func (m composeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if cm, ok := next.(composeModel); ok && !cm.quitting && cm.previewRev != cm.lessons.Revision() {
		cm.refreshPreview()
		next = cm
	}
	return next, cmd
}

func (m composeModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planChangedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.preview.Width = msg.Width
		m.preview.Height = max(msg.Height-6, 5)
		m.topic.Width = max(msg.Width-12, 20)
		if m.edit != nil {
			m.edit.form = m.edit.form.WithWidth(msg.Width)
		}
		m.refreshPreview()
		return m, nil

	case generationDoneMsg:
		return m.handleGenerationDone(msg), nil

	case keySelectedMsg:
		if msg.err != nil {
			m.hasKey = false
			m.alert = "Không lưu được API Key: " + msg.err.Error()
			m.topic.Blur()
			cmd := m.keyInput.Focus()
			return m, cmd
		}
		m.status = "Đã lưu API Key."
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.alert = "Không xuất được HTML: " + msg.err.Error()
		} else {
			m.status = "Đã xuất " + msg.path
		}
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.edit != nil {
		return m.updateForm(msg)
	}
	return m.updateInputs(msg)
}

func (m composeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.edit != nil {
		if msg.Type == tea.KeyEsc {
			m.edit = nil
			m.status = "Đã hủy."
			return m, nil
		}
		return m.updateForm(msg)
	}

	m.alert = ""

	if !m.hasKey {
		switch msg.Type {
		case tea.KeyEsc:
			return m.quit()
		case tea.KeyEnter:
			return m.submitKey()
		}
		var cmd tea.Cmd
		m.keyInput, cmd = m.keyInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.SwitchTab):
		if m.tab == tabEdit {
			m.tab = tabPreview
			m.refreshPreview()
		} else {
			m.tab = tabEdit
		}
		return m, nil
	case key.Matches(msg, m.keys.Info):
		return m.openSection("Thông tin chung", "info", "")
	case key.Matches(msg, m.keys.Goals):
		return m.openSection("I. Mục tiêu", "goals", "")
	case key.Matches(msg, m.keys.Startup):
		return m.openSection("1. Hoạt động Khởi động", "startup", "")
	case key.Matches(msg, m.keys.Practice):
		return m.openSection("3. Hoạt động Luyện tập", "practice", "")
	case key.Matches(msg, m.keys.Application):
		return m.openSection("4. Hoạt động Vận dụng", "application", "")
	case key.Matches(msg, m.keys.AddFormation):
		act, err := m.lessons.AddFormationActivity()
		if err != nil {
			m.alert = err.Error()
			return m, nil
		}
		m.status = "Đã thêm " + act.Title
		return m, nil
	case key.Matches(msg, m.keys.Formation):
		return m.openFormationPicker()
	case key.Matches(msg, m.keys.ChangeKey):
		m.hasKey = false
		m.keyInput.Reset()
		m.topic.Blur()
		cmd := m.keyInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()
	}

	if m.tab == tabPreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Generate) {
		return m.startGeneration()
	}
	var cmd tea.Cmd
	m.topic, cmd = m.topic.Update(msg)
	return m, cmd
}

func (m composeModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if !m.hasKey {
		m.keyInput, cmd = m.keyInput.Update(msg)
		return m, cmd
	}
	m.topic, cmd = m.topic.Update(msg)
	return m, cmd
}

// ── credential gate ──────────────────────────────────────────────────────────

// submitKey stores the typed key. The gate opens right away; a failed save
// closes it again when keySelectedMsg arrives.
func (m composeModel) submitKey() (tea.Model, tea.Cmd) {
	apiKey := strings.TrimSpace(m.keyInput.Value())
	if apiKey == "" {
		m.alert = "API Key không được để trống."
		return m, nil
	}
	m.hasKey = true
	m.keyInput.Reset()
	m.keyInput.Blur()

	focus := m.topic.Focus()
	ctx, creds := m.ctx, m.creds
	return m, tea.Batch(focus, func() tea.Msg {
		_, err := creds.Select(ctx, apiKey, "")
		return keySelectedMsg{err: err}
	})
}

// ── generation ───────────────────────────────────────────────────────────────

func (m composeModel) startGeneration() (tea.Model, tea.Cmd) {
	if m.generating || m.lessons.Generating() {
		m.alert = msgBusy
		return m, nil
	}
	topic := strings.TrimSpace(m.topic.Value())
	if topic == "" {
		m.alert = msgEmptyTopic
		return m, nil
	}

	m.generating = true
	m.status = ""
	ctx, lessons := m.ctx, m.lessons
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := lessons.Generate(ctx, topic)
		return generationDoneMsg{outcome: out, err: err}
	})
}

func (m composeModel) handleGenerationDone(msg generationDoneMsg) composeModel {
	m.generating = false
	switch {
	case msg.err == nil:
		m.status = fmt.Sprintf("Đã tạo giáo án \"%s\" (%s)", msg.outcome.Plan.LessonName, msg.outcome.Model)
	case errors.Is(msg.err, generation.ErrCredentialUnavailable):
		m.alert = msgKeyUnavailable
		m.hasKey = false
		m.keyInput.Reset()
		m.topic.Blur()
		m.keyInput.Focus()
	case errors.Is(msg.err, context.Canceled):
	default:
		m.alert = msgGenerationFailed + msg.err.Error()
	}
	return m
}

// ── forms ────────────────────────────────────────────────────────────────────

func (m composeModel) openSection(title, section, id string) (tea.Model, tea.Cmd) {
	pe, err := sectionEdit(m.lessons.Lesson(), section, id)
	if err != nil {
		m.alert = err.Error()
		return m, nil
	}
	return m.openEdit(&composeEdit{title: title, planEdit: pe})
}

func (m composeModel) openFormationPicker() (tea.Model, tea.Cmd) {
	id := new(string)
	picker := formationPicker(m.lessons.Lesson(), id)
	if picker == nil {
		m.alert = "Chưa có hoạt động hình thành kiến thức (ctrl+n để thêm)."
		return m, nil
	}
	lessons := m.lessons
	return m.openEdit(&composeEdit{
		title:    "2. Hình thành kiến thức mới",
		planEdit: &planEdit{form: picker},
		next: func() (*composeEdit, error) {
			pe, err := sectionEdit(lessons.Lesson(), "formation", *id)
			if err != nil {
				return nil, err
			}
			return &composeEdit{title: "2. Hình thành kiến thức mới", planEdit: pe}, nil
		},
	})
}

func (m composeModel) openEdit(e *composeEdit) (tea.Model, tea.Cmd) {
	if m.width > 0 {
		e.form = e.form.WithWidth(m.width)
	}
	m.edit = e
	return m, e.form.Init()
}

// updateForm forwards msg to the open form and applies it once completed.
// The form's own completion command is dropped so finishing a form never
// ends the program.
func (m composeModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f, cmd := m.edit.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.edit.form = form
	}

	switch m.edit.form.State {
	case huh.StateCompleted:
		done := m.edit
		m.edit = nil
		if done.next != nil {
			next, err := done.next()
			if err != nil {
				m.alert = err.Error()
				return m, nil
			}
			return m.openEdit(next)
		}
		if err := m.lessons.Edit(done.apply); err != nil {
			m.alert = err.Error()
			return m, nil
		}
		m.status = "Đã cập nhật " + done.title
		return m, nil
	case huh.StateAborted:
		m.edit = nil
		m.status = "Đã hủy."
		return m, nil
	}
	return m, cmd
}

// ── export and quit ──────────────────────────────────────────────────────────

func (m composeModel) exportCmd() tea.Cmd {
	plan, path := m.lessons.Lesson(), m.exportPath
	return func() tea.Msg {
		data, err := render.RenderHTML(plan)
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
		return exportDoneMsg{path: path, err: err}
	}
}

// quit cancels any outstanding generation and writes the plan back to its
// document.
func (m composeModel) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	if m.planPath != "" {
		m.saveErr = planfile.Save(m.planPath, m.lessons.Lesson())
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *composeModel) refreshPreview() {
	width := m.width
	if width <= 0 {
		width = render.DefaultWidth
	}
	m.previewRev = m.lessons.Revision()
	m.preview.SetContent(render.RenderText(m.lessons.Lesson(), render.Options{Width: width}))
}
