package update

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/levelup/internal/config"
	"github.com/sandeepkv93/levelup/internal/logging"
	"github.com/sandeepkv93/levelup/internal/model"
	"github.com/sandeepkv93/levelup/internal/storage"
	"github.com/sandeepkv93/levelup/internal/views"
)

type Mode string

const (
	ModeList    Mode = "list"
	ModeCapture Mode = "capture"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add     string
	Toggle  string
	Save    string
	Load    string
	Palette string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// LevelUpEffect is a timed overlay. Seq identifies the tick that may hide it.
type LevelUpEffect struct {
	Visible bool
	Level   int
	Seq     int
}

type Model struct {
	Checklist      *model.Checklist
	Mode           Mode
	Cursor         int
	TagIndex       int
	Palette        CommandPaletteState
	HelpVisible    bool
	Banner         LevelUpEffect
	Popup          LevelUpEffect
	Notifications  []Notification
	DesktopEnabled bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	repo           storage.Repository
	notifier       DesktopNotifier
	logger         *slog.Logger
	autoload       bool
	bannerDuration time.Duration
	popupDuration  time.Duration
	effectSeq      int

	entryInput    textinput.Model
	commandInput  textinput.Model
	levelProgress progress.Model
	helpModel     help.Model
	helpViewport  viewport.Model
}

// ClearStatusMsg clears the status line if it still shows Text. An empty Text always clears.
type ClearStatusMsg struct {
	Text string
}

func NewModel() Model {
	cfg := config.DefaultRuntimeConfig()
	m := Model{
		Checklist:      model.NewChecklist(),
		Mode:           ModeList,
		notifier:       NoopDesktopNotifier{},
		logger:         logging.Discard(),
		bannerDuration: cfg.BannerDuration,
		popupDuration:  cfg.PopupDuration,
		Keys: GlobalKeyMap{
			Add:     "a",
			Toggle:  "space",
			Save:    "ctrl+s",
			Load:    "ctrl+o",
			Palette: "/",
			Help:    "?",
			Quit:    "q",
		},
	}
	m.initBubbleComponents()
	return m
}

// NewModelWithConfig wires the model to a repository, a notifier and a logger.
// Any nil dependency keeps its default.
func NewModelWithConfig(repo storage.Repository, notifier DesktopNotifier, logger *slog.Logger, cfg config.RuntimeConfig) Model {
	m := NewModel()
	m.repo = repo
	m.DesktopEnabled = cfg.DesktopNotifications
	m.autoload = cfg.Autoload
	if notifier != nil {
		m.notifier = notifier
	}
	if logger != nil {
		m.logger = logger
	}
	if cfg.BannerDuration > 0 {
		m.bannerDuration = cfg.BannerDuration
	}
	if cfg.PopupDuration > 0 {
		m.popupDuration = cfg.PopupDuration
	}
	return m
}

// SelectedTag is the tag the entry field will use for the next task.
func (m Model) SelectedTag() model.Tag {
	tags := model.Tags()
	if m.TagIndex < 0 || m.TagIndex >= len(tags) {
		return model.DefaultTag()
	}
	return tags[m.TagIndex]
}

func (m *Model) selectTag(tag model.Tag) bool {
	for i, t := range model.Tags() {
		if t == tag {
			m.TagIndex = i
			return true
		}
	}
	return false
}

func (m *Model) cycleTag(delta int) {
	n := len(model.Tags())
	m.TagIndex = ((m.TagIndex+delta)%n + n) % n
}

func (m *Model) initBubbleComponents() {
	m.entryInput = textinput.New()
	m.entryInput.Prompt = "> "
	m.entryInput.Placeholder = "describe a task"
	m.entryInput.CharLimit = 256
	m.entryInput.Width = 40

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.levelProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))

	m.helpModel = help.New()
	m.helpViewport = viewport.New(44, 12)
	m.helpViewport.SetContent(views.RenderMarkdown(views.TagsMarkdown()))
}
