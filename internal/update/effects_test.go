package update

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/levelup/internal/config"
	"github.com/sandeepkv93/levelup/internal/model"
)

type fakeDesktopNotifier struct {
	sent []Notification
}

func (f *fakeDesktopNotifier) Send(n Notification) error {
	f.sent = append(f.sent, n)
	return nil
}

func modelNearLevelUp(t *testing.T, notifier DesktopNotifier, desktop bool) Model {
	t.Helper()
	cfg := config.DefaultRuntimeConfig()
	cfg.DesktopNotifications = desktop
	cfg.BannerDuration = 10 * time.Millisecond
	cfg.PopupDuration = 15 * time.Millisecond
	m := NewModelWithConfig(nil, notifier, nil, cfg)
	for _, tag := range []model.Tag{model.TagStudy, model.TagExercise, model.TagWork, model.TagChores} {
		task, _ := m.Checklist.Add(string(tag), tag)
		if _, err := m.Checklist.Toggle(task.ID); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	m.Checklist.Add("sketch", model.TagCreative)
	m.Cursor = 4
	return m
}

func TestLevelUpShowsBannerAndPopup(t *testing.T) {
	notifier := &fakeDesktopNotifier{}
	m := modelNearLevelUp(t, notifier, true)
	if m.Checklist.TotalPoints() != 42 {
		t.Fatalf("expected 42 points before level-up, got %d", m.Checklist.TotalPoints())
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("expected expiry ticks after level-up")
	}
	if m.Checklist.Level() != 2 || !m.Banner.Visible || !m.Popup.Visible || m.Popup.Level != 2 {
		t.Fatalf("unexpected effect state: banner=%+v popup=%+v", m.Banner, m.Popup)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Title != "Level Up!" {
		t.Fatalf("expected one desktop notification, got %+v", notifier.sent)
	}
	if out := m.View(); !containsAll(out, "Level Up!", "You leveled up!", "notice [info] Level Up!: You reached level 2") {
		t.Fatalf("expected banner and popup in view")
	}

	updated, _ := m.Update(BannerExpiredMsg{Seq: m.Banner.Seq})
	m = updated.(Model)
	if m.Banner.Visible || !m.Popup.Visible {
		t.Fatalf("banner should hide before the popup: banner=%+v popup=%+v", m.Banner, m.Popup)
	}
	updated, _ = m.Update(PopupExpiredMsg{Seq: m.Popup.Seq})
	m = updated.(Model)
	if m.Popup.Visible {
		t.Fatal("popup should close after its tick")
	}
}

func TestStaleExpiryTickIsIgnored(t *testing.T) {
	m := modelNearLevelUp(t, nil, false)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	staleSeq := m.Banner.Seq

	// drop back below 50 and climb again to start a second effect
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Banner.Seq == staleSeq {
		t.Fatal("expected a new effect sequence")
	}

	updated, _ := m.Update(BannerExpiredMsg{Seq: staleSeq})
	m = updated.(Model)
	if !m.Banner.Visible {
		t.Fatal("stale tick must not hide the newer banner")
	}
}

func TestLevelDropShowsNoEffect(t *testing.T) {
	m := modelNearLevelUp(t, nil, false)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	updated, _ := m.Update(BannerExpiredMsg{Seq: m.Banner.Seq})
	m = updated.(Model)
	updated, _ = m.Update(PopupExpiredMsg{Seq: m.Popup.Seq})
	m = updated.(Model)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd != nil || m.Banner.Visible || m.Popup.Visible {
		t.Fatal("a level decrease must not trigger effects")
	}
	if m.Checklist.Level() != 1 {
		t.Fatalf("expected level 1 after un-completing, got %d", m.Checklist.Level())
	}
}

func TestDesktopNotificationsDisabled(t *testing.T) {
	notifier := &fakeDesktopNotifier{}
	m := modelNearLevelUp(t, notifier, false)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if len(notifier.sent) != 0 {
		t.Fatalf("notifications disabled, got %+v", notifier.sent)
	}
	if len(m.Notifications) != 1 {
		t.Fatalf("expected in-app notification record, got %d", len(m.Notifications))
	}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
