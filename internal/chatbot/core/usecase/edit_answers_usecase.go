package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"client-portal-service/internal/chatbot/core/domain"
	"client-portal-service/internal/chatbot/core/ports"
)

var (
	ErrInvalidAnswer  = errors.New("answer id and text are required")
	ErrAnswerNotFound = errors.New("answer not found or unchanged")
)

// letterOptionPattern matches a "(uppercase letter) - (description)" option
// line inside submenu text, e.g. "🅰️ A - Ver catálogo".
var letterOptionPattern = regexp.MustCompile(`\s([A-Z])\s*-\s*(.+)`)

type EditAnswersUseCase struct {
	store  ports.ChatbotStorePort
	access ports.ClientAccessPort
}

func NewEditAnswersUseCase(store ports.ChatbotStorePort, access ports.ClientAccessPort) *EditAnswersUseCase {
	return &EditAnswersUseCase{store: store, access: access}
}

// ListAnswers produces the editable answer set per menu. Direct menus get a
// single answer looked up by the menu's own id; menus with options get one
// entry per "(letter) - description" line whose answer document exists,
// keyed "{menuID}{letter}".
func (uc *EditAnswersUseCase) ListAnswers(ctx context.Context, clientID int64) ([]domain.MenuAnswers, error) {
	ok, err := uc.access.HasActiveChatbot(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrChatbotAccessDenied
	}

	s, err := uc.store.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close(ctx)

	menus, err := s.ListMenus(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.MenuAnswers, 0, len(menus))
	for _, menu := range menus {
		entries, err := uc.menuEntries(ctx, s, menu)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.MenuAnswers{
			MenuID:  menu.ID,
			Submenu: menu.Submenu,
			Entries: entries,
		})
	}
	return out, nil
}

func (uc *EditAnswersUseCase) menuEntries(ctx context.Context, s ports.ChatbotSession, menu domain.Menu) ([]domain.AnswerEntry, error) {
	entries := []domain.AnswerEntry{}

	if menu.Submenu == domain.SubmenuDirect {
		answer, err := s.FindAnswer(ctx, menu.ID)
		if err != nil {
			return nil, err
		}
		if answer != nil {
			id := answer.ID
			if id == "" {
				id = menu.ID
			}
			entries = append(entries, domain.AnswerEntry{
				ID:   id,
				Text: answer.Text,
			})
		}
		return entries, nil
	}

	if !menu.HasOptions() {
		return entries, nil
	}

	for _, line := range strings.Split(menu.Submenu, "\n") {
		m := letterOptionPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		letter := m[1]
		description := strings.TrimSpace(m[2])

		answerID := menu.ID + letter
		answer, err := s.FindAnswer(ctx, answerID)
		if err != nil {
			return nil, err
		}
		if answer == nil {
			continue
		}

		entries = append(entries, domain.AnswerEntry{
			ID:          answerID,
			Option:      letter,
			Description: description,
			Text:        answer.Text,
		})
	}
	return entries, nil
}

type SaveAnswerInput struct {
	ClientID int64
	AnswerID string
	Text     string
}

// SaveAnswer updates exactly one stored answer. A zero modified count maps
// to ErrAnswerNotFound, distinct from store failures.
func (uc *EditAnswersUseCase) SaveAnswer(ctx context.Context, in SaveAnswerInput) error {
	if in.AnswerID == "" || in.Text == "" {
		return ErrInvalidAnswer
	}

	ok, err := uc.access.HasActiveChatbot(ctx, in.ClientID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrChatbotAccessDenied
	}

	s, err := uc.store.Connect(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	modified, err := s.UpdateAnswer(ctx, in.AnswerID, in.Text)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrAnswerNotFound
	}
	return nil
}
