package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/helpnearby/backend/internal/model"
)

func createThreadFixture(t *testing.T, ctx context.Context, announcements AnnouncementRepository, responses ResponseRepository) (*model.Announcement, *model.Response) {
	t.Helper()

	a := &model.Announcement{
		Title:         "Нужна помощь с переездом",
		Description:   "Интеграционный тест",
		Category:      "Разное",
		Author:        fmt.Sprintf("автор-%d", time.Now().UnixNano()),
		Tier:          model.TierRegular,
		Status:        model.StatusPublished,
		PaymentAmount: 10,
	}
	if err := announcements.Create(ctx, a); err != nil {
		t.Fatalf("create announcement failed: %v", err)
	}
	t.Cleanup(func() { _ = announcements.Delete(ctx, a.ID) })

	resp := &model.Response{
		AnnouncementID:   a.ID,
		ResponderName:    "Иван",
		ResponderContact: "@ivan",
		Message:          "Могу помочь",
	}
	if err := responses.Create(ctx, resp); err != nil {
		t.Fatalf("create response failed: %v", err)
	}
	if resp.ID == 0 {
		t.Fatal("expected ID to be set after Create")
	}
	return a, resp
}

func TestPgResponseRepository_MessagesOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	announcements := NewPgAnnouncementRepository(pool)
	repo := NewPgResponseRepository(pool)

	_, resp := createThreadFixture(t, ctx, announcements, repo)

	texts := []string{"первое", "второе", "третье"}
	for _, text := range texts {
		msg := &model.Message{ResponseID: resp.ID, Sender: "Иван", Message: text}
		if err := repo.CreateMessage(ctx, msg); err != nil {
			t.Fatalf("create message %q failed: %v", text, err)
		}
	}

	got, err := repo.ListMessages(ctx, resp.ID)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(got) != len(texts) {
		t.Fatalf("expected %d messages, got %d", len(texts), len(got))
	}
	for i, m := range got {
		if m.Message != texts[i] {
			t.Errorf("position %d: expected %q, got %q", i, texts[i], m.Message)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.Before(got[i-1].CreatedAt) {
			t.Errorf("messages out of chronological order at position %d", i)
		}
	}
}

func TestPgResponseRepository_MessageCountSubquery(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	announcements := NewPgAnnouncementRepository(pool)
	repo := NewPgResponseRepository(pool)

	a, resp := createThreadFixture(t, ctx, announcements, repo)

	for i := 0; i < 2; i++ {
		msg := &model.Message{ResponseID: resp.ID, Sender: "Иван", Message: fmt.Sprintf("сообщение %d", i+1)}
		if err := repo.CreateMessage(ctx, msg); err != nil {
			t.Fatalf("create message failed: %v", err)
		}
	}

	found, err := repo.GetByID(ctx, resp.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.MessageCount != 2 {
		t.Errorf("expected message count 2, got %d", found.MessageCount)
	}

	list, err := repo.ListByAnnouncement(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListByAnnouncement failed: %v", err)
	}
	if len(list) != 1 || list[0].MessageCount != 2 {
		t.Errorf("expected one response with 2 messages, got %+v", list)
	}
}

func TestPgResponseRepository_GetByID_Unknown(t *testing.T) {
	ctx := context.Background()
	repo := NewPgResponseRepository(testPool(t))

	if _, err := repo.GetByID(ctx, -1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
