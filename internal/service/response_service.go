package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/helpnearby/backend/internal/model"
	"github.com/helpnearby/backend/internal/repository"
)

// ThreadPublisher pushes a stored message to live subscribers of a response
// thread. The chat hub implements it; nil disables push.
type ThreadPublisher interface {
	Publish(responseID int, payload []byte)
}

// CreateResponseParams are the inputs for replying to an announcement.
// All fields are required.
type CreateResponseParams struct {
	AnnouncementID   int
	ResponderName    string
	ResponderContact string
	Message          string
}

// ResponseService provides responses to announcements and the 1:1 chat thread
// attached to each response.
type ResponseService interface {
	// Create stores a new response. Every field is required and the
	// announcement must exist.
	Create(ctx context.Context, params CreateResponseParams) (*model.Response, error)
	// Get returns one response by id.
	Get(ctx context.Context, responseID int) (*model.Response, error)
	// ListByAnnouncement returns an announcement's responses, newest first,
	// with message counts. Unknown announcements yield an empty list.
	ListByAnnouncement(ctx context.Context, announcementID int) ([]*model.Response, error)
	// Messages returns a thread's messages ascending by creation time.
	// Unknown responses yield an empty list.
	Messages(ctx context.Context, responseID int) ([]*model.Message, error)
	// SendMessage appends a message to a thread. The sender must be one of
	// the two thread participants: the announcement author or the responder.
	SendMessage(ctx context.Context, responseID int, sender, text string) (*model.Message, error)
}

type responseService struct {
	responses     repository.ResponseRepository
	announcements repository.AnnouncementRepository
	publisher     ThreadPublisher
}

// NewResponseService creates a ResponseService. publisher can be nil to
// disable live thread updates.
func NewResponseService(responses repository.ResponseRepository, announcements repository.AnnouncementRepository, publisher ThreadPublisher) ResponseService {
	return &responseService{
		responses:     responses,
		announcements: announcements,
		publisher:     publisher,
	}
}

func (s *responseService) Create(ctx context.Context, params CreateResponseParams) (*model.Response, error) {
	if params.AnnouncementID <= 0 ||
		strings.TrimSpace(params.ResponderName) == "" ||
		strings.TrimSpace(params.ResponderContact) == "" ||
		strings.TrimSpace(params.Message) == "" {
		return nil, ErrValidation
	}

	if _, err := s.announcements.GetByID(ctx, params.AnnouncementID); err != nil {
		return nil, err
	}

	resp := &model.Response{
		AnnouncementID:   params.AnnouncementID,
		ResponderName:    strings.TrimSpace(params.ResponderName),
		ResponderContact: strings.TrimSpace(params.ResponderContact),
		Message:          strings.TrimSpace(params.Message),
	}
	if err := s.responses.Create(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *responseService) Get(ctx context.Context, responseID int) (*model.Response, error) {
	return s.responses.GetByID(ctx, responseID)
}

func (s *responseService) ListByAnnouncement(ctx context.Context, announcementID int) ([]*model.Response, error) {
	return s.responses.ListByAnnouncement(ctx, announcementID)
}

func (s *responseService) Messages(ctx context.Context, responseID int) ([]*model.Message, error) {
	return s.responses.ListMessages(ctx, responseID)
}

func (s *responseService) SendMessage(ctx context.Context, responseID int, sender, text string) (*model.Message, error) {
	sender = strings.TrimSpace(sender)
	text = strings.TrimSpace(text)
	if sender == "" || text == "" {
		return nil, ErrValidation
	}

	resp, err := s.responses.GetByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	announcement, err := s.announcements.GetByID(ctx, resp.AnnouncementID)
	if err != nil {
		return nil, err
	}
	// The thread has exactly two participants.
	if sender != announcement.Author && sender != resp.ResponderName {
		return nil, ErrValidation
	}

	msg := &model.Message{
		ResponseID: responseID,
		Sender:     sender,
		Message:    text,
	}
	if err := s.responses.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		payload, err := json.Marshal(map[string]any{"type": "message", "data": msg})
		if err != nil {
			slog.Error("marshal thread update failed", "error", err, "response_id", responseID)
		} else {
			s.publisher.Publish(responseID, payload)
		}
	}
	return msg, nil
}
