// internal/dealroom/controller.go
package dealroom

import (
	"context"
	"errors"
	"sync"

	"afcare-client/internal/api"
	"afcare-client/internal/common/logger"
	"afcare-client/internal/models"
)

// Tab identifies which pane of the deal-room view is visible. Switching
// tabs is purely local; every tab's data is already loaded on activation.
type Tab string

const (
	TabOverview  Tab = "overview"
	TabDocuments Tab = "documents"
	TabMeetings  Tab = "meetings"
	TabChat      Tab = "chat"
	TabMembers   Tab = "members"
)

// Modal is the deal-room modal state machine. One modal at a time; opening
// a new one implicitly closes the previous.
type Modal int

const (
	ModalNone Modal = iota
	ModalInviteMember
	ModalUploadDocument
	ModalScheduleMeeting
	ModalViewDocument
)

var ErrNotActivated = errors.New("deal room not activated")

// Controller aggregates one deal room with its four child collections.
// Activation fetches all five concurrently; each child collection is
// refreshed individually after a mutation touching it, never the whole
// aggregate.
type Controller struct {
	rooms  *api.DealRoomsService
	logger logger.Logger

	mu        sync.Mutex
	roomID    int
	room      *models.DealRoom
	members   []models.DealRoomMember
	documents []models.DealRoomDocument
	meetings  []models.DealRoomMeeting
	messages  []models.DealRoomMessage

	activeTab   Tab
	activeModal Modal
	viewingDoc  *models.DealRoomDocument

	// messageGen increments whenever the message list is replaced, so a
	// renderer knows to follow the scroll to the newest entry.
	messageGen uint64

	cancelPage context.CancelFunc
}

func NewController(rooms *api.DealRoomsService, log logger.Logger) *Controller {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Controller{
		rooms:     rooms,
		logger:    log,
		activeTab: TabOverview,
	}
}

// Activate loads the room and all four child collections concurrently and
// waits for every fetch to settle. Each fetch fails independently; a failed
// child leaves its pane empty and is logged, while the others still render.
// The room detail itself failing is the only fatal case.
func (c *Controller) Activate(parent context.Context, roomID int) error {
	c.mu.Lock()
	if c.cancelPage != nil {
		c.cancelPage()
	}
	ctx, cancel := context.WithCancel(parent)
	c.cancelPage = cancel
	c.roomID = roomID
	c.room = nil
	c.members = nil
	c.documents = nil
	c.meetings = nil
	c.messages = nil
	c.activeTab = TabOverview
	c.activeModal = ModalNone
	c.viewingDoc = nil
	c.mu.Unlock()

	var wg sync.WaitGroup
	var roomErr error

	wg.Add(5)
	go func() {
		defer wg.Done()
		room, err := c.rooms.Get(ctx, roomID)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			roomErr = err
			return
		}
		c.room = room
	}()
	go func() {
		defer wg.Done()
		c.refreshMembers(ctx, roomID)
	}()
	go func() {
		defer wg.Done()
		c.refreshDocuments(ctx, roomID)
	}()
	go func() {
		defer wg.Done()
		c.refreshMeetings(ctx, roomID)
	}()
	go func() {
		defer wg.Done()
		c.refreshMessages(ctx, roomID)
	}()
	wg.Wait()

	if roomErr != nil {
		c.logger.Error("deal room load failed", map[string]interface{}{
			"roomId": roomID,
			"error":  roomErr.Error(),
		})
		return roomErr
	}
	return nil
}

// Deactivate cancels any in-flight fetch and resets transient view state.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelPage != nil {
		c.cancelPage()
		c.cancelPage = nil
	}
	c.activeModal = ModalNone
	c.viewingDoc = nil
}

func (c *Controller) refreshMembers(ctx context.Context, roomID int) {
	items, err := c.rooms.Members(roomID).List(ctx, nil)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.Warn("members load failed", map[string]interface{}{
			"roomId": roomID,
			"error":  err.Error(),
		})
		return
	}
	c.members = items
}

func (c *Controller) refreshDocuments(ctx context.Context, roomID int) {
	items, err := c.rooms.Documents(roomID).List(ctx, nil)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.Warn("documents load failed", map[string]interface{}{
			"roomId": roomID,
			"error":  err.Error(),
		})
		return
	}
	c.documents = items
}

func (c *Controller) refreshMeetings(ctx context.Context, roomID int) {
	items, err := c.rooms.Meetings(roomID).List(ctx, nil)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.Warn("meetings load failed", map[string]interface{}{
			"roomId": roomID,
			"error":  err.Error(),
		})
		return
	}
	c.meetings = items
}

func (c *Controller) refreshMessages(ctx context.Context, roomID int) {
	items, err := c.rooms.Messages(roomID).List(ctx, nil)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.Warn("messages load failed", map[string]interface{}{
			"roomId": roomID,
			"error":  err.Error(),
		})
		return
	}
	c.messages = items
	c.messageGen++
}

// InviteMember sends the invite and refreshes only the member list.
func (c *Controller) InviteMember(ctx context.Context, invite models.MemberInvite) error {
	roomID, err := c.requireRoom()
	if err != nil {
		return err
	}
	if _, err := c.rooms.InviteMember(ctx, roomID, invite); err != nil {
		return err
	}
	c.resetModal()
	c.refreshMembers(ctx, roomID)
	return nil
}

// UploadDocument registers a document record and refreshes the document
// list. The file itself is hosted elsewhere; only its URL is registered.
func (c *Controller) UploadDocument(ctx context.Context, doc models.DealRoomDocument) error {
	roomID, err := c.requireRoom()
	if err != nil {
		return err
	}
	if _, err := c.rooms.Documents(roomID).Create(ctx, doc); err != nil {
		return err
	}
	c.resetModal()
	c.refreshDocuments(ctx, roomID)
	return nil
}

func (c *Controller) ScheduleMeeting(ctx context.Context, meeting models.DealRoomMeeting) error {
	roomID, err := c.requireRoom()
	if err != nil {
		return err
	}
	if _, err := c.rooms.Meetings(roomID).Create(ctx, meeting); err != nil {
		return err
	}
	c.resetModal()
	c.refreshMeetings(ctx, roomID)
	return nil
}

// SendMessage posts a chat entry and refreshes the message list, bumping
// the message generation so the view follows to the newest entry.
func (c *Controller) SendMessage(ctx context.Context, text string) error {
	roomID, err := c.requireRoom()
	if err != nil {
		return err
	}
	msg := models.DealRoomMessage{Message: text}
	if _, err := c.rooms.Messages(roomID).Create(ctx, msg); err != nil {
		return err
	}
	c.refreshMessages(ctx, roomID)
	return nil
}

func (c *Controller) DeleteDocument(ctx context.Context, documentID int) error {
	roomID, err := c.requireRoom()
	if err != nil {
		return err
	}
	if err := c.rooms.Documents(roomID).Delete(ctx, documentID); err != nil {
		return err
	}
	c.refreshDocuments(ctx, roomID)
	return nil
}

func (c *Controller) requireRoom() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.roomID == 0 {
		return 0, ErrNotActivated
	}
	return c.roomID, nil
}

// SwitchTab changes the visible pane without any network effect.
func (c *Controller) SwitchTab(tab Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTab = tab
}

func (c *Controller) ActiveTab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTab
}

func (c *Controller) OpenModal(modal Modal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeModal = modal
	if modal != ModalViewDocument {
		c.viewingDoc = nil
	}
}

// ViewDocument opens the document preview modal for one document.
func (c *Controller) ViewDocument(doc models.DealRoomDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeModal = ModalViewDocument
	c.viewingDoc = &doc
}

func (c *Controller) CloseModal() {
	c.resetModal()
}

func (c *Controller) resetModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeModal = ModalNone
	c.viewingDoc = nil
}

func (c *Controller) ActiveModal() Modal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeModal
}

func (c *Controller) ViewingDocument() *models.DealRoomDocument {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewingDoc
}

func (c *Controller) Room() *models.DealRoom {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.room
}

func (c *Controller) Members() []models.DealRoomMember {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.DealRoomMember, len(c.members))
	copy(out, c.members)
	return out
}

func (c *Controller) Documents() []models.DealRoomDocument {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.DealRoomDocument, len(c.documents))
	copy(out, c.documents)
	return out
}

func (c *Controller) Meetings() []models.DealRoomMeeting {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.DealRoomMeeting, len(c.meetings))
	copy(out, c.meetings)
	return out
}

func (c *Controller) Messages() []models.DealRoomMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.DealRoomMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// MessageGeneration changes every time the message list is replaced.
func (c *Controller) MessageGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messageGen
}
