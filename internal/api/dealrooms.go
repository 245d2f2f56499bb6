// internal/api/dealrooms.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"afcare-client/internal/models"
)

// DealRoomsService covers the deal-room collection plus the four child
// collections nested under /deal-rooms/{id}/.
type DealRoomsService struct {
	*Resource[models.DealRoom]
	c *Client
}

func NewDealRoomsService(c *Client) *DealRoomsService {
	return &DealRoomsService{
		// The server mounts /deal-rooms without a trailing slash, unlike the
		// flat resources.
		Resource: NewResource[models.DealRoom](c, "/deal-rooms"),
		c:        c,
	}
}

// Members returns the child repository for one room's members.
func (s *DealRoomsService) Members(roomID int) *Resource[models.DealRoomMember] {
	return NewResource[models.DealRoomMember](s.c, childPath(roomID, "members"))
}

func (s *DealRoomsService) Documents(roomID int) *Resource[models.DealRoomDocument] {
	return NewResource[models.DealRoomDocument](s.c, childPath(roomID, "documents"))
}

func (s *DealRoomsService) Meetings(roomID int) *Resource[models.DealRoomMeeting] {
	return NewResource[models.DealRoomMeeting](s.c, childPath(roomID, "meetings"))
}

func (s *DealRoomsService) Messages(roomID int) *Resource[models.DealRoomMessage] {
	return NewResource[models.DealRoomMessage](s.c, childPath(roomID, "messages"))
}

// InviteMember posts an invite payload; the server resolves the email to a
// user and may leave the membership pending.
func (s *DealRoomsService) InviteMember(ctx context.Context, roomID int, invite models.MemberInvite) (*models.DealRoomMember, error) {
	var out models.DealRoomMember
	if err := s.c.do(ctx, http.MethodPost, childPath(roomID, "members"), nil, invite, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func childPath(roomID int, child string) string {
	return fmt.Sprintf("/deal-rooms/%d/%s", roomID, child)
}
