// internal/models/dealroom.go
package models

type DealRoom struct {
	ID              int     `json:"id,omitempty"`
	ProjectID       int     `json:"project_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Status          string  `json:"status,omitempty"`
	DealValue       float64 `json:"deal_value,omitempty"`
	DealCurrency    string  `json:"deal_currency,omitempty"`
	TargetCloseDate string  `json:"target_close_date,omitempty"`
	IsVideoEnabled  bool    `json:"is_video_enabled"`
	IsChatEnabled   bool    `json:"is_chat_enabled"`
	RequireNDA      bool    `json:"require_nda"`
	CreatedByID     int     `json:"created_by_id,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
	MemberCount     int     `json:"member_count,omitempty"`
	DocumentCount   int     `json:"document_count,omitempty"`
}

// DealRoomMember permission flags are advisory in this client; the server
// enforces authorization.
type DealRoomMember struct {
	ID               int    `json:"id,omitempty"`
	DealRoomID       int    `json:"deal_room_id,omitempty"`
	UserID           int    `json:"user_id"`
	Role             string `json:"role"`
	InvitationStatus string `json:"invitation_status,omitempty"`
	NDASigned        bool   `json:"nda_signed"`
	CanUpload        bool   `json:"can_upload"`
	CanDelete        bool   `json:"can_delete"`
	CanInvite        bool   `json:"can_invite"`
	JoinedAt         string `json:"joined_at,omitempty"`
	UserEmail        string `json:"user_email,omitempty"`
	UserName         string `json:"user_name,omitempty"`
}

// MemberInvite is the create payload for a member; the platform resolves the
// email to a user server-side.
type MemberInvite struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	CanUpload bool   `json:"can_upload"`
	CanDelete bool   `json:"can_delete"`
	CanInvite bool   `json:"can_invite"`
}

// DealRoomDocument registration carries an externally hosted URL plus
// metadata; no file bytes ever pass through this client.
type DealRoomDocument struct {
	ID              int    `json:"id,omitempty"`
	DealRoomID      int    `json:"deal_room_id,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	DocumentType    string `json:"document_type"`
	FileName        string `json:"file_name"`
	FileURL         string `json:"file_url"`
	FileSize        int64  `json:"file_size,omitempty"`
	MimeType        string `json:"mime_type,omitempty"`
	Version         int    `json:"version,omitempty"`
	SignatureStatus string `json:"signature_status,omitempty"`
	UploadedByID    int    `json:"uploaded_by_id,omitempty"`
	UploadedAt      string `json:"uploaded_at,omitempty"`
}

type DealRoomMeeting struct {
	ID              int    `json:"id,omitempty"`
	DealRoomID      int    `json:"deal_room_id,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Agenda          string `json:"agenda,omitempty"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Timezone        string `json:"timezone,omitempty"`
	MeetingURL      string `json:"meeting_url,omitempty"`
	Status          string `json:"status,omitempty"`
	IsRecorded      bool   `json:"is_recorded,omitempty"`
	RecordingURL    string `json:"recording_url,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// DealRoomMessage is a flat chat entry. ParentID exists on the wire for a
// planned threading feature the platform never shipped; it is carried but
// never set by this client.
type DealRoomMessage struct {
	ID          int    `json:"id,omitempty"`
	DealRoomID  int    `json:"deal_room_id,omitempty"`
	UserID      int    `json:"user_id,omitempty"`
	Message     string `json:"message"`
	MessageType string `json:"message_type,omitempty"`
	ParentID    *int   `json:"parent_id,omitempty"`
	IsEdited    bool   `json:"is_edited,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UserName    string `json:"user_name,omitempty"`
}
