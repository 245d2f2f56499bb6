// internal/models/enums.go
package models

import "fmt"

// Sector is the infrastructure sector a project belongs to.
type Sector string

const (
	SectorEnergy      Sector = "Energy"
	SectorMining      Sector = "Mining"
	SectorWater       Sector = "Water"
	SectorTransport   Sector = "Transport"
	SectorPorts       Sector = "Ports"
	SectorRail        Sector = "Rail"
	SectorRoads       Sector = "Roads"
	SectorAgriculture Sector = "Agriculture"
	SectorHealth      Sector = "Health"
)

// ProjectStage is an ordered progression, but the API accepts any stage
// directly; no transition order is enforced on either side.
type ProjectStage string

const (
	StageConcept      ProjectStage = "Concept"
	StageFeasibility  ProjectStage = "Feasibility"
	StageProcurement  ProjectStage = "Procurement"
	StageConstruction ProjectStage = "Construction"
	StageOperation    ProjectStage = "Operation"
)

// Instrument is a financing instrument an investor offers.
type Instrument string

const (
	InstrumentEquity    Instrument = "Equity"
	InstrumentDebt      Instrument = "Debt"
	InstrumentMezzanine Instrument = "Mezzanine"
)

// VerificationLevel uses the platform's full display strings on the wire.
type VerificationLevel string

const (
	LevelV0Submitted           VerificationLevel = "V0: Submitted"
	LevelV1SponsorVerified     VerificationLevel = "V1: Sponsor Identity Verified"
	LevelV2DocumentsVerified   VerificationLevel = "V2: Documents Verified"
	LevelV3BankabilityScreened VerificationLevel = "V3: Bankability Screened"
)

var levelShorthand = map[string]VerificationLevel{
	"V0": LevelV0Submitted,
	"V1": LevelV1SponsorVerified,
	"V2": LevelV2DocumentsVerified,
	"V3": LevelV3BankabilityScreened,
}

// ParseVerificationLevel accepts either the shorthand ("V3") or the full
// display string.
func ParseVerificationLevel(s string) (VerificationLevel, error) {
	if lvl, ok := levelShorthand[s]; ok {
		return lvl, nil
	}
	for _, lvl := range levelShorthand {
		if string(lvl) == s {
			return lvl, nil
		}
	}
	return "", fmt.Errorf("unknown verification level %q", s)
}

// DealRoomStatus values the API reports for a deal room.
const (
	DealRoomStatusActive     = "active"
	DealRoomStatusPaused     = "paused"
	DealRoomStatusClosed     = "closed"
	DealRoomStatusTerminated = "terminated"
)

// DealRoomMemberRole values.
const (
	MemberRoleOwner    = "owner"
	MemberRoleAdvisor  = "advisor"
	MemberRoleInvestor = "investor"
	MemberRoleMember   = "member"
)

// Member invitation status values.
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
)

// Meeting status values.
const (
	MeetingStatusScheduled = "scheduled"
	MeetingStatusLive      = "live"
	MeetingStatusCompleted = "completed"
	MeetingStatusCancelled = "cancelled"
)
