// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"os"

	"afcare-client/internal/models"
)

// Catalog is the reference data behind every form select: sectors, stages,
// instruments and the rest of the platform's closed vocabularies. Default()
// ships the built-in set; Load lets a deployment override it from disk
// without a client release.
type Catalog struct {
	Version            string   `json:"version"`
	Sectors            []string `json:"sectors"`
	Stages             []string `json:"stages"`
	Instruments        []string `json:"instruments"`
	VerificationLevels []string `json:"verification_levels"`
	DealRoomStatuses   []string `json:"deal_room_statuses"`
	MemberRoles        []string `json:"member_roles"`
}

func Default() *Catalog {
	return &Catalog{
		Version: "builtin",
		Sectors: []string{
			string(models.SectorEnergy),
			string(models.SectorMining),
			string(models.SectorWater),
			string(models.SectorTransport),
			string(models.SectorPorts),
			string(models.SectorRail),
			string(models.SectorRoads),
			string(models.SectorAgriculture),
			string(models.SectorHealth),
		},
		Stages: []string{
			string(models.StageConcept),
			string(models.StageFeasibility),
			string(models.StageProcurement),
			string(models.StageConstruction),
			string(models.StageOperation),
		},
		Instruments: []string{
			string(models.InstrumentEquity),
			string(models.InstrumentDebt),
			string(models.InstrumentMezzanine),
		},
		VerificationLevels: []string{
			string(models.LevelV0Submitted),
			string(models.LevelV1SponsorVerified),
			string(models.LevelV2DocumentsVerified),
			string(models.LevelV3BankabilityScreened),
		},
		DealRoomStatuses: []string{
			models.DealRoomStatusActive,
			models.DealRoomStatusPaused,
			models.DealRoomStatusClosed,
			models.DealRoomStatusTerminated,
		},
		MemberRoles: []string{
			models.MemberRoleOwner,
			models.MemberRoleAdvisor,
			models.MemberRoleInvestor,
			models.MemberRoleMember,
		},
	}
}

// Load reads a catalog override from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}
