package domain

import (
	"fmt"
	"math"
	"time"
)

type MissionID string

const (
	MissionInitialRaid            MissionID = "initial_raid"
	MissionUrbanWarfare           MissionID = "urban_warfare"
	MissionLasFloresDefense       MissionID = "las_flores_defense"
	MissionTierraBlancaRoadblocks MissionID = "tierra_blanca_roadblocks"
	MissionCentroUrbanFight       MissionID = "centro_urban_fight"
	MissionLasQuintasSiege        MissionID = "las_quintas_siege"
	MissionAirportAssault         MissionID = "airport_assault"
	MissionGovernmentResponse     MissionID = "government_response"
	MissionCivilianEvacuation     MissionID = "civilian_evacuation"
	MissionPoliticalNegotiation   MissionID = "political_negotiation"
	MissionCeasefireNegotiation   MissionID = "ceasefire_negotiation"
	MissionOrderedWithdrawal      MissionID = "ordered_withdrawal"
	MissionResolution             MissionID = "resolution"
)

// MissionCount is the fixed length of the campaign.
const MissionCount = 13

// Objective is a single mission goal tracked by the gameplay layer.
type Objective struct {
	ID     string
	Kind   ObjectiveKind
	Target string
	Amount int
}

// Mission is an authored historical slot in the campaign. Missions are
// immutable; callers receive copies.
type Mission struct {
	ID             MissionID
	Index          int
	Name           string
	Description    string
	Neighborhood   string
	TimestampLabel string

	// NegotiationThreshold moves UrbanConflict to PoliticalNegotiation.
	NegotiationThreshold float64
	// ResolutionThreshold moves PoliticalNegotiation to Resolution.
	ResolutionThreshold float64
	// ConflictTimer forces PoliticalNegotiation once UrbanConflict lasts this long.
	ConflictTimer time.Duration

	InitialObjectives     []Objective
	NegotiationObjectives []Objective
}

// ScaledConflictTimer applies the difficulty time-limit multiplier.
func (m Mission) ScaledConflictTimer(d DifficultyLevel) time.Duration {
	return time.Duration(math.Round(float64(m.ConflictTimer) * d.Modifiers().TimeLimitMultiplier))
}

// IsLast reports whether this is the final mission of the campaign.
func (m Mission) IsLast() bool {
	return m.Index == MissionCount-1
}

func defend(id, target string) Objective {
	return Objective{ID: id, Kind: ObjectiveDefend, Target: target}
}

func survive(id string, seconds int) Objective {
	return Objective{ID: id, Kind: ObjectiveSurvive, Amount: seconds}
}

func eliminate(id string, count int) Objective {
	return Objective{ID: id, Kind: ObjectiveEliminate, Amount: count}
}

func control(id, area string) Objective {
	return Objective{ID: id, Kind: ObjectiveControl, Target: area}
}

var missionCatalog = [MissionCount]Mission{
	{
		ID: MissionInitialRaid, Name: "Initial Raid", Neighborhood: "tres_rios", TimestampLabel: "3:15 PM",
		Description:          "Government forces storm the residential complex. Defend Ovidio during the arrest attempt.",
		NegotiationThreshold: 0.25, ResolutionThreshold: 0.45, ConflictTimer: 300 * time.Second,
		InitialObjectives:     []Objective{defend("defend-safehouse", "Ovidio")},
		NegotiationObjectives: []Objective{survive("survive-raid", 300)},
	},
	{
		ID: MissionUrbanWarfare, Name: "Urban Warfare", Neighborhood: "downtown", TimestampLabel: "3:30 PM",
		Description:          "Street fighting erupts as the cartel responds. Coordinate the counter-attack across multiple fronts.",
		NegotiationThreshold: 0.27, ResolutionThreshold: 0.48, ConflictTimer: 450 * time.Second,
		InitialObjectives:     []Objective{control("control-downtown", "Downtown")},
		NegotiationObjectives: []Objective{eliminate("eliminate-patrols", 20)},
	},
	{
		ID: MissionLasFloresDefense, Name: "Las Flores Defense", Neighborhood: "las_flores", TimestampLabel: "3:45 PM",
		Description:          "Defend the Las Flores neighborhood. Establish defensive perimeters around civilian areas.",
		NegotiationThreshold: 0.29, ResolutionThreshold: 0.50, ConflictTimer: 420 * time.Second,
		InitialObjectives:     []Objective{control("perimeter-las-flores", "Las Flores perimeter")},
		NegotiationObjectives: []Objective{survive("hold-las-flores", 420)},
	},
	{
		ID: MissionTierraBlancaRoadblocks, Name: "Tierra Blanca Roadblocks", Neighborhood: "tierra_blanca", TimestampLabel: "4:00 PM",
		Description:          "Deploy roadblocks across Tierra Blanca. Cut off military reinforcement routes.",
		NegotiationThreshold: 0.31, ResolutionThreshold: 0.53, ConflictTimer: 450 * time.Second,
		InitialObjectives: []Objective{
			control("roadblock-north", "Northern access"),
			control("roadblock-south", "Southern access"),
		},
		NegotiationObjectives: []Objective{eliminate("stop-convoy", 25)},
	},
	{
		ID: MissionCentroUrbanFight, Name: "Centro Battle", Neighborhood: "centro", TimestampLabel: "4:30 PM",
		Description:          "Battle for downtown Culiacán. Control key government buildings and intersections.",
		NegotiationThreshold: 0.34, ResolutionThreshold: 0.56, ConflictTimer: 480 * time.Second,
		InitialObjectives:     []Objective{control("control-intersections", "Centro intersections")},
		NegotiationObjectives: []Objective{control("control-government-buildings", "Government buildings")},
	},
	{
		ID: MissionLasQuintasSiege, Name: "Las Quintas Siege", Neighborhood: "las_quintas", TimestampLabel: "5:00 PM",
		Description:          "Secure the Las Quintas district. Apply pressure on political families.",
		NegotiationThreshold: 0.37, ResolutionThreshold: 0.59, ConflictTimer: 480 * time.Second,
		InitialObjectives:     []Objective{control("secure-las-quintas", "Las Quintas")},
		NegotiationObjectives: []Objective{survive("hold-las-quintas", 480)},
	},
	{
		ID: MissionAirportAssault, Name: "Airport Control", Neighborhood: "bachigualato", TimestampLabel: "5:30 PM",
		Description:          "Control Bachigualato Airport. Secure escape routes and limit government air support.",
		NegotiationThreshold: 0.40, ResolutionThreshold: 0.62, ConflictTimer: 540 * time.Second,
		InitialObjectives:     []Objective{control("control-runway", "Bachigualato runway")},
		NegotiationObjectives: []Objective{eliminate("ground-air-support", 30)},
	},
	{
		ID: MissionGovernmentResponse, Name: "Government Response", Neighborhood: "centro", TimestampLabel: "6:00 PM",
		Description:          "Military escalation reaches its peak. Survive the government counter-offensive.",
		NegotiationThreshold: 0.43, ResolutionThreshold: 0.66, ConflictTimer: 600 * time.Second,
		InitialObjectives:     []Objective{survive("survive-offensive", 600)},
		NegotiationObjectives: []Objective{eliminate("break-offensive", 35)},
	},
	{
		ID: MissionCivilianEvacuation, Name: "Civilian Protection", Neighborhood: "humaya", TimestampLabel: "6:30 PM",
		Description:          "Protect civilian evacuation zones. Maintain humanitarian corridors under fire.",
		NegotiationThreshold: 0.46, ResolutionThreshold: 0.70, ConflictTimer: 540 * time.Second,
		InitialObjectives: []Objective{
			control("corridor-east", "Eastern corridor"),
			control("corridor-west", "Western corridor"),
		},
		NegotiationObjectives: []Objective{defend("defend-evacuees", "Evacuation zone")},
	},
	{
		ID: MissionPoliticalNegotiation, Name: "Political Pressure", Neighborhood: "tres_rios", TimestampLabel: "7:00 PM",
		Description:          "Behind-the-scenes political pressure mounts. Hold positions while negotiations proceed.",
		NegotiationThreshold: 0.50, ResolutionThreshold: 0.74, ConflictTimer: 600 * time.Second,
		InitialObjectives:     []Objective{survive("hold-positions", 600)},
		NegotiationObjectives: []Objective{defend("defend-negotiators", "Negotiation site")},
	},
	{
		ID: MissionCeasefireNegotiation, Name: "Ceasefire Management", Neighborhood: "centro", TimestampLabel: "7:30 PM",
		Description:          "The presidential order arrives. Manage the ceasefire while keeping the tactical advantage.",
		NegotiationThreshold: 0.54, ResolutionThreshold: 0.78, ConflictTimer: 480 * time.Second,
		InitialObjectives:     []Objective{control("hold-checkpoints", "Ceasefire checkpoints")},
		NegotiationObjectives: []Objective{survive("keep-ceasefire", 480)},
	},
	{
		ID: MissionOrderedWithdrawal, Name: "Ordered Withdrawal", Neighborhood: "tres_rios", TimestampLabel: "8:00 PM",
		Description:          "Government forces are ordered to withdraw. Ensure an orderly retreat without further casualties.",
		NegotiationThreshold: 0.58, ResolutionThreshold: 0.82, ConflictTimer: 420 * time.Second,
		InitialObjectives:     []Objective{defend("protect-withdrawal-route", "Withdrawal route")},
		NegotiationObjectives: []Objective{survive("oversee-withdrawal", 420)},
	},
	{
		ID: MissionResolution, Name: "Victory Secured", Neighborhood: "tres_rios", TimestampLabel: "8:30 PM",
		Description:          "Final confrontation. Secure the victory and Ovidio's freedom through political pressure.",
		NegotiationThreshold: 0.62, ResolutionThreshold: 0.86, ConflictTimer: 600 * time.Second,
		InitialObjectives:     []Objective{defend("defend-ovidio", "Ovidio")},
		NegotiationObjectives: []Objective{eliminate("final-stand", 50)},
	},
}

func init() {
	for i := range missionCatalog {
		missionCatalog[i].Index = i
	}
}

// Missions returns the full campaign in historical order.
func Missions() []Mission {
	out := make([]Mission, MissionCount)
	for i := range missionCatalog {
		out[i] = missionCatalog[i].clone()
	}
	return out
}

// MissionAt returns the mission at a campaign index.
func MissionAt(index int) (Mission, bool) {
	if index < 0 || index >= MissionCount {
		return Mission{}, false
	}
	return missionCatalog[index].clone(), true
}

// MissionByID looks up a mission by its identifier.
func MissionByID(id MissionID) (Mission, error) {
	for i := range missionCatalog {
		if missionCatalog[i].ID == id {
			return missionCatalog[i].clone(), nil
		}
	}
	return Mission{}, fmt.Errorf("unknown mission %q", id)
}

func (m Mission) clone() Mission {
	m.InitialObjectives = append([]Objective(nil), m.InitialObjectives...)
	m.NegotiationObjectives = append([]Objective(nil), m.NegotiationObjectives...)
	return m
}
