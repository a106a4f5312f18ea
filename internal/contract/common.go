package contract

import "github.com/alexanderramin/culiacan/internal/app"

type SignalKind = app.SignalKind

const (
	SignalPhaseChanged     SignalKind = app.SignalPhaseChanged
	SignalMissionComplete  SignalKind = app.SignalMissionComplete
	SignalCampaignComplete SignalKind = app.SignalCampaignComplete
	SignalInputClamped     SignalKind = app.SignalInputClamped
)

type Signal = app.Signal
