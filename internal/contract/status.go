package contract

import "github.com/alexanderramin/culiacan/internal/app"

type SignalView = app.SignalView

type ObjectiveView = app.ObjectiveView

type SessionStatus = app.SessionStatus

type SlotView = app.SlotView

type HistoryView = app.HistoryView
