package models

// Outcome of a match for the searched player.
type Outcome int

const (
	OutcomeUnavailable Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Win"
	case OutcomeLoss:
		return "Loss"
	default:
		return "Unavailable"
	}
}

// UserMatchRecord is a single row of the match history.
type UserMatchRecord struct {
	GameID   int64
	Role     Role
	Queue    int
	Champion int
	Outcome  Outcome
}

// HistoryReport is the match history of a player, ordered like the match list.
type HistoryReport struct {
	Username string
	Records  []UserMatchRecord
}

// Count the rows with the given outcome.
func (h *HistoryReport) count(outcome Outcome) int {
	total := 0
	for _, record := range h.Records {
		if record.Outcome == outcome {
			total++
		}
	}
	return total
}

// Wins on the window.
func (h *HistoryReport) Wins() int {
	return h.count(OutcomeWin)
}

// Losses on the window.
func (h *HistoryReport) Losses() int {
	return h.count(OutcomeLoss)
}

// Unavailable rows on the window.
func (h *HistoryReport) Unavailable() int {
	return h.count(OutcomeUnavailable)
}

// WinRatio over the matches with a known outcome, -1 if there is none.
func (h *HistoryReport) WinRatio() float64 {
	wins, losses := h.Wins(), h.Losses()
	if wins+losses == 0 {
		return -1.0
	}
	return float64(wins) / float64(wins+losses) * 100
}
