package valueobjects

import "fmt"

// Stage is the lifecycle state of a maintenance request.
type Stage string

const (
	StageNew        Stage = "NEW"
	StageInProgress Stage = "IN_PROGRESS"
	StageRepaired   Stage = "REPAIRED"
	StageScrap      Stage = "SCRAP"
)

var validStages = map[Stage]bool{
	StageNew:        true,
	StageInProgress: true,
	StageRepaired:   true,
	StageScrap:      true,
}

// boardOrder is the column order of the kanban board.
var boardOrder = map[Stage]int{
	StageNew:        0,
	StageInProgress: 1,
	StageRepaired:   2,
	StageScrap:      3,
}

func NewStage(s string) (Stage, error) {
	stage := Stage(s)
	if !stage.IsValid() {
		return "", fmt.Errorf("invalid stage: %s", s)
	}
	return stage, nil
}

// AllStages returns the stages in board order.
func AllStages() []Stage {
	return []Stage{StageNew, StageInProgress, StageRepaired, StageScrap}
}

// PendingStages are the non-terminal stages.
func PendingStages() []Stage {
	return []Stage{StageNew, StageInProgress}
}

func (s Stage) String() string {
	return string(s)
}

func (s Stage) IsValid() bool {
	return validStages[s]
}

// IsTerminal reports whether entering s completes the request.
func (s Stage) IsTerminal() bool {
	return s == StageRepaired || s == StageScrap
}

// CanTransitionTo is true for every valid target, including the current stage.
// Moving a completed request back to NEW reopens it.
func (s Stage) CanTransitionTo(target Stage) bool {
	return target.IsValid()
}

func (s Stage) BoardPosition() int {
	return boardOrder[s]
}
