package pipeline

// Stage titles of the sourcing pipeline. The order defines the kanban
// column order and the intended progression; the transition operation does
// not enforce adjacency, callers may jump stages.
const (
	StagePriseDeContact      = "Prise de Contact"
	StageEntretienCommercial = "Entretien Commercial"
	StagePositionnement      = "Positionnement"
	StageTestTechnique       = "Test Technique"
	StageEntretienTechnique  = "Entretien Technique"
	StageEntretienManager    = "Entretien Manager"
	StageValidation          = "Validation"
)

var stageSequence = []string{
	StagePriseDeContact,
	StageEntretienCommercial,
	StagePositionnement,
	StageTestTechnique,
	StageEntretienTechnique,
	StageEntretienManager,
	StageValidation,
}

var knownStages = func() map[string]struct{} {
	m := make(map[string]struct{}, len(stageSequence))
	for _, name := range stageSequence {
		m[name] = struct{}{}
	}
	return m
}()

// Stages returns the ordered stage sequence. Callers get a copy, the
// sequence itself is fixed at process start.
func Stages() []string {
	seq := make([]string, len(stageSequence))
	copy(seq, stageSequence)
	return seq
}

// IsKnownStage matches a step title against the sequence by exact string
// equality. Titles outside the sequence never reach a board column.
func IsKnownStage(title string) bool {
	_, ok := knownStages[title]
	return ok
}
