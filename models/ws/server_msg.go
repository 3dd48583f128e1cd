package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"` // event time
	Code     string `json:"code"` // event code
	Msg      string `json:"msg"`  // event text
}

const (
	CodeStepStatusChanged = "step_status_changed"
	CodeStepScheduled     = "step_scheduled"
	CodeStageTransition   = "stage_transition"
)
