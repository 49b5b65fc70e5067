package advance_step

// AdvanceStepRequest HTTP request model
type AdvanceStepRequest struct {
	Direction string `json:"direction"` // "next" или "back"
}
