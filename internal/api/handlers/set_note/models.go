package set_note

// SetNoteRequest HTTP request model
type SetNoteRequest struct {
	Note string `json:"note"`
}
