package dto

// ResetConfirmation is the literal a caller must send to wipe all data.
const ResetConfirmation = "CONFIRM"

// ResetRequest guards the destructive reset endpoint.
type ResetRequest struct {
	Confirm string `json:"confirm" binding:"required"`
}
