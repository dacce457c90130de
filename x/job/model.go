package job

// BulkApplyPayload is the payload of an inheritance.bulk_apply job
type BulkApplyPayload struct {
	IDs []string `json:"ids"`
}

// ValidateChainPayload is the payload of an inheritance.validate_chain job
type ValidateChainPayload struct {
	RootID string `json:"rootID"`
}
