package models

// LambdaEvent is the input event for Lambda invocation.
type LambdaEvent struct {
	DryRun     *bool  `json:"dry_run,omitempty"`
	Source     string `json:"source,omitempty"`
	DetailType string `json:"detail-type,omitempty"`
}

// IsDryRun returns the effective dry-run setting.
func (e *LambdaEvent) IsDryRun(defaultValue bool) bool {
	if e != nil && e.DryRun != nil {
		return *e.DryRun
	}
	return defaultValue
}

// IsScheduled reports whether the event came from an EventBridge schedule.
func (e *LambdaEvent) IsScheduled() bool {
	return e != nil && e.Source == "aws.events" && e.DetailType == "Scheduled Event"
}

// Trigger maps the event to the trigger recorded on the run.
func (e *LambdaEvent) Trigger() Trigger {
	if e.IsScheduled() {
		return TriggerSchedule
	}
	return TriggerLambda
}

// LambdaResponse is the output from Lambda invocation.
type LambdaResponse struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Result     *SyncResult `json:"result,omitempty"`
}

// NewSuccessResponse creates a success response.
func NewSuccessResponse(result *SyncResult) *LambdaResponse {
	return &LambdaResponse{
		StatusCode: 200,
		Message:    result.Message(),
		Result:     result,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(err error) *LambdaResponse {
	return &LambdaResponse{
		StatusCode: 500,
		Message:    ErrorMessage(err),
	}
}
