package tui

// Custom message types for the TUI

// BackReasonMsg is sent when the user confirms or cancels the back
// reason modal. The status change already happened either way.
type BackReasonMsg struct {
	TaskID string
	Reason string
}

// SaveDoneMsg reports the result of a save.
type SaveDoneMsg struct {
	Err error
}

// ClearDoneMsg reports the result of clearing stored data.
type ClearDoneMsg struct {
	Err error
}

// ShowToastMsg displays a transient toast notification.
type ShowToastMsg struct {
	Text string
}

// OpenReasonModalMsg asks the app to collect a back reason for a task
// that just transitioned to the back status.
type OpenReasonModalMsg struct {
	TaskID string
}

// OpenGuidanceMsg asks the app to show the guidance modal for a task.
type OpenGuidanceMsg struct {
	Name string
}

// RequestDeleteTaskMsg asks the app to confirm and delete a row.
type RequestDeleteTaskMsg struct {
	ID string
}
