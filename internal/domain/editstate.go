package domain

// EditMode identifies which draft workflow, if any, is active.
type EditMode int

const (
	EditIdle      EditMode = iota // No draft in progress
	EditComposing                 // New-task draft
	EditEditing                   // Existing-task description draft
)

// String returns the string representation of the mode.
func (m EditMode) String() string {
	switch m {
	case EditIdle:
		return "idle"
	case EditComposing:
		return "composing"
	case EditEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// EditState holds the single active draft. At most one compose or one edit
// is in progress at any time; TaskID is meaningful only while editing.
type EditState struct {
	Draft  string
	TaskID int
	Mode   EditMode
}

// Active returns true if a compose or edit draft is in progress.
func (s EditState) Active() bool {
	return s.Mode != EditIdle
}
