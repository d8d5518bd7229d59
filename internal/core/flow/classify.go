package flow

// PromptType distinguishes explicitly gated announcements from plain play prompts.
type PromptType string

const (
	TypeAnnouncement PromptType = "Announcement"
	TypePlay         PromptType = "Play"
)

// Status is the activation status of a classified prompt.
type Status string

const (
	StatusEnabled  Status = "Enabled"
	StatusDisabled Status = "Disabled"
	StatusInUse    Status = "InUse"
	StatusNotInUse Status = "NotInUse"
)

// Active reports whether the status means the prompt is currently played.
func (s Status) Active() bool {
	return s == StatusEnabled || s == StatusInUse
}

// ValidFor reports whether the status belongs to the given prompt type.
func (s Status) ValidFor(t PromptType) bool {
	switch t {
	case TypeAnnouncement:
		return s == StatusEnabled || s == StatusDisabled
	case TypePlay:
		return s == StatusInUse || s == StatusNotInUse
	}
	return false
}

// ClassifiedPrompt is one output record of an extraction.
type ClassifiedPrompt struct {
	ID        string
	Name      string
	Module    string
	Type      PromptType
	Status    Status
	AudioFile string
}

// Classify assigns a type and status to a prompt reference.
// Rule: an announcement entry decides Enabled/Disabled; otherwise the prompt is a
// Play prompt, InUse unless its module is disconnected.
func Classify(ref PromptReference, announcements Announcements, moduleDisconnected bool) ClassifiedPrompt {
	out := ClassifiedPrompt{
		ID:        ref.ID,
		Name:      ref.Name,
		Module:    ref.Module,
		AudioFile: ref.AudioFile(),
	}

	if enabled, ok := announcements.Lookup(ref.ID); ok {
		out.Type = TypeAnnouncement
		out.Status = StatusDisabled
		if enabled {
			out.Status = StatusEnabled
		}
		return out
	}

	out.Type = TypePlay
	out.Status = StatusInUse
	if moduleDisconnected {
		out.Status = StatusNotInUse
	}
	return out
}
