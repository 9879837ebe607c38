// Package workflow renders the lifecycle of a certificate as an ordered
// list of steps. The lifecycle is linear (draft -> testing -> completed ->
// issued) with revoked as a terminal state reachable from anywhere; revoked
// is never composed with the linear stages.
package workflow

// Certificate statuses as stored by the backend.
const (
	StatusDraft     = "draft"
	StatusTesting   = "testing"
	StatusCompleted = "completed"
	StatusIssued    = "issued"
	StatusRevoked   = "revoked"
)

// Step is one entry of a rendered lifecycle. Reached means the certificate
// has passed through (or sits at) this stage; Current marks the stage the
// certificate is at right now. At most one step is Current.
type Step struct {
	Status  string
	Label   string
	Icon    string
	Reached bool
	Current bool
}

var stages = []Step{
	{Status: StatusDraft, Label: "Draft", Icon: "📝"},
	{Status: StatusTesting, Label: "Testing", Icon: "🔬"},
	{Status: StatusCompleted, Label: "Completed", Icon: "✔️"},
	{Status: StatusIssued, Label: "Issued", Icon: "📜"},
}

var statusText = map[string]string{
	StatusDraft:     "Draft",
	StatusTesting:   "Testing",
	StatusCompleted: "Completed",
	StatusIssued:    "Issued",
	StatusRevoked:   "Revoked",
}

// Render maps a certificate status to its lifecycle steps. For the four
// ordered statuses every stage up to and including the status is marked
// reached and the status itself is current. For a revoked certificate no
// ordered stage is reached and a single revoked marker is appended as the
// current step. An unknown status yields the bare stages, nothing reached.
func Render(status string) []Step {
	current := -1
	for i, s := range stages {
		if s.Status == status {
			current = i
			break
		}
	}

	steps := make([]Step, 0, len(stages)+1)
	for i, s := range stages {
		s.Reached = current >= 0 && i <= current
		s.Current = i == current
		steps = append(steps, s)
	}

	if status == StatusRevoked {
		steps = append(steps, Step{
			Status:  StatusRevoked,
			Label:   "Revoked",
			Icon:    "❌",
			Current: true,
		})
	}
	return steps
}

// StatusText returns the display label for a status, falling back to the
// raw status string.
func StatusText(status string) string {
	if label, ok := statusText[status]; ok {
		return label
	}
	return status
}

// Statuses lists every status a certificate can hold, lifecycle order first.
func Statuses() []string {
	return []string{StatusDraft, StatusTesting, StatusCompleted, StatusIssued, StatusRevoked}
}

// IsTerminal reports whether no further lifecycle transition is possible.
func IsTerminal(status string) bool {
	return status == StatusRevoked
}
