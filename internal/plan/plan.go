package plan

// Plan is a scheduled farm activity shown on the planning calendar.
type Plan struct {
	ID                    string `json:"id" yaml:"id"`
	Title                 string `json:"title" yaml:"title"`
	Description           string `json:"description,omitempty" yaml:"description,omitempty"`
	Location              string `json:"location,omitempty" yaml:"location,omitempty"`
	ScheduledDate         Date   `json:"scheduledDate" yaml:"scheduledDate"`
	DueDate               *Date  `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	ActionType            string `json:"actionType" yaml:"actionType"`
	TargetModule          Module `json:"targetModule,omitempty" yaml:"targetModule,omitempty"`
	Priority              string `json:"priority" yaml:"priority"`
	Status                string `json:"status" yaml:"status"`
	PlanPhase             Phase  `json:"planPhase" yaml:"planPhase"`
	IsFromPlanning        bool   `json:"isFromPlanning" yaml:"isFromPlanning"`
	OriginalScheduledDate *Date  `json:"originalScheduledDate,omitempty" yaml:"originalScheduledDate,omitempty"`
	SourceID              string `json:"sourceId,omitempty" yaml:"sourceId,omitempty"` // initial plan an execution copy came from
}

// Phase tells whether a plan belongs to up-front planning or live execution.
type Phase string

const (
	PhaseInitial   Phase = "initial"
	PhaseExecution Phase = "execution"
)

// Plan status constants
const (
	StatusPending    = "pendiente"
	StatusInProgress = "en_progreso"
	StatusCompleted  = "completado"
	StatusCancelled  = "cancelado"
)

// Priority constants
const (
	PriorityLow    = "baja"
	PriorityMedium = "media"
	PriorityHigh   = "alta"
)

// End returns the inclusive end of the plan's interval: the due date when
// present, otherwise the scheduled date.
func (p Plan) End() Date {
	if p.DueDate != nil && !p.DueDate.IsZero() {
		return *p.DueDate
	}
	return p.ScheduledDate
}

// StatusLabel returns the display label for a status value.
func StatusLabel(status string) string {
	switch status {
	case StatusPending:
		return "Pendiente"
	case StatusInProgress:
		return "En progreso"
	case StatusCompleted:
		return "Completado"
	case StatusCancelled:
		return "Cancelado"
	case "":
		return "Sin estado"
	default:
		return status
	}
}

// PriorityLabel returns the display label for a priority value.
func PriorityLabel(priority string) string {
	switch priority {
	case PriorityLow:
		return "Baja"
	case PriorityMedium:
		return "Media"
	case PriorityHigh:
		return "Alta"
	case "":
		return "Sin prioridad"
	default:
		return priority
	}
}
