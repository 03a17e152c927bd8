package booking

// Filter is the explicit criteria type for booking queries. Optional
// fields are empty strings; the repository translates it into SQL once,
// at the boundary.
type Filter struct {
	UserEmail      string
	DecoratorEmail string
	WorkingStatus  string

	// ExcludeFinished drops finished_work rows; the decorator queue view
	// hides completed jobs unless they are asked for explicitly.
	ExcludeFinished bool

	// NewestFirst orders by creation time descending.
	NewestFirst bool
}

// QueueFilter encodes the decorator-queue precedence rule:
// no status  -> everything but finished_work,
// finished_work -> only finished_work,
// other value   -> exact match on that value.
func QueueFilter(decoratorEmail, workingStatus string) Filter {
	f := Filter{DecoratorEmail: decoratorEmail}

	switch workingStatus {
	case "":
		f.ExcludeFinished = true
	case string(StatusFinishedWork):
		f.WorkingStatus = string(StatusFinishedWork)
	default:
		f.WorkingStatus = workingStatus
	}

	return f
}
