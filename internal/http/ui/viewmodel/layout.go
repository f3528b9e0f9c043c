package viewmodel

// User represents the authenticated staff member exposed to templates.
type User struct {
	Email string
}

// MenuItem is one visible navigation entry.
type MenuItem struct {
	Path   string
	Label  string
	Icon   string
	Active bool
}

// Flash is a one-shot banner rendered above page content.
type Flash struct {
	// Kind is "success" or "error".
	Kind    string
	Message string
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	User            *User
	Menu            []MenuItem
}
