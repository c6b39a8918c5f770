package domain

// CaseFailure is the stored record of a case that did not pass
type CaseFailure struct {
	Path      []string `json:"path"`
	Status    Status   `json:"status"`
	Message   string   `json:"message"`
	Primitive string   `json:"primitive,omitempty"`
	Expected  string   `json:"expected,omitempty"`
	Actual    string   `json:"actual,omitempty"`
	Resolved  bool     `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
