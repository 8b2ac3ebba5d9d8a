package replication

// stateCodes lists the 50 US states offered on the replication view.
var stateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// stateNames maps the subset of states the mock replication has display
// names wired for. Requested states outside this table produce no result
// record; see the service for the behavior contract.
var stateNames = map[string]string{
	"CA": "California",
	"NY": "New York",
	"TX": "Texas",
	"FL": "Florida",
}

// StateCodes returns the full state list for the replication view.
func StateCodes() []string {
	return append([]string(nil), stateCodes...)
}
