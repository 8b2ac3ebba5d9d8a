package replication

// Request carries the validated form fields of a replication call. The
// uploaded file's content is never inspected; only its name travels.
type Request struct {
	Filename     string
	TargetStates []string
	OriginState  string
	CategoryName string
}

// Result is one synthesized per-state replication record.
type Result struct {
	State         string   `json:"state"`
	StateName     string   `json:"state_name"`
	Status        string   `json:"status"`
	AgreementID   string   `json:"agreement_id"`
	Modifications []string `json:"modifications"`
	DownloadURL   string   `json:"download_url"`
}

// Response aggregates the replication outcome.
type Response struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	Results          []Result `json:"results"`
	OriginalFilename string   `json:"original_filename"`
	ProductCategory  string   `json:"product_category"`
}
