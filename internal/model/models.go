package model

type ScanRequest struct {
	ScanName string `json:"scan_name" binding:"required"`
	Targets  string `json:"targets" binding:"required"`
}

// ScanStarted is the envelope returned once a task has been started on gvmd.
type ScanStarted struct {
	Message  string `json:"message"`
	ScanName string `json:"scan_name"`
	Targets  string `json:"targets"`
	ScanID   string `json:"scan_id"`
}

type NormalizedReport struct {
	ScanName      string          `json:"scan_name"`
	Targets       []string        `json:"targets"`
	ResultDetails []DetailRecord  `json:"result_details"`
	ResultSummary []SummaryRecord `json:"result_summary"`
}

type DetailRecord struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Score            string `json:"score"`
	CreationTime     string `json:"creation_time"`
	ModificationTime string `json:"modification_time"`
}

// SummaryRecord is one row of the flattened CVSS table. Field casing
// follows the report consumers' column headers.
type SummaryRecord struct {
	Endpoint string `json:"Endpoint"`
	CVE      string `json:"CVE"`
	Score    string `json:"Score"`
	AV       string `json:"AV"`
	AC       string `json:"AC"`
	PR       string `json:"PR"`
	UI       string `json:"UI"`
	S        string `json:"S"`
	C        string `json:"C"`
	I        string `json:"I"`
	A        string `json:"A"`
}

// CVSSVector holds the eight positional metrics of a CVSS vector string.
// A metric absent from the vector reads "N/A".
type CVSSVector struct {
	AV string
	AC string
	PR string
	UI string
	S  string
	C  string
	I  string
	A  string
}
