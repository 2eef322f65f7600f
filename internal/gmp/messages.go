package gmp

import "encoding/xml"

// Commands sent to gvmd. GMP is plain XML documents over a stream socket;
// every command gets exactly one response element.

type authenticateCmd struct {
	XMLName     xml.Name    `xml:"authenticate"`
	Credentials credentials `xml:"credentials"`
}

type credentials struct {
	Username string `xml:"username"`
	Password string `xml:"password"`
}

type getTargetsCmd struct {
	XMLName xml.Name `xml:"get_targets"`
}

type createTargetCmd struct {
	XMLName  xml.Name `xml:"create_target"`
	Name     string   `xml:"name"`
	Hosts    string   `xml:"hosts"`
	PortList *elemID  `xml:"port_list,omitempty"`
}

type deleteTargetCmd struct {
	XMLName  xml.Name `xml:"delete_target"`
	TargetID string   `xml:"target_id,attr"`
}

type getConfigsCmd struct {
	XMLName xml.Name `xml:"get_configs"`
}

type getScannersCmd struct {
	XMLName xml.Name `xml:"get_scanners"`
}

type createTaskCmd struct {
	XMLName xml.Name `xml:"create_task"`
	Name    string   `xml:"name"`
	Config  elemID   `xml:"config"`
	Target  elemID   `xml:"target"`
	Scanner elemID   `xml:"scanner"`
}

type startTaskCmd struct {
	XMLName xml.Name `xml:"start_task"`
	TaskID  string   `xml:"task_id,attr"`
}

type getReportsCmd struct {
	XMLName  xml.Name `xml:"get_reports"`
	ReportID string   `xml:"report_id,attr"`
	Filter   string   `xml:"filter,attr"`
	Details  string   `xml:"details,attr"`
}

type elemID struct {
	ID string `xml:"id,attr"`
}

// respStatus carries the GMP status attributes present on every response.
type respStatus struct {
	Status     string `xml:"status,attr"`
	StatusText string `xml:"status_text,attr"`
}

func (s respStatus) statusCode() (string, string) { return s.Status, s.StatusText }

type statusCarrier interface {
	statusCode() (string, string)
}

type authenticateResp struct {
	XMLName xml.Name `xml:"authenticate_response"`
	respStatus
}

// Entity is a named remote object reference (target, config or scanner).
type Entity struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name"`
}

type getTargetsResp struct {
	XMLName xml.Name `xml:"get_targets_response"`
	respStatus
	Targets []Entity `xml:"target"`
}

type createTargetResp struct {
	XMLName xml.Name `xml:"create_target_response"`
	respStatus
	ID string `xml:"id,attr"`
}

type deleteTargetResp struct {
	XMLName xml.Name `xml:"delete_target_response"`
	respStatus
}

type getConfigsResp struct {
	XMLName xml.Name `xml:"get_configs_response"`
	respStatus
	Configs []Entity `xml:"config"`
}

type getScannersResp struct {
	XMLName xml.Name `xml:"get_scanners_response"`
	respStatus
	Scanners []Entity `xml:"scanner"`
}

type createTaskResp struct {
	XMLName xml.Name `xml:"create_task_response"`
	respStatus
	ID string `xml:"id,attr"`
}

type startTaskResp struct {
	XMLName xml.Name `xml:"start_task_response"`
	respStatus
	ReportID string `xml:"report_id"`
}

type getReportsResp struct {
	XMLName xml.Name `xml:"get_reports_response"`
	respStatus
	Report *ReportEnvelope `xml:"report"`
}

// ReportEnvelope is the outer <report> element of a get_reports response.
// Nesting levels that gvmd may omit are pointers so that an absent level
// stays distinguishable from an empty one.
type ReportEnvelope struct {
	ID    string      `xml:"id,attr"`
	Task  *ReportTask `xml:"task"`
	Inner *ReportBody `xml:"report"`
}

type ReportTask struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name"`
}

type ReportBody struct {
	Results *Results `xml:"results"`
}

type Results struct {
	Result []Result `xml:"result"`
}

type Result struct {
	ID               string `xml:"id,attr"`
	Name             string `xml:"name"`
	Host             Host   `xml:"host"`
	CreationTime     string `xml:"creation_time"`
	ModificationTime string `xml:"modification_time"`
	NVT              *NVT   `xml:"nvt"`
}

// Host mixes character data with child elements (asset references), so the
// address is collected as chardata.
type Host struct {
	Text string `xml:",chardata"`
}

type NVT struct {
	OID        string      `xml:"oid,attr"`
	Name       string      `xml:"name"`
	CvssBase   string      `xml:"cvss_base"`
	Refs       *Refs       `xml:"refs"`
	Severities *Severities `xml:"severities"`
}

type Refs struct {
	Ref []Ref `xml:"ref"`
}

type Ref struct {
	Type string `xml:"type,attr"`
	ID   string `xml:"id,attr"`
}

type Severities struct {
	Severity *SeverityEntry `xml:"severity"`
}

type SeverityEntry struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value"`
}
