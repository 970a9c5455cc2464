package constant

import (
	"knowex-be/internal/entity"
	"knowex-be/pkg/wizard"
)

// SampleDatasets returns the datasets offered by the wizard's sample tab,
// each with a private copy of its column table.
func SampleDatasets() []entity.SampleDataset {
	out := make([]entity.SampleDataset, len(sampleDatasets))
	for i, d := range sampleDatasets {
		out[i] = cloneSample(d)
	}
	return out
}

// SampleDataset looks up a wizard sample by id.
func SampleDataset(id string) (entity.SampleDataset, bool) {
	for _, d := range sampleDatasets {
		if d.Id == id {
			return cloneSample(d), true
		}
	}
	return entity.SampleDataset{}, false
}

func cloneSample(d entity.SampleDataset) entity.SampleDataset {
	d.Columns = append([]wizard.Column(nil), d.Columns...)
	return d
}

var sampleDatasets = []entity.SampleDataset{
	{
		Id:          "incident_tickets",
		Name:        "IT Incident Tickets",
		Description: "Customer reported IT incidents with priority, category, and resolution details",
		Columns: []wizard.Column{
			{Name: "incident_id", Selected: true, DataType: "string"},
			{Name: "reported_date", Selected: true, DataType: "date"},
			{Name: "status", Selected: true, DataType: "categorical"},
			{Name: "priority", Selected: true, DataType: "categorical"},
			{Name: "category", Selected: true, DataType: "categorical"},
			{Name: "subcategory", Selected: false, DataType: "categorical"},
			{Name: "affected_user", Selected: false, DataType: "string"},
			{Name: "affected_service", Selected: true, DataType: "categorical"},
			{Name: "description", Selected: true, DataType: "text"},
			{Name: "resolution_notes", Selected: true, DataType: "text"},
			{Name: "resolution_time_hours", Selected: false, DataType: "numeric"},
		},
	},
	{
		Id:          "service_requests",
		Name:        "Service Request Records",
		Description: "IT service requests with approval status, fulfillment time, and customer feedback",
		Columns: []wizard.Column{
			{Name: "request_id", Selected: true, DataType: "string"},
			{Name: "requested_date", Selected: true, DataType: "date"},
			{Name: "requestor", Selected: false, DataType: "string"},
			{Name: "request_type", Selected: true, DataType: "categorical"},
			{Name: "description", Selected: true, DataType: "text"},
			{Name: "approval_status", Selected: true, DataType: "categorical"},
			{Name: "approved_by", Selected: false, DataType: "string"},
			{Name: "fulfillment_time_hours", Selected: true, DataType: "numeric"},
			{Name: "feedback", Selected: true, DataType: "text"},
			{Name: "satisfaction_score", Selected: true, DataType: "numeric"},
		},
	},
	{
		Id:          "change_management",
		Name:        "Change Management Logs",
		Description: "Change requests with risk assessment, implementation plans, and outcomes",
		Columns: []wizard.Column{
			{Name: "change_id", Selected: true, DataType: "string"},
			{Name: "title", Selected: true, DataType: "string"},
			{Name: "submission_date", Selected: true, DataType: "date"},
			{Name: "change_type", Selected: true, DataType: "categorical"},
			{Name: "category", Selected: true, DataType: "categorical"},
			{Name: "risk_level", Selected: true, DataType: "categorical"},
			{Name: "status", Selected: true, DataType: "categorical"},
			{Name: "requester", Selected: false, DataType: "string"},
			{Name: "description", Selected: true, DataType: "text"},
			{Name: "implementation_plan", Selected: true, DataType: "text"},
			{Name: "rollback_plan", Selected: true, DataType: "text"},
			{Name: "impact_assessment", Selected: true, DataType: "text"},
			{Name: "approver_comments", Selected: true, DataType: "text"},
		},
	},
	{
		Id:          "problem_records",
		Name:        "Problem Management Records",
		Description: "Root cause analysis and resolution of recurring incidents",
		Columns: []wizard.Column{
			{Name: "problem_id", Selected: true, DataType: "string"},
			{Name: "identification_date", Selected: true, DataType: "date"},
			{Name: "status", Selected: true, DataType: "categorical"},
			{Name: "priority", Selected: true, DataType: "categorical"},
			{Name: "category", Selected: true, DataType: "categorical"},
			{Name: "related_incidents", Selected: false, DataType: "string"},
			{Name: "description", Selected: true, DataType: "text"},
			{Name: "root_cause_analysis", Selected: true, DataType: "text"},
			{Name: "workaround", Selected: true, DataType: "text"},
			{Name: "permanent_solution", Selected: true, DataType: "text"},
			{Name: "resolution_date", Selected: false, DataType: "date"},
			{Name: "lessons_learned", Selected: true, DataType: "text"},
		},
	},
	{
		Id:          "knowledge_articles",
		Name:        "Knowledge Base Articles",
		Description: "Technical solutions and documentation with usage analytics",
		Columns: []wizard.Column{
			{Name: "article_id", Selected: true, DataType: "string"},
			{Name: "title", Selected: true, DataType: "string"},
			{Name: "publication_date", Selected: true, DataType: "date"},
			{Name: "last_updated", Selected: true, DataType: "date"},
			{Name: "status", Selected: true, DataType: "categorical"},
			{Name: "category", Selected: true, DataType: "categorical"},
			{Name: "subcategory", Selected: true, DataType: "categorical"},
			{Name: "author", Selected: false, DataType: "string"},
			{Name: "content", Selected: true, DataType: "text"},
			{Name: "tags", Selected: true, DataType: "string"},
			{Name: "view_count", Selected: false, DataType: "numeric"},
			{Name: "helpful_votes", Selected: false, DataType: "numeric"},
			{Name: "feedback_comments", Selected: true, DataType: "text"},
		},
	},
}
