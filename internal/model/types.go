// Package model defines the shared data schema for analysis results,
// saved reports and user sessions.
package model

import "time"

// Analysis status values returned by the analyze endpoint.
const (
	StatusOK            = "OK"
	StatusImageRejected = "IMAGE_REJECTED"
)

// HealthHealthy is the health label the backend uses for a healthy crop.
// Every other label is treated as a problem finding.
const HealthHealthy = "Healthy"

// Remedy is a single treatment product with application instructions.
type Remedy struct {
	Product     string `json:"product"`
	Application string `json:"application"`
}

// TreatmentPlan groups the recommended actions for a diagnosed problem.
type TreatmentPlan struct {
	ImmediateActions []string `json:"immediateActions"`
	OrganicRemedies  []Remedy `json:"organicRemedies"`
	ChemicalControls []Remedy `json:"chemicalControls"`
}

// Diagnosis describes the primary problem found in an analyzed image.
type Diagnosis struct {
	ProblemName string   `json:"problemName"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
}

// AnalysisResult is the structured diagnostic output of one crop-image
// submission. All screens consume this one shape.
type AnalysisResult struct {
	AnalysisStatus   string        `json:"analysisStatus"`
	CropIdentified   string        `json:"cropIdentified"`
	HealthAssessment string        `json:"healthAssessment"`
	ConfidenceScore  float64       `json:"confidenceScore"`
	PrimaryDiagnosis Diagnosis     `json:"primaryDiagnosis"`
	TreatmentPlan    TreatmentPlan `json:"treatmentPlan"`
}

// Healthy reports whether the assessment is the healthy label.
func (r AnalysisResult) Healthy() bool {
	return r.HealthAssessment == HealthHealthy
}

// Rejected reports whether the backend refused the submitted image.
func (r AnalysisResult) Rejected() bool {
	return r.AnalysisStatus == StatusImageRejected
}

// ReportResult is the diagnostic subset stored inside a saved report.
type ReportResult struct {
	Health        string        `json:"health"`
	Confidence    float64       `json:"confidence"`
	Diagnosis     Diagnosis     `json:"diagnosis"`
	TreatmentPlan TreatmentPlan `json:"treatmentPlan"`
}

// SavedReport is a server-owned record combining an image, crop and a
// past analysis result, retrievable by id.
type SavedReport struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Crop      string       `json:"crop"`
	ImageURL  string       `json:"image_url"`
	Result    ReportResult `json:"result"`
	CreatedAt string       `json:"created_at"`
}

// CreatedDate formats the creation timestamp for display. Unparseable
// values are shown as-is.
func (r SavedReport) CreatedDate() string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, r.CreatedAt); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return r.CreatedAt
}

// User is the denormalized profile snapshot captured at login. It is
// persisted alongside the token and never refreshed.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}
