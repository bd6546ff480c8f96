package dto

// CreateJobRequest is the body of POST /api/jobs
type CreateJobRequest struct {
	Title        string `json:"title" binding:"required,max=255" example:"Backend Engineer"`
	Company      string `json:"company" binding:"max=255" example:"Microsoft"`
	Location     string `json:"location" binding:"max=255" example:"Hyderabad"`
	Salary       string `json:"salary" binding:"max=100" example:"₹20-28 LPA"`
	Type         string `json:"type" binding:"max=50" example:"Full-time"`
	Description  string `json:"description"`
	ValidityDays *int   `json:"validityDays" example:"30"`
}

// JobSearchQuery carries the optional filters of GET /api/jobs/search
type JobSearchQuery struct {
	Q        string `form:"q"`
	Location string `form:"location"`
	Type     string `form:"type"`
}
