package dto

// CreateWalkInDriveRequest is the body of POST /api/walk-in-drives
type CreateWalkInDriveRequest struct {
	Company       string `json:"company" binding:"required,max=255" example:"Infosys"`
	Location      string `json:"location" binding:"required,max=255" example:"Pune"`
	Timing        string `json:"timing" binding:"required,max=255" example:"10 AM - 4 PM, 12 Nov"`
	Qualification string `json:"qualification" binding:"required" example:"B.E/B.Tech"`
}
