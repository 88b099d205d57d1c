package domain

var (
	MessageFailedGetDashboard = "Failed to fetch dashboard data."
)

type (
	DashboardStats struct {
		TotalDonations int `json:"totalDonations"`
		TotalRequests  int `json:"totalRequests"`
	}

	DashboardResponse struct {
		MyDonations []ListingResponse     `json:"myDonations"`
		MyRequests  []FoodRequestResponse `json:"myRequests"`
		Stats       DashboardStats        `json:"stats"`
	}
)
