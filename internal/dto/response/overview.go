package response

// OverviewResponse is the admin dashboard stat summary.
type OverviewResponse struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	TotalBookings   int64   `json:"total_bookings"`
	PendingBookings int64   `json:"pending_bookings"`
	TotalContacts   int64   `json:"total_contacts"`
	TotalProducts   int64   `json:"total_products"`
	TotalUsers      int64   `json:"total_users"`
}
