package domain

import "time"

var (
	MessageSuccessGetSummary      = "summary retrieved successfully"
	MessageSuccessGetStatistics   = "statistics retrieved successfully"
	MessageSuccessGetPerCategory  = "donations per category retrieved successfully"
	MessageSuccessGetTopDonors    = "top donors retrieved successfully"
	MessageSuccessGetTopReceivers = "top receivers retrieved successfully"
	MessageSuccessGetOverTime     = "donations over time retrieved successfully"
	MessageSuccessGetUserReport   = "user report retrieved successfully"

	MessageFailedGetReport = "failed to retrieve report"
)

type (
	Summary struct {
		TotalDonations     int64   `json:"total_donations"`
		DeliveredDonations int64   `json:"delivered_donations"`
		FoodSavedUnits     float64 `json:"food_saved_units"`
		ActiveDonors       int64   `json:"active_donors"`
		ActiveReceivers    int64   `json:"active_receivers"`
		PendingClaims      int64   `json:"pending_claims"`
	}

	Statistics struct {
		Users     map[string]int64 `json:"users"`
		Donations map[string]int64 `json:"donations"`
		Claims    map[string]int64 `json:"claims"`
		Campaigns map[string]int64 `json:"campaigns"`
	}

	CategoryCount struct {
		Category      string  `json:"category"`
		Count         int64   `json:"count"`
		TotalQuantity float64 `json:"total_quantity"`
	}

	TopUser struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Total int64  `json:"total"`
	}

	PeriodCount struct {
		Period string `json:"period"`
		Count  int64  `json:"count"`
	}

	RecentDonation struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}

	RecentClaim struct {
		ID         string    `json:"id"`
		DonationID string    `json:"donation_id"`
		Status     string    `json:"status"`
		CreatedAt  time.Time `json:"created_at"`
	}

	UserReport struct {
		User            UserResponse      `json:"user"`
		Donations       map[string]int64  `json:"donations,omitempty"`
		RecentDonations []*RecentDonation `json:"recent_donations,omitempty"`
		Claims          map[string]int64  `json:"claims,omitempty"`
		Campaigns       map[string]int64  `json:"campaigns,omitempty"`
		RecentClaims    []*RecentClaim    `json:"recent_claims,omitempty"`
	}
)
