// Package crm holds the demo client book.
//
// The copilot ships with a small set of seeded client profiles so the agent
// can personalize searches and quotes without an external CRM integration.
// Lookup matches on surname fragments so "Mr Kumar", "rahul kumar" and
// "kumar" all resolve to the same profile.
package crm

import (
	"fmt"
	"strings"
)

// Preferences captures a client's standing travel preferences.
type Preferences struct {
	HotelStars          int      `json:"hotelStars"`
	PoolRequired        bool     `json:"poolRequired"`
	DietaryRestrictions string   `json:"dietaryRestrictions"`
	LoyaltyPrograms     []string `json:"loyaltyPrograms"`
	SeatPreference      string   `json:"seatPreference"`
	BudgetTier          string   `json:"budgetTier"`
	PreferredBrands     []string `json:"preferredBrands"`
}

// Client is one client profile.
type Client struct {
	Name               string      `json:"name"`
	Type               string      `json:"type"`
	Trips              int         `json:"trips"`
	LifetimeValue      int         `json:"lifetimeValue"`
	Preferences        Preferences `json:"preferences"`
	RecentDestinations []string    `json:"recentDestinations"`
	TypicalSpend       int         `json:"typicalSpend"`
	TravelMonths       []string    `json:"travelMonths"`
	PassportExpiry     string      `json:"passportExpiry"`
}

// lookup key is the surname fragment matched against the lowercased query.
var clients = map[string]Client{
	"kumar": {
		Name:          "Rahul Kumar",
		Type:          "VIP",
		Trips:         14,
		LifetimeValue: 42000,
		Preferences: Preferences{
			HotelStars:          5,
			PoolRequired:        true,
			DietaryRestrictions: "Vegetarian",
			LoyaltyPrograms:     []string{"Marriott Bonvoy"},
			SeatPreference:      "Window",
			BudgetTier:          "Mid-High",
			PreferredBrands:     []string{"Marriott", "Hyatt", "Taj"},
		},
		RecentDestinations: []string{"Dubai", "Bali", "Goa"},
		TypicalSpend:       3500,
		TravelMonths:       []string{"March", "October"},
		PassportExpiry:     "2027-08-15",
	},
	"mehra": {
		Name:          "Priya Mehra",
		Type:          "Regular",
		Trips:         6,
		LifetimeValue: 18000,
		Preferences: Preferences{
			HotelStars:          4,
			PoolRequired:        false,
			DietaryRestrictions: "None",
			LoyaltyPrograms:     []string{},
			SeatPreference:      "Aisle",
			BudgetTier:          "Mid",
			PreferredBrands:     []string{"Holiday Inn", "Novotel"},
		},
		RecentDestinations: []string{"Bali", "Phuket", "Maldives"},
		TypicalSpend:       2500,
		TravelMonths:       []string{"April", "December"},
		PassportExpiry:     "2028-03-10",
	},
	"patel": {
		Name:          "Vikram Patel",
		Type:          "Group",
		Trips:         3,
		LifetimeValue: 12000,
		Preferences: Preferences{
			HotelStars:          4,
			PoolRequired:        true,
			DietaryRestrictions: "None",
			LoyaltyPrograms:     []string{"IHG"},
			SeatPreference:      "Any",
			BudgetTier:          "Budget-Mid",
			PreferredBrands:     []string{"Holiday Inn", "Ibis"},
		},
		RecentDestinations: []string{"London", "Dubai"},
		TypicalSpend:       2000,
		TravelMonths:       []string{"May", "November"},
		PassportExpiry:     "2029-01-20",
	},
}

// Lookup resolves a client by name fragment. The error for an unknown client
// names the available profiles so the agent can recover in conversation.
func Lookup(name string) (Client, error) {
	needle := strings.ToLower(name)
	for key, client := range clients {
		if strings.Contains(needle, key) {
			return client, nil
		}
	}
	return Client{}, fmt.Errorf("client %q not found. Available clients: Rahul Kumar, Priya Mehra, Vikram Patel", name)
}
