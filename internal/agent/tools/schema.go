package tools

import "github.com/khoj-travel/copilot/pkg/provider/llm"

// Model-facing tool schemas. Names and parameter shapes are part of the
// function-calling contract with the model — change them and existing prompts
// stop resolving.

var searchHotelsDef = llm.ToolDefinition{
	Name: "search_hotels",
	Description: "Search for available hotels in a city using the TBO hotel API. " +
		"Returns a list of hotels with prices, star ratings, images, and locations. " +
		"Always use this when the user asks to find hotels, accommodation, or places to stay. " +
		"You must provide the destination city name and check-in/check-out dates.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"destination_city": map[string]any{
				"type":        "string",
				"description": "City name, e.g. 'Dubai', 'London', 'Bali'",
			},
			"check_in_date": map[string]any{
				"type":        "string",
				"description": "Check-in date in YYYY-MM-DD format",
			},
			"check_out_date": map[string]any{
				"type":        "string",
				"description": "Check-out date in YYYY-MM-DD format",
			},
			"num_rooms": map[string]any{
				"type":        "number",
				"description": "Number of rooms needed. Defaults to 1.",
			},
			"adults_per_room": map[string]any{
				"type":        "number",
				"description": "Number of adults per room. Defaults to 2.",
			},
			"min_star_rating": map[string]any{
				"type":        "number",
				"description": "Minimum star rating filter (1-5). Optional.",
			},
			"max_budget_per_night": map[string]any{
				"type":        "number",
				"description": "Maximum budget per night in USD. Optional.",
			},
			"guest_nationality": map[string]any{
				"type":        "string",
				"description": "Two-letter country code for guest nationality. Defaults to 'IN'.",
			},
		},
		"required": []string{"destination_city", "check_in_date", "check_out_date"},
	},
}

var hotelDetailsDef = llm.ToolDefinition{
	Name: "get_hotel_details",
	Description: "Get detailed information about a specific hotel including full description, " +
		"all amenities, facilities, nearby attractions, and high-resolution images. " +
		"Use this when the user wants to know more about a particular hotel from the search results.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hotel_code": map[string]any{
				"type":        "string",
				"description": "The TBO hotel code from search results.",
			},
		},
		"required": []string{"hotel_code"},
	},
}

var roomOptionsDef = llm.ToolDefinition{
	Name: "get_room_options",
	Description: "Get available room types and pricing for a specific hotel. " +
		"Returns room categories, meal plans, cancellation policies, and detailed pricing. " +
		"Use this when the user wants to see room options or is ready to select a room to book.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hotel_booking_code": map[string]any{
				"type":        "string",
				"description": "The HotelBookingCode from hotel search results.",
			},
		},
		"required": []string{"hotel_booking_code"},
	},
}

var cancellationPolicyDef = llm.ToolDefinition{
	Name: "check_cancellation_policy",
	Description: "Check the cancellation policy for a specific room booking. " +
		"Returns dates, charges, and whether free cancellation is available. " +
		"Use this when the user asks about cancellation terms before booking.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"booking_code": map[string]any{
				"type":        "string",
				"description": "The BookingCode from room options.",
			},
		},
		"required": []string{"booking_code"},
	},
}

var prebookRoomDef = llm.ToolDefinition{
	Name: "prebook_room",
	Description: "Confirm the current price and availability of a room before final booking. " +
		"This is a required step before booking — it locks in the price and checks for any changes. " +
		"Use this when the user has selected a room and wants to proceed toward booking.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"booking_code": map[string]any{
				"type":        "string",
				"description": "The BookingCode from room options.",
			},
		},
		"required": []string{"booking_code"},
	},
}

var bookHotelDef = llm.ToolDefinition{
	Name: "book_hotel",
	Description: "Complete the hotel booking with guest details. " +
		"This creates a confirmed reservation and returns a confirmation number. " +
		"Only use this after prebook_room has been called successfully and the user has " +
		"explicitly confirmed they want to book.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"booking_code": map[string]any{
				"type":        "string",
				"description": "The BookingCode from prebook response.",
			},
			"guest_title": map[string]any{
				"type":        "string",
				"description": "Guest title: Mr, Mrs, Ms, etc.",
			},
			"guest_first_name": map[string]any{
				"type":        "string",
				"description": "Guest first name.",
			},
			"guest_last_name": map[string]any{
				"type":        "string",
				"description": "Guest last name.",
			},
			"client_reference": map[string]any{
				"type":        "string",
				"description": "Agent's internal reference ID for this booking.",
			},
		},
		"required": []string{"booking_code", "guest_title", "guest_first_name", "guest_last_name"},
	},
}

var bookingStatusDef = llm.ToolDefinition{
	Name: "get_booking_status",
	Description: "Check the status of an existing booking using its confirmation number. " +
		"Returns booking details, status, hotel info, and dates. " +
		"Use this when the user wants to check on a booking.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"confirmation_number": map[string]any{
				"type":        "string",
				"description": "The booking confirmation number.",
			},
		},
		"required": []string{"confirmation_number"},
	},
}

var cancelBookingDef = llm.ToolDefinition{
	Name: "cancel_booking",
	Description: "Cancel an existing hotel booking. This is irreversible. " +
		"Only use when the user explicitly requests cancellation and confirms they want to proceed.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"confirmation_number": map[string]any{
				"type":        "string",
				"description": "The booking confirmation number to cancel.",
			},
		},
		"required": []string{"confirmation_number"},
	},
}

var clientPreferencesDef = llm.ToolDefinition{
	Name: "get_client_preferences",
	Description: "Retrieve a client's travel preferences, booking history, and profile information. " +
		"Use this to personalize hotel recommendations and understand the client's needs before searching. " +
		"Always call this when a client name is mentioned.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"client_name": map[string]any{
				"type":        "string",
				"description": "The client's name to look up.",
			},
		},
		"required": []string{"client_name"},
	},
}

var addToItineraryDef = llm.ToolDefinition{
	Name: "add_to_itinerary",
	Description: "Add a travel product (hotel, flight, transfer, activity) to the current trip itinerary. " +
		"Use this when the user confirms they want to add something to the trip plan.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"trip_id": map[string]any{
				"type":        "string",
				"description": "The trip ID to add to.",
			},
			"product_type": map[string]any{
				"type":        "string",
				"enum":        []string{"hotel", "flight", "transfer", "activity"},
				"description": "Type of travel product.",
			},
			"product_name": map[string]any{
				"type":        "string",
				"description": "Name of the product (hotel name, flight route, etc.).",
			},
			"date": map[string]any{
				"type":        "string",
				"description": "Date for this item in YYYY-MM-DD format.",
			},
			"end_date": map[string]any{
				"type":        "string",
				"description": "End date if applicable (e.g. hotel checkout).",
			},
			"price": map[string]any{
				"type":        "number",
				"description": "Price in USD.",
			},
			"details": map[string]any{
				"type":        "string",
				"description": "Additional details about the product.",
			},
			"status": map[string]any{
				"type":        "string",
				"enum":        []string{"confirmed", "pending", "suggested"},
				"description": "Status of this itinerary item.",
			},
		},
		"required": []string{"trip_id", "product_type", "product_name", "date"},
	},
}

var generateQuoteDef = llm.ToolDefinition{
	Name: "generate_quote",
	Description: "Generate a formatted price quote/proposal for a trip. " +
		"Compiles all itinerary items into a professional quote with pricing, markup, and terms. " +
		"Use this when the agent wants to send a quote to the client.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"trip_id": map[string]any{
				"type":        "string",
				"description": "The trip ID to generate a quote for.",
			},
			"markup_percentage": map[string]any{
				"type":        "number",
				"description": "Agent markup percentage. Defaults to 15.",
			},
		},
		"required": []string{"trip_id"},
	},
}

var suggestActivitiesDef = llm.ToolDefinition{
	Name: "suggest_activities",
	Description: "Get activity and experience suggestions for a destination. " +
		"Returns curated suggestions based on the destination, travel dates, and client preferences. " +
		"Use this to help build complete itineraries beyond just hotels.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"destination": map[string]any{
				"type":        "string",
				"description": "City or destination name.",
			},
			"dates": map[string]any{
				"type":        "string",
				"description": "Travel date range, e.g. 'March 15-20, 2026'.",
			},
			"client_preferences": map[string]any{
				"type":        "string",
				"description": "Client preference notes to match activities to.",
			},
			"budget": map[string]any{
				"type":        "number",
				"description": "Budget for activities in USD.",
			},
		},
		"required": []string{"destination"},
	},
}
