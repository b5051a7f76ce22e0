package tbo

// Status is the status envelope carried by every TBO response body. Code 200
// means success; other codes carry an error description even when the HTTP
// status is 200.
type Status struct {
	Code        int    `json:"Code"`
	Description string `json:"Description"`
}

// HotelInfo is the raw hotel record inside a search result. Rating is the
// API's word form ("FiveStar" .. "OneStar"); use ratingToNumber to convert.
type HotelInfo struct {
	HotelCode         int    `json:"HotelCode"`
	HotelName         string `json:"HotelName"`
	HotelPicture      string `json:"HotelPicture"`
	HotelDescription  string `json:"HotelDescription"`
	Latitude          string `json:"Latitude"`
	Longitude         string `json:"Longitude"`
	HotelAddress      string `json:"HotelAddress"`
	Rating            string `json:"Rating"`
	TripAdvisorRating string `json:"TripAdvisorRating,omitempty"`
	TagIDs            string `json:"TagIds,omitempty"`
}

// SearchResult is one raw entry in a HotelSearch response.
type SearchResult struct {
	HotelBookingCode string    `json:"HotelBookingCode"`
	HotelInfo        HotelInfo `json:"HotelInfo"`
	MinHotelPrice    struct {
		TotalPrice    float64 `json:"TotalPrice"`
		Currency      string  `json:"Currency"`
		OriginalPrice float64 `json:"OriginalPrice"`
	} `json:"MinHotelPrice"`
	IsPkgProperty bool `json:"IsPkgProperty"`
	IsPackageRate bool `json:"IsPackageRate"`
	MappedHotel   bool `json:"MappedHotel"`
	IsHalal       bool `json:"IsHalal"`
}

// searchResponse is the raw HotelSearch response body.
type searchResponse struct {
	Status             Status         `json:"Status"`
	HotelSearchResults []SearchResult `json:"HotelSearchResults"`
}

// Hotel is the normalized hotel record used everywhere past the client
// boundary. StarRating is numeric 1-5, 0 when the API rating is unknown.
type Hotel struct {
	HotelCode         string  `json:"HotelCode"`
	HotelName         string  `json:"HotelName"`
	StarRating        int     `json:"StarRating"`
	HotelPicture      string  `json:"HotelPicture"`
	HotelAddress      string  `json:"HotelAddress"`
	Latitude          string  `json:"Latitude"`
	Longitude         string  `json:"Longitude"`
	HotelDescription  string  `json:"HotelDescription,omitempty"`
	Price             float64 `json:"Price"`
	Currency          string  `json:"Currency"`
	HotelBookingCode  string  `json:"HotelBookingCode"`
	TripAdvisorRating string  `json:"TripAdvisorRating,omitempty"`
}

// SearchRoom describes one room's occupancy in a search request.
type SearchRoom struct {
	Adults    int
	Children  int
	ChildAges []int
}

// SearchFilters narrows a hotel search server-side.
type SearchFilters struct {
	StarRating string
	MinPrice   float64
	MaxPrice   float64
	OrderBy    string
}

// SearchParams are the inputs to SearchHotels. CheckIn and CheckOut use
// YYYY-MM-DD.
type SearchParams struct {
	HotelCodes       string
	CheckIn          string
	CheckOut         string
	Rooms            []SearchRoom
	GuestNationality string
	Filters          *SearchFilters
	ResponseTime     int
	DetailedResponse *bool
}

// SearchOutcome pairs the response status with the normalized hotels.
type SearchOutcome struct {
	Status Status  `json:"Status"`
	Hotels []Hotel `json:"hotels"`
}

// HotelDetail is one entry in a HotelDetails response.
type HotelDetail struct {
	HotelCode   string `json:"HotelCode"`
	HotelName   string `json:"HotelName"`
	StarRating  int    `json:"StarRating"`
	HotelURL    string `json:"HotelURL"`
	Description string `json:"Description"`
	Attractions []struct {
		Key   string `json:"Key"`
		Value string `json:"Value"`
	} `json:"Attractions"`
	HotelFacilities []string `json:"HotelFacilities"`
	Address         string   `json:"Address"`
	PinCode         string   `json:"PinCode"`
	CityName        string   `json:"CityName"`
	CountryName     string   `json:"CountryName"`
	PhoneNumber     string   `json:"PhoneNumber"`
	Map             string   `json:"Map"`
	Latitude        string   `json:"Latitude"`
	Longitude       string   `json:"Longitude"`
	Images          []string `json:"Images"`
}

// DetailsResponse is the HotelDetails response body.
type DetailsResponse struct {
	Status       Status        `json:"Status"`
	HotelDetails []HotelDetail `json:"HotelDetails"`
}

// CancelPolicy is one cancellation charge window on a room rate.
type CancelPolicy struct {
	FromDate           string  `json:"FromDate"`
	ChargeType         string  `json:"ChargeType"`
	CancellationCharge float64 `json:"CancellationCharge"`
}

// Room is one bookable room rate returned by AvailableHotelRooms. The staging
// API returns a flat Rooms array rather than nested room combinations.
type Room struct {
	Name           []string       `json:"Name"`
	BookingCode    string         `json:"BookingCode"`
	Inclusion      string         `json:"Inclusion"`
	TotalFare      float64        `json:"TotalFare"`
	TotalTax       float64        `json:"TotalTax"`
	RoomPromotion  []string       `json:"RoomPromotion"`
	CancelPolicies []CancelPolicy `json:"CancelPolicies"`
	MealType       string         `json:"MealType"`
	IsRefundable   bool           `json:"IsRefundable"`
	WithTransfers  bool           `json:"WithTransfers"`
	ImageURLs      []string       `json:"ImageURLs,omitempty"`
}

// RoomsResponse is the AvailableHotelRooms response body.
type RoomsResponse struct {
	Status Status `json:"Status"`
	Rooms  []Room `json:"Rooms"`
}

// PreBookResponse is the PreBook response body. The flags signal that the
// quoted rate or cancellation terms moved between search and prebook.
type PreBookResponse struct {
	Status                      Status `json:"Status"`
	IsPriceChanged              bool   `json:"IsPriceChanged"`
	IsCancellationPolicyChanged bool   `json:"IsCancellationPolicyChanged"`
	BookingCode                 string `json:"BookingCode,omitempty"`
}

// Guest identifies one traveller on a booking.
type Guest struct {
	Title     string
	FirstName string
	LastName  string
	Type      string // "Adult" or "Child"
	Age       int
}

// BookParams are the inputs to BookHotel.
type BookParams struct {
	BookingCode string
	ClientRef   string
	Guests      []Guest
}

// BookResponse is the HotelBook response body.
type BookResponse struct {
	Status             Status `json:"Status"`
	ConfirmationNumber string `json:"ConfirmationNumber,omitempty"`
	BookingStatus      string `json:"BookingStatus,omitempty"`
	HotelName          string `json:"HotelName,omitempty"`
}
