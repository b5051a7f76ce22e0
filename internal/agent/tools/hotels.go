package tools

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/khoj-travel/copilot/internal/cities"
	"github.com/khoj-travel/copilot/internal/tbo"
)

// resultsTarget is the accumulated hotel count at which batching stops early.
const resultsTarget = 20

// displayLimit caps the hotels returned to the model and client.
const displayLimit = 15

// PriceBlock is the price shape the client UI renders.
type PriceBlock struct {
	Currency       string  `json:"currency"`
	OfferedPrice   float64 `json:"offeredPrice"`
	PublishedPrice float64 `json:"publishedPrice"`
	RoomPrice      float64 `json:"roomPrice,omitempty"`
	Tax            float64 `json:"tax"`
	Commission     float64 `json:"commission"`
}

// HotelSummary is one hotel entry in a search result payload.
type HotelSummary struct {
	HotelCode   string     `json:"hotelCode"`
	Name        string     `json:"name"`
	Stars       int        `json:"stars"`
	Image       string     `json:"image"`
	Address     string     `json:"address"`
	Latitude    string     `json:"latitude"`
	Longitude   string     `json:"longitude"`
	Price       PriceBlock `json:"price"`
	BookingCode string     `json:"bookingCode"`
}

// SearchData is the payload of a successful search_hotels call.
type SearchData struct {
	TotalFound int            `json:"totalFound"`
	Showing    int            `json:"showing"`
	Hotels     []HotelSummary `json:"hotels"`
}

func (r *Registry) searchHotels(ctx context.Context, args map[string]any) Result {
	cityName := stringArg(args, "destination_city")
	checkIn := stringArg(args, "check_in_date")
	checkOut := stringArg(args, "check_out_date")

	numRooms := intArg(args, "num_rooms")
	if numRooms <= 0 {
		numRooms = 1
	}
	adultsPerRoom := intArg(args, "adults_per_room")
	if adultsPerRoom <= 0 {
		adultsPerRoom = 2
	}
	minStars := intArg(args, "min_star_rating")
	maxBudget := numberArg(args, "max_budget_per_night")
	nationality := stringArg(args, "guest_nationality")

	city, ok := cities.Resolve(cityName)
	if !ok {
		if suggestions := cities.Suggest(cityName); len(suggestions) > 0 {
			return Fail("City %q not found in our database. Did you mean %s? Available cities: %s",
				cityName, suggestions[0], strings.Join(cities.Names(), ", "))
		}
		return Fail("City %q not found in our database. Available cities: %s",
			cityName, strings.Join(cities.Names(), ", "))
	}

	allCodes, err := r.codes.Codes(ctx, city.Code)
	if err != nil {
		return Fail("%v", err)
	}
	if len(allCodes) == 0 {
		return Fail("No hotel codes found for this city.")
	}

	rooms := make([]tbo.SearchRoom, numRooms)
	for i := range rooms {
		rooms[i] = tbo.SearchRoom{Adults: adultsPerRoom}
	}

	filters := &tbo.SearchFilters{StarRating: "All", OrderBy: "PriceAsc"}
	if minStars > 0 {
		filters.StarRating = strconv.Itoa(minStars)
	}
	if maxBudget > 0 {
		filters.MaxPrice = maxBudget
	}

	// Session-bound search against batches of the city's code list. Batches
	// run sequentially; later booking steps depend on the session the search
	// establishes, so there is no parallelism to be had here.
	batches := tbo.BatchCodes(allCodes, tbo.BatchSize, tbo.BatchStartOffset, tbo.MaxBatches)
	var hotels []tbo.Hotel
	for _, batch := range batches {
		outcome, err := r.booking.SearchHotels(ctx, tbo.SearchParams{
			HotelCodes:       strings.Join(batch, ","),
			CheckIn:          checkIn,
			CheckOut:         checkOut,
			Rooms:            rooms,
			GuestNationality: nationality,
			Filters:          filters,
		})
		if err != nil {
			return Fail("%v", err)
		}
		hotels = append(hotels, outcome.Hotels...)
		if len(hotels) >= resultsTarget {
			break
		}
	}

	if len(hotels) == 0 {
		return Fail("No hotels found with availability for these dates. Try different dates or a wider search.")
	}

	// The API filters stars server-side, but ratings come back as labels and
	// unrated properties slip through; re-filter on the normalized number.
	filtered := hotels
	if minStars > 0 {
		filtered = filtered[:0:0]
		for _, h := range hotels {
			if h.StarRating >= minStars {
				filtered = append(filtered, h)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })

	top := filtered
	if len(top) > displayLimit {
		top = top[:displayLimit]
	}
	summaries := make([]HotelSummary, len(top))
	for i, h := range top {
		summaries[i] = HotelSummary{
			HotelCode: h.HotelCode,
			Name:      h.HotelName,
			Stars:     h.StarRating,
			Image:     h.HotelPicture,
			Address:   h.HotelAddress,
			Latitude:  h.Latitude,
			Longitude: h.Longitude,
			Price: PriceBlock{
				Currency:       h.Currency,
				OfferedPrice:   h.Price,
				PublishedPrice: h.Price,
			},
			BookingCode: h.HotelBookingCode,
		}
	}

	return Ok(SearchData{
		TotalFound: len(filtered),
		Showing:    len(summaries),
		Hotels:     summaries,
	})
}

func (r *Registry) hotelDetails(ctx context.Context, args map[string]any) Result {
	code := stringArg(args, "hotel_code")
	resp, err := r.booking.HotelDetails(ctx, code)
	if err != nil {
		return Fail("%v", err)
	}
	if len(resp.HotelDetails) == 0 {
		return Fail("Hotel details not found.")
	}
	return Ok(resp.HotelDetails[0])
}

// RoomOption is one room entry in a get_room_options payload.
type RoomOption struct {
	RoomType             string             `json:"roomType"`
	RatePlan             string             `json:"ratePlan"`
	MealType             string             `json:"mealType"`
	Inclusions           []string           `json:"inclusions"`
	IsRefundable         bool               `json:"isRefundable"`
	BookingCode          string             `json:"bookingCode"`
	Price                PriceBlock         `json:"price"`
	CancellationPolicies []tbo.CancelPolicy `json:"cancellationPolicies"`
	ImageURLs            []string           `json:"imageURLs,omitempty"`
}

// RoomsData is the payload of a successful get_room_options call.
type RoomsData struct {
	Rooms []RoomOption `json:"rooms"`
}

func (r *Registry) roomOptions(ctx context.Context, args map[string]any) Result {
	code := stringArg(args, "hotel_booking_code")
	resp, err := r.booking.AvailableRooms(ctx, code)
	if err != nil {
		return Fail("%v", err)
	}
	if len(resp.Rooms) == 0 {
		return Fail("No rooms available. The session may have expired — try searching again.")
	}

	rooms := make([]RoomOption, len(resp.Rooms))
	for i, room := range resp.Rooms {
		roomType := "Standard Room"
		if len(room.Name) > 0 && room.Name[0] != "" {
			roomType = room.Name[0]
		}
		var inclusions []string
		for _, inc := range strings.Split(room.Inclusion, ",") {
			if inc = strings.TrimSpace(inc); inc != "" {
				inclusions = append(inclusions, inc)
			}
		}
		rooms[i] = RoomOption{
			RoomType:     roomType,
			MealType:     room.MealType,
			Inclusions:   inclusions,
			IsRefundable: room.IsRefundable,
			BookingCode:  room.BookingCode,
			Price: PriceBlock{
				Currency:       "USD",
				OfferedPrice:   room.TotalFare,
				PublishedPrice: room.TotalFare,
				RoomPrice:      room.TotalFare - room.TotalTax,
				Tax:            room.TotalTax,
			},
			CancellationPolicies: room.CancelPolicies,
			ImageURLs:            room.ImageURLs,
		}
	}
	return Ok(RoomsData{Rooms: rooms})
}

func (r *Registry) cancellationPolicy(ctx context.Context, args map[string]any) Result {
	code := stringArg(args, "booking_code")
	resp, err := r.booking.CancellationPolicy(ctx, code)
	if err != nil {
		return Fail("%v", err)
	}
	return Ok(resp)
}

func (r *Registry) prebookRoom(ctx context.Context, args map[string]any) Result {
	code := stringArg(args, "booking_code")
	resp, err := r.booking.PreBook(ctx, code)
	if err != nil {
		return Fail("%v", err)
	}

	bookingCode := resp.BookingCode
	if bookingCode == "" {
		bookingCode = code
	}
	data := map[string]any{
		"isPriceChanged":              resp.IsPriceChanged,
		"isCancellationPolicyChanged": resp.IsCancellationPolicyChanged,
		"bookingCode":                 bookingCode,
		"status":                      resp.Status,
	}
	if resp.Status.Code != 200 {
		return Result{Success: false, Data: data, Error: resp.Status.Description}
	}
	return Ok(data)
}

func (r *Registry) bookHotel(ctx context.Context, args map[string]any) Result {
	title := stringArg(args, "guest_title")
	if title == "" {
		title = "Mr"
	}
	clientRef := stringArg(args, "client_reference")
	if clientRef == "" {
		clientRef = fmt.Sprintf("KHOJ-%d", r.now().UnixMilli())
	}

	resp, err := r.booking.BookHotel(ctx, tbo.BookParams{
		BookingCode: stringArg(args, "booking_code"),
		ClientRef:   clientRef,
		Guests: []tbo.Guest{{
			Title:     title,
			FirstName: stringArg(args, "guest_first_name"),
			LastName:  stringArg(args, "guest_last_name"),
			Type:      "Adult",
		}},
	})
	if err != nil {
		return Fail("%v", err)
	}

	if resp.ConfirmationNumber != "" {
		return Ok(map[string]any{
			"confirmationNumber": resp.ConfirmationNumber,
			"bookingStatus":      resp.BookingStatus,
			"hotelName":          resp.HotelName,
		})
	}
	if resp.Status.Description != "" {
		return Fail("%s", resp.Status.Description)
	}
	return Fail("Booking failed")
}

func (r *Registry) bookingStatus(ctx context.Context, args map[string]any) Result {
	num := stringArg(args, "confirmation_number")
	resp, err := r.booking.BookingDetail(ctx, num)
	if err != nil {
		return Fail("%v", err)
	}
	return Ok(resp)
}

func (r *Registry) cancelBooking(ctx context.Context, args map[string]any) Result {
	num := stringArg(args, "confirmation_number")
	resp, err := r.booking.CancelBooking(ctx, num)
	if err != nil {
		return Fail("%v", err)
	}
	return Ok(resp)
}
