package tools

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/khoj-travel/copilot/internal/tbo"
)

// fakeBooking is a scripted BookingAPI that records search calls.
type fakeBooking struct {
	searchCalls   []tbo.SearchParams
	hotelsPerCall [][]tbo.Hotel
	searchErr     error

	rooms    []tbo.Room
	prebook  *tbo.PreBookResponse
	book     *tbo.BookResponse
	bookArgs *tbo.BookParams
	details  []tbo.HotelDetail
}

func (f *fakeBooking) SearchHotels(_ context.Context, params tbo.SearchParams) (*tbo.SearchOutcome, error) {
	call := len(f.searchCalls)
	f.searchCalls = append(f.searchCalls, params)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var hotels []tbo.Hotel
	if call < len(f.hotelsPerCall) {
		hotels = f.hotelsPerCall[call]
	}
	return &tbo.SearchOutcome{Status: tbo.Status{Code: 200}, Hotels: hotels}, nil
}

func (f *fakeBooking) HotelDetails(_ context.Context, _ string) (*tbo.DetailsResponse, error) {
	return &tbo.DetailsResponse{Status: tbo.Status{Code: 200}, HotelDetails: f.details}, nil
}

func (f *fakeBooking) AvailableRooms(_ context.Context, _ string) (*tbo.RoomsResponse, error) {
	return &tbo.RoomsResponse{Status: tbo.Status{Code: 200}, Rooms: f.rooms}, nil
}

func (f *fakeBooking) PreBook(_ context.Context, _ string) (*tbo.PreBookResponse, error) {
	if f.prebook == nil {
		return &tbo.PreBookResponse{Status: tbo.Status{Code: 200}}, nil
	}
	return f.prebook, nil
}

func (f *fakeBooking) BookHotel(_ context.Context, params tbo.BookParams) (*tbo.BookResponse, error) {
	f.bookArgs = &params
	if f.book == nil {
		return &tbo.BookResponse{Status: tbo.Status{Code: 200}, ConfirmationNumber: "TBO-1"}, nil
	}
	return f.book, nil
}

func (f *fakeBooking) BookingDetail(_ context.Context, num string) (map[string]any, error) {
	return map[string]any{"ConfirmationNumber": num, "BookingStatus": "Confirmed"}, nil
}

func (f *fakeBooking) CancelBooking(_ context.Context, num string) (map[string]any, error) {
	return map[string]any{"ConfirmationNumber": num, "Status": "Cancelled"}, nil
}

func (f *fakeBooking) CancellationPolicy(_ context.Context, _ string) (map[string]any, error) {
	return map[string]any{"ChargeType": "Percentage"}, nil
}

type fakeCodes struct {
	codes []string
	err   error
}

func (f *fakeCodes) Codes(_ context.Context, _ string) ([]string, error) {
	return f.codes, f.err
}

func manyCodes(n int) []string {
	codes := make([]string, n)
	for i := range codes {
		codes[i] = strconv.Itoa(i)
	}
	return codes
}

func hotelsWithPrices(prices ...float64) []tbo.Hotel {
	hotels := make([]tbo.Hotel, len(prices))
	for i, p := range prices {
		hotels[i] = tbo.Hotel{
			HotelCode:        fmt.Sprintf("h%d", i),
			HotelName:        fmt.Sprintf("Hotel %d", i),
			StarRating:       (i % 6),
			Price:            p,
			Currency:         "USD",
			HotelBookingCode: fmt.Sprintf("bc%d", i),
		}
	}
	return hotels
}

// TestRegistry_Definitions checks the full tool surface is declared with the
// expected names, in declaration order.
func TestRegistry_Definitions(t *testing.T) {
	r := NewRegistry(&fakeBooking{}, &fakeCodes{})
	defs := r.Definitions()

	want := []string{
		"search_hotels", "get_hotel_details", "get_room_options",
		"check_cancellation_policy", "prebook_room", "book_hotel",
		"get_booking_status", "cancel_booking", "get_client_preferences",
		"add_to_itinerary", "generate_quote", "suggest_activities",
	}
	if len(defs) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(defs))
	}
	for i, name := range want {
		if defs[i].Name != name {
			t.Errorf("tool %d: got %q, want %q", i, defs[i].Name, name)
		}
		if defs[i].Description == "" {
			t.Errorf("tool %q has no description", name)
		}
		if defs[i].Parameters == nil {
			t.Errorf("tool %q has no parameters", name)
		}
	}
}

// TestExecute_UnknownTool checks a hallucinated tool name fails cleanly.
func TestExecute_UnknownTool(t *testing.T) {
	r := NewRegistry(&fakeBooking{}, &fakeCodes{})
	result := r.Execute(context.Background(), "book_flight", nil)
	if result.Success {
		t.Fatal("expected failure for unknown tool")
	}
	if !strings.Contains(result.Error, "book_flight") {
		t.Errorf("error should name the tool: %q", result.Error)
	}
}

// TestSearchHotels_Batching checks the code-list partitioning, the early-stop
// threshold, price ordering and the display cap.
func TestSearchHotels_Batching(t *testing.T) {
	booking := &fakeBooking{
		hotelsPerCall: [][]tbo.Hotel{
			hotelsWithPrices(300, 120, 450, 90, 210, 330, 75, 510, 260, 180),
			hotelsWithPrices(95, 400, 150, 310, 220, 130, 280, 60, 340, 170),
			hotelsWithPrices(999), // must never be requested: early stop at 20
		},
	}
	r := NewRegistry(booking, &fakeCodes{codes: manyCodes(2000)})

	result := r.Execute(context.Background(), "search_hotels", map[string]any{
		"destination_city": "dubai",
		"check_in_date":    "2026-03-15",
		"check_out_date":   "2026-03-18",
	})
	if !result.Success {
		t.Fatalf("search failed: %s", result.Error)
	}

	if len(booking.searchCalls) != 2 {
		t.Fatalf("expected early stop after 2 batches, got %d calls", len(booking.searchCalls))
	}
	firstBatch := strings.Split(booking.searchCalls[0].HotelCodes, ",")
	if len(firstBatch) != 300 {
		t.Errorf("first batch: expected 300 codes, got %d", len(firstBatch))
	}
	if firstBatch[0] != "500" {
		t.Errorf("first batch should start at offset 500, got %s", firstBatch[0])
	}
	secondBatch := strings.Split(booking.searchCalls[1].HotelCodes, ",")
	if secondBatch[0] != "800" {
		t.Errorf("second batch should start at offset 800, got %s", secondBatch[0])
	}

	data, ok := result.Data.(SearchData)
	if !ok {
		t.Fatalf("unexpected data type %T", result.Data)
	}
	if data.Showing != displayLimit {
		t.Errorf("expected %d hotels shown, got %d", displayLimit, data.Showing)
	}
	if data.TotalFound != 20 {
		t.Errorf("expected 20 total, got %d", data.TotalFound)
	}
	for i := 1; i < len(data.Hotels); i++ {
		if data.Hotels[i].Price.OfferedPrice < data.Hotels[i-1].Price.OfferedPrice {
			t.Fatalf("hotels not sorted ascending by price at %d", i)
		}
	}
	for _, h := range data.Hotels {
		if h.Stars < 0 || h.Stars > 5 {
			t.Errorf("star rating out of range: %d", h.Stars)
		}
		if h.Price.OfferedPrice <= 0 {
			t.Errorf("non-positive price: %v", h.Price.OfferedPrice)
		}
	}
}

// TestSearchHotels_MinStarFilter checks client-side star filtering after
// aggregation.
func TestSearchHotels_MinStarFilter(t *testing.T) {
	booking := &fakeBooking{
		hotelsPerCall: [][]tbo.Hotel{{
			{HotelCode: "a", HotelName: "A", StarRating: 5, Price: 400, Currency: "USD"},
			{HotelCode: "b", HotelName: "B", StarRating: 0, Price: 80, Currency: "USD"},
			{HotelCode: "c", HotelName: "C", StarRating: 4, Price: 250, Currency: "USD"},
			{HotelCode: "d", HotelName: "D", StarRating: 3, Price: 120, Currency: "USD"},
		}},
	}
	r := NewRegistry(booking, &fakeCodes{codes: manyCodes(900)})

	result := r.Execute(context.Background(), "search_hotels", map[string]any{
		"destination_city": "Dubai",
		"check_in_date":    "2026-03-15",
		"check_out_date":   "2026-03-18",
		"min_star_rating":  4,
	})
	if !result.Success {
		t.Fatalf("search failed: %s", result.Error)
	}
	data := result.Data.(SearchData)
	if data.TotalFound != 2 {
		t.Fatalf("expected 2 hotels after filter, got %d", data.TotalFound)
	}
	for _, h := range data.Hotels {
		if h.Stars < 4 {
			t.Errorf("hotel %s below min stars: %d", h.Name, h.Stars)
		}
	}
	if booking.searchCalls[0].Filters.StarRating != "4" {
		t.Errorf("server-side filter not forwarded: %q", booking.searchCalls[0].Filters.StarRating)
	}
}

// TestSearchHotels_UnknownCity checks the failure lists alternatives and
// suggests near-misses.
func TestSearchHotels_UnknownCity(t *testing.T) {
	r := NewRegistry(&fakeBooking{}, &fakeCodes{})
	result := r.Execute(context.Background(), "search_hotels", map[string]any{
		"destination_city": "Dubia",
		"check_in_date":    "2026-03-15",
		"check_out_date":   "2026-03-18",
	})
	if result.Success {
		t.Fatal("expected failure for unknown city")
	}
	if !strings.Contains(result.Error, "Did you mean Dubai?") {
		t.Errorf("expected suggestion in error: %q", result.Error)
	}
	if !strings.Contains(result.Error, "London") {
		t.Errorf("expected available cities in error: %q", result.Error)
	}
}

// TestSearchHotels_NoAvailability checks the empty-result hint.
func TestSearchHotels_NoAvailability(t *testing.T) {
	r := NewRegistry(&fakeBooking{}, &fakeCodes{codes: manyCodes(900)})
	result := r.Execute(context.Background(), "search_hotels", map[string]any{
		"destination_city": "Dubai",
		"check_in_date":    "2026-03-15",
		"check_out_date":   "2026-03-18",
	})
	if result.Success {
		t.Fatal("expected failure when no hotels found")
	}
	if !strings.Contains(result.Error, "No hotels found") {
		t.Errorf("unexpected error: %q", result.Error)
	}
}

// TestRoomOptions checks the room mapping and the empty-rooms session hint.
func TestRoomOptions(t *testing.T) {
	booking := &fakeBooking{rooms: []tbo.Room{{
		Name:         []string{"Deluxe King"},
		BookingCode:  "room-1",
		Inclusion:    "Breakfast, Free WiFi",
		TotalFare:    330,
		TotalTax:     30,
		MealType:     "Breakfast",
		IsRefundable: true,
	}}}
	r := NewRegistry(booking, &fakeCodes{})

	result := r.Execute(context.Background(), "get_room_options", map[string]any{
		"hotel_booking_code": "hb-1",
	})
	if !result.Success {
		t.Fatalf("get_room_options failed: %s", result.Error)
	}
	data := result.Data.(RoomsData)
	if len(data.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(data.Rooms))
	}
	room := data.Rooms[0]
	if room.RoomType != "Deluxe King" {
		t.Errorf("unexpected room type: %q", room.RoomType)
	}
	if len(room.Inclusions) != 2 || room.Inclusions[1] != "Free WiFi" {
		t.Errorf("unexpected inclusions: %v", room.Inclusions)
	}
	if room.Price.RoomPrice != 300 || room.Price.Tax != 30 {
		t.Errorf("unexpected price split: %+v", room.Price)
	}

	empty := NewRegistry(&fakeBooking{}, &fakeCodes{})
	result = empty.Execute(context.Background(), "get_room_options", map[string]any{
		"hotel_booking_code": "hb-1",
	})
	if result.Success {
		t.Fatal("expected failure for no rooms")
	}
	if !strings.Contains(result.Error, "session may have expired") {
		t.Errorf("expected session hint: %q", result.Error)
	}
}

// TestPrebookRoom checks the failure path carries both data and error.
func TestPrebookRoom(t *testing.T) {
	booking := &fakeBooking{prebook: &tbo.PreBookResponse{
		Status:         tbo.Status{Code: 500, Description: "Rate no longer available"},
		IsPriceChanged: true,
	}}
	r := NewRegistry(booking, &fakeCodes{})

	result := r.Execute(context.Background(), "prebook_room", map[string]any{
		"booking_code": "room-1",
	})
	if result.Success {
		t.Fatal("expected failure for non-200 prebook status")
	}
	if result.Error != "Rate no longer available" {
		t.Errorf("unexpected error: %q", result.Error)
	}
	data := result.Data.(map[string]any)
	if data["bookingCode"] != "room-1" {
		t.Errorf("booking code should fall back to the input: %v", data["bookingCode"])
	}
}

// TestBookHotel checks guest defaults and the generated client reference.
func TestBookHotel(t *testing.T) {
	booking := &fakeBooking{}
	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	r := NewRegistry(booking, &fakeCodes{}, WithClock(func() time.Time { return fixed }))

	result := r.Execute(context.Background(), "book_hotel", map[string]any{
		"booking_code":     "room-1",
		"guest_first_name": "Rahul",
		"guest_last_name":  "Kumar",
	})
	if !result.Success {
		t.Fatalf("book_hotel failed: %s", result.Error)
	}
	if booking.bookArgs.Guests[0].Title != "Mr" {
		t.Errorf("missing title should default to Mr, got %q", booking.bookArgs.Guests[0].Title)
	}
	wantRef := fmt.Sprintf("KHOJ-%d", fixed.UnixMilli())
	if booking.bookArgs.ClientRef != wantRef {
		t.Errorf("unexpected client ref: %q, want %q", booking.bookArgs.ClientRef, wantRef)
	}
}

// TestBookHotel_Failure checks the status description surfaces.
func TestBookHotel_Failure(t *testing.T) {
	booking := &fakeBooking{book: &tbo.BookResponse{
		Status: tbo.Status{Code: 400, Description: "Invalid booking code"},
	}}
	r := NewRegistry(booking, &fakeCodes{})

	result := r.Execute(context.Background(), "book_hotel", map[string]any{
		"booking_code":     "bad",
		"guest_title":      "Ms",
		"guest_first_name": "Priya",
		"guest_last_name":  "Mehra",
	})
	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "Invalid booking code" {
		t.Errorf("unexpected error: %q", result.Error)
	}
}

// TestClientPreferences checks CRM lookup through the registry.
func TestClientPreferences(t *testing.T) {
	r := NewRegistry(&fakeBooking{}, &fakeCodes{})

	result := r.Execute(context.Background(), "get_client_preferences", map[string]any{
		"client_name": "Rahul Kumar",
	})
	if !result.Success {
		t.Fatalf("lookup failed: %s", result.Error)
	}

	result = r.Execute(context.Background(), "get_client_preferences", map[string]any{
		"client_name": "Nobody",
	})
	if result.Success {
		t.Fatal("expected failure for unknown client")
	}
	for _, name := range []string{"Rahul Kumar", "Priya Mehra", "Vikram Patel"} {
		if !strings.Contains(result.Error, name) {
			t.Errorf("error should list %q: %q", name, result.Error)
		}
	}
}

// TestLocalTools checks the action descriptors emitted for the UI layer.
func TestLocalTools(t *testing.T) {
	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	r := NewRegistry(&fakeBooking{}, &fakeCodes{}, WithClock(func() time.Time { return fixed }))

	result := r.Execute(context.Background(), "add_to_itinerary", map[string]any{
		"trip_id":      "trip-7",
		"product_type": "hotel",
		"product_name": "Atlantis The Palm",
		"date":         "2026-03-15",
	})
	if !result.Success {
		t.Fatalf("add_to_itinerary failed: %s", result.Error)
	}
	data := result.Data.(map[string]any)
	if data["action"] != "add_itinerary_item" {
		t.Errorf("unexpected action: %v", data["action"])
	}
	item := data["item"].(map[string]any)
	if item["status"] != "suggested" {
		t.Errorf("missing status should default to suggested, got %v", item["status"])
	}

	result = r.Execute(context.Background(), "generate_quote", map[string]any{
		"trip_id": "trip-7",
	})
	if !result.Success {
		t.Fatalf("generate_quote failed: %s", result.Error)
	}
	quote := result.Data.(map[string]any)
	if quote["markupPercentage"].(float64) != 15 {
		t.Errorf("missing markup should default to 15, got %v", quote["markupPercentage"])
	}

	result = r.Execute(context.Background(), "suggest_activities", map[string]any{
		"destination": "Bali",
	})
	if !result.Success {
		t.Fatalf("suggest_activities failed: %s", result.Error)
	}
}

// TestSearchHotels_CodeSourceError checks upstream failures normalize into a
// failed result.
func TestSearchHotels_CodeSourceError(t *testing.T) {
	r := NewRegistry(&fakeBooking{}, &fakeCodes{err: errors.New("tbo unavailable")})
	result := r.Execute(context.Background(), "search_hotels", map[string]any{
		"destination_city": "Dubai",
		"check_in_date":    "2026-03-15",
		"check_out_date":   "2026-03-18",
	})
	if result.Success {
		t.Fatal("expected failure")
	}
}
