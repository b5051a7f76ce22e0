// Package tbo is the client for the TBO hotel distribution API.
//
// The API is a JSON-over-HTTP service with HTTP basic auth. Most operations
// are POSTs with a JSON body; HotelCodeList and CountryList are GETs. Every
// response carries a Status envelope whose Code reports the outcome even when
// the HTTP status is 200.
//
// Search works against hotel codes, not cities: callers first resolve the
// city's full code list (cached, see [CodeCache]), then search availability in
// bounded batches of codes.
package tbo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout = 45 * time.Second

	// defaultResponseTime is the server-side search deadline in seconds.
	defaultResponseTime = 25

	// defaultNationality is the guest nationality used when the caller does
	// not pass one.
	defaultNationality = "IN"
)

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client talks to the TBO hotel API.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a TBO API client. baseURL, username and password must all
// be non-empty.
func NewClient(baseURL, username, password string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("tbo: baseURL must not be empty")
	}
	if username == "" || password == "" {
		return nil, errors.New("tbo: username and password must not be empty")
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// post issues a JSON POST to endpoint and decodes the response into out.
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("tbo: marshal %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("tbo: build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	return c.do(req, endpoint, out)
}

// get issues a GET to endpoint (with query already attached) and decodes the
// response into out.
func (c *Client) get(ctx context.Context, endpoint, query string, out any) error {
	url := c.baseURL + "/" + endpoint
	if query != "" {
		url += "?" + query
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("tbo: build %s request: %w", endpoint, err)
	}
	req.SetBasicAuth(c.username, c.password)

	return c.do(req, endpoint, out)
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tbo: %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("tbo request completed",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("tbo: %s failed (%d): %s", endpoint, resp.StatusCode, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tbo: decode %s response: %w", endpoint, err)
	}
	return nil
}

// ratingToNumber maps the API's word-form star rating to a number. Unknown
// values map to 0 rather than failing the search.
func ratingToNumber(rating string) int {
	switch rating {
	case "FiveStar":
		return 5
	case "FourStar":
		return 4
	case "ThreeStar":
		return 3
	case "TwoStar":
		return 2
	case "OneStar":
		return 1
	default:
		return 0
	}
}

// normalizeHotel flattens a raw search result into a Hotel.
func normalizeHotel(result SearchResult) Hotel {
	info := result.HotelInfo
	return Hotel{
		HotelCode:         strconv.Itoa(info.HotelCode),
		HotelName:         info.HotelName,
		StarRating:        ratingToNumber(info.Rating),
		HotelPicture:      info.HotelPicture,
		HotelAddress:      info.HotelAddress,
		Latitude:          info.Latitude,
		Longitude:         info.Longitude,
		HotelDescription:  strings.TrimPrefix(info.HotelDescription, "HotelDescription#"),
		Price:             result.MinHotelPrice.TotalPrice,
		Currency:          result.MinHotelPrice.Currency,
		HotelBookingCode:  result.HotelBookingCode,
		TripAdvisorRating: info.TripAdvisorRating,
	}
}

// SearchHotels runs availability search over the given comma-separated hotel
// codes. The staging API shape uses CheckIn/CheckOut and PaxRooms with
// Adults/Children; results come back normalized.
func (c *Client) SearchHotels(ctx context.Context, params SearchParams) (*SearchOutcome, error) {
	paxRooms := make([]map[string]any, 0, len(params.Rooms))
	for _, r := range params.Rooms {
		room := map[string]any{
			"Adults":   r.Adults,
			"Children": r.Children,
		}
		if len(r.ChildAges) > 0 {
			room["ChildAge"] = r.ChildAges
		}
		paxRooms = append(paxRooms, room)
	}

	nationality := params.GuestNationality
	if nationality == "" {
		nationality = defaultNationality
	}
	responseTime := params.ResponseTime
	if responseTime == 0 {
		responseTime = defaultResponseTime
	}
	detailed := true
	if params.DetailedResponse != nil {
		detailed = *params.DetailedResponse
	}

	filters := map[string]any{
		"StarRating": "All",
		"OrderBy":    "PriceAsc",
	}
	if f := params.Filters; f != nil {
		if f.StarRating != "" {
			filters["StarRating"] = f.StarRating
		}
		if f.OrderBy != "" {
			filters["OrderBy"] = f.OrderBy
		}
		if f.MinPrice > 0 {
			filters["MinPrice"] = strconv.FormatFloat(f.MinPrice, 'f', -1, 64)
		}
		if f.MaxPrice > 0 {
			filters["MaxPrice"] = strconv.FormatFloat(f.MaxPrice, 'f', -1, 64)
		}
	}

	body := map[string]any{
		"CheckIn":            params.CheckIn,
		"CheckOut":           params.CheckOut,
		"HotelCodes":         params.HotelCodes,
		"GuestNationality":   nationality,
		"NoOfRooms":          strconv.Itoa(len(params.Rooms)),
		"PaxRooms":           paxRooms,
		"ResponseTime":       responseTime,
		"IsDetailedResponse": detailed,
		"Filters":            filters,
	}

	var raw searchResponse
	if err := c.post(ctx, "HotelSearch", body, &raw); err != nil {
		return nil, err
	}

	hotels := make([]Hotel, 0, len(raw.HotelSearchResults))
	for _, r := range raw.HotelSearchResults {
		hotels = append(hotels, normalizeHotel(r))
	}
	return &SearchOutcome{Status: raw.Status, Hotels: hotels}, nil
}

// HotelCodeList fetches every hotel code registered for a city.
func (c *Client) HotelCodeList(ctx context.Context, cityCode string) ([]string, error) {
	var data struct {
		HotelCodes []json.Number `json:"HotelCodes"`
	}
	query := "CityCode=" + cityCode + "&IsDetailedResponse=false"
	if err := c.get(ctx, "HotelCodeList", query, &data); err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(data.HotelCodes))
	for _, code := range data.HotelCodes {
		codes = append(codes, code.String())
	}
	return codes, nil
}

// HotelDetails fetches static content for comma-separated hotel codes.
func (c *Client) HotelDetails(ctx context.Context, hotelCodes string) (*DetailsResponse, error) {
	var out DetailsResponse
	if err := c.post(ctx, "HotelDetails", map[string]any{"HotelCodes": hotelCodes}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AvailableRooms fetches the bookable room rates for a hotel booking code
// returned by search.
func (c *Client) AvailableRooms(ctx context.Context, hotelBookingCode string) (*RoomsResponse, error) {
	var out RoomsResponse
	if err := c.post(ctx, "AvailableHotelRooms", map[string]any{"HotelBookingCode": hotelBookingCode}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PreBook revalidates a room rate before booking. The response flags price or
// cancellation policy changes since search.
func (c *Client) PreBook(ctx context.Context, bookingCode string) (*PreBookResponse, error) {
	body := map[string]any{
		"BookingCode": bookingCode,
		"PaymentMode": "Limit",
	}
	var out PreBookResponse
	if err := c.post(ctx, "PreBook", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookHotel confirms a booking for the lead guest.
func (c *Client) BookHotel(ctx context.Context, params BookParams) (*BookResponse, error) {
	if len(params.Guests) == 0 {
		return nil, errors.New("tbo: booking requires at least one guest")
	}
	lead := params.Guests[0]
	body := map[string]any{
		"BookingCode":       params.BookingCode,
		"ClientReferenceId": params.ClientRef,
		"CustomerDetails": []map[string]any{
			{
				"CustomerNames": []map[string]any{
					{
						"Title":     lead.Title,
						"FirstName": lead.FirstName,
						"LastName":  lead.LastName,
						"Type":      lead.Type,
					},
				},
			},
		},
		"PaymentMode": "Limit",
	}
	var out BookResponse
	if err := c.post(ctx, "HotelBook", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookingDetail fetches the current state of a booking. The response shape
// varies across booking states, so it is returned undecoded.
func (c *Client) BookingDetail(ctx context.Context, confirmationNumber string) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "BookingDetail", map[string]any{"ConfirmationNumber": confirmationNumber}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelBooking cancels a confirmed booking.
func (c *Client) CancelBooking(ctx context.Context, confirmationNumber string) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "Cancel", map[string]any{"ConfirmationNumber": confirmationNumber}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancellationPolicy fetches the cancellation terms for a room booking code.
func (c *Client) CancellationPolicy(ctx context.Context, bookingCode string) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "HotelCancellationPolicy", map[string]any{"BookingCode": bookingCode}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountryList fetches the country reference data.
func (c *Client) CountryList(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, "CountryList", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CityList fetches the cities of a country.
func (c *Client) CityList(ctx context.Context, countryCode string) (map[string]any, error) {
	var out map[string]any
	if err := c.post(ctx, "CityList", map[string]any{"CountryCode": countryCode}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
