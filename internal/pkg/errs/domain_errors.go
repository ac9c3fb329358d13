package errs

// Lookup and session sentinels shared by the commands and queries layers
var (
	// Session errors
	ErrNotAuthenticated = New("user not logged in")

	// Catalog errors
	ErrHotelNotFound    = New("hotel not found")
	ErrRoomTypeNotFound = New("room type not found")

	// Booking errors
	ErrBookingNotFound = New("booking not found")
)
