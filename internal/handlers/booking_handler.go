package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/seniorconnect-sg/community-api/internal/domain/booking"
	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/httpresp"
	"github.com/seniorconnect-sg/community-api/internal/middleware"
	"github.com/seniorconnect-sg/community-api/internal/sanitize"
	usecase "github.com/seniorconnect-sg/community-api/internal/usecase/booking"
)

// ======================================================
// BOOKINGS
// ======================================================

type BookingHandler struct {
	create       *usecase.CreateBooking
	list         *usecase.ListBookings
	get          *usecase.GetBooking
	update       *usecase.UpdateBooking
	cancel       *usecase.CancelBooking
	availability *usecase.CheckAvailability
}

func NewBookingHandler(
	create *usecase.CreateBooking,
	list *usecase.ListBookings,
	get *usecase.GetBooking,
	update *usecase.UpdateBooking,
	cancel *usecase.CancelBooking,
	availability *usecase.CheckAvailability,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		list:         list,
		get:          get,
		update:       update,
		cancel:       cancel,
		availability: availability,
	}
}

// lenientNumber accepts either a JSON number or a quoted string; the
// validator owns parsing and range checks.
type lenientNumber string

func (n *lenientNumber) UnmarshalJSON(b []byte) error {
	*n = lenientNumber(strings.Trim(string(b), `"`))
	return nil
}

// bookingRequest accepts expected_attendees as either a JSON number or a
// string, matching what the booking form sends.
type bookingRequest struct {
	Location string `json:"location"`
	Date     string `json:"booking_date"`
	TimeSlot string `json:"time_slot"`

	EventTitle        string        `json:"event_title"`
	InterestGroup     string        `json:"interest_group"`
	ActivityType      string        `json:"activity_type"`
	ExpectedAttendees lenientNumber `json:"expected_attendees"`
	EquipmentRequired string        `json:"equipment_required"`
	EventDescription  string        `json:"event_description"`

	OrganiserName     string `json:"organiser_name"`
	OrganiserEmail    string `json:"organiser_email"`
	OrganiserPhone    string `json:"organiser_phone"`
	AccessibilityHelp string `json:"accessibility_help"`
}

func (r bookingRequest) toInput() domain.Input {
	return domain.Input{
		Location: r.Location,
		Date:     r.Date,
		TimeSlot: r.TimeSlot,

		EventTitle:        sanitize.Text(r.EventTitle),
		InterestGroup:     sanitize.Text(r.InterestGroup),
		ActivityType:      sanitize.Text(r.ActivityType),
		ExpectedAttendees: string(r.ExpectedAttendees),
		EquipmentRequired: sanitize.Text(r.EquipmentRequired),
		EventDescription:  sanitize.Text(r.EventDescription),

		OrganiserName:     sanitize.Text(r.OrganiserName),
		OrganiserEmail:    sanitize.Text(r.OrganiserEmail),
		OrganiserPhone:    sanitize.Text(r.OrganiserPhone),
		AccessibilityHelp: sanitize.Text(r.AccessibilityHelp),
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "The request body could not be read. Please check the form and try again.")
		return
	}

	userID := c.GetString(middleware.ContextUserID)

	b, duplicate, err := h.create.Execute(c.Request.Context(), req.toInput(), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if duplicate {
		httpresp.OK(c, gin.H{"booking": b, "duplicate": true})
		return
	}
	httpresp.Created(c, gin.H{"booking": b, "duplicate": false})
}

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	upcoming, past, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"upcoming": upcoming,
		"past":     past,
	})
}

func (h *BookingHandler) Get(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	b, err := h.get.Execute(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "The request body could not be read. Please check the form and try again.")
		return
	}

	userID := c.GetString(middleware.ContextUserID)

	b, err := h.update.Execute(c.Request.Context(), c.Param("id"), userID, req.toInput())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	b, err := h.cancel.Execute(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Availability(c *gin.Context) {
	av, err := h.availability.Execute(
		c.Request.Context(),
		c.Query("location"),
		c.Query("date"),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, av)
}

// Locations lists the facility catalog with each facility's slots, so
// the booking form can be rendered without hardcoding the catalog.
func (h *BookingHandler) Locations(c *gin.Context) {
	type facility struct {
		Name  string   `json:"name"`
		Slots []string `json:"slots"`
	}

	names := domain.Locations()
	out := make([]facility, 0, len(names))
	for _, name := range names {
		slots, _ := domain.SlotsFor(name)
		out = append(out, facility{Name: name, Slots: slots})
	}

	httpresp.List(c, out)
}
