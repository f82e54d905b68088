package response

import (
	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/usecase/commands"
)

type BookingRequestResponse struct {
	Index         int    `json:"index"`
	Date          string `json:"date"`
	Venue         string `json:"venue"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	EventName     string `json:"event_name"`
	ClientName    string `json:"client_name"`
	Configuration string `json:"configuration,omitempty"`
	BookingType   string `json:"booking_type,omitempty"`
}

type ConflictResponse struct {
	First  int    `json:"first"`
	Second int    `json:"second"`
	Venue  string `json:"venue"`
	Date   string `json:"date"`
	Detail string `json:"detail"`
}

type GroupResponse struct {
	ID        string                   `json:"id"`
	State     string                   `json:"state"`
	CreatedAt int64                    `json:"created_at"`
	Requests  []BookingRequestResponse `json:"requests"`
	Conflicts []ConflictResponse       `json:"conflicts"`
}

type CommitResponse struct {
	GroupID       string   `json:"group_id"`
	BookingIDs    []string `json:"booking_ids"`
	PricedCount   int      `json:"priced_count"`
	RoomRateTotal string   `json:"room_rate_total"`
}

func FromBookingRequest(index int, r booking.Request) BookingRequestResponse {
	var bt string
	if r.HasBookingType() {
		bt = r.BookingType().String()
	}
	return BookingRequestResponse{
		Index:         index,
		Date:          r.Date().Format(booking.DateLayout),
		Venue:         r.Venue(),
		StartTime:     r.StartTime().String(),
		EndTime:       r.EndTime().String(),
		EventName:     r.EventName(),
		ClientName:    r.ClientName(),
		Configuration: r.Configuration(),
		BookingType:   bt,
	}
}

func FromConflicts(pairs []booking.ConflictPair) []ConflictResponse {
	res := make([]ConflictResponse, len(pairs))
	for i, p := range pairs {
		res[i] = ConflictResponse{
			First:  p.First,
			Second: p.Second,
			Venue:  p.A.Venue(),
			Date:   p.A.Date().Format(booking.DateLayout),
			Detail: p.A.String() + " overlaps " + p.B.String(),
		}
	}
	return res
}

func FromGroupView(v *commands.GroupView) *GroupResponse {
	reqs := make([]BookingRequestResponse, len(v.Requests))
	for i, r := range v.Requests {
		reqs[i] = FromBookingRequest(i, r)
	}
	return &GroupResponse{
		ID:        v.ID.String(),
		State:     v.State.String(),
		CreatedAt: v.CreatedAt.Unix(),
		Requests:  reqs,
		Conflicts: FromConflicts(v.Conflicts),
	}
}

func FromCommitResult(r *commands.CommitResult) *CommitResponse {
	ids := make([]string, len(r.BookingIDs))
	for i, id := range r.BookingIDs {
		ids[i] = id.String()
	}
	return &CommitResponse{
		GroupID:       r.GroupID.String(),
		BookingIDs:    ids,
		PricedCount:   r.PricedCount,
		RoomRateTotal: r.RoomRateTotal.StringFixed(2),
	}
}
