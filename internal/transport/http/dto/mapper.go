package dto

import (
	"github.com/baechuer/cityevents/services/listing-service/internal/application/compilation"
	appevent "github.com/baechuer/cityevents/services/listing-service/internal/application/event"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

func ToEventResp(v *appevent.View) EventResp {
	return EventResp{
		ID:                v.ID,
		OwnerID:           v.OwnerID,
		CategoryID:        v.CategoryID,
		Title:             v.Title,
		Annotation:        v.Annotation,
		Description:       v.Description,
		Lat:               v.Lat,
		Lon:               v.Lon,
		Paid:              v.Paid,
		StartTime:         v.StartTime,
		ParticipantLimit:  v.ParticipantLimit,
		RequestModeration: v.RequestModeration,
		State:             string(v.State),
		PublishedAt:       v.PublishedAt,
		CreatedAt:         v.CreatedAt,
		Views:             v.Views,
		ConfirmedCount:    v.ConfirmedCount,
	}
}

// ToEventRespBare serves write paths, where no counters are joined yet.
func ToEventRespBare(e *domain.Event) EventResp {
	return ToEventResp(&appevent.View{Event: e})
}

func ToEventResps(vs []*appevent.View) []EventResp {
	out := make([]EventResp, 0, len(vs))
	for _, v := range vs {
		out = append(out, ToEventResp(v))
	}
	return out
}

func ToRequestResp(r *domain.ParticipationRequest) RequestResp {
	return RequestResp{
		ID:          r.ID,
		EventID:     r.EventID,
		RequesterID: r.RequesterID,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func ToRequestResps(rs []*domain.ParticipationRequest) []RequestResp {
	out := make([]RequestResp, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToRequestResp(r))
	}
	return out
}

func ToCategoryResp(c *domain.Category) CategoryResp {
	return CategoryResp{ID: c.ID, Name: c.Name}
}

func ToCategoryResps(cs []*domain.Category) []CategoryResp {
	out := make([]CategoryResp, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCategoryResp(c))
	}
	return out
}

func ToUserResp(u *domain.User) UserResp {
	return UserResp{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func ToUserResps(us []*domain.User) []UserResp {
	out := make([]UserResp, 0, len(us))
	for _, u := range us {
		out = append(out, ToUserResp(u))
	}
	return out
}

func ToCommentResp(c *domain.Comment) CommentResp {
	return CommentResp{
		ID:        c.ID,
		EventID:   c.EventID,
		AuthorID:  c.AuthorID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func ToCommentResps(cs []*domain.Comment) []CommentResp {
	out := make([]CommentResp, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCommentResp(c))
	}
	return out
}

func ToCompilationResp(d *compilation.Detail) CompilationResp {
	events := make([]EventResp, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, ToEventRespBare(e))
	}
	return CompilationResp{ID: d.ID, Title: d.Title, Pinned: d.Pinned, Events: events}
}

func ToCompilationResps(ds []*compilation.Detail) []CompilationResp {
	out := make([]CompilationResp, 0, len(ds))
	for _, d := range ds {
		out = append(out, ToCompilationResp(d))
	}
	return out
}

// ToEventPatch converts the owner request body to a domain patch.
func (r UpdateEventOwnerReq) ToEventPatch() domain.EventPatch {
	return domain.EventPatch{
		CategoryID:        r.CategoryID,
		Title:             r.Title,
		Annotation:        r.Annotation,
		Description:       r.Description,
		Lat:               r.Lat,
		Lon:               r.Lon,
		StartTime:         r.StartTime,
		Paid:              r.Paid,
		ParticipantLimit:  r.ParticipantLimit,
		RequestModeration: r.RequestModeration,
	}
}

func (r UpdateEventAdminReq) ToEventPatch() domain.EventPatch {
	return domain.EventPatch{
		CategoryID:        r.CategoryID,
		Title:             r.Title,
		Annotation:        r.Annotation,
		Description:       r.Description,
		Lat:               r.Lat,
		Lon:               r.Lon,
		StartTime:         r.StartTime,
		Paid:              r.Paid,
		ParticipantLimit:  r.ParticipantLimit,
		RequestModeration: r.RequestModeration,
	}
}
