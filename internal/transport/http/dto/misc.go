package dto

import "time"

type CreateCategoryReq struct {
	Name string `json:"name"`
}

type CategoryResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentReq struct {
	Text string `json:"text"`
}

type CommentResp struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCompilationReq struct {
	Title    string   `json:"title"`
	Pinned   bool     `json:"pinned"`
	EventIDs []string `json:"events"`
}

type UpdateCompilationReq struct {
	Title    *string   `json:"title"`
	Pinned   *bool     `json:"pinned"`
	EventIDs *[]string `json:"events"`
}

type CompilationResp struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Pinned bool        `json:"pinned"`
	Events []EventResp `json:"events"`
}
