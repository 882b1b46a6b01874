package validate

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"
)

func DecodeJSON(r *http.Request, dst any) error {
	return render.DecodeJSON(r.Body, dst)
}

func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
