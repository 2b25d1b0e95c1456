package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/pkg/ctxutil"
)

const maxBodyBytes = 64 << 10

// callerID returns the authenticated user. Routes are mounted behind the
// auth middleware, so a missing ID means a wiring mistake or a bypass.
func callerID(r *http.Request) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", fmt.Sprintf("malformed JSON: %v", err))
	}
	return nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return v, nil
}

// queryPage reads ?limit=&offset=. Services apply defaults and caps.
func queryPage(r *http.Request) (domain.Page, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return domain.Page{}, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Page{Limit: limit, Offset: offset}, nil
}
