package api

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	errs "github.com/gs2io/gs2-realtime-go/client/internal/errors"
	"github.com/gs2io/gs2-realtime-go/client/internal/transport"
)

// Service is the service name every realtime call is signed with.
const Service = "Gs2Realtime"

// Doer is the transport collaborator. Tests substitute a recording stub.
type Doer = transport.Doer

// pageQuery adds the optional paging parameters. Empty tokens and zero
// limits are treated as not provided.
func pageQuery(pageToken string, limit int) transport.Query {
	var q transport.Query
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	if limit != 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func poolPath(pool string) string {
	return "/gatheringPool/" + url.PathEscape(pool)
}

func gatheringsPath(pool string) string {
	return poolPath(pool) + "/gathering"
}

func gatheringPath(pool, name string) string {
	return gatheringsPath(pool) + "/" + url.PathEscape(name)
}

// decode unmarshals a 2xx body into out, reporting malformed JSON as a
// ServiceError like any other backend failure.
func decode[T any](operation string, body []byte, out *T) error {
	if err := json.Unmarshal(body, out); err != nil {
		return errs.NewDecodeError(operation, body, err)
	}
	return nil
}

var errMissingItem = errors.New("response has no item")

// decodeItem unwraps an {"item": ...} envelope. A 2xx body without an item is
// a decode failure, never a nil entity.
func decodeItem[T any](operation string, body []byte) (*T, error) {
	var out struct {
		Item *T `json:"item"`
	}
	if err := decode(operation, body, &out); err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, errs.NewDecodeError(operation, body, errMissingItem)
	}
	return out.Item, nil
}
