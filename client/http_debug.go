package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps every request and response through zerolog at debug
// level. It is installed by WithDebugLogging(true) or when GS2_DEBUG=true or
// DEBUG=true is set in the environment.
//
// Dumps contain signature headers and gathering secrets; keep it out of
// production.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// Either GS2_DEBUG=true or the general DEBUG=true turns it on.
func debugLoggingRequested() bool {
	return os.Getenv("GS2_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
