// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains the REST skeleton shared by every route: HTTP
// content type negotiation, verb dispatch, and encoding of the
// result or the error.

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/diffeo/go-wprest/restdata"
	"github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
)

// defaultMediaType is sent when the client will take any JSON and
// the resource has no more specific type.
const defaultMediaType = "application/json"

// genericJSONTypes are acceptable for every resource.
var genericJSONTypes = map[string]bool{
	"text/json":            true,
	"application/json":     true,
	restdata.JSONMediaType: true,
}

// errBadAccept is returned from negotiateResponse() if the Accept:
// header is malformed (and no more specific error applies).
var errBadAccept = errors.New("Invalid Accept: header")

// errNotAcceptable is returned from negotiateResponse() if the Accept:
// header does not mention any media types we can actually return.
type errNotAcceptable struct{}

func (e errNotAcceptable) Error() string {
	return "No acceptable representation for response"
}

func (e errNotAcceptable) HTTPStatus() int {
	return http.StatusNotAcceptable
}

// errNotImplemented is returned for verbs a resource advertises but
// this service does not perform.
type errNotImplemented struct {
	Method string
}

func (e errNotImplemented) Error() string {
	return fmt.Sprintf("Method %v not implemented", e.Method)
}

func (e errNotImplemented) HTTPStatus() int {
	return http.StatusNotImplemented
}

// errMethodNotAllowed corresponds exactly to the 405 Method Not
// Allowed HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

type resourceHandler struct {
	// Supports lists the verbs this resource advertises.  Verbs
	// other than GET and HEAD get 501 Not Implemented if they are
	// listed here, and 405 Method Not Allowed if not.
	Supports []string

	// MediaType is the specific type of this resource.  If empty,
	// only the generic JSON types are offered.
	MediaType string

	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*context, error)

	// Get returns a representation of the object.
	Get func(*context) (interface{}, error)
}

func (h *resourceHandler) supports(method string) bool {
	for _, verb := range h.Supports {
		if verb == method {
			return true
		}
	}
	return false
}

// acceptable says whether a concrete media type named in an Accept:
// header can be produced.
func (h *resourceHandler) acceptable(mediaType string) bool {
	return genericJSONTypes[mediaType] || (h.MediaType != "" && mediaType == h.MediaType)
}

// defaultType is the type sent for wildcard Accept: headers.
func (h *resourceHandler) defaultType() string {
	if h.MediaType != "" {
		return h.MediaType
	}
	return defaultMediaType
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx          *context
		out          interface{}
		err          error
		status       int
		responseType string
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			response := restdata.ErrorResponse{}
			response.FromPanic(recovered)
			logrus.WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
				"panic":  response.Message,
			}).Error("panic serving request")
			resp.Header().Set("Content-Type", defaultMediaType)
			resp.WriteHeader(http.StatusInternalServerError)
			_ = codec.NewEncoder(resp, &codec.JsonHandle{}).Encode(response)
		}
	}()

	// Come up with a response type before anything else, so an
	// error has a format to be sent back in.
	status = http.StatusBadRequest
	responseType, err = h.negotiateResponse(req)
	if err != nil {
		responseType = defaultMediaType
	}

	if err == nil {
		ctx, err = h.Context(req)
	}

	if err == nil {
		status = http.StatusInternalServerError
		switch {
		case req.Method == "GET" || req.Method == "HEAD":
			out, err = h.Get(ctx)
		case h.supports(req.Method):
			err = errNotImplemented{Method: req.Method}
		default:
			resp.Header().Set("Allow", "GET, HEAD")
			err = errMethodNotAllowed{Method: req.Method}
		}
	}

	if err != nil {
		if errS, hasStatus := err.(restdata.ErrorStatus); hasStatus {
			status = errS.HTTPStatus()
		}
		if status >= http.StatusInternalServerError {
			logrus.WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
				"status": status,
			}).WithError(err).Warn("request failed")
		}
		errResp := restdata.ErrorResponse{}
		errResp.FromError(err)
		out = errResp
	} else {
		status = http.StatusOK
	}
	if req.Method == "HEAD" {
		out = nil
	}

	if out != nil {
		resp.Header().Set("Content-Type", responseType)
	}
	resp.WriteHeader(status)
	if out != nil {
		// The status line is already out, so a failed write
		// can only be reported locally.
		encoder := codec.NewEncoder(resp, &codec.JsonHandle{})
		if err := encoder.Encode(out); err != nil {
			logrus.WithField("path", req.URL.Path).WithError(err).Warn("failed to write response")
		}
	}
}

// negotiateResponse returns a supported MIME type for the response
// body, following the path laid out in RFC 7231 section 5.3.
func (h *resourceHandler) negotiateResponse(req *http.Request) (string, error) {
	accept := req.Header.Get("Accept")
	if accept == "" {
		accept = "*/*"
	}
	bestType := ""
	bestQ := 0.0
	mediaRanges := strings.Split(accept, ",")
	for _, mediaRange := range mediaRanges {
		mediaRange = strings.TrimSpace(mediaRange)
		mediaType, params, err := mime.ParseMediaType(mediaRange)
		if err != nil {
			return "", err
		}

		q := 1.0
		if qStr, haveQ := params["q"]; haveQ {
			q, err = strconv.ParseFloat(qStr, 64)
			if err != nil {
				return "", err
			}
			if q < 0.0 || q > 1.0 {
				return "", errBadAccept
			}
		}
		if q < bestQ {
			continue
		}

		// Concrete types override wildcards, and the more
		// specific wildcards override "*/*".  The first type
		// at a given q wins.
		if mediaType == "*/*" {
			if q > bestQ {
				bestType = mediaType
				bestQ = q
			}
		} else if mediaType == "text/*" || mediaType == "application/*" {
			if q > bestQ || bestType == "*/*" {
				bestType = mediaType
				bestQ = q
			}
		} else if h.acceptable(mediaType) {
			if q > bestQ || bestType == "*/*" || bestType == "text/*" || bestType == "application/*" {
				bestType = mediaType
				bestQ = q
			}
		}
	}
	if bestQ == 0.0 {
		return "", errNotAcceptable{}
	}
	switch bestType {
	case "*/*", "application/*":
		return h.defaultType(), nil
	case "text/*":
		return "text/json", nil
	default:
		return bestType, nil
	}
}
