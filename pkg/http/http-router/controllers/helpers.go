package controllers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/lintang-b-s/nearest-pointset/pkg"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

const msgpackContentType = "application/msgpack"

func wantsMsgpack(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Accept"))
	return err == nil && mt == msgpackContentType
}

// writeResponse encodes data as msgpack if the client accepts it, JSON otherwise.
func (api *pointSetAPI) writeResponse(w http.ResponseWriter, r *http.Request, status int, data envelope,
	headers http.Header) error {
	if wantsMsgpack(r) {
		return api.writeMsgpack(w, status, data, headers)
	}
	return api.writeJSON(w, status, data, headers)
}

// writeJSON marshals data structure to encoded JSON response.
func (api *pointSetAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	return api.write(w, status, "application/json", js, headers)
}

func (api *pointSetAPI) writeMsgpack(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	b, err := msgpack.Marshal(data)
	if err != nil {
		return err
	}
	return api.write(w, status, msgpackContentType, b, headers)
}

func (api *pointSetAPI) write(w http.ResponseWriter, status int, contentType string, body []byte,
	headers http.Header) error {
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		api.log.Error("failed to write response", zap.Error(err))
		return err
	}

	return nil
}

func (api *pointSetAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := envelope{"error": message}

	if err := api.writeResponse(w, r, status, env, nil); err != nil {
		api.log.Error("failed to write error response", zap.Error(err), zap.String("path", r.URL.Path))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *pointSetAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *pointSetAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (api *pointSetAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("server error", zap.Error(err), zap.String("method", r.Method), zap.String("path", r.URL.Path))
	api.errorResponse(w, r, http.StatusInternalServerError, pkg.MessageInternalServerError)
}

// handleServiceError maps application error codes to http responses.
func (api *pointSetAPI) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch code := pkg.ErrorCode(err); {
	case errors.Is(code, pkg.ErrBadParamInput):
		api.BadRequestResponse(w, r, err)
	case errors.Is(code, pkg.ErrNotFound):
		api.NotFoundResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}
