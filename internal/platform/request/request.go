// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away common body decoding and context lookups, ensuring
consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mgrodionov/fullstack-homework/internal/platform/apperr"
	"github.com/mgrodionov/fullstack-homework/internal/platform/ctxutil"
	"github.com/mgrodionov/fullstack-homework/internal/platform/sec"
	"github.com/mgrodionov/fullstack-homework/internal/platform/validate"
)

// MaxBodyBytes caps the size of a decoded JSON request body.
const MaxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Unknown fields are rejected and only one JSON value is accepted.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(writer, request.Body, MaxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}

	// Trailing data after the first value is malformed input
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}

	return nil
}

/*
RequiredUser ensures the request is authenticated and returns its identity.

Returns:
  - *sec.UserInfo: The authenticated user
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredUser(request *http.Request) (*sec.UserInfo, error) {
	user := ctxutil.Session(request.Context())
	if user == nil {
		return nil, apperr.Unauthorized("user not logged in")
	}
	return user, nil
}
