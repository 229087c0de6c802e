// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mgrodionov/fullstack-homework/internal/platform/middleware"
	requestutil "github.com/mgrodionov/fullstack-homework/internal/platform/request"
	"github.com/mgrodionov/fullstack-homework/internal/platform/respond"
	"github.com/mgrodionov/fullstack-homework/internal/platform/validate"
	"github.com/mgrodionov/fullstack-homework/pkg/emailnorm"
)

// # Definitions & Constructors

// Handler implements the account HTTP endpoints.
//
// # Scope
//
// Registration, login and logout are public. The /user routes require a
// session cookie resolved by [middleware.RequireSession].
type Handler struct {
	accountService *Service
	cookieSecure   bool
}

// NewHandler constructs a new [Handler]. cookieSecure sets the Secure flag on
// the session cookie.
func NewHandler(service *Service, cookieSecure bool) *Handler {
	return &Handler{accountService: service, cookieSecure: cookieSecure}
}

// Routes returns a [chi.Router] configured with the account endpoints.
//
// # Endpoints
//   - POST   /register : Creates a new account.
//   - POST   /login    : Sets the session cookie.
//   - POST   /logout   : Clears the session cookie.
//   - GET    /user     : Returns the current user.
//   - DELETE /user     : Deletes the current user.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	// Session-protected endpoints
	router.Route("/user", func(r chi.Router) {
		r.Use(middleware.RequireSession(handler.accountService))
		r.Get("/", handler.getUser)
		r.Delete("/", handler.deleteUser)
	})

	return router
}

// # Request & Response Payloads

type credentialsRequest struct {
	Email     string `json:"email"`
	MasterPwd string `json:"master_pwd"`
}

type userResponse struct {
	ID    string `json:"uid"`
	Email string `json:"email"`
}

type deletedResponse struct {
	ID string `json:"uid"`
}

// decodeCredentials reads and validates a credentials body.
func decodeCredentials(writer http.ResponseWriter, request *http.Request) (Credentials, error) {
	var input credentialsRequest

	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		return Credentials{}, err
	}

	email := emailnorm.Normalize(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).
		MaxLen(FieldEmail, email, MaxEmailLength).
		Email(FieldEmail, email).
		MinLen(FieldMasterPwd, input.MasterPwd, 1)

	if err := validator.Err(); err != nil {
		return Credentials{}, err
	}

	return Credentials{Email: email, MasterPwd: input.MasterPwd}, nil
}

/*
Register handles the creation of a new account.

POST /api/register

Response:
  - 201: userResponse
  - 400: Invalid JSON or validation failure
  - 409: Email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeCredentials(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.accountService.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, userResponse{ID: account.ID, Email: account.Email})
}

/*
Login verifies credentials and sets the session cookie.

POST /api/login

Response:
  - 200: userResponse, with Set-Cookie access_token
  - 400: Invalid JSON or validation failure
  - 404: Email not found, or invalid email/password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeCredentials(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.accountService.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setSessionCookie(writer, session.Token, session.TTL, handler.cookieSecure)

	respond.OK(writer, userResponse{ID: session.Account.ID, Email: session.Account.Email})
}

/*
Logout clears the session cookie.

POST /api/logout

The token itself stays valid until it expires.

Response:
  - 204: No Content
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	clearSessionCookie(writer, handler.cookieSecure)
	respond.NoContent(writer)
}

/*
GET /api/user.

Response:
  - 200: userResponse
  - 401: Not logged in, or invalid token
  - 404: User does not exist
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	user, err := requestutil.RequiredUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, userResponse{ID: user.ID, Email: user.Email})
}

/*
DELETE /api/user.

Description: Deletes the account and its dependent records, then clears the
session cookie.

Response:
  - 200: deletedResponse
  - 401: Not logged in, or invalid token
  - 404: User does not exist
*/
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	user, err := requestutil.RequiredUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.Delete(request.Context(), user.ID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	clearSessionCookie(writer, handler.cookieSecure)

	respond.OK(writer, deletedResponse{ID: user.ID})
}
