package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"docmeister/internal/models/response"
	"docmeister/internal/service"
	"docmeister/pkg/appError"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	var (
		respCode    int
		respStatus  int
		respText    string
		customError appError.AppError
	)

	// all service errors should be appError interface, but check that it is true
	if errors.As(err, &customError) {
		respStatus = customError.HTTPStatus()
		respCode = customError.Code()
		respText = customError.Error()
	} else {
		respCode = 500
		respStatus = 500
		respText = "Unknown error: " + err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(respStatus)
	resp := response.Standard{
		Error: &response.ErrorPayload{
			Code: respCode,
			Text: respText,
		},
	}
	json.NewEncoder(w).Encode(resp)
}

func (a *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, appError.MethodNotAllowed())
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, appError.BadRequest("invalid json"))
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, appError.BadRequest("email and password are required"))
		return
	}

	if err := a.service.Signup(r.Context(), req.Email, req.Password); err != nil {
		writeError(w, err)
		return
	}

	resp := response.Standard{
		Response: &response.ResponsePayload{
			"message": "signup successful",
		},
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Login reads credentials from headers, not the body.
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, appError.MethodNotAllowed())
		return
	}

	email := r.Header.Get("email")
	password := r.Header.Get("password")
	if email == "" || password == "" {
		writeError(w, appError.BadRequest("email and password headers are required"))
		return
	}

	tokenPair, err := a.service.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenPair)
}

func (a *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, appError.MethodNotAllowed())
		return
	}

	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, appError.BadRequest("invalid json"))
		return
	}
	if req.RefreshToken == "" {
		writeError(w, appError.BadRequest("refresh_token is required"))
		return
	}

	tokenPair, err := a.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenPair)
}
