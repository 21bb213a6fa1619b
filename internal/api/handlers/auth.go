package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hugh/taskhub/internal/api/dto"
	"github.com/hugh/taskhub/internal/api/middleware"
	"github.com/hugh/taskhub/internal/auth"
)

type AuthHandler struct {
	authService auth.Authenticator
	logger      *slog.Logger
}

func NewAuthHandler(authService auth.Authenticator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: errors})
		return
	}

	_, err := h.authService.Register(r.Context(), auth.RegisterInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			writeMessage(w, http.StatusBadRequest, "Email already exists")
			return
		}
		h.logger.ErrorContext(r.Context(), "registration failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "User created successfully"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: errors})
		return
	}

	resp, err := h.authService.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeMessage(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		h.logger.ErrorContext(r.Context(), "login failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   resp.Token,
		User:    dto.NewUserDTO(resp.User),
	})
}

// Me returns the authenticated caller.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.GetUserByID(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "loading current user failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	writeJSON(w, http.StatusOK, dto.NewUserDTO(user))
}
