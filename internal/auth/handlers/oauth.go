package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"authlink-server/internal/auth"
	"authlink-server/internal/auth/providers"
	"authlink-server/internal/shared/errors"
	"authlink-server/internal/shared/response"
)

// Callback outcomes. Every branch of the pipeline terminates in exactly one
// of these, returned as a plain-text body; the game client shows them to the
// player verbatim.
const (
	msgInvalidToken        = "Invalid token."
	msgNoResponse          = "No response provided from authentication server."
	msgUnparseableResponse = "Unable to parse response"
	msgNotLinked           = "You must have previously linked your account in-game before authenticating."
	msgDatabaseError       = "An error occured interfacing with the database."
	msgRequestNotFound     = "Your authentication request could not be found. Please try again."
	msgApproved            = "Your authentication request has been approved. You can now return to the game."
)

// exchangeTimeout bounds the whole outbound leg of a callback: token
// exchange, link lookup and approval write.
const exchangeTimeout = 10 * time.Second

// ApprovalService writes the terminal approval record for an access code.
type ApprovalService interface {
	ApproveExternalUsername(ctx context.Context, accessCode, username string) error
	ApproveInternalUser(ctx context.Context, accessCode string, playerID int64) error
}

// SubjectResolver translates a provider subject into an internal player id,
// for providers whose subject is not directly usable as an account key.
type SubjectResolver interface {
	ResolveSubject(ctx context.Context, subject string) (int64, error)
}

// OAuthHandler serves the authenticate/callback pair for one provider. The
// pipeline is shared; provider divergence lives in the Provider value and in
// whether a resolver is present.
type OAuthHandler struct {
	provider     providers.Provider
	approvals    ApprovalService
	resolver     SubjectResolver // nil when the subject is used directly
	isConfigured bool
}

func NewOAuthHandler(provider providers.Provider, approvals ApprovalService, resolver SubjectResolver, isConfigured bool) *OAuthHandler {
	return &OAuthHandler{
		provider:     provider,
		approvals:    approvals,
		resolver:     resolver,
		isConfigured: isConfigured,
	}
}

// HandleAuthenticate redirects the browser to the provider authorization
// endpoint. The caller-supplied token becomes the OAuth state and is not
// validated here; the callback rejects malformed values before doing work.
func (h *OAuthHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	logger := slog.With("handler", name+"_authenticate")

	if !h.isConfigured {
		response.Error(w, r, logger, errors.External(fmt.Sprintf("%s OAuth is not properly configured", name)))
		return
	}

	token := r.URL.Query().Get("token")
	authURL := h.provider.AuthCodeURL(token)

	logger.Debug("Redirecting to provider authorization endpoint", "has_token", token != "")
	http.Redirect(w, r, authURL, http.StatusFound)
}

// HandleCallback runs the linking pipeline: validate state, exchange the
// code, decode the identity token, resolve the subject and write the
// approval record. Every failure is terminal and answered with a one-line
// message; nothing is retried.
func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")

	logger := slog.With(
		"handler", name+"_callback",
		"ip", r.RemoteAddr,
		"has_code", code != "",
		"has_state", state != "",
	)

	if !h.isConfigured {
		response.Error(w, r, logger, errors.External(fmt.Sprintf("%s OAuth is not properly configured", name)))
		return
	}

	if !isAlphanumeric(state) {
		logger.Warn("Rejecting callback with malformed state token")
		writeOutcome(w, msgInvalidToken)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), exchangeTimeout)
	defer cancel()

	token, err := h.provider.Exchange(ctx, code)
	if err != nil {
		if providers.IsNoResponse(err) {
			writeOutcome(w, msgNoResponse)
			return
		}
		writeOutcome(w, msgUnparseableResponse)
		return
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		logger.Warn("Token response is missing an identity token")
		writeOutcome(w, msgUnparseableResponse)
		return
	}

	claims, err := auth.DecodeIDToken(idToken)
	if err != nil {
		writeOutcome(w, err.Error())
		return
	}

	subjectLogger := logger.With("subject", claims.Subject)

	if h.resolver != nil {
		playerID, err := h.resolver.ResolveSubject(ctx, claims.Subject)
		if err != nil {
			if errors.GetType(err) == errors.ErrorTypeNotFound {
				subjectLogger.Info("Subject has no in-game link")
				writeOutcome(w, msgNotLinked)
				return
			}
			subjectLogger.Error("Failed to resolve subject", "error", err)
			writeOutcome(w, msgDatabaseError)
			return
		}
		err = h.approvals.ApproveInternalUser(ctx, state, playerID)
		h.finishApproval(w, subjectLogger.With("player_id", playerID), err)
		return
	}

	err = h.approvals.ApproveExternalUsername(ctx, state, claims.Subject)
	h.finishApproval(w, subjectLogger, err)
}

func (h *OAuthHandler) finishApproval(w http.ResponseWriter, logger *slog.Logger, err error) {
	if err != nil {
		if errors.GetType(err) == errors.ErrorTypeNotFound {
			logger.Info("No pending authentication request for access code")
			writeOutcome(w, msgRequestNotFound)
			return
		}
		logger.Error("Approval update failed", "error", err)
		writeOutcome(w, msgDatabaseError)
		return
	}

	logger.Info("Authentication request approved", "provider", h.provider.Name())
	writeOutcome(w, msgApproved)
}
