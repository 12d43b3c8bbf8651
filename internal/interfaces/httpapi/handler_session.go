package httpapi

import "net/http"

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	u, err := h.auth.LoginWithPassword(ctx, req.toCredentials())
	if err != nil {
		h.fail(ctx, w, "password login failed", err, "username", req.Username)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(u))
}

func (h *Handler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RequestOTP")
	defer span.End()

	var req otpRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	challenge, err := h.auth.RequestOTP(ctx, req.Email)
	if err != nil {
		h.fail(ctx, w, "request otp failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, map[string]any{
		"email":  challenge.Email,
		"otp_ts": challenge.Timestamp,
	})
}

func (h *Handler) LoginWithOTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoginWithOTP")
	defer span.End()

	var req otpLoginRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	u, err := h.auth.LoginWithOTP(ctx, req.toLogin())
	if err != nil {
		h.fail(ctx, w, "otp login failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(u))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	if err := h.auth.Logout(ctx); err != nil {
		h.fail(ctx, w, "logout failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Me")
	defer span.End()

	u, err := h.auth.Me(ctx)
	if err != nil {
		h.fail(ctx, w, "get current user failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(u))
}

func (h *Handler) GetAccess(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAccess")
	defer span.End()

	slug := r.PathValue("slug")
	access, err := h.auth.Access(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "get access failed", err, "slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accessToDTO(access))
}
