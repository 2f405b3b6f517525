// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, _ = utils.WriteText(w, "text/plain; charset=utf-8", serverVersion, http.StatusOK)
}

func (h *Handler) getAPIDocs(w http.ResponseWriter, r *http.Request) {
	docs := h.services.AppInfoService.GetAPIDocs(r.Context())

	_, _ = utils.WriteText(w, "text/markdown; charset=utf-8", docs, http.StatusOK)
}
