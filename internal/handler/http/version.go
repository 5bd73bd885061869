package http

import (
	"net/http"

	"github.com/MKhiriev/student-portal/models"
)

// getVersion returns the build info of the running fake API.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, http.StatusOK, models.Envelope[models.AppBuildInfo]{Success: true, Data: h.buildInfo})
}
