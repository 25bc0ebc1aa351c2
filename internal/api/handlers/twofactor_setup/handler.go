package twofactor_setup

import (
	"net/http"

	"github.com/lc-autoel/LCA-BookingSite/internal/api/handlers"
	"github.com/lc-autoel/LCA-BookingSite/internal/auth"
)

// qrSizePixels размер QR-кода на странице enrollment
const qrSizePixels = 256

// Handler отдает страницу enrollment второго фактора: provisioning URI,
// QR-код и общий секрет. Маршрут закрыт первым фактором — секрет не
// должен быть доступен анонимному посетителю.
type Handler struct {
	issuer      string
	accountName string
	totpSecret  string
	renderer    *handlers.Renderer
	logger      Logger
}

func NewHandler(issuer, accountName, totpSecret string, renderer *handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		issuer:      issuer,
		accountName: accountName,
		totpSecret:  totpSecret,
		renderer:    renderer,
		logger:      logger,
	}
}

// Handle GET /admin_2fa_setup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	enrollment, err := auth.BuildEnrollment(h.issuer, h.accountName, h.totpSecret, qrSizePixels)
	if err != nil {
		h.logger.Error("GET /admin_2fa_setup - Failed to build enrollment: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.renderer.Render(w, "admin_2fa_setup.html", enrollment); err != nil {
		h.logger.Error("GET /admin_2fa_setup - Failed to render page: %v", err)
	}
}
