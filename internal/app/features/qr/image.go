// internal/app/features/qr/image.go
package qr

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/huddlehq/huddle/internal/app/system/httpjson"
	"github.com/huddlehq/huddle/internal/app/system/timeouts"
)

const qrImageSize = 300

// ServeGroupImage renders a PNG QR code encoding the group's join URL.
// The group must exist; we check before rendering so a bogus id gets a
// 404 instead of a scannable image pointing nowhere.
//
// GET /qr/group/{id}.png
func (h *Handler) ServeGroupImage(w http.ResponseWriter, r *http.Request) {
	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Groups.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "group not found")
			return
		}
		h.Log.Error("qr image: group lookup failed", zap.Error(err), zap.String("group_id", groupID.Hex()))
		httpjson.InternalError(w)
		return
	}

	png, err := qrcode.Encode(h.JoinURL(groupID), qrcode.Medium, qrImageSize)
	if err != nil {
		h.Log.Error("qr encode failed", zap.Error(err), zap.String("group_id", groupID.Hex()))
		httpjson.InternalError(w)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
