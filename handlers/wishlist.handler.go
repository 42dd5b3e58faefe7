package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"booking-service/cache"
	"booking-service/data"
)

type WishlistHandler struct {
	wishlist *cache.WishlistCache
	Tracer   trace.Tracer
}

func NewWishlistHandler(wishlist *cache.WishlistCache, tracer trace.Tracer) WishlistHandler {
	return WishlistHandler{wishlist: wishlist, Tracer: tracer}
}

func (wh *WishlistHandler) AddItem(ctx *gin.Context) {
	spanCtx, span := wh.Tracer.Start(ctx.Request.Context(), "WishlistHandler.AddItem")
	defer span.End()

	var item *data.WishlistItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	if err := wh.wishlist.AddItem(ctx.Param("guestId"), item.ItemID, spanCtx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": "success"})
}

func (wh *WishlistHandler) RemoveItem(ctx *gin.Context) {
	spanCtx, span := wh.Tracer.Start(ctx.Request.Context(), "WishlistHandler.RemoveItem")
	defer span.End()

	if err := wh.wishlist.RemoveItem(ctx.Param("guestId"), ctx.Param("itemId"), spanCtx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (wh *WishlistHandler) CheckItem(ctx *gin.Context) {
	spanCtx, span := wh.Tracer.Start(ctx.Request.Context(), "WishlistHandler.CheckItem")
	defer span.End()

	exists := wh.wishlist.ItemExists(ctx.Param("guestId"), ctx.Param("itemId"), spanCtx)

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "in_wishlist": exists})
}

func (wh *WishlistHandler) GetItems(ctx *gin.Context) {
	spanCtx, span := wh.Tracer.Start(ctx.Request.Context(), "WishlistHandler.GetItems")
	defer span.End()

	items, err := wh.wishlist.GetItems(ctx.Param("guestId"), spanCtx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "items": items})
}
