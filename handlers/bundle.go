package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler so route registration takes
// one argument.
type HandlerBundle struct {
	// Voice webhook.
	HandleInvocation gin.HandlerFunc

	// Booking record endpoints.
	GetUserBookingsHandler gin.HandlerFunc
}
