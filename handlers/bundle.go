// File: freshfold/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking wizard endpoints
	InitiateSession    gin.HandlerFunc
	GetSession         gin.HandlerFunc
	UpdateFields       gin.HandlerFunc
	ToggleLocker       gin.HandlerFunc
	SelectCustomerType gin.HandlerFunc
	Advance            gin.HandlerFunc
	Retreat            gin.HandlerFunc
	ResolveCustomer    gin.HandlerFunc
	Submit             gin.HandlerFunc
	CancelSession      gin.HandlerFunc
	DrainNotices       gin.HandlerFunc

	// Pricing endpoints
	GetPricingPlans gin.HandlerFunc
	QuoteTotal      gin.HandlerFunc

	// Payment endpoints
	CreatePaymentIntent gin.HandlerFunc

	// Platform proxy endpoints
	ProxyForward gin.HandlerFunc
	GetAPIKey    gin.HandlerFunc

	// Identity endpoints
	Authenticate     gin.HandlerFunc
	RequestMagicLink gin.HandlerFunc
	VerifyMagicLink  gin.HandlerFunc

	// Order history endpoints
	ListMyOrders gin.HandlerFunc

	// Ops endpoints
	Health gin.HandlerFunc
}
