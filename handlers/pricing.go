package handlers

import (
	"net/http"

	"freshfold/models"
	"freshfold/services/booking"
	"freshfold/utils"

	"github.com/gin-gonic/gin"
)

// GetPricingPlans returns the flat service rates the pricing page renders.
func GetPricingPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currency": "GBP",
		"plans": []gin.H{
			{"service": models.ServiceLaundry, "name": "Wash & Fold", "price": booking.LaundryRate},
			{"service": models.ServiceDuvets, "name": "Duvet Clean", "price": booking.DuvetsRate},
			{"service": models.ServiceDryCleaning, "name": "Dry Cleaning", "price": booking.DryCleaningRate},
		},
	})
}

// QuoteTotal prices a service selection, optionally split across lockers.
func QuoteTotal(c *gin.Context) {
	var input struct {
		Services    models.ServiceSelection `json:"services"`
		LockerCount int                     `json:"lockerCount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	total := booking.Quote(input.Services)
	resp := gin.H{"total": total, "currency": "GBP"}
	if input.LockerCount > 0 {
		resp["perLocker"] = booking.PerLockerShare(total, input.LockerCount)
	}
	c.JSON(http.StatusOK, resp)
}
