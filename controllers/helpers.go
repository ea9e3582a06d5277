package controllers

import (
	"KidSafe/models"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// statusForError maps service sentinel errors onto HTTP statuses; anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrInvalidPairCode):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrProfileNotFound), errors.Is(err, models.ErrAlertNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyBlocked):
		return http.StatusConflict
	case errors.Is(err, models.ErrNotFamilyMember):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func childIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("child_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child id"})
		return 0, false
	}
	return uint(id), true
}

// callerUID returns the authenticated uid set by the auth middleware.
func callerUID(c *gin.Context) string {
	uid, _ := c.Get("uid")
	value, _ := uid.(string)
	return value
}

// authorizeChildAccess gates every child-scoped route: a child token may
// only address its own profile, a parent token only children of its own
// family.
func authorizeChildAccess(c *gin.Context) bool {
	userType, _ := c.Get("user_type")
	if userType == "child" {
		if callerUID(c) != c.Param("child_id") {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return false
		}
		return true
	}

	childID, ok := childIDParam(c)
	if !ok {
		return false
	}
	if err := childService.VerifyOwnership(callerUID(c), childID); err != nil {
		abortWithError(c, err)
		return false
	}
	return true
}
