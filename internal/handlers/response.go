package handlers

import (
	"errors"
	"net/http"

	"github.com/changil/changilweb-server/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgInvalidID      = "유효하지 않은 ID입니다."
	msgInvalidBody    = "잘못된 요청 형식입니다."
	msgInternal       = "서버 오류가 발생했습니다."
	msgInvalidPeriod  = "유효하지 않은 연도 또는 월입니다."
	msgLoginFailed    = "로그인에 실패했습니다."
	msgLoggedOut      = "로그아웃되었습니다."
	msgPopupDismissed = "팝업이 닫혔습니다."
)

// respondError writes err as {"message": ...} with a status picked from its
// kind. Unclassified errors become a 500 and are attached to the context
// for the request logger.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrDuplicate),
		errors.Is(err, services.ErrInvalidID):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		status = http.StatusUnauthorized
	}

	message := msgInternal
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"message": message})
}

// parseID reads the :id path parameter. On failure it has already written
// a 400.
func parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, &services.Error{Kind: services.ErrInvalidID, Message: msgInvalidID})
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindJSON decodes the request body into req. On failure it has already
// written a 400.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidBody})
		return false
	}
	return true
}

func deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
