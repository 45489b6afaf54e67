package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"soundwave/pkg/utils"
)

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func requireActor(c *gin.Context) (utils.Actor, bool) {
	actor, ok := utils.CurrentActor(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return utils.Actor{}, false
	}
	return actor, true
}

func pageQuery(c *gin.Context, maxLimit int) (utils.PageQuery, bool) {
	q, err := utils.ParsePageQuery(c, maxLimit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return utils.PageQuery{}, false
	}
	return q, true
}
