package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sales-task-tracker/internal/normalizer"
)

var errMissingID = errors.New("id is required")

// processCreateReq binds and validates the create task request body. Only
// malformed JSON is rejected; a body that is not an object is an empty record.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var body any
	if err := c.ShouldBindJSON(&body); err != nil {
		return createReq{}, err
	}
	req := createReq{fields: normalizer.Record(body)}
	return req, req.validate()
}

// processUpdateReq binds and validates the patch body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var body any
	if err := c.ShouldBindJSON(&body); err != nil {
		return updateReq{}, err
	}
	req := updateReq{fields: normalizer.Record(body)}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

// processRankedReq binds and validates the ranked list query parameters.
func (h *handler) processRankedReq(c *gin.Context) (rankedReq, error) {
	var req rankedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
