package handlers

import (
	"net/http"

	"gasmeter/internal/hydraulics"
	"gasmeter/internal/units"

	"github.com/gin-gonic/gin"
)

type convertRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from" binding:"required"`
	To    string  `json:"to" binding:"required"`
	Kind  string  `json:"kind" binding:"required"` // flow | pressure | temperature | length
}

type flowRequest struct {
	Diameter float64  `json:"diameter" binding:"required"`
	Velocity *float64 `json:"velocity,omitempty"`
	FlowRate *float64 `json:"flow_rate,omitempty"`
}

type pressureDropRequest struct {
	FlowRate  float64 `json:"flow_rate" binding:"required"`
	Diameter  float64 `json:"diameter" binding:"required"`
	Length    float64 `json:"length" binding:"required"`
	Roughness float64 `json:"roughness,omitempty"` // mm; zero selects the default
}

// @Summary      Convert units
// @Description  Converts between field units of one quantity kind (flow, pressure, temperature, length).
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        body  body   convertRequest  true  "Conversion payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/tools/convert [post]
// @Security     BearerAuth
func (h *Handler) convertUnits(c *gin.Context) {
	var req convertRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	result, err := units.Convert(req.Value, req.From, req.To, req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"value":  req.Value,
		"from":   req.From,
		"to":     req.To,
		"kind":   req.Kind,
		"result": result,
	})
}

// @Summary      Pipe flow calculator
// @Description  Computes flow from velocity or velocity from flow for a circular pipe. Exactly one of velocity or flow_rate must be set.
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        body  body   flowRequest  true  "Flow payload"
// @Success      200   {object}  hydraulics.FlowResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/tools/flow [post]
// @Security     BearerAuth
func (h *Handler) pipeFlow(c *gin.Context) {
	var req flowRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	var (
		res hydraulics.FlowResult
		err error
	)
	switch {
	case req.Velocity != nil:
		res, err = hydraulics.FlowFromVelocity(req.Diameter, *req.Velocity)
	case req.FlowRate != nil:
		res, err = hydraulics.VelocityFromFlow(req.Diameter, *req.FlowRate)
	default:
		err = hydraulics.ErrMissingInput
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Pressure drop calculator
// @Description  Darcy-Weisbach pressure drop for a straight water-filled pipe run.
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        body  body   pressureDropRequest  true  "Pressure-drop payload"
// @Success      200   {object}  hydraulics.PressureDropResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/tools/pressure-drop [post]
// @Security     BearerAuth
func (h *Handler) pressureDrop(c *gin.Context) {
	var req pressureDropRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	res, err := hydraulics.PressureDrop(req.FlowRate, req.Diameter, req.Length, req.Roughness)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
