package handler

import (
	"net/http"

	"dashbuilder/internal/builder/dispatch"
	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/service"

	"github.com/labstack/echo/v4"
)

type BuilderHandler struct {
	Service service.BuilderService
}

func NewBuilderHandler(s service.BuilderService) *BuilderHandler {
	return &BuilderHandler{Service: s}
}

// PostSession handles POST /sessions
func (h *BuilderHandler) PostSession(c echo.Context) error {
	var req model.OpenSessionReq
	if err := c.Bind(&req); err != nil {
		return badBody(c, "Invalid body")
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	resp, err := h.Service.OpenSession(c.Request().Context(), req.User)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// DeleteSession handles DELETE /sessions/:id
func (h *BuilderHandler) DeleteSession(c echo.Context) error {
	if err := h.Service.CloseSession(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResponse{Status: "success"})
}

// GetEvents handles GET /events
func (h *BuilderHandler) GetEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Service.Events())
}

// PostEvent handles POST /sessions/:id/events
func (h *BuilderHandler) PostEvent(c echo.Context) error {
	var ev dispatch.Event
	if err := c.Bind(&ev); err != nil {
		return badBody(c, "Invalid body")
	}

	if err := ev.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	if err := h.Service.Dispatch(c.Request().Context(), c.Param("id"), ev); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.StatusResponse{Status: "success"})
}

// GetCell handles GET /sessions/:id/cells/:name
func (h *BuilderHandler) GetCell(c echo.Context) error {
	v, err := h.Service.Snapshot(c.Request().Context(), c.Param("id"), c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// GetDerived handles GET /sessions/:id/derived/:name
func (h *BuilderHandler) GetDerived(c echo.Context) error {
	v, err := h.Service.Derived(c.Request().Context(), c.Param("id"), c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}
